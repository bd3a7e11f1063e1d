package httpadapter

import (
	"context"
	"log/slog"
	"strings"

	"mdd/contexts/identity-access/auth-service/application"
	httptransport "mdd/contexts/identity-access/auth-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) RegisterHandler(ctx context.Context, req httptransport.RegisterRequest) (httptransport.SessionResponse, error) {
	session, err := h.Service.Register(
		ctx,
		strings.TrimSpace(req.Username),
		strings.TrimSpace(req.Email),
		req.Password,
	)
	if err != nil {
		return httptransport.SessionResponse{}, err
	}
	return sessionResponse(session), nil
}

func (h Handler) LoginHandler(ctx context.Context, req httptransport.LoginRequest) (httptransport.SessionResponse, error) {
	session, err := h.Service.Login(ctx, strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		return httptransport.SessionResponse{}, err
	}
	return sessionResponse(session), nil
}

func (h Handler) GetCredentialsHandler(ctx context.Context, token string) (httptransport.CredentialsResponse, error) {
	user, err := h.Service.Credentials(ctx, token)
	if err != nil {
		return httptransport.CredentialsResponse{}, err
	}
	resp := httptransport.CredentialsResponse{Status: "success"}
	resp.Data.Username = user.Name
	resp.Data.Email = user.Email
	return resp, nil
}

func (h Handler) UpdateCredentialsHandler(ctx context.Context, token string, req httptransport.UpdateCredentialsRequest) (httptransport.UpdatedCredentialsResponse, error) {
	session, err := h.Service.UpdateCredentials(
		ctx,
		token,
		strings.TrimSpace(req.Username),
		strings.TrimSpace(req.Email),
	)
	if err != nil {
		return httptransport.UpdatedCredentialsResponse{}, err
	}
	resp := httptransport.UpdatedCredentialsResponse{Status: "success"}
	resp.Data.Username = session.User.Name
	resp.Data.Email = session.User.Email
	resp.Data.Token = session.Token
	resp.Data.UserID = session.User.UserID
	return resp, nil
}

func sessionResponse(session application.Session) httptransport.SessionResponse {
	resp := httptransport.SessionResponse{Status: "success"}
	resp.Data.Token = session.Token
	resp.Data.UserID = session.User.UserID
	return resp
}
