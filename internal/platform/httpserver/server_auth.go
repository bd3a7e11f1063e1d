package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	autherrors "mdd/contexts/identity-access/auth-service/domain/errors"
	authhttp "mdd/contexts/identity-access/auth-service/transport/http"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req authhttp.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.auth.Handler.RegisterHandler(r.Context(), req)
	if err != nil {
		writeAuthDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req authhttp.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.auth.Handler.LoginHandler(r.Context(), req)
	if err != nil {
		writeAuthDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetCredentials(w http.ResponseWriter, r *http.Request) {
	resp, err := s.auth.Handler.GetCredentialsHandler(r.Context(), bearerToken(r))
	if err != nil {
		writeAuthDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateCredentials(w http.ResponseWriter, r *http.Request) {
	var req authhttp.UpdateCredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.auth.Handler.UpdateCredentialsHandler(r.Context(), bearerToken(r), req)
	if err != nil {
		writeAuthDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeAuthDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, autherrors.ErrInvalidRequest):
		writeAuthError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, autherrors.ErrDuplicateEmail):
		writeAuthError(w, http.StatusConflict, "duplicate_email", err.Error())
	case errors.Is(err, autherrors.ErrInvalidCredentials):
		writeAuthError(w, http.StatusUnauthorized, "invalid_credentials", err.Error())
	case errors.Is(err, autherrors.ErrUnauthenticated),
		errors.Is(err, autherrors.ErrTokenInvalid),
		errors.Is(err, autherrors.ErrTokenExpired):
		writeAuthError(w, http.StatusUnauthorized, "unauthenticated", err.Error())
	case errors.Is(err, autherrors.ErrUserNotFound):
		writeAuthError(w, http.StatusNotFound, "user_not_found", err.Error())
	default:
		writeAuthError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeAuthError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, authhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
