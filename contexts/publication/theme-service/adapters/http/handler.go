package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"mdd/contexts/publication/theme-service/application"
	"mdd/contexts/publication/theme-service/domain/entities"
	httptransport "mdd/contexts/publication/theme-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ListThemesHandler(ctx context.Context, token string) (httptransport.ThemesResponse, error) {
	themes, err := h.Service.ListThemes(ctx, token)
	if err != nil {
		return httptransport.ThemesResponse{}, err
	}
	return themesResponse(themes), nil
}

func (h Handler) ListSubscribedThemesHandler(ctx context.Context, token string) (httptransport.ThemesResponse, error) {
	themes, err := h.Service.ListSubscribedThemes(ctx, token)
	if err != nil {
		return httptransport.ThemesResponse{}, err
	}
	return themesResponse(themes), nil
}

func (h Handler) SubscribeHandler(ctx context.Context, token string, themeID string) (httptransport.MembershipResponse, error) {
	if err := h.Service.Subscribe(ctx, token, themeID); err != nil {
		return httptransport.MembershipResponse{}, err
	}
	return httptransport.MembershipResponse{Status: "success"}, nil
}

func (h Handler) UnsubscribeHandler(ctx context.Context, token string, themeID string) (httptransport.MembershipResponse, error) {
	if err := h.Service.Unsubscribe(ctx, token, themeID); err != nil {
		return httptransport.MembershipResponse{}, err
	}
	return httptransport.MembershipResponse{Status: "success"}, nil
}

func themesResponse(themes []entities.Theme) httptransport.ThemesResponse {
	resp := httptransport.ThemesResponse{Status: "success"}
	resp.Data.Themes = make([]httptransport.ThemePayload, 0, len(themes))
	for _, theme := range themes {
		resp.Data.Themes = append(resp.Data.Themes, httptransport.ThemePayload{
			ThemeID:     theme.ThemeID,
			Title:       theme.Title,
			Description: theme.Description,
			Subscribers: theme.SubscriberIDs,
			UpdatedAt:   theme.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	return resp
}
