package httpserver

import (
	"errors"
	"net/http"

	themeerrors "mdd/contexts/publication/theme-service/domain/errors"
	themehttp "mdd/contexts/publication/theme-service/transport/http"
)

func (s *Server) handleListThemes(w http.ResponseWriter, r *http.Request) {
	resp, err := s.themes.Handler.ListThemesHandler(r.Context(), bearerToken(r))
	if err != nil {
		writeThemeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListSubscribedThemes(w http.ResponseWriter, r *http.Request) {
	resp, err := s.themes.Handler.ListSubscribedThemesHandler(r.Context(), bearerToken(r))
	if err != nil {
		writeThemeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	themeID := r.PathValue("theme_id")
	resp, err := s.themes.Handler.SubscribeHandler(r.Context(), bearerToken(r), themeID)
	if err != nil {
		writeThemeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	themeID := r.PathValue("theme_id")
	resp, err := s.themes.Handler.UnsubscribeHandler(r.Context(), bearerToken(r), themeID)
	if err != nil {
		writeThemeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeThemeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, themeerrors.ErrInvalidRequest):
		writeThemeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, themeerrors.ErrUnauthenticated):
		writeThemeError(w, http.StatusUnauthorized, "unauthenticated", err.Error())
	case errors.Is(err, themeerrors.ErrThemeNotFound):
		writeThemeError(w, http.StatusNotFound, "theme_not_found", err.Error())
	case errors.Is(err, themeerrors.ErrUserNotFound):
		writeThemeError(w, http.StatusNotFound, "user_not_found", err.Error())
	default:
		writeThemeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeThemeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, themehttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
