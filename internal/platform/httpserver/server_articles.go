package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	articleerrors "mdd/contexts/publication/article-service/domain/errors"
	articlehttp "mdd/contexts/publication/article-service/transport/http"
)

func (s *Server) handleListArticles(w http.ResponseWriter, r *http.Request) {
	resp, err := s.articles.Handler.ListArticlesHandler(r.Context(), bearerToken(r))
	if err != nil {
		writeArticleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetArticle(w http.ResponseWriter, r *http.Request) {
	articleID := r.PathValue("article_id")
	resp, err := s.articles.Handler.GetArticleHandler(r.Context(), bearerToken(r), articleID)
	if err != nil {
		writeArticleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateArticle(w http.ResponseWriter, r *http.Request) {
	var req articlehttp.CreateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeArticleError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.articles.Handler.CreateArticleHandler(r.Context(), bearerToken(r), req)
	if err != nil {
		writeArticleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	var req articlehttp.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeArticleError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	articleID := r.PathValue("article_id")
	resp, err := s.articles.Handler.CreateCommentHandler(r.Context(), bearerToken(r), articleID, req)
	if err != nil {
		writeArticleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func writeArticleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, articleerrors.ErrInvalidRequest):
		writeArticleError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, articleerrors.ErrUnauthenticated):
		writeArticleError(w, http.StatusUnauthorized, "unauthenticated", err.Error())
	case errors.Is(err, articleerrors.ErrArticleNotFound):
		writeArticleError(w, http.StatusNotFound, "article_not_found", err.Error())
	case errors.Is(err, articleerrors.ErrThemeNotFound):
		writeArticleError(w, http.StatusNotFound, "theme_not_found", err.Error())
	case errors.Is(err, articleerrors.ErrUserNotFound):
		writeArticleError(w, http.StatusNotFound, "user_not_found", err.Error())
	default:
		writeArticleError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeArticleError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, articlehttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
