package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	authservice "mdd/contexts/identity-access/auth-service"
	articleservice "mdd/contexts/publication/article-service"
	themeservice "mdd/contexts/publication/theme-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "mdd/internal/platform/httpserver/docs"
)

type Server struct {
	mux      *http.ServeMux
	logger   *slog.Logger
	addr     string
	auth     authservice.Module
	themes   themeservice.Module
	articles articleservice.Module
}

func New(
	auth authservice.Module,
	themes themeservice.Module,
	articles articleservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:      http.NewServeMux(),
		logger:   logger,
		addr:     addr,
		auth:     auth,
		themes:   themes,
		articles: articles,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	s.mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	s.mux.HandleFunc("GET /api/auth/credentials", s.handleGetCredentials)
	s.mux.HandleFunc("PUT /api/auth/credentials", s.handleUpdateCredentials)

	s.mux.HandleFunc("GET /api/themes", s.handleListThemes)
	s.mux.HandleFunc("GET /api/themes/subscribed", s.handleListSubscribedThemes)
	s.mux.HandleFunc("POST /api/themes/subscribe/{theme_id}", s.handleSubscribe)
	s.mux.HandleFunc("POST /api/themes/unsubscribe/{theme_id}", s.handleUnsubscribe)

	s.mux.HandleFunc("GET /api/articles", s.handleListArticles)
	s.mux.HandleFunc("GET /api/articles/{article_id}", s.handleGetArticle)
	s.mux.HandleFunc("POST /api/articles", s.handleCreateArticle)
	s.mux.HandleFunc("POST /api/articles/{article_id}/comments", s.handleCreateComment)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// bearerToken extracts the credential from the Authorization header. An
// absent or malformed header yields the empty string; session resolution
// downstream rejects that as unauthenticated.
func bearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
