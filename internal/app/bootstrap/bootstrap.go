package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	authservice "mdd/contexts/identity-access/auth-service"
	bcryptadapter "mdd/contexts/identity-access/auth-service/adapters/bcrypt"
	authpostgres "mdd/contexts/identity-access/auth-service/adapters/postgres"
	tokenadapter "mdd/contexts/identity-access/auth-service/adapters/token"
	articleservice "mdd/contexts/publication/article-service"
	articleidentity "mdd/contexts/publication/article-service/adapters/identity"
	articlepostgres "mdd/contexts/publication/article-service/adapters/postgres"
	articlethemes "mdd/contexts/publication/article-service/adapters/themes"
	themeservice "mdd/contexts/publication/theme-service"
	themeidentity "mdd/contexts/publication/theme-service/adapters/identity"
	themepostgres "mdd/contexts/publication/theme-service/adapters/postgres"
	"mdd/internal/platform/config"
	"mdd/internal/platform/db"
	"mdd/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	authRepo := authpostgres.NewRepository(pg.DB, logger)
	authModule := authservice.NewModule(authservice.Dependencies{
		Users: authRepo,
		Codec: tokenadapter.Codec{
			Secret: []byte(cfg.JWTSecret),
			Issuer: cfg.JWTIssuer,
			TTL:    time.Duration(cfg.JWTTTLHours) * time.Hour,
		},
		Hasher:      bcryptadapter.Hasher{},
		Clock:       authpostgres.SystemClock{},
		IDGenerator: authpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	themeRepo := themepostgres.NewRepository(pg.DB, logger)
	themeModule := themeservice.NewModule(themeservice.Dependencies{
		Themes:   themeRepo,
		Sessions: themeidentity.Resolver{Auth: authModule.Service},
		Clock:    themepostgres.SystemClock{},
		Logger:   logger,
	})

	articleRepo := articlepostgres.NewRepository(pg.DB, logger)
	articleModule := articleservice.NewModule(articleservice.Dependencies{
		Articles:    articleRepo,
		Themes:      articlethemes.Directory{Themes: themeModule.Service},
		Sessions:    articleidentity.Resolver{Auth: authModule.Service},
		Clock:       articlepostgres.SystemClock{},
		IDGenerator: articlepostgres.UUIDGenerator{},
		Logger:      logger,
	})

	server := httpserver.New(authModule, themeModule, articleModule, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
