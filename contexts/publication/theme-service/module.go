package themeservice

import (
	"log/slog"

	authapplication "mdd/contexts/identity-access/auth-service/application"
	httpadapter "mdd/contexts/publication/theme-service/adapters/http"
	identityadapter "mdd/contexts/publication/theme-service/adapters/identity"
	"mdd/contexts/publication/theme-service/adapters/memory"
	"mdd/contexts/publication/theme-service/application"
	"mdd/contexts/publication/theme-service/ports"
)

// Module is the theme-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Themes   ports.ThemeRepository
	Sessions ports.SessionResolver
	Clock    ports.Clock
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Themes:   deps.Themes,
		Sessions: deps.Sessions,
		Clock:    deps.Clock,
		Logger:   deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
	}
}

// NewInMemoryModule builds a development/testing module with the seeded
// in-memory catalog, resolving sessions against the given auth application.
func NewInMemoryModule(auth authapplication.Service, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Themes:   store,
		Sessions: identityadapter.Resolver{Auth: auth},
		Clock:    store,
		Logger:   logger,
	})
	module.Store = store
	return module
}
