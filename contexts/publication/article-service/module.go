package articleservice

import (
	"log/slog"

	authapplication "mdd/contexts/identity-access/auth-service/application"
	httpadapter "mdd/contexts/publication/article-service/adapters/http"
	identityadapter "mdd/contexts/publication/article-service/adapters/identity"
	"mdd/contexts/publication/article-service/adapters/memory"
	themesadapter "mdd/contexts/publication/article-service/adapters/themes"
	"mdd/contexts/publication/article-service/application"
	"mdd/contexts/publication/article-service/ports"
	themeapplication "mdd/contexts/publication/theme-service/application"
)

// Module is the article-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Articles    ports.ArticleRepository
	Themes      ports.ThemeDirectory
	Sessions    ports.SessionResolver
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Articles: deps.Articles,
		Themes:   deps.Themes,
		Sessions: deps.Sessions,
		Clock:    deps.Clock,
		IDGen:    deps.IDGenerator,
		Logger:   deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
	}
}

// NewInMemoryModule builds a development/testing module backed by the
// in-memory store, resolving sessions against the auth application and theme
// membership against the theme application.
func NewInMemoryModule(auth authapplication.Service, themes themeapplication.Service, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Articles:    store,
		Themes:      themesadapter.Directory{Themes: themes},
		Sessions:    identityadapter.Resolver{Auth: auth},
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
