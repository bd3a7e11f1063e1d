package authservice

import (
	"log/slog"
	"time"

	bcryptadapter "mdd/contexts/identity-access/auth-service/adapters/bcrypt"
	httpadapter "mdd/contexts/identity-access/auth-service/adapters/http"
	"mdd/contexts/identity-access/auth-service/adapters/memory"
	tokenadapter "mdd/contexts/identity-access/auth-service/adapters/token"
	"mdd/contexts/identity-access/auth-service/application"
	"mdd/contexts/identity-access/auth-service/ports"
)

// Module is the auth-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Users       ports.UserRepository
	Codec       ports.TokenCodec
	Hasher      ports.PasswordHasher
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Users:  deps.Users,
		Codec:  deps.Codec,
		Hasher: deps.Hasher,
		Clock:  deps.Clock,
		IDGen:  deps.IDGenerator,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
	}
}

// NewInMemoryModule builds a development/testing module with in-memory
// adapters and a fixed signing secret.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Users: store,
		Codec: tokenadapter.Codec{
			Secret: []byte("mdd-test-secret"),
			Issuer: "mdd-api",
			TTL:    24 * time.Hour,
		},
		Hasher:      bcryptadapter.Hasher{},
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
