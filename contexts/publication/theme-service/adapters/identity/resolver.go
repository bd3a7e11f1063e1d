package identityadapter

import (
	"context"
	"errors"

	authapplication "mdd/contexts/identity-access/auth-service/application"
	autherrors "mdd/contexts/identity-access/auth-service/domain/errors"
	domainerrors "mdd/contexts/publication/theme-service/domain/errors"
	"mdd/contexts/publication/theme-service/ports"
)

// Resolver implements ports.SessionResolver on top of the auth-service
// application, translating its error taxonomy into this service's. Only
// authentication sentinels are rewritten; infrastructure faults pass through
// so they still map to a server fault at the transport edge.
type Resolver struct {
	Auth authapplication.Service
}

func (r Resolver) Resolve(ctx context.Context, token string) (ports.Caller, error) {
	user, err := r.Auth.Resolve(ctx, token)
	if err != nil {
		switch {
		case errors.Is(err, autherrors.ErrUnauthenticated),
			errors.Is(err, autherrors.ErrTokenInvalid),
			errors.Is(err, autherrors.ErrTokenExpired):
			return ports.Caller{}, domainerrors.ErrUnauthenticated
		case errors.Is(err, autherrors.ErrUserNotFound):
			return ports.Caller{}, domainerrors.ErrUserNotFound
		default:
			return ports.Caller{}, err
		}
	}
	return ports.Caller{
		UserID: user.UserID,
		Name:   user.Name,
		Email:  user.Email,
	}, nil
}
