package ports

import (
	"context"
	"time"

	"mdd/contexts/identity-access/auth-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// UserRepository persists account records. Implementations report
// domainerrors.ErrUserNotFound for missing records and
// domainerrors.ErrDuplicateEmail when a write would break email uniqueness.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (entities.User, error)
	FindByID(ctx context.Context, userID string) (entities.User, error)
	Create(ctx context.Context, user entities.User) error
	UpdateCredentials(ctx context.Context, userID string, name string, email string, now time.Time) (entities.User, error)
}

// TokenCodec issues and verifies stateless signed session tokens. The
// subject is the user's email; verification checks signature and expiry only,
// there is no revocation list.
type TokenCodec interface {
	Issue(subject string) (string, error)
	Verify(token string) (string, error)
}

type PasswordHasher interface {
	Hash(raw string) (string, error)
	Compare(hash string, raw string) error
}
