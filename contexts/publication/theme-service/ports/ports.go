package ports

import (
	"context"
	"time"

	"mdd/contexts/publication/theme-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

// Caller is the resolved identity behind a bearer token.
type Caller struct {
	UserID string
	Name   string
	Email  string
}

// SessionResolver maps a bearer token to the caller. Implementations report
// domainerrors.ErrUnauthenticated for missing/invalid/expired tokens and
// domainerrors.ErrUserNotFound for dangling subjects.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (Caller, error)
}

// ThemeRepository persists the theme catalog and the user<->theme membership
// edges. AddSubscriber and RemoveSubscriber are idempotent and run the
// membership write plus the updated-at bump as one atomic unit; both report
// domainerrors.ErrThemeNotFound when the theme id does not resolve.
type ThemeRepository interface {
	ListAll(ctx context.Context) ([]entities.Theme, error)
	ListBySubscriber(ctx context.Context, userID string) ([]entities.Theme, error)
	FindByID(ctx context.Context, themeID string) (entities.Theme, error)
	FindByTitle(ctx context.Context, title string) (entities.Theme, error)
	AddSubscriber(ctx context.Context, themeID string, userID string, now time.Time) error
	RemoveSubscriber(ctx context.Context, themeID string, userID string, now time.Time) error
}
