package ports

import (
	"context"
	"time"

	"mdd/contexts/publication/article-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
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

type ThemeRef struct {
	ThemeID string
	Title   string
}

// ThemeDirectory is the subscription registry as seen from the content side:
// title lookup for article creation and the caller's live membership set for
// the visibility filter.
type ThemeDirectory interface {
	FindByTitle(ctx context.Context, title string) (ThemeRef, error)
	SubscribedThemeIDs(ctx context.Context, userID string) ([]string, error)
}

// ArticleRepository persists articles and their owned comment collections.
// CreateComment appends the comment and bumps the parent article's updated
// timestamp in one atomic unit; it reports domainerrors.ErrArticleNotFound
// when the parent does not resolve.
type ArticleRepository interface {
	ListByThemeIDs(ctx context.Context, themeIDs []string) ([]entities.Article, error)
	FindByID(ctx context.Context, articleID string) (entities.Article, error)
	CreateArticle(ctx context.Context, article entities.Article) error
	CreateComment(ctx context.Context, comment entities.Comment) error
}
