package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"mdd/contexts/publication/article-service/domain/entities"
	domainerrors "mdd/contexts/publication/article-service/domain/errors"
	"mdd/contexts/publication/article-service/ports"
)

type Service struct {
	Articles ports.ArticleRepository
	Themes   ports.ThemeDirectory
	Sessions ports.SessionResolver
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

// ListArticles returns the caller's visible articles: exactly those filed
// under the themes the caller currently subscribes to. Zero subscriptions
// yield an empty list, not an error.
func (s Service) ListArticles(ctx context.Context, token string) ([]entities.Article, error) {
	caller, err := s.Sessions.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	themeIDs, err := s.Themes.SubscribedThemeIDs(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	if len(themeIDs) == 0 {
		return []entities.Article{}, nil
	}
	return s.Articles.ListByThemeIDs(ctx, themeIDs)
}

// GetArticle requires authentication but deliberately performs no
// subscription check; the list endpoint is the sole visibility boundary.
func (s Service) GetArticle(ctx context.Context, token string, articleID string) (entities.Article, error) {
	if _, err := s.Sessions.Resolve(ctx, token); err != nil {
		return entities.Article{}, err
	}
	if strings.TrimSpace(articleID) == "" {
		return entities.Article{}, domainerrors.ErrArticleNotFound
	}
	return s.Articles.FindByID(ctx, articleID)
}

// CreateArticle files a new article under the theme named by title. The
// caller does not need to subscribe to the theme they post to.
func (s Service) CreateArticle(ctx context.Context, token string, themeTitle string, title string, content string) (string, error) {
	caller, err := s.Sessions.Resolve(ctx, token)
	if err != nil {
		return "", err
	}

	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return "", domainerrors.ErrInvalidRequest
	}

	theme, err := s.Themes.FindByTitle(ctx, strings.TrimSpace(themeTitle))
	if err != nil {
		return "", err
	}
	articleID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return "", err
	}

	now := s.now()
	article := entities.Article{
		ArticleID:  articleID,
		ThemeID:    theme.ThemeID,
		ThemeTitle: theme.Title,
		AuthorID:   caller.UserID,
		AuthorName: caller.Name,
		Title:      title,
		Content:    content,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Articles.CreateArticle(ctx, article); err != nil {
		return "", err
	}

	resolveLogger(s.Logger).Info("article created",
		"event", "article_created",
		"module", "publication/article-service",
		"layer", "application",
		"article_id", articleID,
		"theme_id", theme.ThemeID,
		"author_id", caller.UserID,
	)
	return articleID, nil
}

// CreateComment appends a comment to the article's owned collection; the
// parent article's updated timestamp moves with it.
func (s Service) CreateComment(ctx context.Context, token string, articleID string, content string) (string, error) {
	caller, err := s.Sessions.Resolve(ctx, token)
	if err != nil {
		return "", err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return "", domainerrors.ErrInvalidRequest
	}
	if strings.TrimSpace(articleID) == "" {
		return "", domainerrors.ErrArticleNotFound
	}

	commentID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return "", err
	}

	now := s.now()
	comment := entities.Comment{
		CommentID:  commentID,
		ArticleID:  articleID,
		AuthorID:   caller.UserID,
		AuthorName: caller.Name,
		Content:    content,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Articles.CreateComment(ctx, comment); err != nil {
		return "", err
	}

	resolveLogger(s.Logger).Info("comment created",
		"event", "comment_created",
		"module", "publication/article-service",
		"layer", "application",
		"comment_id", commentID,
		"article_id", articleID,
		"author_id", caller.UserID,
	)
	return commentID, nil
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
