package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"mdd/contexts/publication/theme-service/domain/entities"
	domainerrors "mdd/contexts/publication/theme-service/domain/errors"
	"mdd/contexts/publication/theme-service/ports"
)

type Service struct {
	Themes   ports.ThemeRepository
	Sessions ports.SessionResolver
	Clock    ports.Clock
	Logger   *slog.Logger
}

// ListThemes returns the full catalog; any authenticated caller may browse.
func (s Service) ListThemes(ctx context.Context, token string) ([]entities.Theme, error) {
	if _, err := s.Sessions.Resolve(ctx, token); err != nil {
		return nil, err
	}
	return s.Themes.ListAll(ctx)
}

// ListSubscribedThemes returns the themes the caller currently subscribes to.
func (s Service) ListSubscribedThemes(ctx context.Context, token string) ([]entities.Theme, error) {
	caller, err := s.Sessions.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.Themes.ListBySubscriber(ctx, caller.UserID)
}

// SubscribedThemeIDs is the visibility source for article listing: the set of
// theme ids the user is a member of right now, no caching.
func (s Service) SubscribedThemeIDs(ctx context.Context, userID string) ([]string, error) {
	themes, err := s.Themes.ListBySubscriber(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(themes))
	for _, theme := range themes {
		ids = append(ids, theme.ThemeID)
	}
	return ids, nil
}

// GetThemeByTitle resolves a theme by its exact title. Titles act as a
// secondary unique key; article creation names its target theme this way.
func (s Service) GetThemeByTitle(ctx context.Context, title string) (entities.Theme, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return entities.Theme{}, domainerrors.ErrThemeNotFound
	}
	return s.Themes.FindByTitle(ctx, title)
}

func (s Service) Subscribe(ctx context.Context, token string, themeID string) error {
	caller, err := s.Sessions.Resolve(ctx, token)
	if err != nil {
		return err
	}
	if strings.TrimSpace(themeID) == "" {
		return domainerrors.ErrThemeNotFound
	}
	if err := s.Themes.AddSubscriber(ctx, themeID, caller.UserID, s.now()); err != nil {
		return err
	}
	resolveLogger(s.Logger).Info("theme subscribed",
		"event", "theme_subscribed",
		"module", "publication/theme-service",
		"layer", "application",
		"theme_id", themeID,
		"user_id", caller.UserID,
	)
	return nil
}

func (s Service) Unsubscribe(ctx context.Context, token string, themeID string) error {
	caller, err := s.Sessions.Resolve(ctx, token)
	if err != nil {
		return err
	}
	if strings.TrimSpace(themeID) == "" {
		return domainerrors.ErrThemeNotFound
	}
	if err := s.Themes.RemoveSubscriber(ctx, themeID, caller.UserID, s.now()); err != nil {
		return err
	}
	resolveLogger(s.Logger).Info("theme unsubscribed",
		"event", "theme_unsubscribed",
		"module", "publication/theme-service",
		"layer", "application",
		"theme_id", themeID,
		"user_id", caller.UserID,
	)
	return nil
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
