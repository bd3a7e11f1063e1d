package themesadapter

import (
	"context"
	"errors"

	domainerrors "mdd/contexts/publication/article-service/domain/errors"
	"mdd/contexts/publication/article-service/ports"
	themeapplication "mdd/contexts/publication/theme-service/application"
	themeerrors "mdd/contexts/publication/theme-service/domain/errors"
)

// Directory implements ports.ThemeDirectory on top of the theme-service
// application. Title lookup and membership queries stay live; nothing is
// cached on this side.
type Directory struct {
	Themes themeapplication.Service
}

func (d Directory) FindByTitle(ctx context.Context, title string) (ports.ThemeRef, error) {
	theme, err := d.Themes.GetThemeByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, themeerrors.ErrThemeNotFound) {
			return ports.ThemeRef{}, domainerrors.ErrThemeNotFound
		}
		return ports.ThemeRef{}, err
	}
	return ports.ThemeRef{
		ThemeID: theme.ThemeID,
		Title:   theme.Title,
	}, nil
}

func (d Directory) SubscribedThemeIDs(ctx context.Context, userID string) ([]string, error) {
	return d.Themes.SubscribedThemeIDs(ctx, userID)
}
