package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mdd/contexts/publication/theme-service/domain/entities"
	domainerrors "mdd/contexts/publication/theme-service/domain/errors"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) ListAll(ctx context.Context) ([]entities.Theme, error) {
	var rows []themeModel
	if err := r.db.WithContext(ctx).
		Order("title ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return r.attachSubscribers(ctx, rows)
}

func (r *Repository) ListBySubscriber(ctx context.Context, userID string) ([]entities.Theme, error) {
	var rows []themeModel
	if err := r.db.WithContext(ctx).
		Joins("JOIN theme_subscriptions ON theme_subscriptions.theme_id = themes.theme_id").
		Where("theme_subscriptions.user_id = ?", userID).
		Order("themes.title ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return r.attachSubscribers(ctx, rows)
}

func (r *Repository) FindByID(ctx context.Context, themeID string) (entities.Theme, error) {
	return r.findOne(ctx, "theme_id = ?", themeID)
}

func (r *Repository) FindByTitle(ctx context.Context, title string) (entities.Theme, error) {
	return r.findOne(ctx, "title = ?", title)
}

// AddSubscriber writes the membership edge and bumps the theme's updated_at
// inside one transaction; the edge insert is idempotent via ON CONFLICT.
func (r *Repository) AddSubscriber(ctx context.Context, themeID string, userID string, now time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireTheme(tx, themeID); err != nil {
			return err
		}

		edge := subscriptionModel{
			ThemeID:      themeID,
			UserID:       userID,
			SubscribedAt: now.UTC(),
		}
		created := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "theme_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).Create(&edge)
		if created.Error != nil {
			return created.Error
		}
		if created.RowsAffected == 0 {
			return nil
		}

		return tx.Model(&themeModel{}).
			Where("theme_id = ?", themeID).
			Update("updated_at", now.UTC()).
			Error
	})
}

func (r *Repository) RemoveSubscriber(ctx context.Context, themeID string, userID string, now time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireTheme(tx, themeID); err != nil {
			return err
		}

		removed := tx.Where("theme_id = ? AND user_id = ?", themeID, userID).
			Delete(&subscriptionModel{})
		if removed.Error != nil {
			return removed.Error
		}
		if removed.RowsAffected == 0 {
			return nil
		}

		return tx.Model(&themeModel{}).
			Where("theme_id = ?", themeID).
			Update("updated_at", now.UTC()).
			Error
	})
}

func (r *Repository) findOne(ctx context.Context, query string, arg string) (entities.Theme, error) {
	var row themeModel
	err := r.db.WithContext(ctx).
		Where(query, arg).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Theme{}, domainerrors.ErrThemeNotFound
		}
		return entities.Theme{}, err
	}
	items, err := r.attachSubscribers(ctx, []themeModel{row})
	if err != nil {
		return entities.Theme{}, err
	}
	return items[0], nil
}

func (r *Repository) attachSubscribers(ctx context.Context, rows []themeModel) ([]entities.Theme, error) {
	items := make([]entities.Theme, 0, len(rows))
	if len(rows) == 0 {
		return items, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ThemeID)
	}

	var edges []subscriptionModel
	if err := r.db.WithContext(ctx).
		Where("theme_id IN ?", ids).
		Order("user_id ASC").
		Find(&edges).
		Error; err != nil {
		return nil, err
	}

	subscribersByTheme := make(map[string][]string, len(rows))
	for _, edge := range edges {
		subscribersByTheme[edge.ThemeID] = append(subscribersByTheme[edge.ThemeID], edge.UserID)
	}

	for _, row := range rows {
		items = append(items, entities.Theme{
			ThemeID:       row.ThemeID,
			Title:         row.Title,
			Description:   row.Description,
			SubscriberIDs: subscribersByTheme[row.ThemeID],
			CreatedAt:     row.CreatedAt,
			UpdatedAt:     row.UpdatedAt,
		})
	}
	return items, nil
}

func requireTheme(tx *gorm.DB, themeID string) error {
	var row themeModel
	if err := tx.Select("theme_id").Where("theme_id = ?", themeID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainerrors.ErrThemeNotFound
		}
		return err
	}
	return nil
}

type themeModel struct {
	ThemeID     string    `gorm:"column:theme_id;primaryKey"`
	Title       string    `gorm:"column:title;uniqueIndex:themes_unique_title"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (themeModel) TableName() string { return "themes" }

type subscriptionModel struct {
	ThemeID      string    `gorm:"column:theme_id;primaryKey"`
	UserID       string    `gorm:"column:user_id;primaryKey"`
	SubscribedAt time.Time `gorm:"column:subscribed_at"`
}

func (subscriptionModel) TableName() string { return "theme_subscriptions" }
