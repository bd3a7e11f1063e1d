package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"mdd/contexts/publication/article-service/domain/entities"
	domainerrors "mdd/contexts/publication/article-service/domain/errors"
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

func (r *Repository) ListByThemeIDs(ctx context.Context, themeIDs []string) ([]entities.Article, error) {
	if len(themeIDs) == 0 {
		return []entities.Article{}, nil
	}

	var rows []articleModel
	if err := r.db.WithContext(ctx).
		Where("theme_id IN ?", themeIDs).
		Order("updated_at DESC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return r.attachComments(ctx, rows)
}

func (r *Repository) FindByID(ctx context.Context, articleID string) (entities.Article, error) {
	var row articleModel
	err := r.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Article{}, domainerrors.ErrArticleNotFound
		}
		return entities.Article{}, err
	}

	items, err := r.attachComments(ctx, []articleModel{row})
	if err != nil {
		return entities.Article{}, err
	}
	return items[0], nil
}

func (r *Repository) CreateArticle(ctx context.Context, article entities.Article) error {
	row := articleModelFromEntity(article)
	return r.db.WithContext(ctx).Create(&row).Error
}

// CreateComment inserts the comment and moves the parent article's
// updated_at in the same transaction; a zero-row article update means the
// parent does not exist.
func (r *Repository) CreateComment(ctx context.Context, comment entities.Comment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bumped := tx.Model(&articleModel{}).
			Where("article_id = ?", comment.ArticleID).
			Update("updated_at", comment.CreatedAt.UTC())
		if bumped.Error != nil {
			return bumped.Error
		}
		if bumped.RowsAffected == 0 {
			return domainerrors.ErrArticleNotFound
		}

		row := commentModelFromEntity(comment)
		return tx.Create(&row).Error
	})
}

func (r *Repository) attachComments(ctx context.Context, rows []articleModel) ([]entities.Article, error) {
	items := make([]entities.Article, 0, len(rows))
	if len(rows) == 0 {
		return items, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ArticleID)
	}

	var commentRows []commentModel
	if err := r.db.WithContext(ctx).
		Where("article_id IN ?", ids).
		Order("created_at ASC").
		Find(&commentRows).
		Error; err != nil {
		return nil, err
	}

	commentsByArticle := make(map[string][]entities.Comment, len(rows))
	for _, row := range commentRows {
		commentsByArticle[row.ArticleID] = append(commentsByArticle[row.ArticleID], row.toEntity())
	}

	for _, row := range rows {
		article := row.toEntity()
		article.Comments = commentsByArticle[row.ArticleID]
		items = append(items, article)
	}
	return items, nil
}

type articleModel struct {
	ArticleID  string    `gorm:"column:article_id;primaryKey"`
	ThemeID    string    `gorm:"column:theme_id;index"`
	ThemeTitle string    `gorm:"column:theme_title"`
	AuthorID   string    `gorm:"column:author_id;index"`
	AuthorName string    `gorm:"column:author_name"`
	Title      string    `gorm:"column:title"`
	Content    string    `gorm:"column:content"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (articleModel) TableName() string { return "articles" }

func (m articleModel) toEntity() entities.Article {
	return entities.Article{
		ArticleID:  m.ArticleID,
		ThemeID:    m.ThemeID,
		ThemeTitle: m.ThemeTitle,
		AuthorID:   m.AuthorID,
		AuthorName: m.AuthorName,
		Title:      m.Title,
		Content:    m.Content,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func articleModelFromEntity(article entities.Article) articleModel {
	return articleModel{
		ArticleID:  article.ArticleID,
		ThemeID:    article.ThemeID,
		ThemeTitle: article.ThemeTitle,
		AuthorID:   article.AuthorID,
		AuthorName: article.AuthorName,
		Title:      article.Title,
		Content:    article.Content,
		CreatedAt:  article.CreatedAt.UTC(),
		UpdatedAt:  article.UpdatedAt.UTC(),
	}
}

type commentModel struct {
	CommentID  string    `gorm:"column:comment_id;primaryKey"`
	ArticleID  string    `gorm:"column:article_id;index"`
	AuthorID   string    `gorm:"column:author_id"`
	AuthorName string    `gorm:"column:author_name"`
	Content    string    `gorm:"column:content"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (commentModel) TableName() string { return "comments" }

func (m commentModel) toEntity() entities.Comment {
	return entities.Comment{
		CommentID:  m.CommentID,
		ArticleID:  m.ArticleID,
		AuthorID:   m.AuthorID,
		AuthorName: m.AuthorName,
		Content:    m.Content,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func commentModelFromEntity(comment entities.Comment) commentModel {
	return commentModel{
		CommentID:  comment.CommentID,
		ArticleID:  comment.ArticleID,
		AuthorID:   comment.AuthorID,
		AuthorName: comment.AuthorName,
		Content:    comment.Content,
		CreatedAt:  comment.CreatedAt.UTC(),
		UpdatedAt:  comment.UpdatedAt.UTC(),
	}
}
