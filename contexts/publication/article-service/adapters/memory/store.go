package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"mdd/contexts/publication/article-service/domain/entities"
	domainerrors "mdd/contexts/publication/article-service/domain/errors"
)

// Store is an in-memory ArticleRepository plus Clock and IDGenerator for
// tests and development wiring.
type Store struct {
	mu sync.RWMutex

	articlesByID map[string]entities.Article
	sequence     uint64
}

func NewStore() *Store {
	return &Store{
		articlesByID: make(map[string]entities.Article),
		sequence:     1,
	}
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := fmt.Sprintf("article_item_%d", s.sequence)
	s.sequence++
	return id, nil
}

func (s *Store) ListByThemeIDs(_ context.Context, themeIDs []string) ([]entities.Article, error) {
	wanted := make(map[string]struct{}, len(themeIDs))
	for _, id := range themeIDs {
		wanted[id] = struct{}{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Article, 0)
	for _, article := range s.articlesByID {
		if _, ok := wanted[article.ThemeID]; ok {
			items = append(items, cloneArticle(article))
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].UpdatedAt.Equal(items[j].UpdatedAt) {
			return items[i].ArticleID < items[j].ArticleID
		}
		return items[i].UpdatedAt.After(items[j].UpdatedAt)
	})
	return items, nil
}

func (s *Store) FindByID(_ context.Context, articleID string) (entities.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	article, ok := s.articlesByID[articleID]
	if !ok {
		return entities.Article{}, domainerrors.ErrArticleNotFound
	}
	return cloneArticle(article), nil
}

func (s *Store) CreateArticle(_ context.Context, article entities.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.articlesByID[article.ArticleID] = cloneArticle(article)
	return nil
}

func (s *Store) CreateComment(_ context.Context, comment entities.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	article, ok := s.articlesByID[comment.ArticleID]
	if !ok {
		return domainerrors.ErrArticleNotFound
	}
	article.Comments = append(article.Comments, comment)
	article.UpdatedAt = comment.CreatedAt.UTC()
	s.articlesByID[comment.ArticleID] = article
	return nil
}

func cloneArticle(article entities.Article) entities.Article {
	copied := article
	copied.Comments = append([]entities.Comment(nil), article.Comments...)
	return copied
}
