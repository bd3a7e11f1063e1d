package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"mdd/contexts/publication/theme-service/domain/entities"
	domainerrors "mdd/contexts/publication/theme-service/domain/errors"
)

type themeRecord struct {
	ThemeID     string
	Title       string
	Description string
	Subscribers map[string]struct{}
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Store is an in-memory ThemeRepository plus Clock. It ships with a seeded
// catalog so development and test wiring mirror the seeded reference
// database; themes have no creation endpoint.
type Store struct {
	mu sync.RWMutex

	themesByID map[string]*themeRecord
	order      []string
}

func NewStore() *Store {
	store := &Store{
		themesByID: make(map[string]*themeRecord),
	}
	seeded := []struct {
		id          string
		title       string
		description string
	}{
		{"theme_go", "Go", "The Go programming language: tooling, idioms and releases."},
		{"theme_java", "Java", "JVM ecosystem news, frameworks and performance notes."},
		{"theme_python", "Python", "Python libraries, typing and packaging."},
		{"theme_devops", "DevOps", "CI/CD, infrastructure and operability practices."},
	}
	now := time.Now().UTC()
	for _, seed := range seeded {
		store.themesByID[seed.id] = &themeRecord{
			ThemeID:     seed.id,
			Title:       seed.title,
			Description: seed.description,
			Subscribers: make(map[string]struct{}),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		store.order = append(store.order, seed.id)
	}
	return store
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) ListAll(_ context.Context) ([]entities.Theme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Theme, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, s.themesByID[id].toEntity())
	}
	return items, nil
}

func (s *Store) ListBySubscriber(_ context.Context, userID string) ([]entities.Theme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []entities.Theme
	for _, id := range s.order {
		record := s.themesByID[id]
		if _, ok := record.Subscribers[userID]; ok {
			items = append(items, record.toEntity())
		}
	}
	return items, nil
}

func (s *Store) FindByID(_ context.Context, themeID string) (entities.Theme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.themesByID[themeID]
	if !ok {
		return entities.Theme{}, domainerrors.ErrThemeNotFound
	}
	return record.toEntity(), nil
}

func (s *Store) FindByTitle(_ context.Context, title string) (entities.Theme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		if s.themesByID[id].Title == title {
			return s.themesByID[id].toEntity(), nil
		}
	}
	return entities.Theme{}, domainerrors.ErrThemeNotFound
}

func (s *Store) AddSubscriber(_ context.Context, themeID string, userID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.themesByID[themeID]
	if !ok {
		return domainerrors.ErrThemeNotFound
	}
	if _, exists := record.Subscribers[userID]; exists {
		return nil
	}
	record.Subscribers[userID] = struct{}{}
	record.UpdatedAt = now.UTC()
	return nil
}

func (s *Store) RemoveSubscriber(_ context.Context, themeID string, userID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.themesByID[themeID]
	if !ok {
		return domainerrors.ErrThemeNotFound
	}
	if _, exists := record.Subscribers[userID]; !exists {
		return nil
	}
	delete(record.Subscribers, userID)
	record.UpdatedAt = now.UTC()
	return nil
}

func (r *themeRecord) toEntity() entities.Theme {
	ids := make([]string, 0, len(r.Subscribers))
	for id := range r.Subscribers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return entities.Theme{
		ThemeID:       r.ThemeID,
		Title:         r.Title,
		Description:   r.Description,
		SubscriberIDs: ids,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
