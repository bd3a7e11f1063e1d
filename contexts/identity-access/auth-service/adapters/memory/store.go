package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"mdd/contexts/identity-access/auth-service/domain/entities"
	domainerrors "mdd/contexts/identity-access/auth-service/domain/errors"
)

// Store is an in-memory UserRepository plus Clock and IDGenerator for
// tests and development wiring.
type Store struct {
	mu sync.RWMutex

	usersByID map[string]entities.User
	idByEmail map[string]string
	sequence  uint64
}

func NewStore() *Store {
	return &Store{
		usersByID: make(map[string]entities.User),
		idByEmail: make(map[string]string),
		sequence:  1,
	}
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := fmt.Sprintf("user_%d", s.sequence)
	s.sequence++
	return id, nil
}

func (s *Store) FindByEmail(_ context.Context, email string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.idByEmail[email]
	if !ok {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return s.usersByID[id], nil
}

func (s *Store) FindByID(_ context.Context, userID string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.usersByID[userID]
	if !ok {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return user, nil
}

func (s *Store) Create(_ context.Context, user entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.idByEmail[user.Email]; exists {
		return domainerrors.ErrDuplicateEmail
	}
	s.usersByID[user.UserID] = user
	s.idByEmail[user.Email] = user.UserID
	return nil
}

func (s *Store) UpdateCredentials(_ context.Context, userID string, name string, email string, now time.Time) (entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.usersByID[userID]
	if !ok {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	if other, exists := s.idByEmail[email]; exists && other != userID {
		return entities.User{}, domainerrors.ErrDuplicateEmail
	}

	delete(s.idByEmail, user.Email)
	user.Name = name
	user.Email = email
	user.UpdatedAt = now.UTC()
	s.usersByID[userID] = user
	s.idByEmail[email] = userID
	return user, nil
}
