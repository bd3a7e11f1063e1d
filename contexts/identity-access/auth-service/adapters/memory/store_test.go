package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"mdd/contexts/identity-access/auth-service/domain/entities"
	domainerrors "mdd/contexts/identity-access/auth-service/domain/errors"
)

func seedUser(t *testing.T, store *Store, id string, email string) entities.User {
	t.Helper()
	now := time.Now().UTC()
	user := entities.User{
		UserID:       id,
		Email:        email,
		Name:         "Ana",
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := store.Create(context.Background(), user); err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func TestCreateAndFindByEmail(t *testing.T) {
	store := NewStore()
	seedUser(t, store, "user_1", "ana@x.com")

	found, err := store.FindByEmail(context.Background(), "ana@x.com")
	if err != nil {
		t.Fatalf("find by email failed: %v", err)
	}
	if found.UserID != "user_1" {
		t.Fatalf("unexpected user id %s", found.UserID)
	}
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	store := NewStore()
	seedUser(t, store, "user_1", "ana@x.com")

	err := store.Create(context.Background(), entities.User{UserID: "user_2", Email: "ana@x.com"})
	if !errors.Is(err, domainerrors.ErrDuplicateEmail) {
		t.Fatalf("expected duplicate email, got %v", err)
	}
}

func TestFindUnknownUser(t *testing.T) {
	store := NewStore()
	if _, err := store.FindByEmail(context.Background(), "ghost@x.com"); !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected user not found, got %v", err)
	}
	if _, err := store.FindByID(context.Background(), "user_404"); !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected user not found, got %v", err)
	}
}

func TestUpdateCredentialsMovesEmailIndex(t *testing.T) {
	store := NewStore()
	seedUser(t, store, "user_1", "ana@x.com")

	updated, err := store.UpdateCredentials(context.Background(), "user_1", "Ana B", "ana.b@x.com", time.Now().UTC())
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Ana B" || updated.Email != "ana.b@x.com" {
		t.Fatalf("unexpected updated user %+v", updated)
	}

	if _, err := store.FindByEmail(context.Background(), "ana@x.com"); !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("old email should be free, got %v", err)
	}
	if _, err := store.FindByEmail(context.Background(), "ana.b@x.com"); err != nil {
		t.Fatalf("new email lookup failed: %v", err)
	}
}

func TestUpdateCredentialsRejectsTakenEmail(t *testing.T) {
	store := NewStore()
	seedUser(t, store, "user_1", "ana@x.com")
	seedUser(t, store, "user_2", "bob@x.com")

	_, err := store.UpdateCredentials(context.Background(), "user_2", "Bob", "ana@x.com", time.Now().UTC())
	if !errors.Is(err, domainerrors.ErrDuplicateEmail) {
		t.Fatalf("expected duplicate email, got %v", err)
	}
}
