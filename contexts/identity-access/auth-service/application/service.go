package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"mdd/contexts/identity-access/auth-service/domain/entities"
	domainerrors "mdd/contexts/identity-access/auth-service/domain/errors"
	"mdd/contexts/identity-access/auth-service/ports"
)

type Service struct {
	Users  ports.UserRepository
	Codec  ports.TokenCodec
	Hasher ports.PasswordHasher
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

// Session pairs an authenticated user with a freshly issued token.
type Session struct {
	User  entities.User
	Token string
}

func (s Service) Register(ctx context.Context, name string, email string, password string) (Session, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return Session{}, domainerrors.ErrInvalidRequest
	}

	// Uniqueness is enforced here, before the account exists; the storage
	// unique index is only the backstop for concurrent registrations.
	_, err := s.Users.FindByEmail(ctx, email)
	if err == nil {
		return Session{}, domainerrors.ErrDuplicateEmail
	}
	if !errors.Is(err, domainerrors.ErrUserNotFound) {
		return Session{}, err
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return Session{}, err
	}
	userID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return Session{}, err
	}

	now := s.now()
	user := entities.User{
		UserID:       userID,
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return Session{}, err
	}

	token, err := s.Codec.Issue(user.Email)
	if err != nil {
		return Session{}, err
	}

	resolveLogger(s.Logger).Info("user registered",
		"event", "auth_user_registered",
		"module", "identity-access/auth-service",
		"layer", "application",
		"user_id", user.UserID,
	)
	return Session{User: user, Token: token}, nil
}

func (s Service) Login(ctx context.Context, email string, password string) (Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return Session{}, domainerrors.ErrInvalidCredentials
	}

	user, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return Session{}, domainerrors.ErrInvalidCredentials
		}
		return Session{}, err
	}
	if err := s.Hasher.Compare(user.PasswordHash, password); err != nil {
		return Session{}, domainerrors.ErrInvalidCredentials
	}

	token, err := s.Codec.Issue(user.Email)
	if err != nil {
		return Session{}, err
	}

	resolveLogger(s.Logger).Info("user logged in",
		"event", "auth_user_logged_in",
		"module", "identity-access/auth-service",
		"layer", "application",
		"user_id", user.UserID,
	)
	return Session{User: user, Token: token}, nil
}

// Resolve maps a bearer token to the caller's account. A missing or
// unverifiable token is ErrUnauthenticated; a token whose subject no longer
// resolves to a stored user surfaces ErrUserNotFound rather than being
// swallowed, since it indicates a dangling authorization.
func (s Service) Resolve(ctx context.Context, token string) (entities.User, error) {
	if strings.TrimSpace(token) == "" {
		return entities.User{}, domainerrors.ErrUnauthenticated
	}
	email, err := s.Codec.Verify(token)
	if err != nil {
		resolveLogger(s.Logger).Warn("token rejected",
			"event", "auth_token_rejected",
			"module", "identity-access/auth-service",
			"layer", "application",
			"reason", err.Error(),
		)
		return entities.User{}, domainerrors.ErrUnauthenticated
	}
	user, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		return entities.User{}, err
	}
	return user, nil
}

func (s Service) Credentials(ctx context.Context, token string) (entities.User, error) {
	return s.Resolve(ctx, token)
}

// UpdateCredentials overwrites display name and email only; the password and
// every other field are untouched. The new email is re-checked for
// uniqueness, and a fresh token bound to it is issued since the old token's
// subject stops resolving the moment the email changes.
func (s Service) UpdateCredentials(ctx context.Context, token string, name string, email string) (Session, error) {
	caller, err := s.Resolve(ctx, token)
	if err != nil {
		return Session{}, err
	}

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return Session{}, domainerrors.ErrInvalidRequest
	}

	if email != caller.Email {
		_, err := s.Users.FindByEmail(ctx, email)
		if err == nil {
			return Session{}, domainerrors.ErrDuplicateEmail
		}
		if !errors.Is(err, domainerrors.ErrUserNotFound) {
			return Session{}, err
		}
	}

	updated, err := s.Users.UpdateCredentials(ctx, caller.UserID, name, email, s.now())
	if err != nil {
		return Session{}, err
	}

	fresh, err := s.Codec.Issue(updated.Email)
	if err != nil {
		return Session{}, err
	}

	resolveLogger(s.Logger).Info("credentials updated",
		"event", "auth_credentials_updated",
		"module", "identity-access/auth-service",
		"layer", "application",
		"user_id", updated.UserID,
	)
	return Session{User: updated, Token: fresh}, nil
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
