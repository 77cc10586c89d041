package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobassist-backend/internal/shared/auth"
	"jobassist-backend/internal/shared/telemetry"
)

// Service implements identity operations on top of a Repo.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Register creates a new account with a hashed password.
func (s *Service) Register(ctx context.Context, username, email, password string) (User, error) {
	username = strings.TrimSpace(username)
	email = normalizeEmail(email)
	if username == "" || email == "" || password == "" {
		return User{}, ErrInvalidInput
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return User{}, err
	}

	user := User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return User{}, err
	}

	telemetry.Info("user registered", map[string]any{"user_id": user.ID})
	return user, nil
}

// Authenticate verifies an email/password pair. Unknown emails and accounts
// without a password run a dummy verification so both outcomes take
// comparable time before returning ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return User{}, ErrInvalidCredentials
	}

	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			auth.DummyVerify(password)
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if user.PasswordHash == "" {
		auth.DummyVerify(password)
		return User{}, ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	return user, nil
}

// GetByID fetches a user by ID.
func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	return s.Repo.GetByID(ctx, userID)
}

// Exists reports whether a user ID is known.
func (s *Service) Exists(ctx context.Context, userID string) (bool, error) {
	return s.Repo.Exists(ctx, userID)
}

// ProvisionGoogle returns the account for a Google-authenticated email,
// creating a passwordless one on first sign-in. The email doubles as the
// username for provisioned accounts.
func (s *Service) ProvisionGoogle(ctx context.Context, email, name string) (User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return User{}, ErrInvalidInput
	}

	user, err := s.Repo.GetByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	user = User{
		ID:        uuid.New().String(),
		Username:  email,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent sign-in for the same email.
		if errors.Is(err, ErrDuplicateEmail) || errors.Is(err, ErrDuplicateUsername) {
			return s.Repo.GetByEmail(ctx, email)
		}
		return User{}, err
	}

	telemetry.Info("user provisioned via google", map[string]any{"user_id": user.ID, "name": name})
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
