package users

import (
	"context"
	"errors"
	"testing"
)

func newTestService() *Service {
	return NewService(NewMemoryRepo())
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	user, err := svc.Register(ctx, "jordan", "Jordan@Example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == "" {
		t.Fatal("Register returned empty ID")
	}
	if user.Email != "jordan@example.com" {
		t.Fatalf("email not normalized: %q", user.Email)
	}
	if user.PasswordHash == "" || user.PasswordHash == "s3cret-pass" {
		t.Fatal("password not hashed")
	}

	got, err := svc.Authenticate(ctx, "jordan@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("Authenticate ID = %q, want %q", got.ID, user.ID)
	}
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "jordan", "jordan@example.com", "s3cret-pass"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong password", email: "jordan@example.com", password: "wrong"},
		{name: "unknown email", email: "nobody@example.com", password: "s3cret-pass"},
		{name: "empty password", email: "jordan@example.com", password: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Authenticate(ctx, tc.email, tc.password); !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("Authenticate err = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "jordan", "jordan@example.com", "pass-one"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := svc.Register(ctx, "other", "jordan@example.com", "pass-two"); !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("duplicate email err = %v, want ErrDuplicateEmail", err)
	}
	if _, err := svc.Register(ctx, "jordan", "other@example.com", "pass-two"); !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("duplicate username err = %v, want ErrDuplicateUsername", err)
	}
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "", "jordan@example.com", "pass"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing username err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Register(ctx, "jordan", "", "pass"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing email err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Register(ctx, "jordan", "jordan@example.com", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing password err = %v, want ErrInvalidInput", err)
	}
}

func TestProvisionGoogleCreatesPasswordlessAccount(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	user, err := svc.ProvisionGoogle(ctx, "Pat@Example.com", "Pat")
	if err != nil {
		t.Fatalf("ProvisionGoogle: %v", err)
	}
	if user.Email != "pat@example.com" || user.Username != "pat@example.com" {
		t.Fatalf("unexpected provisioned identity: %+v", user)
	}
	if user.PasswordHash != "" {
		t.Fatal("provisioned account should have no password")
	}

	// Second sign-in returns the same account.
	again, err := svc.ProvisionGoogle(ctx, "pat@example.com", "Pat")
	if err != nil {
		t.Fatalf("ProvisionGoogle again: %v", err)
	}
	if again.ID != user.ID {
		t.Fatalf("ProvisionGoogle returned new ID %q, want %q", again.ID, user.ID)
	}

	// Password login against a passwordless account is rejected.
	if _, err := svc.Authenticate(ctx, "pat@example.com", "anything"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Authenticate err = %v, want ErrInvalidCredentials", err)
	}
}
