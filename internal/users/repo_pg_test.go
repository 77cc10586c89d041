package users

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestPGRepoCreateInsertsUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	user := User{
		ID:           "user-1",
		Username:     "jordan",
		Email:        "jordan@example.com",
		PasswordHash: "$argon2id$hash",
		CreatedAt:    time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(
			user.ID,
			user.Username,
			user.Email,
			sql.NullString{String: user.PasswordHash, Valid: true},
			user.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoCreateMapsUniqueViolations(t *testing.T) {
	cases := []struct {
		name       string
		constraint string
		want       error
	}{
		{name: "email", constraint: "users_email_unique", want: ErrDuplicateEmail},
		{name: "username", constraint: "users_username_unique", want: ErrDuplicateUsername},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			if err != nil {
				t.Fatalf("sqlmock.New: %v", err)
			}
			t.Cleanup(func() { _ = db.Close() })

			mock.ExpectExec("INSERT INTO users").
				WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: tc.constraint})

			repo := &PGRepo{DB: db}
			err = repo.Create(context.Background(), User{ID: "user-1", Username: "jordan", Email: "jordan@example.com"})
			if !errors.Is(err, tc.want) {
				t.Fatalf("Create err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestPGRepoGetByEmailNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT id, username, email, password_hash, created_at").
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	repo := &PGRepo{DB: db}
	if _, err := repo.GetByEmail(context.Background(), "nobody@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetByEmail err = %v, want ErrNotFound", err)
	}
}

func TestPGRepoExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT 1 FROM users").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectQuery("SELECT 1 FROM users").
		WithArgs("user-2").
		WillReturnError(sql.ErrNoRows)

	repo := &PGRepo{DB: db}
	ok, err := repo.Exists(context.Background(), "user-1")
	if err != nil || !ok {
		t.Fatalf("Exists(user-1) = %v, %v, want true", ok, err)
	}
	ok, err = repo.Exists(context.Background(), "user-2")
	if err != nil || ok {
		t.Fatalf("Exists(user-2) = %v, %v, want false", ok, err)
	}
}
