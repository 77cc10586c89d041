package activity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestPGRepoAppendInsertsRecord(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	record := Record{
		ID:        "rec-1",
		Label:     "Backend Engineer",
		Mode:      ModeResume,
		Content:   "Resume for jordan. Summary: ships Go.",
		CreatedAt: time.Now().UTC(),
		UserID:    "user-1",
	}

	mock.ExpectExec("INSERT INTO activity_records").
		WithArgs(
			record.ID,
			record.Label,
			string(record.Mode),
			record.Content,
			record.CreatedAt,
			record.UserID,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Append(context.Background(), record); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoAppendMapsForeignKeyViolation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectExec("INSERT INTO activity_records").
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "activity_records_user_id_fkey"})

	repo := &PGRepo{DB: db}
	err = repo.Append(context.Background(), Record{ID: "rec-1", UserID: "ghost"})
	if !errors.Is(err, ErrUnknownUser) {
		t.Fatalf("Append err = %v, want ErrUnknownUser", err)
	}
}

func TestPGRepoListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "label", "mode", "content", "created_at", "user_id"}).
		AddRow("rec-2", "Mail: SRE", "EMAIL", "Subject: ...", now, "user-1").
		AddRow("rec-1", "resume.pdf", "UPLOAD", "File Uploaded to Server", now.Add(-time.Minute), "user-1")

	mock.ExpectQuery("SELECT id, label, mode, content, created_at, user_id").
		WithArgs("user-1").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	records, err := repo.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[0].Mode != ModeEmail || records[1].Mode != ModeUpload {
		t.Fatalf("unexpected modes: %s, %s", records[0].Mode, records[1].Mode)
	}
}
