package activity

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Append inserts a record. A foreign key violation on user_id is mapped to
// ErrUnknownUser.
func (r *PGRepo) Append(ctx context.Context, record Record) error {
	const query = `
INSERT INTO activity_records (id, label, mode, content, created_at, user_id)
VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.DB.ExecContext(ctx, query,
		record.ID,
		record.Label,
		string(record.Mode),
		record.Content,
		record.CreatedAt,
		record.UserID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrUnknownUser
		}
		return err
	}
	return nil
}

// ListByUser returns the user's records newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Record, error) {
	const query = `
SELECT id, label, mode, content, created_at, user_id
FROM activity_records
WHERE user_id = $1
ORDER BY created_at DESC, id DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var record Record
		var mode string
		if err := rows.Scan(
			&record.ID,
			&record.Label,
			&mode,
			&record.Content,
			&record.CreatedAt,
			&record.UserID,
		); err != nil {
			return nil, err
		}
		record.Mode = Mode(mode)
		records = append(records, record)
	}
	return records, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
