package activity

import "context"

// Repo persists activity records. Records are append-only; there is no
// update or delete.
type Repo interface {
	Append(ctx context.Context, record Record) error
	ListByUser(ctx context.Context, userID string) ([]Record, error)
}
