package users

import "context"

// Repo defines persistence operations for user identities. Users are created on
// signup and never mutated or deleted afterwards.
type Repo interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, userID string) (User, error)
	Exists(ctx context.Context, userID string) (bool, error)
}
