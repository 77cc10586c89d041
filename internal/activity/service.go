package activity

import (
	"context"
	"time"

	"github.com/google/uuid"

	"jobassist-backend/internal/shared/metrics"
	"jobassist-backend/internal/users"
)

// Service appends tracker records and serves the per-user history.
type Service struct {
	Repo  Repo
	Users *users.Service
}

func NewService(repo Repo, userSvc *users.Service) *Service {
	return &Service{Repo: repo, Users: userSvc}
}

// Append validates the record against the identity store, stamps it and
// persists it. The stored record is returned. Labels and mode tags are stored
// as supplied; once the user exists the append succeeds.
func (s *Service) Append(ctx context.Context, userID, label string, mode Mode, content string) (Record, error) {
	exists, err := s.Users.Exists(ctx, userID)
	if err != nil {
		return Record{}, err
	}
	if !exists {
		return Record{}, ErrUnknownUser
	}

	record := Record{
		ID:        uuid.New().String(),
		Label:     label,
		Mode:      mode,
		Content:   content,
		CreatedAt: time.Now().UTC(),
		UserID:    userID,
	}
	if err := s.Repo.Append(ctx, record); err != nil {
		return Record{}, err
	}

	metrics.IncRecordAppended(string(mode))
	return record, nil
}

// ListForUser returns the user's records newest first.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]Record, error) {
	exists, err := s.Users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUnknownUser
	}
	return s.Repo.ListByUser(ctx, userID)
}
