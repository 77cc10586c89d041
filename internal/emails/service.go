// Package emails records drafted outreach emails in the tracker.
package emails

import (
	"context"
	"fmt"

	"jobassist-backend/internal/activity"
)

// Service builds email records and appends them to the tracker.
type Service struct {
	Activity *activity.Service
}

func NewService(activitySvc *activity.Service) *Service {
	return &Service{Activity: activitySvc}
}

// Draft is the email form as submitted.
type Draft struct {
	JobTitle string
	Receiver string
	Sender   string
	Type     string
}

// Compose renders the email body stored in the tracker.
func (d Draft) Compose() string {
	return fmt.Sprintf("Subject: Regarding %s\n\nDear %s,\n\nThis is a %s email from %s.",
		d.JobTitle, d.Receiver, d.Type, d.Sender)
}

// Label returns the tracker label for the draft.
func (d Draft) Label() string {
	return "Mail: " + d.JobTitle
}

// Record appends an EMAIL entry for the draft.
func (s *Service) Record(ctx context.Context, userID string, draft Draft) (activity.Record, error) {
	return s.Activity.Append(ctx, userID, draft.Label(), activity.ModeEmail, draft.Compose())
}
