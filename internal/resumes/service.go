// Package resumes records resume drafting activity in the tracker.
package resumes

import (
	"context"
	"fmt"
	"strings"

	"jobassist-backend/internal/activity"
)

// DefaultTitle is used when the submitted resume has no job title.
const DefaultTitle = "Untitled Resume"

// Service builds resume records and appends them to the tracker.
type Service struct {
	Activity *activity.Service
}

func NewService(activitySvc *activity.Service) *Service {
	return &Service{Activity: activitySvc}
}

// Draft is the resume form as submitted.
type Draft struct {
	Title   string
	Name    string
	Summary string
}

// Compose renders the tracker content for a draft.
func (d Draft) Compose() string {
	return fmt.Sprintf("Resume for %s. Summary: %s", d.Name, d.Summary)
}

// Label returns the tracker label, falling back to DefaultTitle.
func (d Draft) Label() string {
	if title := strings.TrimSpace(d.Title); title != "" {
		return title
	}
	return DefaultTitle
}

// Record appends a RESUME entry for the draft.
func (s *Service) Record(ctx context.Context, userID string, draft Draft) (activity.Record, error) {
	return s.Activity.Append(ctx, userID, draft.Label(), activity.ModeResume, draft.Compose())
}
