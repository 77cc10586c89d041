package activity

import "time"

// Mode identifies which recorder produced an activity record.
type Mode string

const (
	ModeResume Mode = "RESUME"
	ModeEmail  Mode = "EMAIL"
	ModeUpload Mode = "UPLOAD"
)

// Record is one append-only tracker entry.
type Record struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Mode      Mode      `json:"mode"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    string    `json:"userId"`
}
