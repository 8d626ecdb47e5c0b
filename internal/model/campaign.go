package model

import "time"

// Campaign statuses. Any status may follow any other; the only transition
// side effect is stamping StartDate on the first move to active.
const (
	StatusDraft     = "draft"
	StatusActive    = "active"
	StatusPaused    = "paused"
	StatusCompleted = "completed"
)

type Campaign struct {
	ID           int        `db:"id" json:"id"`
	WorkspaceID  int        `db:"workspace_id" json:"workspace_id"`
	Name         string     `db:"name" json:"name"`
	Description  string     `db:"description" json:"description,omitempty"`
	Status       string     `db:"status" json:"status"`
	SendInterval int        `db:"send_interval" json:"send_interval"` // days between emails
	StartDate    *time.Time `db:"start_date" json:"start_date,omitempty"`
	CreatedBy    int        `db:"created_by" json:"created_by"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// ValidStatus reports whether s is one of the four campaign statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusActive, StatusPaused, StatusCompleted:
		return true
	}
	return false
}
