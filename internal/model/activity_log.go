package model

import "time"

// ActivityLog is one audit-trail row, written by the worker from campaign
// lifecycle events.
type ActivityLog struct {
	ID          int       `db:"id" json:"id"`
	UserID      int       `db:"user_id" json:"user_id"`
	WorkspaceID int       `db:"workspace_id" json:"workspace_id"`
	Action      string    `db:"action" json:"action"`
	EntityType  string    `db:"entity_type" json:"entity_type"`
	EntityID    int       `db:"entity_id" json:"entity_id"`
	Metadata    string    `db:"metadata" json:"metadata,omitempty"` // JSON string
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
