package model

import "time"

// ScheduledEmail is a planned send of one campaign email. Rows are
// materialized when a campaign first becomes active; this service only
// persists them, delivery happens elsewhere.
type ScheduledEmail struct {
	ID           int        `db:"id" json:"id"`
	EmailID      int        `db:"email_id" json:"email_id"`
	CampaignID   int        `db:"campaign_id" json:"campaign_id"`
	WorkspaceID  int        `db:"workspace_id" json:"workspace_id"`
	ScheduledFor time.Time  `db:"scheduled_for" json:"scheduled_for"`
	SentAt       *time.Time `db:"sent_at" json:"sent_at,omitempty"`
	Status       string     `db:"status" json:"status"` // pending, sent, failed, cancelled
	ErrorMessage string     `db:"error_message" json:"error_message,omitempty"`
	RetryCount   int        `db:"retry_count" json:"retry_count"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

// EmailMetric tracks engagement per scheduled email. Persisted state only.
type EmailMetric struct {
	ID               int        `db:"id" json:"id"`
	ScheduledEmailID int        `db:"scheduled_email_id" json:"scheduled_email_id"`
	EmailID          int        `db:"email_id" json:"email_id"`
	CampaignID       int        `db:"campaign_id" json:"campaign_id"`
	WorkspaceID      int        `db:"workspace_id" json:"workspace_id"`
	Opens            int        `db:"opens" json:"opens"`
	Clicks           int        `db:"clicks" json:"clicks"`
	Conversions      int        `db:"conversions" json:"conversions"`
	FirstOpenedAt    *time.Time `db:"first_opened_at" json:"first_opened_at,omitempty"`
	LastOpenedAt     *time.Time `db:"last_opened_at" json:"last_opened_at,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
