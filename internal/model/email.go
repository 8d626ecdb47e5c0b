package model

import "time"

// Email is one position in a campaign's ten-email sequence.
type Email struct {
	ID             int        `db:"id" json:"id"`
	CampaignID     int        `db:"campaign_id" json:"campaign_id"`
	SequenceNumber int        `db:"sequence_number" json:"sequence_number"` // 1-10
	Subject        string     `db:"subject" json:"subject"`
	BodyHTML       string     `db:"body_html" json:"body_html"`
	BodyText       string     `db:"body_text" json:"body_text"`
	PreviewText    string     `db:"preview_text" json:"preview_text"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// EmailUpdate carries a partial content update; nil fields are left unchanged.
// SequenceNumber is deliberately not updatable.
type EmailUpdate struct {
	Subject     *string `json:"subject"`
	BodyHTML    *string `json:"body_html"`
	BodyText    *string `json:"body_text"`
	PreviewText *string `json:"preview_text"`
}
