package model

import "time"

// KnowledgeBase holds the client information a workspace's campaigns are
// generated from. One row per workspace, created lazily on first access.
// All text fields are optional free text.
type KnowledgeBase struct {
	ID              int        `db:"id" json:"id"`
	WorkspaceID     int        `db:"workspace_id" json:"workspace_id"`
	ToneOfVoice     string     `db:"tone_of_voice" json:"tone_of_voice"`
	Products        string     `db:"products" json:"products"`
	Services        string     `db:"services" json:"services"`
	BusinessContext string     `db:"business_context" json:"business_context"`
	TargetAudience  string     `db:"target_audience" json:"target_audience"`
	CampaignGoals   string     `db:"campaign_goals" json:"campaign_goals"`
	AdditionalInfo  string     `db:"additional_info" json:"additional_info"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// KnowledgeBaseUpdate carries a partial update; nil fields are left unchanged.
type KnowledgeBaseUpdate struct {
	ToneOfVoice     *string `json:"tone_of_voice"`
	Products        *string `json:"products"`
	Services        *string `json:"services"`
	BusinessContext *string `json:"business_context"`
	TargetAudience  *string `json:"target_audience"`
	CampaignGoals   *string `json:"campaign_goals"`
	AdditionalInfo  *string `json:"additional_info"`
}
