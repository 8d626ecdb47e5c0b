package queue

import (
	"time"

	"github.com/google/uuid"
)

// EventsTopic is the queue all campaign lifecycle events are published to.
const EventsTopic = "campaign_events"

// Event actions.
const (
	ActionCampaignCreated  = "campaign.created"
	ActionStatusChanged    = "campaign.status_changed"
	ActionEmailRegenerated = "email.regenerated"
)

// Event is one campaign lifecycle occurrence. The worker turns these into
// activity-log rows.
type Event struct {
	ID          string    `json:"id"`
	Action      string    `json:"action"`
	UserID      int       `json:"user_id"`
	WorkspaceID int       `json:"workspace_id"`
	EntityType  string    `json:"entity_type"`
	EntityID    int       `json:"entity_id"`
	Metadata    string    `json:"metadata,omitempty"` // JSON string
	OccurredAt  time.Time `json:"occurred_at"`
}

// NewEvent stamps a fresh event with a unique ID and the current time.
func NewEvent(action string, userID, workspaceID int, entityType string, entityID int, metadata string) Event {
	return Event{
		ID:          uuid.NewString(),
		Action:      action,
		UserID:      userID,
		WorkspaceID: workspaceID,
		EntityType:  entityType,
		EntityID:    entityID,
		Metadata:    metadata,
		OccurredAt:  time.Now().UTC(),
	}
}
