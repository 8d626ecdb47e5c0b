package service

import (
	"github.com/clientforge/agencymail-backend/internal/model"
	"github.com/clientforge/agencymail-backend/internal/queue"
	"github.com/clientforge/agencymail-backend/internal/repository"
)

// ActivityService writes and reads the audit trail.
type ActivityService struct {
	WorkspaceRepo repository.WorkspaceRepositoryInterface
	ActivityRepo  repository.ActivityLogRepositoryInterface
}

// Record stores one lifecycle event as an activity-log row. No authorization;
// callers are event consumers, not users.
func (s *ActivityService) Record(event queue.Event) error {
	return s.ActivityRepo.Create(&model.ActivityLog{
		UserID:      event.UserID,
		WorkspaceID: event.WorkspaceID,
		Action:      event.Action,
		EntityType:  event.EntityType,
		EntityID:    event.EntityID,
		Metadata:    event.Metadata,
	})
}

// List returns the workspace's most recent activity, newest first. Any
// workspace role suffices.
func (s *ActivityService) List(userID, workspaceID, limit int) ([]*model.ActivityLog, error) {
	if err := requireMember(s.WorkspaceRepo, userID, workspaceID); err != nil {
		return nil, err
	}
	return s.ActivityRepo.ListByWorkspace(workspaceID, limit)
}
