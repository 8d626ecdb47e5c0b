package repository

import (
	"database/sql"

	"github.com/clientforge/agencymail-backend/internal/model"
)

type ActivityLogRepositoryInterface interface {
	Create(entry *model.ActivityLog) error
	ListByWorkspace(workspaceID, limit int) ([]*model.ActivityLog, error)
}

type ActivityLogRepository struct {
	DB *sql.DB
}

func (r *ActivityLogRepository) Create(entry *model.ActivityLog) error {
	query := `
        INSERT INTO activity_logs (user_id, workspace_id, action, entity_type, entity_id, metadata)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	return r.DB.QueryRow(query,
		entry.UserID, entry.WorkspaceID, entry.Action, entry.EntityType, entry.EntityID, entry.Metadata,
	).Scan(&entry.ID, &entry.CreatedAt)
}

func (r *ActivityLogRepository) ListByWorkspace(workspaceID, limit int) ([]*model.ActivityLog, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
        SELECT id, user_id, workspace_id, action, entity_type, entity_id, metadata, created_at
        FROM activity_logs WHERE workspace_id=$1 ORDER BY id DESC LIMIT $2
    `
	rows, err := r.DB.Query(query, workspaceID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*model.ActivityLog{}
	for rows.Next() {
		e := &model.ActivityLog{}
		if err := rows.Scan(&e.ID, &e.UserID, &e.WorkspaceID, &e.Action, &e.EntityType, &e.EntityID, &e.Metadata, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

var _ ActivityLogRepositoryInterface = (*ActivityLogRepository)(nil)
