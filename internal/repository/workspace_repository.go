package repository

import (
	"database/sql"

	appErrors "github.com/clientforge/agencymail-backend/internal/errors"
	"github.com/clientforge/agencymail-backend/internal/model"
)

type WorkspaceRepositoryInterface interface {
	GetByID(id int) (*model.Workspace, error)
	Create(w *model.Workspace) error
	AddMember(m *model.WorkspaceMember) error

	// GetUserRole returns "" with no error when the user is not a member.
	GetUserRole(userID, workspaceID int) (string, error)
}

type WorkspaceRepository struct {
	DB *sql.DB
}

func (r *WorkspaceRepository) GetByID(id int) (*model.Workspace, error) {
	query := `
        SELECT id, name, description, industry, created_by, created_at, updated_at
        FROM workspaces WHERE id=$1
    `
	var w model.Workspace
	err := r.DB.QueryRow(query, id).Scan(&w.ID, &w.Name, &w.Description, &w.Industry, &w.CreatedBy, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewWorkspaceNotFound(id)
		}
		return nil, err
	}
	return &w, nil
}

func (r *WorkspaceRepository) Create(w *model.Workspace) error {
	query := `
        INSERT INTO workspaces (name, description, industry, created_by)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	return r.DB.QueryRow(query, w.Name, w.Description, w.Industry, w.CreatedBy).Scan(&w.ID, &w.CreatedAt)
}

func (r *WorkspaceRepository) AddMember(m *model.WorkspaceMember) error {
	if m.Role == "" {
		m.Role = model.RoleViewer
	}
	query := `
        INSERT INTO workspace_members (user_id, workspace_id, role)
        VALUES ($1, $2, $3)
        RETURNING id, joined_at
    `
	return r.DB.QueryRow(query, m.UserID, m.WorkspaceID, m.Role).Scan(&m.ID, &m.JoinedAt)
}

func (r *WorkspaceRepository) GetUserRole(userID, workspaceID int) (string, error) {
	query := `SELECT role FROM workspace_members WHERE user_id=$1 AND workspace_id=$2`
	var role string
	err := r.DB.QueryRow(query, userID, workspaceID).Scan(&role)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil // not a member
		}
		return "", err
	}
	return role, nil
}

var _ WorkspaceRepositoryInterface = (*WorkspaceRepository)(nil)
