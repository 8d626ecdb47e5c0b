package service

import (
	appErrors "github.com/clientforge/agencymail-backend/internal/errors"
	"github.com/clientforge/agencymail-backend/internal/model"
	"github.com/clientforge/agencymail-backend/internal/repository"
)

// requireMember checks that the user holds any role on the workspace.
// Authorization runs before any other work in every operation.
func requireMember(repo repository.WorkspaceRepositoryInterface, userID, workspaceID int) error {
	role, err := repo.GetUserRole(userID, workspaceID)
	if err != nil {
		return err
	}
	if role == "" {
		return appErrors.NewAccessDenied(userID, workspaceID)
	}
	return nil
}

// requireEditor checks for an editor or admin role on the workspace.
func requireEditor(repo repository.WorkspaceRepositoryInterface, userID, workspaceID int) error {
	role, err := repo.GetUserRole(userID, workspaceID)
	if err != nil {
		return err
	}
	if role != model.RoleAdmin && role != model.RoleEditor {
		return appErrors.NewAccessDenied(userID, workspaceID)
	}
	return nil
}
