package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkspaceRepositoryGetUserRole(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT role FROM workspace_members`).
		WithArgs(1, 10).
		WillReturnRows(sqlmock.NewRows([]string{"role"}).AddRow("editor"))

	repo := &WorkspaceRepository{DB: db}
	role, err := repo.GetUserRole(1, 10)

	require.NoError(t, err)
	assert.Equal(t, "editor", role)
}

func TestWorkspaceRepositoryGetUserRoleNonMember(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT role FROM workspace_members`).
		WithArgs(99, 10).
		WillReturnRows(sqlmock.NewRows([]string{"role"}))

	repo := &WorkspaceRepository{DB: db}
	role, err := repo.GetUserRole(99, 10)

	require.NoError(t, err)
	assert.Equal(t, "", role)
}
