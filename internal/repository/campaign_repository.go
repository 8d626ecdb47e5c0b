package repository

import (
	"database/sql"
	"time"

	appErrors "github.com/clientforge/agencymail-backend/internal/errors"
	"github.com/clientforge/agencymail-backend/internal/model"
)

type CampaignRepositoryInterface interface {
	Create(c *model.Campaign) error
	GetByID(id int) (*model.Campaign, error)
	ListByWorkspace(workspaceID int) ([]*model.Campaign, error)
	UpdateStatus(campaignID int, status string, startDate *time.Time) error
}

type CampaignRepository struct {
	DB *sql.DB
}

func (r *CampaignRepository) Create(c *model.Campaign) error {
	if c.Status == "" {
		c.Status = model.StatusDraft
	}
	if c.SendInterval == 0 {
		c.SendInterval = 3
	}
	query := `
        INSERT INTO campaigns (workspace_id, name, description, status, send_interval, created_by)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	return r.DB.QueryRow(query, c.WorkspaceID, c.Name, c.Description, c.Status, c.SendInterval, c.CreatedBy).
		Scan(&c.ID, &c.CreatedAt)
}

func (r *CampaignRepository) GetByID(id int) (*model.Campaign, error) {
	query := `
        SELECT id, workspace_id, name, description, status, send_interval,
               start_date, created_by, created_at, updated_at
        FROM campaigns WHERE id=$1
    `
	var c model.Campaign
	err := r.DB.QueryRow(query, id).Scan(
		&c.ID, &c.WorkspaceID, &c.Name, &c.Description, &c.Status, &c.SendInterval,
		&c.StartDate, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewCampaignNotFound(id)
		}
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepository) ListByWorkspace(workspaceID int) ([]*model.Campaign, error) {
	query := `
        SELECT id, workspace_id, name, description, status, send_interval,
               start_date, created_by, created_at, updated_at
        FROM campaigns WHERE workspace_id=$1 ORDER BY id DESC
    `
	rows, err := r.DB.Query(query, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campaigns := []*model.Campaign{}
	for rows.Next() {
		c := &model.Campaign{}
		if err := rows.Scan(
			&c.ID, &c.WorkspaceID, &c.Name, &c.Description, &c.Status, &c.SendInterval,
			&c.StartDate, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

// UpdateStatus writes the new status and, when startDate is non-nil, stamps
// the start date. Callers pass startDate only on the first activation.
func (r *CampaignRepository) UpdateStatus(campaignID int, status string, startDate *time.Time) error {
	if startDate != nil {
		query := `UPDATE campaigns SET status=$1, start_date=$2, updated_at=NOW() WHERE id=$3`
		_, err := r.DB.Exec(query, status, startDate, campaignID)
		return err
	}
	query := `UPDATE campaigns SET status=$1, updated_at=NOW() WHERE id=$2`
	_, err := r.DB.Exec(query, status, campaignID)
	return err
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
