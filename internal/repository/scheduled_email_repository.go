package repository

import (
	"database/sql"

	"github.com/clientforge/agencymail-backend/internal/model"
)

type ScheduledEmailRepositoryInterface interface {
	CreateBatch(schedules []*model.ScheduledEmail) error
	ListByCampaign(campaignID int) ([]*model.ScheduledEmail, error)
}

type ScheduledEmailRepository struct {
	DB *sql.DB
}

func (r *ScheduledEmailRepository) CreateBatch(schedules []*model.ScheduledEmail) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
        INSERT INTO scheduled_emails (email_id, campaign_id, workspace_id, scheduled_for, status)
        VALUES ($1, $2, $3, $4, 'pending')
        RETURNING id, created_at
    `
	for _, s := range schedules {
		s.Status = "pending"
		if err := tx.QueryRow(query, s.EmailID, s.CampaignID, s.WorkspaceID, s.ScheduledFor).
			Scan(&s.ID, &s.CreatedAt); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *ScheduledEmailRepository) ListByCampaign(campaignID int) ([]*model.ScheduledEmail, error) {
	query := `
        SELECT id, email_id, campaign_id, workspace_id, scheduled_for, sent_at,
               status, error_message, retry_count, created_at
        FROM scheduled_emails WHERE campaign_id=$1 ORDER BY scheduled_for ASC
    `
	rows, err := r.DB.Query(query, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schedules := []*model.ScheduledEmail{}
	for rows.Next() {
		s := &model.ScheduledEmail{}
		if err := rows.Scan(
			&s.ID, &s.EmailID, &s.CampaignID, &s.WorkspaceID, &s.ScheduledFor, &s.SentAt,
			&s.Status, &s.ErrorMessage, &s.RetryCount, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

var _ ScheduledEmailRepositoryInterface = (*ScheduledEmailRepository)(nil)
