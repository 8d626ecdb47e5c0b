package repository

import (
	"database/sql"
	"fmt"

	"github.com/clientforge/agencymail-backend/internal/model"
)

type EmailRepositoryInterface interface {
	// CreateBatch inserts all emails in one transaction; either every row is
	// written or none is.
	CreateBatch(campaignID int, emails []*model.Email) error
	ListByCampaign(campaignID int) ([]*model.Email, error)
	// GetByID returns (nil, nil) when the email does not exist.
	GetByID(id int) (*model.Email, error)
	Update(id int, update model.EmailUpdate) error
	ReplaceContent(id int, subject, bodyHTML, bodyText, previewText string) error
}

type EmailRepository struct {
	DB *sql.DB
}

func (r *EmailRepository) CreateBatch(campaignID int, emails []*model.Email) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
        INSERT INTO emails (campaign_id, sequence_number, subject, body_html, body_text, preview_text)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	for _, e := range emails {
		e.CampaignID = campaignID
		if err := tx.QueryRow(query, campaignID, e.SequenceNumber, e.Subject, e.BodyHTML, e.BodyText, e.PreviewText).
			Scan(&e.ID, &e.CreatedAt); err != nil {
			return fmt.Errorf("insert email %d: %w", e.SequenceNumber, err)
		}
	}
	return tx.Commit()
}

func (r *EmailRepository) ListByCampaign(campaignID int) ([]*model.Email, error) {
	query := `
        SELECT id, campaign_id, sequence_number, subject, body_html, body_text, preview_text,
               created_at, updated_at
        FROM emails WHERE campaign_id=$1 ORDER BY sequence_number ASC
    `
	rows, err := r.DB.Query(query, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	emails := []*model.Email{}
	for rows.Next() {
		e := &model.Email{}
		if err := rows.Scan(
			&e.ID, &e.CampaignID, &e.SequenceNumber, &e.Subject, &e.BodyHTML, &e.BodyText,
			&e.PreviewText, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		emails = append(emails, e)
	}
	return emails, rows.Err()
}

func (r *EmailRepository) GetByID(id int) (*model.Email, error) {
	query := `
        SELECT id, campaign_id, sequence_number, subject, body_html, body_text, preview_text,
               created_at, updated_at
        FROM emails WHERE id=$1
    `
	var e model.Email
	err := r.DB.QueryRow(query, id).Scan(
		&e.ID, &e.CampaignID, &e.SequenceNumber, &e.Subject, &e.BodyHTML, &e.BodyText,
		&e.PreviewText, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *EmailRepository) Update(id int, update model.EmailUpdate) error {
	query := `
        UPDATE emails
        SET subject      = COALESCE($1, subject),
            body_html    = COALESCE($2, body_html),
            body_text    = COALESCE($3, body_text),
            preview_text = COALESCE($4, preview_text),
            updated_at   = NOW()
        WHERE id=$5
    `
	_, err := r.DB.Exec(query, update.Subject, update.BodyHTML, update.BodyText, update.PreviewText, id)
	return err
}

// ReplaceContent overwrites the generated fields in place. The row keeps its
// id and sequence_number.
func (r *EmailRepository) ReplaceContent(id int, subject, bodyHTML, bodyText, previewText string) error {
	query := `
        UPDATE emails
        SET subject=$1, body_html=$2, body_text=$3, preview_text=$4, updated_at=NOW()
        WHERE id=$5
    `
	_, err := r.DB.Exec(query, subject, bodyHTML, bodyText, previewText, id)
	return err
}

var _ EmailRepositoryInterface = (*EmailRepository)(nil)
