package repository

import (
	"database/sql"

	"github.com/clientforge/agencymail-backend/internal/model"
)

type KnowledgeBaseRepositoryInterface interface {
	// GetByWorkspace returns (nil, nil) when the workspace has no knowledge
	// base yet.
	GetByWorkspace(workspaceID int) (*model.KnowledgeBase, error)
	Create(kb *model.KnowledgeBase) error
	Update(id int, update model.KnowledgeBaseUpdate) error
}

type KnowledgeBaseRepository struct {
	DB *sql.DB
}

func (r *KnowledgeBaseRepository) GetByWorkspace(workspaceID int) (*model.KnowledgeBase, error) {
	query := `
        SELECT id, workspace_id, tone_of_voice, products, services,
               business_context, target_audience, campaign_goals, additional_info,
               created_at, updated_at
        FROM knowledge_base WHERE workspace_id=$1
    `
	var kb model.KnowledgeBase
	err := r.DB.QueryRow(query, workspaceID).Scan(
		&kb.ID, &kb.WorkspaceID, &kb.ToneOfVoice, &kb.Products, &kb.Services,
		&kb.BusinessContext, &kb.TargetAudience, &kb.CampaignGoals, &kb.AdditionalInfo,
		&kb.CreatedAt, &kb.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &kb, nil
}

func (r *KnowledgeBaseRepository) Create(kb *model.KnowledgeBase) error {
	query := `
        INSERT INTO knowledge_base
            (workspace_id, tone_of_voice, products, services, business_context,
             target_audience, campaign_goals, additional_info)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at
    `
	return r.DB.QueryRow(query,
		kb.WorkspaceID, kb.ToneOfVoice, kb.Products, kb.Services, kb.BusinessContext,
		kb.TargetAudience, kb.CampaignGoals, kb.AdditionalInfo,
	).Scan(&kb.ID, &kb.CreatedAt)
}

// Update applies only the fields present in the update. COALESCE leaves a
// column untouched when the matching parameter is NULL.
func (r *KnowledgeBaseRepository) Update(id int, update model.KnowledgeBaseUpdate) error {
	query := `
        UPDATE knowledge_base
        SET tone_of_voice    = COALESCE($1, tone_of_voice),
            products         = COALESCE($2, products),
            services         = COALESCE($3, services),
            business_context = COALESCE($4, business_context),
            target_audience  = COALESCE($5, target_audience),
            campaign_goals   = COALESCE($6, campaign_goals),
            additional_info  = COALESCE($7, additional_info),
            updated_at       = NOW()
        WHERE id=$8
    `
	_, err := r.DB.Exec(query,
		update.ToneOfVoice, update.Products, update.Services, update.BusinessContext,
		update.TargetAudience, update.CampaignGoals, update.AdditionalInfo, id,
	)
	return err
}

var _ KnowledgeBaseRepositoryInterface = (*KnowledgeBaseRepository)(nil)
