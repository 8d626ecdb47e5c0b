package service

import (
	"github.com/clientforge/agencymail-backend/internal/model"
	"github.com/clientforge/agencymail-backend/internal/repository"
)

// KnowledgeBaseService manages the one-per-workspace client profile.
type KnowledgeBaseService struct {
	WorkspaceRepo repository.WorkspaceRepositoryInterface
	KnowledgeRepo repository.KnowledgeBaseRepositoryInterface
}

// GetOrCreate returns the workspace's knowledge base, materializing an empty
// one on first access.
func (s *KnowledgeBaseService) GetOrCreate(userID, workspaceID int) (*model.KnowledgeBase, error) {
	if err := requireMember(s.WorkspaceRepo, userID, workspaceID); err != nil {
		return nil, err
	}

	kb, err := s.KnowledgeRepo.GetByWorkspace(workspaceID)
	if err != nil {
		return nil, err
	}
	if kb == nil {
		kb = &model.KnowledgeBase{WorkspaceID: workspaceID}
		if err := s.KnowledgeRepo.Create(kb); err != nil {
			return nil, err
		}
	}
	return kb, nil
}

// Update applies a partial update, creating the knowledge base first if the
// workspace has none yet.
func (s *KnowledgeBaseService) Update(userID, workspaceID int, update model.KnowledgeBaseUpdate) error {
	if err := requireEditor(s.WorkspaceRepo, userID, workspaceID); err != nil {
		return err
	}

	kb, err := s.KnowledgeRepo.GetByWorkspace(workspaceID)
	if err != nil {
		return err
	}

	if kb == nil {
		kb = &model.KnowledgeBase{WorkspaceID: workspaceID}
		applyUpdate(kb, update)
		return s.KnowledgeRepo.Create(kb)
	}
	return s.KnowledgeRepo.Update(kb.ID, update)
}

func applyUpdate(kb *model.KnowledgeBase, update model.KnowledgeBaseUpdate) {
	if update.ToneOfVoice != nil {
		kb.ToneOfVoice = *update.ToneOfVoice
	}
	if update.Products != nil {
		kb.Products = *update.Products
	}
	if update.Services != nil {
		kb.Services = *update.Services
	}
	if update.BusinessContext != nil {
		kb.BusinessContext = *update.BusinessContext
	}
	if update.TargetAudience != nil {
		kb.TargetAudience = *update.TargetAudience
	}
	if update.CampaignGoals != nil {
		kb.CampaignGoals = *update.CampaignGoals
	}
	if update.AdditionalInfo != nil {
		kb.AdditionalInfo = *update.AdditionalInfo
	}
}
