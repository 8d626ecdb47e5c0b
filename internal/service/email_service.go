package service

import (
	"context"
	"fmt"
	"log"

	appErrors "github.com/clientforge/agencymail-backend/internal/errors"
	"github.com/clientforge/agencymail-backend/internal/model"
	"github.com/clientforge/agencymail-backend/internal/queue"
	"github.com/clientforge/agencymail-backend/internal/repository"
)

// EmailService owns per-email mutations: manual content edits and in-place
// AI regeneration.
type EmailService struct {
	WorkspaceRepo repository.WorkspaceRepositoryInterface
	KnowledgeRepo repository.KnowledgeBaseRepositoryInterface
	CampaignRepo  repository.CampaignRepositoryInterface
	EmailRepo     repository.EmailRepositoryInterface
	Generator     SequenceGenerator
	Queue         queue.Queue
}

// UpdateEmail applies a partial content update. Fields absent from the
// request keep their prior values; id and sequence number never change.
func (s *EmailService) UpdateEmail(userID, emailID int, update model.EmailUpdate) error {
	email, err := s.EmailRepo.GetByID(emailID)
	if err != nil {
		return err
	}
	if email == nil {
		return appErrors.NewEmailNotFound(emailID)
	}

	campaign, err := s.CampaignRepo.GetByID(email.CampaignID)
	if err != nil {
		return err
	}
	if err := requireEditor(s.WorkspaceRepo, userID, campaign.WorkspaceID); err != nil {
		return err
	}

	return s.EmailRepo.Update(emailID, update)
}

// RegenerateEmail replaces one email's generated content in place, feeding
// the model the plain-text bodies of the sequence neighbors when they exist.
// The row keeps its id and sequence number.
func (s *EmailService) RegenerateEmail(ctx context.Context, userID, emailID, campaignID int) (*GeneratedEmail, error) {
	campaign, err := s.CampaignRepo.GetByID(campaignID)
	if err != nil {
		return nil, err
	}
	if err := requireEditor(s.WorkspaceRepo, userID, campaign.WorkspaceID); err != nil {
		return nil, err
	}

	kb, err := s.KnowledgeRepo.GetByWorkspace(campaign.WorkspaceID)
	if err != nil {
		return nil, err
	}
	if kb == nil {
		return nil, appErrors.NewKnowledgeBaseMissing(campaign.WorkspaceID)
	}

	emails, err := s.EmailRepo.ListByCampaign(campaignID)
	if err != nil {
		return nil, err
	}

	var target *model.Email
	for _, e := range emails {
		if e.ID == emailID {
			target = e
			break
		}
	}
	if target == nil {
		return nil, appErrors.NewEmailNotFound(emailID)
	}

	// Absent neighbors contribute no context at all.
	var previousBody, nextBody string
	for _, e := range emails {
		switch e.SequenceNumber {
		case target.SequenceNumber - 1:
			previousBody = e.BodyText
		case target.SequenceNumber + 1:
			nextBody = e.BodyText
		}
	}

	regenerated, err := s.Generator.RegenerateSingle(ctx, kb, target.SequenceNumber, previousBody, nextBody)
	if err != nil {
		return nil, err
	}

	if err := s.EmailRepo.ReplaceContent(target.ID, regenerated.Subject, regenerated.BodyHTML, regenerated.BodyText, regenerated.PreviewText); err != nil {
		return nil, err
	}

	if s.Queue != nil {
		event := queue.NewEvent(queue.ActionEmailRegenerated, userID, campaign.WorkspaceID,
			"email", target.ID, fmt.Sprintf(`{"sequence_number":%d}`, target.SequenceNumber))
		if err := s.Queue.Publish(queue.EventsTopic, event); err != nil {
			log.Println("failed to publish email event:", err)
		}
	}

	return regenerated, nil
}
