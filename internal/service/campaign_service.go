package service

import (
	"context"
	"fmt"
	"log"
	"time"

	appErrors "github.com/clientforge/agencymail-backend/internal/errors"
	"github.com/clientforge/agencymail-backend/internal/model"
	"github.com/clientforge/agencymail-backend/internal/queue"
	"github.com/clientforge/agencymail-backend/internal/repository"
)

// SequenceGenerator is what the lifecycle manager needs from the generation
// side. *EmailGenerator satisfies it.
type SequenceGenerator interface {
	GenerateSequence(ctx context.Context, kb *model.KnowledgeBase, campaignName string) ([]GeneratedEmail, error)
	RegenerateSingle(ctx context.Context, kb *model.KnowledgeBase, sequenceNumber int, previousBody, nextBody string) (*GeneratedEmail, error)
}

type CampaignService struct {
	WorkspaceRepo repository.WorkspaceRepositoryInterface
	KnowledgeRepo repository.KnowledgeBaseRepositoryInterface
	CampaignRepo  repository.CampaignRepositoryInterface
	EmailRepo     repository.EmailRepositoryInterface
	ScheduleRepo  repository.ScheduledEmailRepositoryInterface
	Generator     SequenceGenerator
	Queue         queue.Queue
}

type CreateCampaignInput struct {
	WorkspaceID    int
	Name           string
	Description    string
	SendInterval   int
	GenerateEmails bool
}

// CreateCampaign persists a draft campaign and, when requested, generates and
// stores its ten-email sequence. A generation failure leaves the campaign row
// in draft with zero emails; the error propagates to the caller.
func (s *CampaignService) CreateCampaign(ctx context.Context, userID int, input CreateCampaignInput) (*model.Campaign, error) {
	if err := requireEditor(s.WorkspaceRepo, userID, input.WorkspaceID); err != nil {
		return nil, err
	}

	if len(input.Name) == 0 || len(input.Name) > 255 {
		return nil, appErrors.NewInvalidInput("campaign name must be between 1 and 255 characters")
	}
	if input.SendInterval <= 0 {
		return nil, appErrors.NewInvalidInput("send interval must be a positive number of days")
	}

	campaign := &model.Campaign{
		WorkspaceID:  input.WorkspaceID,
		Name:         input.Name,
		Description:  input.Description,
		SendInterval: input.SendInterval,
		Status:       model.StatusDraft,
		CreatedBy:    userID,
	}
	if err := s.CampaignRepo.Create(campaign); err != nil {
		return nil, err
	}

	if input.GenerateEmails {
		kb, err := s.KnowledgeRepo.GetByWorkspace(input.WorkspaceID)
		if err != nil {
			return nil, err
		}
		if kb == nil {
			return nil, appErrors.NewKnowledgeBaseMissing(input.WorkspaceID)
		}

		generated, err := s.Generator.GenerateSequence(ctx, kb, campaign.Name)
		if err != nil {
			return nil, err
		}

		emails := make([]*model.Email, len(generated))
		for i, g := range generated {
			emails[i] = &model.Email{
				CampaignID:     campaign.ID,
				SequenceNumber: g.SequenceNumber,
				Subject:        g.Subject,
				BodyHTML:       g.BodyHTML,
				BodyText:       g.BodyText,
				PreviewText:    g.PreviewText,
			}
		}
		if err := s.EmailRepo.CreateBatch(campaign.ID, emails); err != nil {
			return nil, err
		}
	}

	s.publish(queue.NewEvent(queue.ActionCampaignCreated, userID, campaign.WorkspaceID,
		"campaign", campaign.ID, fmt.Sprintf(`{"name":%q}`, campaign.Name)))

	return campaign, nil
}

// GetCampaignDetail returns a campaign with its emails ordered by sequence
// number. Any workspace role suffices.
func (s *CampaignService) GetCampaignDetail(userID, campaignID int) (*model.Campaign, []*model.Email, error) {
	campaign, err := s.CampaignRepo.GetByID(campaignID)
	if err != nil {
		return nil, nil, err
	}
	if err := requireMember(s.WorkspaceRepo, userID, campaign.WorkspaceID); err != nil {
		return nil, nil, err
	}

	emails, err := s.EmailRepo.ListByCampaign(campaignID)
	if err != nil {
		return nil, nil, err
	}
	return campaign, emails, nil
}

// ListCampaigns returns the workspace's campaigns, newest first.
func (s *CampaignService) ListCampaigns(userID, workspaceID int) ([]*model.Campaign, error) {
	if err := requireMember(s.WorkspaceRepo, userID, workspaceID); err != nil {
		return nil, err
	}
	return s.CampaignRepo.ListByWorkspace(workspaceID)
}

// UpdateStatus moves a campaign to any of the four statuses; no transition
// graph is enforced. The start date is stamped exactly once, on the first
// move to active, and the send schedule is materialized at that moment.
func (s *CampaignService) UpdateStatus(userID, campaignID int, status string) error {
	if !model.ValidStatus(status) {
		return appErrors.NewInvalidInput("status must be one of draft, active, paused, completed")
	}

	campaign, err := s.CampaignRepo.GetByID(campaignID)
	if err != nil {
		return err
	}
	if err := requireEditor(s.WorkspaceRepo, userID, campaign.WorkspaceID); err != nil {
		return err
	}

	var startDate *time.Time
	if status == model.StatusActive && campaign.StartDate == nil {
		now := time.Now()
		startDate = &now
		// Schedule rows go in first; a batch failure leaves the status and
		// start date untouched, so activation can be retried.
		if err := s.materializeSchedule(campaign, now); err != nil {
			return err
		}
	}

	if err := s.CampaignRepo.UpdateStatus(campaignID, status, startDate); err != nil {
		return err
	}

	s.publish(queue.NewEvent(queue.ActionStatusChanged, userID, campaign.WorkspaceID,
		"campaign", campaign.ID, fmt.Sprintf(`{"from":%q,"to":%q}`, campaign.Status, status)))

	return nil
}

// materializeSchedule creates one pending scheduled_emails row per campaign
// email, spaced sendInterval days apart from the start date. Rows are
// persisted state only; nothing in this service sends them.
func (s *CampaignService) materializeSchedule(campaign *model.Campaign, startDate time.Time) error {
	emails, err := s.EmailRepo.ListByCampaign(campaign.ID)
	if err != nil {
		return err
	}
	if len(emails) == 0 {
		return nil
	}

	schedules := make([]*model.ScheduledEmail, len(emails))
	for i, e := range emails {
		offset := time.Duration(e.SequenceNumber-1) * time.Duration(campaign.SendInterval) * 24 * time.Hour
		schedules[i] = &model.ScheduledEmail{
			EmailID:      e.ID,
			CampaignID:   campaign.ID,
			WorkspaceID:  campaign.WorkspaceID,
			ScheduledFor: startDate.Add(offset),
		}
	}
	return s.ScheduleRepo.CreateBatch(schedules)
}

// publish is best effort; a queue failure never fails the operation.
func (s *CampaignService) publish(event queue.Event) {
	if s.Queue == nil {
		return
	}
	if err := s.Queue.Publish(queue.EventsTopic, event); err != nil {
		log.Println("failed to publish campaign event:", err)
	}
}
