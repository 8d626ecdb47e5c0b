package controller

import (
	"context"
	"fmt"
	"sort"
	"time"

	appErrors "github.com/clientforge/agencymail-backend/internal/errors"
	"github.com/clientforge/agencymail-backend/internal/model"
	"github.com/clientforge/agencymail-backend/internal/repository"
	"github.com/clientforge/agencymail-backend/internal/service"
)

const (
	editorUser = 1
	viewerUser = 2
)

type stubWorkspaceRepo struct {
	roles map[int]string
}

func (s *stubWorkspaceRepo) GetByID(id int) (*model.Workspace, error) {
	return &model.Workspace{ID: id}, nil
}
func (s *stubWorkspaceRepo) Create(w *model.Workspace) error          { return nil }
func (s *stubWorkspaceRepo) AddMember(m *model.WorkspaceMember) error { return nil }
func (s *stubWorkspaceRepo) GetUserRole(userID, _ int) (string, error) {
	return s.roles[userID], nil
}

type stubKnowledgeRepo struct {
	kb *model.KnowledgeBase
}

func (s *stubKnowledgeRepo) GetByWorkspace(_ int) (*model.KnowledgeBase, error) { return s.kb, nil }
func (s *stubKnowledgeRepo) Create(kb *model.KnowledgeBase) error               { return nil }
func (s *stubKnowledgeRepo) Update(_ int, _ model.KnowledgeBaseUpdate) error    { return nil }

type stubCampaignRepo struct {
	created       []*model.Campaign
	lastStatus    string
	lastStartDate *time.Time
}

func (s *stubCampaignRepo) Create(c *model.Campaign) error {
	c.ID = len(s.created) + 1
	if c.Status == "" {
		c.Status = model.StatusDraft
	}
	c.CreatedAt = time.Now()
	s.created = append(s.created, c)
	return nil
}

func (s *stubCampaignRepo) GetByID(id int) (*model.Campaign, error) {
	for _, c := range s.created {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, appErrors.NewCampaignNotFound(id)
}

func (s *stubCampaignRepo) ListByWorkspace(workspaceID int) ([]*model.Campaign, error) {
	out := []*model.Campaign{}
	for i := len(s.created) - 1; i >= 0; i-- {
		if s.created[i].WorkspaceID == workspaceID {
			out = append(out, s.created[i])
		}
	}
	return out, nil
}

func (s *stubCampaignRepo) UpdateStatus(campaignID int, status string, startDate *time.Time) error {
	c, err := s.GetByID(campaignID)
	if err != nil {
		return err
	}
	c.Status = status
	if startDate != nil {
		c.StartDate = startDate
	}
	s.lastStatus = status
	s.lastStartDate = startDate
	return nil
}

type stubEmailRepo struct {
	byCampaign map[int][]*model.Email
	nextID     int
}

func (s *stubEmailRepo) CreateBatch(campaignID int, emails []*model.Email) error {
	if s.byCampaign == nil {
		s.byCampaign = map[int][]*model.Email{}
	}
	for _, e := range emails {
		s.nextID++
		e.ID = s.nextID
		e.CampaignID = campaignID
		s.byCampaign[campaignID] = append(s.byCampaign[campaignID], e)
	}
	return nil
}

func (s *stubEmailRepo) ListByCampaign(campaignID int) ([]*model.Email, error) {
	emails := append([]*model.Email{}, s.byCampaign[campaignID]...)
	sort.Slice(emails, func(i, j int) bool { return emails[i].SequenceNumber < emails[j].SequenceNumber })
	return emails, nil
}

func (s *stubEmailRepo) GetByID(id int) (*model.Email, error) {
	for _, emails := range s.byCampaign {
		for _, e := range emails {
			if e.ID == id {
				return e, nil
			}
		}
	}
	return nil, nil
}

func (s *stubEmailRepo) Update(_ int, _ model.EmailUpdate) error { return nil }
func (s *stubEmailRepo) ReplaceContent(_ int, _, _, _, _ string) error {
	return nil
}

type stubScheduleRepo struct {
	batches [][]*model.ScheduledEmail
}

func (s *stubScheduleRepo) CreateBatch(schedules []*model.ScheduledEmail) error {
	s.batches = append(s.batches, schedules)
	return nil
}

func (s *stubScheduleRepo) ListByCampaign(_ int) ([]*model.ScheduledEmail, error) { return nil, nil }

type stubGenerator struct{}

func (g *stubGenerator) GenerateSequence(_ context.Context, _ *model.KnowledgeBase, campaignName string) ([]service.GeneratedEmail, error) {
	emails := make([]service.GeneratedEmail, service.SequenceLength)
	for i := range emails {
		n := i + 1
		emails[i] = service.GeneratedEmail{
			SequenceNumber: n,
			Subject:        fmt.Sprintf("%s %d", campaignName, n),
			PreviewText:    "preview",
			BodyText:       "body",
			BodyHTML:       "<p>body</p>",
		}
	}
	return emails, nil
}

func (g *stubGenerator) RegenerateSingle(_ context.Context, _ *model.KnowledgeBase, sequenceNumber int, _, _ string) (*service.GeneratedEmail, error) {
	return &service.GeneratedEmail{
		SequenceNumber: sequenceNumber,
		Subject:        "Regenerated",
		PreviewText:    "preview",
		BodyText:       "fresh body",
		BodyHTML:       "<p>fresh body</p>",
	}, nil
}

var (
	_ repository.WorkspaceRepositoryInterface      = (*stubWorkspaceRepo)(nil)
	_ repository.KnowledgeBaseRepositoryInterface  = (*stubKnowledgeRepo)(nil)
	_ repository.CampaignRepositoryInterface       = (*stubCampaignRepo)(nil)
	_ repository.EmailRepositoryInterface          = (*stubEmailRepo)(nil)
	_ repository.ScheduledEmailRepositoryInterface = (*stubScheduleRepo)(nil)
	_ service.SequenceGenerator                    = (*stubGenerator)(nil)
)
