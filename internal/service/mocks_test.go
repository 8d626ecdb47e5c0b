package service_test

import (
	"context"
	"sort"
	"time"

	appErrors "github.com/clientforge/agencymail-backend/internal/errors"
	"github.com/clientforge/agencymail-backend/internal/model"
	"github.com/clientforge/agencymail-backend/internal/service"
)

// Hand-rolled mocks satisfying the repository interfaces.

type mockWorkspaceRepo struct {
	roles map[int]string // userID -> role on the one workspace under test
}

func (m *mockWorkspaceRepo) GetByID(id int) (*model.Workspace, error) {
	return &model.Workspace{ID: id, Name: "ws"}, nil
}
func (m *mockWorkspaceRepo) Create(w *model.Workspace) error          { w.ID = 1; return nil }
func (m *mockWorkspaceRepo) AddMember(*model.WorkspaceMember) error   { return nil }
func (m *mockWorkspaceRepo) GetUserRole(userID, _ int) (string, error) {
	return m.roles[userID], nil
}

type mockKnowledgeRepo struct {
	kb *model.KnowledgeBase
}

func (m *mockKnowledgeRepo) GetByWorkspace(int) (*model.KnowledgeBase, error) { return m.kb, nil }
func (m *mockKnowledgeRepo) Create(kb *model.KnowledgeBase) error             { kb.ID = 1; m.kb = kb; return nil }
func (m *mockKnowledgeRepo) Update(int, model.KnowledgeBaseUpdate) error      { return nil }

type statusUpdate struct {
	campaignID int
	status     string
	startDate  *time.Time
}

type mockCampaignRepo struct {
	campaigns     map[int]*model.Campaign
	nextID        int
	statusUpdates []statusUpdate
}

func newMockCampaignRepo() *mockCampaignRepo {
	return &mockCampaignRepo{campaigns: map[int]*model.Campaign{}, nextID: 1}
}

func (m *mockCampaignRepo) Create(c *model.Campaign) error {
	c.ID = m.nextID
	m.nextID++
	c.CreatedAt = time.Now()
	copied := *c
	m.campaigns[c.ID] = &copied
	return nil
}

func (m *mockCampaignRepo) GetByID(id int) (*model.Campaign, error) {
	c, ok := m.campaigns[id]
	if !ok {
		return nil, appErrors.NewCampaignNotFound(id)
	}
	copied := *c
	return &copied, nil
}

func (m *mockCampaignRepo) ListByWorkspace(workspaceID int) ([]*model.Campaign, error) {
	out := []*model.Campaign{}
	for _, c := range m.campaigns {
		if c.WorkspaceID == workspaceID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockCampaignRepo) UpdateStatus(campaignID int, status string, startDate *time.Time) error {
	m.statusUpdates = append(m.statusUpdates, statusUpdate{campaignID, status, startDate})
	if c, ok := m.campaigns[campaignID]; ok {
		c.Status = status
		if startDate != nil {
			c.StartDate = startDate
		}
	}
	return nil
}

type replaceCall struct {
	id                                     int
	subject, bodyHTML, bodyText, previewText string
}

type mockEmailRepo struct {
	emails   map[int]*model.Email
	nextID   int
	batches  [][]*model.Email
	updates  map[int]model.EmailUpdate
	replaced []replaceCall
}

func newMockEmailRepo() *mockEmailRepo {
	return &mockEmailRepo{emails: map[int]*model.Email{}, nextID: 1, updates: map[int]model.EmailUpdate{}}
}

func (m *mockEmailRepo) CreateBatch(campaignID int, emails []*model.Email) error {
	for _, e := range emails {
		e.ID = m.nextID
		m.nextID++
		e.CampaignID = campaignID
		copied := *e
		m.emails[e.ID] = &copied
	}
	m.batches = append(m.batches, emails)
	return nil
}

func (m *mockEmailRepo) ListByCampaign(campaignID int) ([]*model.Email, error) {
	out := []*model.Email{}
	for _, e := range m.emails {
		if e.CampaignID == campaignID {
			copied := *e
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SequenceNumber < out[j].SequenceNumber })
	return out, nil
}

func (m *mockEmailRepo) GetByID(id int) (*model.Email, error) {
	e, ok := m.emails[id]
	if !ok {
		return nil, nil
	}
	copied := *e
	return &copied, nil
}

func (m *mockEmailRepo) Update(id int, update model.EmailUpdate) error {
	m.updates[id] = update
	return nil
}

func (m *mockEmailRepo) ReplaceContent(id int, subject, bodyHTML, bodyText, previewText string) error {
	m.replaced = append(m.replaced, replaceCall{id, subject, bodyHTML, bodyText, previewText})
	if e, ok := m.emails[id]; ok {
		e.Subject, e.BodyHTML, e.BodyText, e.PreviewText = subject, bodyHTML, bodyText, previewText
	}
	return nil
}

type mockScheduleRepo struct {
	created []*model.ScheduledEmail
	err     error
}

func (m *mockScheduleRepo) CreateBatch(schedules []*model.ScheduledEmail) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, schedules...)
	return nil
}

func (m *mockScheduleRepo) ListByCampaign(int) ([]*model.ScheduledEmail, error) {
	return m.created, nil
}

// fakeGenerator satisfies service.SequenceGenerator.
type fakeGenerator struct {
	sequence []service.GeneratedEmail
	single   *service.GeneratedEmail
	err      error

	sequenceCalls int
	lastSeqNumber int
	lastPrevBody  string
	lastNextBody  string
}

func (f *fakeGenerator) GenerateSequence(_ context.Context, _ *model.KnowledgeBase, _ string) ([]service.GeneratedEmail, error) {
	f.sequenceCalls++
	return f.sequence, f.err
}

func (f *fakeGenerator) RegenerateSingle(_ context.Context, _ *model.KnowledgeBase, sequenceNumber int, previousBody, nextBody string) (*service.GeneratedEmail, error) {
	f.lastSeqNumber = sequenceNumber
	f.lastPrevBody = previousBody
	f.lastNextBody = nextBody
	return f.single, f.err
}

func tenGeneratedEmails() []service.GeneratedEmail {
	emails := make([]service.GeneratedEmail, 10)
	for i := range emails {
		emails[i] = service.GeneratedEmail{
			SequenceNumber: i + 1,
			Subject:        "Subject",
			PreviewText:    "preview",
			BodyText:       "body",
			BodyHTML:       "<p>body</p>",
		}
	}
	return emails
}
