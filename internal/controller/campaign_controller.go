package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/clientforge/agencymail-backend/internal/model"
	"github.com/clientforge/agencymail-backend/internal/service"
)

type CampaignController struct {
	CampaignService *service.CampaignService
}

// CreateCampaign handles POST /workspaces/{workspaceID}/campaigns. Email
// generation runs synchronously within the request when generate_emails is
// true (the default).
func (c *CampaignController) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := strconv.Atoi(chi.URLParam(r, "workspaceID"))
	if err != nil {
		http.Error(w, "invalid workspace id", http.StatusBadRequest)
		return
	}

	body := struct {
		Name           string `json:"name"`
		Description    string `json:"description"`
		SendInterval   *int   `json:"send_interval"`
		GenerateEmails *bool  `json:"generate_emails"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	input := service.CreateCampaignInput{
		WorkspaceID:    workspaceID,
		Name:           body.Name,
		Description:    body.Description,
		SendInterval:   3,
		GenerateEmails: true,
	}
	if body.SendInterval != nil {
		input.SendInterval = *body.SendInterval
	}
	if body.GenerateEmails != nil {
		input.GenerateEmails = *body.GenerateEmails
	}

	campaign, err := c.CampaignService.CreateCampaign(r.Context(), userID(r), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"id": campaign.ID})
}

// ListCampaigns handles GET /workspaces/{workspaceID}/campaigns.
func (c *CampaignController) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := strconv.Atoi(chi.URLParam(r, "workspaceID"))
	if err != nil {
		http.Error(w, "invalid workspace id", http.StatusBadRequest)
		return
	}

	campaigns, err := c.CampaignService.ListCampaigns(userID(r), workspaceID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": campaigns})
}

// GetCampaignDetail handles GET /campaigns/{id}; the response embeds the
// campaign's emails ordered by sequence number.
func (c *CampaignController) GetCampaignDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}

	campaign, emails, err := c.CampaignService.GetCampaignDetail(userID(r), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		*model.Campaign
		Emails []*model.Email `json:"emails"`
	}{campaign, emails})
}

// UpdateStatus handles PATCH /campaigns/{id}/status.
func (c *CampaignController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	if err := c.CampaignService.UpdateStatus(userID(r), id, body.Status); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
