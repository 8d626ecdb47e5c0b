package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/clientforge/agencymail-backend/internal/model"
	"github.com/clientforge/agencymail-backend/internal/service"
)

type EmailController struct {
	EmailService *service.EmailService
}

// UpdateEmail handles PATCH /emails/{id}. Only fields present in the body
// are changed.
func (c *EmailController) UpdateEmail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid email id", http.StatusBadRequest)
		return
	}

	var update model.EmailUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	if err := c.EmailService.UpdateEmail(userID(r), id, update); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// RegenerateEmail handles POST /emails/{id}/regenerate and returns the fresh
// content.
func (c *EmailController) RegenerateEmail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid email id", http.StatusBadRequest)
		return
	}

	var body struct {
		CampaignID int `json:"campaign_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	regenerated, err := c.EmailService.RegenerateEmail(r.Context(), userID(r), id, body.CampaignID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, regenerated)
}
