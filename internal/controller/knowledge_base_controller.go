package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/clientforge/agencymail-backend/internal/model"
	"github.com/clientforge/agencymail-backend/internal/service"
)

type KnowledgeBaseController struct {
	KnowledgeBaseService *service.KnowledgeBaseService
}

// GetKnowledgeBase handles GET /workspaces/{workspaceID}/knowledge-base,
// creating an empty knowledge base on first access.
func (c *KnowledgeBaseController) GetKnowledgeBase(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := strconv.Atoi(chi.URLParam(r, "workspaceID"))
	if err != nil {
		http.Error(w, "invalid workspace id", http.StatusBadRequest)
		return
	}

	kb, err := c.KnowledgeBaseService.GetOrCreate(userID(r), workspaceID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, kb)
}

// UpdateKnowledgeBase handles PUT /workspaces/{workspaceID}/knowledge-base
// with a partial field set.
func (c *KnowledgeBaseController) UpdateKnowledgeBase(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := strconv.Atoi(chi.URLParam(r, "workspaceID"))
	if err != nil {
		http.Error(w, "invalid workspace id", http.StatusBadRequest)
		return
	}

	var update model.KnowledgeBaseUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	if err := c.KnowledgeBaseService.Update(userID(r), workspaceID, update); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
