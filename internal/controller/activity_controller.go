package controller

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/clientforge/agencymail-backend/internal/service"
)

type ActivityController struct {
	ActivityService *service.ActivityService
}

// ListActivity handles GET /workspaces/{workspaceID}/activity. An optional
// limit query parameter caps the result; the repository applies its default
// otherwise.
func (c *ActivityController) ListActivity(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := strconv.Atoi(chi.URLParam(r, "workspaceID"))
	if err != nil {
		http.Error(w, "invalid workspace id", http.StatusBadRequest)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := c.ActivityService.List(userID(r), workspaceID, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": entries})
}
