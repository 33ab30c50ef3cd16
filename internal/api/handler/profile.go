package handler

import (
	"net/http"

	"github.com/mcoot/mindcare/internal/api/response"
	"github.com/mcoot/mindcare/internal/services/profile"
)

// ProfileHandler issues profile IDs
type ProfileHandler struct {
	registry *profile.Registry
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(registry *profile.Registry) *ProfileHandler {
	return &ProfileHandler{registry: registry}
}

// Create handles POST /api/v1/profiles
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	id := profile.NewID()
	if _, err := h.registry.Get(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	response.Created(w, response.Profile{ID: string(id)})
}
