package handler

import (
	"net/http"

	"github.com/mcoot/mindcare/internal/api/middleware"
	"github.com/mcoot/mindcare/internal/api/request"
	"github.com/mcoot/mindcare/internal/api/response"
	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/services/settings"
)

// SettingsHandler handles the profile page settings
type SettingsHandler struct {
	settings *settings.Service
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *settings.Service) *SettingsHandler {
	return &SettingsHandler{settings: settingsService}
}

// Get handles GET /api/v1/profile/settings
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	p := middleware.MustGetProfile(r.Context())
	saved, err := h.settings.Get(r.Context(), p.ID)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.SettingsFromModel(saved))
}

// Put handles PUT /api/v1/profile/settings
func (h *SettingsHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req request.SettingsRequest
	if !decode(w, r, &req) {
		return
	}

	p := middleware.MustGetProfile(r.Context())
	details := model.ProfileDetails{
		Bio:              req.Bio,
		University:       req.University,
		Year:             req.Year,
		EmergencyContact: model.EmergencyContact(req.EmergencyContact),
	}

	var (
		saved *model.Settings
		err   error
	)
	if req.Preferences == nil {
		saved, err = h.settings.SaveDetails(r.Context(), p.ID, details)
	} else {
		saved, err = h.settings.Save(r.Context(), p.ID, model.Settings{
			Details:     details,
			Preferences: model.Preferences(*req.Preferences),
		})
	}
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.SettingsFromModel(saved))
}
