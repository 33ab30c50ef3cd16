package handler

import (
	"net/http"

	"github.com/mcoot/mindcare/internal/api/middleware"
	"github.com/mcoot/mindcare/internal/api/request"
	"github.com/mcoot/mindcare/internal/api/response"
	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/services/mood"
)

// MoodHandler handles mood check-ins
type MoodHandler struct {
	mood *mood.Service
}

// NewMoodHandler creates a new mood handler
func NewMoodHandler(moodService *mood.Service) *MoodHandler {
	return &MoodHandler{mood: moodService}
}

// Record handles POST /api/v1/mood
func (h *MoodHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req request.MoodRequest
	if !decode(w, r, &req) {
		return
	}

	p := middleware.MustGetProfile(r.Context())
	if err := h.mood.Record(r.Context(), p.ID, model.Mood(req.Mood)); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Mood{Mood: req.Mood})
}
