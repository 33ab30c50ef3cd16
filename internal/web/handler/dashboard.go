package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/services/mood"
	"github.com/mcoot/mindcare/internal/web/middleware"
	"github.com/mcoot/mindcare/internal/web/templates/pages"
)

// DashboardHandler handles the wellness dashboard and mood check-ins
type DashboardHandler struct {
	mood   *mood.Service
	logger *slog.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(moodService *mood.Service, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{mood: moodService, logger: logger}
}

// View renders the dashboard
func (h *DashboardHandler) View(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, pages.Dashboard(pages.DashboardData{
		PageData: pageData(r, "Dashboard", "dashboard"),
		Moods:    h.mood.Options(),
	}))
}

// RecordMood saves today's mood
func (h *DashboardHandler) RecordMood(w http.ResponseWriter, r *http.Request) {
	p := middleware.GetProfile(r.Context())
	selected := model.Mood(r.FormValue("mood"))

	err := h.mood.Record(r.Context(), p.ID, selected)
	switch {
	case errors.Is(err, model.ErrInvalidMood):
		middleware.SetFlash(w, middleware.FlashError, "Please pick one of the moods")
	case err != nil:
		h.logger.Error("failed to record mood", slog.String("profile", string(p.ID)), slog.Any("error", err))
		middleware.SetFlash(w, middleware.FlashError, "Could not save your mood, please try again")
	default:
		middleware.SetFlash(w, middleware.FlashSuccess, p.Locale.Translate("dashboard.moodSaved")+": "+string(selected))
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
