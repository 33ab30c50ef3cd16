package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/services/settings"
	"github.com/mcoot/mindcare/internal/web/middleware"
	"github.com/mcoot/mindcare/internal/web/templates/pages"
)

// ProfileHandler handles the profile page
type ProfileHandler struct {
	settings *settings.Service
	logger   *slog.Logger
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(settingsService *settings.Service, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{settings: settingsService, logger: logger}
}

// View renders the profile with the saved settings
func (h *ProfileHandler) View(w http.ResponseWriter, r *http.Request) {
	p := middleware.GetProfile(r.Context())
	saved, err := h.settings.Get(r.Context(), p.ID)
	if err != nil {
		h.logger.Error("failed to read settings", slog.String("profile", string(p.ID)), slog.Any("error", err))
		renderError(w, r, http.StatusInternalServerError, "Something went wrong")
		return
	}
	h.renderProfile(w, r, http.StatusOK, *saved, "")
}

// SaveDetails saves the personal details form
func (h *ProfileHandler) SaveDetails(w http.ResponseWriter, r *http.Request) {
	p := middleware.GetProfile(r.Context())
	details := model.ProfileDetails{
		Bio:        r.FormValue("bio"),
		University: r.FormValue("university"),
		Year:       r.FormValue("year"),
		EmergencyContact: model.EmergencyContact{
			Name:         r.FormValue("contact_name"),
			Phone:        r.FormValue("contact_phone"),
			Relationship: r.FormValue("contact_relationship"),
		},
	}

	_, err := h.settings.SaveDetails(r.Context(), p.ID, details)
	if errors.Is(err, model.ErrInvalidSettings) {
		current, getErr := h.settings.Get(r.Context(), p.ID)
		if getErr != nil {
			current = &model.Settings{Preferences: model.DefaultPreferences()}
		}
		current.Details = details
		h.renderProfile(w, r, http.StatusUnprocessableEntity, *current, err.Error())
		return
	}
	if err != nil {
		h.logger.Error("failed to save settings", slog.String("profile", string(p.ID)), slog.Any("error", err))
		renderError(w, r, http.StatusInternalServerError, "Something went wrong")
		return
	}
	middleware.SetFlash(w, middleware.FlashSuccess, p.Locale.Translate("profile.saved"))
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

// SavePreferences saves the notification checkboxes. An unchecked box is
// absent from the form and saves as false.
func (h *ProfileHandler) SavePreferences(w http.ResponseWriter, r *http.Request) {
	p := middleware.GetProfile(r.Context())
	prefs := model.Preferences{
		EmailNotifications: r.FormValue("emailNotifications") == "true",
		PushNotifications:  r.FormValue("pushNotifications") == "true",
		WeeklyReports:      r.FormValue("weeklyReports") == "true",
		CommunityUpdates:   r.FormValue("communityUpdates") == "true",
		CrisisAlerts:       r.FormValue("crisisAlerts") == "true",
	}
	if _, err := h.settings.SavePreferences(r.Context(), p.ID, prefs); err != nil {
		h.logger.Error("failed to save preferences", slog.String("profile", string(p.ID)), slog.Any("error", err))
		middleware.SetFlash(w, middleware.FlashError, "Could not save your preferences, please try again")
	} else {
		middleware.SetFlash(w, middleware.FlashSuccess, p.Locale.Translate("profile.saved"))
	}
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

func (h *ProfileHandler) renderProfile(w http.ResponseWriter, r *http.Request, status int, s model.Settings, errMsg string) {
	render(w, r, status, pages.Profile(pages.ProfileData{
		PageData: pageData(r, "Profile", "profile"),
		Settings: s,
		Error:    errMsg,
	}))
}
