package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/services/support"
	"github.com/mcoot/mindcare/internal/web/middleware"
	"github.com/mcoot/mindcare/internal/web/templates/pages"
)

// EmergencyHandler handles the emergency support page
type EmergencyHandler struct {
	support *support.Service
	logger  *slog.Logger
}

// NewEmergencyHandler creates a new EmergencyHandler
func NewEmergencyHandler(supportService *support.Service, logger *slog.Logger) *EmergencyHandler {
	return &EmergencyHandler{support: supportService, logger: logger}
}

// View renders the emergency page
func (h *EmergencyHandler) View(w http.ResponseWriter, r *http.Request) {
	h.renderEmergency(w, r, http.StatusOK, "")
}

// Call starts a simulated helpline call. The page shows it as connecting
// until support.CallDuration has passed.
func (h *EmergencyHandler) Call(w http.ResponseWriter, r *http.Request) {
	p := middleware.GetProfile(r.Context())

	_, err := h.support.Call(r.Context(), p.ID, r.FormValue("number"))
	switch {
	case errors.Is(err, model.ErrUnknownHelpline):
		h.renderEmergency(w, r, http.StatusUnprocessableEntity, "Please pick one of the helplines listed below")
		return
	case errors.Is(err, model.ErrCallInProgress):
		h.renderEmergency(w, r, http.StatusConflict, "A call is already connecting")
		return
	case err != nil:
		h.logger.Error("failed to start call", slog.String("profile", string(p.ID)), slog.Any("error", err))
		renderError(w, r, http.StatusInternalServerError, "Something went wrong")
		return
	}
	http.Redirect(w, r, "/emergency", http.StatusSeeOther)
}

func (h *EmergencyHandler) renderEmergency(w http.ResponseWriter, r *http.Request, status int, errMsg string) {
	data := pages.EmergencyData{
		PageData:         pageData(r, "Emergency Support", "quickHelp"),
		Helplines:        h.support.Helplines(),
		QuickActions:     h.support.QuickActions(),
		CrisisResources:  h.support.CrisisResources(),
		CopingStrategies: h.support.CopingStrategies(),
		WarningSigns:     h.support.WarningSigns(),
		CrisisNumber:     support.CrisisNumber,
		Error:            errMsg,
	}
	if p := middleware.GetProfile(r.Context()); p != nil {
		if call, ok := h.support.ActiveCall(p.ID); ok {
			data.ActiveCall = call
		}
	}
	render(w, r, status, pages.Emergency(data))
}
