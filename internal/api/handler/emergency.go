package handler

import (
	"net/http"

	"github.com/mcoot/mindcare/internal/api/middleware"
	"github.com/mcoot/mindcare/internal/api/request"
	"github.com/mcoot/mindcare/internal/api/response"
	"github.com/mcoot/mindcare/internal/services/support"
)

// EmergencyHandler serves the emergency directory and simulated calls
type EmergencyHandler struct {
	support *support.Service
}

// NewEmergencyHandler creates a new emergency handler
func NewEmergencyHandler(supportService *support.Service) *EmergencyHandler {
	return &EmergencyHandler{support: supportService}
}

// Directory handles GET /api/v1/emergency
func (h *EmergencyHandler) Directory(w http.ResponseWriter, r *http.Request) {
	out := response.Emergency{CopingStrategies: h.support.CopingStrategies()}
	for _, hl := range h.support.Helplines() {
		out.Helplines = append(out.Helplines, response.Helpline(hl))
	}
	for _, cr := range h.support.CrisisResources() {
		out.CrisisResources = append(out.CrisisResources, response.CrisisResource(cr))
	}
	response.JSON(w, http.StatusOK, out)
}

// Call handles POST /api/v1/emergency/call
func (h *EmergencyHandler) Call(w http.ResponseWriter, r *http.Request) {
	var req request.CallRequest
	if !decode(w, r, &req) {
		return
	}

	p := middleware.MustGetProfile(r.Context())
	call, err := h.support.Call(r.Context(), p.ID, req.Number)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.Created(w, response.CallFromModel(call))
}
