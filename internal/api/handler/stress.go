package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/mindcare/internal/api/response"
	"github.com/mcoot/mindcare/internal/services/scheduler"
	"github.com/mcoot/mindcare/internal/services/stress"
)

// StressHandler runs stress checks
type StressHandler struct {
	analyzer *stress.Analyzer
}

// NewStressHandler creates a new stress handler
func NewStressHandler(analyzer *stress.Analyzer) *StressHandler {
	return &StressHandler{analyzer: analyzer}
}

// Analyze handles POST /api/v1/stress/{mode}
func (h *StressHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	mode, err := stress.ParseMode(mux.Vars(r)["mode"])
	if err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.analyzer.Analyze(r.Context(), mode)
	if errors.Is(err, scheduler.ErrCancelled) && r.Context().Err() != nil {
		return
	}
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.StressResultFromModel(result))
}
