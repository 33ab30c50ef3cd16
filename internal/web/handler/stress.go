package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/services/scheduler"
	"github.com/mcoot/mindcare/internal/services/stress"
	"github.com/mcoot/mindcare/internal/web/templates/pages"
)

// StressHandler handles the stress check page
type StressHandler struct {
	analyzer *stress.Analyzer
	logger   *slog.Logger
}

// NewStressHandler creates a new StressHandler
func NewStressHandler(analyzer *stress.Analyzer, logger *slog.Logger) *StressHandler {
	return &StressHandler{analyzer: analyzer, logger: logger}
}

// View renders the mode picker
func (h *StressHandler) View(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, nil, "")
}

// Analyze runs a stress check and renders the result. The request is held
// open for the analysis delay.
func (h *StressHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	mode, err := stress.ParseMode(r.FormValue("mode"))
	if err != nil {
		h.renderPage(w, r, http.StatusUnprocessableEntity, nil, "Please choose camera, voice or file analysis")
		return
	}

	result, err := h.analyzer.Analyze(r.Context(), mode)
	if errors.Is(err, scheduler.ErrCancelled) {
		return
	}
	if err != nil {
		h.logger.Error("stress check failed", slog.String("mode", string(mode)), slog.Any("error", err))
		renderError(w, r, http.StatusInternalServerError, "Something went wrong")
		return
	}

	h.renderPage(w, r, http.StatusOK, result, "")
}

func (h *StressHandler) renderPage(w http.ResponseWriter, r *http.Request, status int, result *model.StressResult, errorMsg string) {
	render(w, r, status, pages.Stress(pages.StressData{
		PageData: pageData(r, "Stress Check", "stress"),
		Result:   result,
		Error:    errorMsg,
	}))
}
