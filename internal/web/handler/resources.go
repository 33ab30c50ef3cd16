package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/services/resources"
	"github.com/mcoot/mindcare/internal/web/templates/pages"
)

// ResourcesHandler handles the resource library
type ResourcesHandler struct {
	library *resources.Library
	logger  *slog.Logger
}

// NewResourcesHandler creates a new ResourcesHandler
func NewResourcesHandler(library *resources.Library, logger *slog.Logger) *ResourcesHandler {
	return &ResourcesHandler{library: library, logger: logger}
}

// List renders the library filtered by ?q=, ?category= and ?type=
func (h *ResourcesHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := resources.Filter{
		Query:    r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
		Type:     r.URL.Query().Get("type"),
	}
	data := pages.ResourcesData{
		PageData:   pageData(r, "Resources", "resources"),
		Total:      h.library.Total(),
		Categories: filterOptions(resources.Categories),
		Types:      filterOptions(resources.Types),
		Query:      filter.Query,
		Category:   filter.Category,
		Type:       filter.Type,
	}

	status := http.StatusOK
	found, err := h.library.List(filter)
	switch {
	case errors.Is(err, model.ErrUnknownCategory), errors.Is(err, model.ErrUnknownResourceType):
		status = http.StatusBadRequest
		data.Error = err.Error()
	case err != nil:
		h.logger.Error("failed to list resources", slog.Any("error", err))
		renderError(w, r, http.StatusInternalServerError, "Something went wrong")
		return
	default:
		data.Resources = found
	}
	render(w, r, status, pages.Resources(data))
}

func filterOptions(options []resources.Option) []pages.FilterOption {
	out := make([]pages.FilterOption, len(options))
	for i, o := range options {
		out[i] = pages.FilterOption{ID: o.ID, Name: o.Name}
	}
	return out
}
