package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/mindcare/internal/api/response"
	"github.com/mcoot/mindcare/internal/services/resources"
)

// ResourcesHandler serves the resource library
type ResourcesHandler struct {
	library *resources.Library
}

// NewResourcesHandler creates a new resources handler
func NewResourcesHandler(library *resources.Library) *ResourcesHandler {
	return &ResourcesHandler{library: library}
}

// List handles GET /api/v1/resources?q=&category=&type=
func (h *ResourcesHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	found, err := h.library.List(resources.Filter{
		Query:    query.Get("q"),
		Category: query.Get("category"),
		Type:     query.Get("type"),
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	list := response.ResourceList{Resources: make([]response.Resource, 0, len(found)), Total: h.library.Total()}
	for _, res := range found {
		list.Resources = append(list.Resources, response.ResourceFromModel(res))
	}
	response.JSON(w, http.StatusOK, list)
}

// Get handles GET /api/v1/resources/{id}
func (h *ResourcesHandler) Get(w http.ResponseWriter, r *http.Request) {
	res, err := h.library.Get(mux.Vars(r)["id"])
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.ResourceFromModel(*res))
}
