// Package resources is the read-only self-help resource library.
package resources

import (
	"strings"

	"github.com/mcoot/mindcare/internal/metrics"
	"github.com/mcoot/mindcare/internal/model"
)

// Filter narrows a listing. Empty fields, and the value "all", match
// everything.
type Filter struct {
	Query    string
	Category string
	Type     string
}

// Library holds the resources in display order
type Library struct {
	resources []model.Resource
}

// New creates a library with the starter resources
func New() *Library {
	return &Library{resources: seedResources()}
}

// Total is the number of resources in the library
func (l *Library) Total() int {
	return len(l.resources)
}

// List returns the resources matching f. Query matches title, description
// or tags case-insensitively.
func (l *Library) List(f Filter) ([]model.Resource, error) {
	category, err := parseCategory(f.Category)
	if err != nil {
		return nil, err
	}
	kind, err := parseType(f.Type)
	if err != nil {
		return nil, err
	}
	query := strings.ToLower(strings.TrimSpace(f.Query))
	if query != "" || category != "" || kind != "" {
		metrics.ResourceSearchesTotal.Inc()
	}

	result := make([]model.Resource, 0, len(l.resources))
	for _, r := range l.resources {
		if category != "" && r.Category != category {
			continue
		}
		if kind != "" && r.Type != kind {
			continue
		}
		if !matches(r, query) {
			continue
		}
		result = append(result, clone(r))
	}
	return result, nil
}

// Get returns a single resource
func (l *Library) Get(id string) (*model.Resource, error) {
	for _, r := range l.resources {
		if r.ID == id {
			found := clone(r)
			return &found, nil
		}
	}
	return nil, model.ErrResourceNotFound
}

func parseCategory(value string) (model.ResourceCategory, error) {
	if value == "" || value == "all" {
		return "", nil
	}
	for _, c := range Categories {
		if c.ID == value {
			return model.ResourceCategory(value), nil
		}
	}
	return "", model.ErrUnknownCategory
}

func parseType(value string) (model.ResourceType, error) {
	if value == "" || value == "all" {
		return "", nil
	}
	for _, t := range Types {
		if t.ID == value {
			return model.ResourceType(value), nil
		}
	}
	return "", model.ErrUnknownResourceType
}

func matches(r model.Resource, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Title), query) ||
		strings.Contains(strings.ToLower(r.Description), query) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func clone(r model.Resource) model.Resource {
	r.Tags = append([]string(nil), r.Tags...)
	return r
}
