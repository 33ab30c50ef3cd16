package pages

import (
	"fmt"

	"github.com/a-h/templ"

	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/web/templates/layout"
	"github.com/mcoot/mindcare/internal/web/templates/markup"
)

// FilterOption is a category or type choice. An empty ID means all.
type FilterOption struct {
	ID   string
	Name string
}

// ResourcesData is the data for the resource library
type ResourcesData struct {
	layout.PageData
	Resources  []model.Resource
	Total      int
	Categories []FilterOption
	Types      []FilterOption
	Query      string
	Category   string
	Type       string
	Error      string
}

// Resources renders the search form, filters and matching resources
func Resources(data ResourcesData) templ.Component {
	return layout.Base(data.PageData, markup.Component(func(m *markup.Writer) {
		m.Printf(`<section class="resources"><h1>%s</h1>`, data.T("resources.title"))

		m.Raw(`<form id="resource-search" method="get" action="/resources">`)
		m.Printf(`<input type="search" name="q" value="%s" placeholder="%s">`, data.Query, data.T("resources.search"))
		filterSelect(m, "category", data.Categories, data.Category)
		filterSelect(m, "type", data.Types, data.Type)
		m.Raw(`<button type="submit">Search</button></form>`)
		formError(m, data.Error)

		m.Printf(`<p class="results-summary">%s</p>`, fmt.Sprintf(data.T("resources.showing"), len(data.Resources), data.Total))
		m.Raw(`<div class="resource-grid">`)
		if len(data.Resources) == 0 {
			m.Raw(`<p class="empty">No resources found.</p>`)
		}
		for _, r := range data.Resources {
			m.Printf(`<article class="resource-card" id="resource-%s" data-type="%s" data-category="%s">`, r.ID, r.Type, r.Category)
			if r.Premium {
				m.Raw(`<span class="premium">Premium</span>`)
			}
			m.Printf(`<h2>%s</h2><p>%s</p>`, r.Title, r.Description)
			m.Printf(`<div class="meta"><span class="duration">%s</span> <span class="rating">%.1f</span> <span class="downloads">%d downloads</span></div>`,
				r.Duration, r.Rating, r.Downloads)
			m.Printf(`<p class="author">by %s</p><ul class="tags">`, r.Author)
			for _, tag := range r.Tags {
				m.Printf(`<li><a href="/resources?q=%s">%s</a></li>`, tag, tag)
			}
			m.Printf(`</ul><span class="action">%s</span></article>`, resourceAction(r.Type))
		}
		m.Raw(`</div></section>`)
	}))
}

func filterSelect(m *markup.Writer, name string, options []FilterOption, selected string) {
	m.Printf(`<select name="%s">`, name)
	for _, o := range options {
		m.Printf(`<option value="%s"`+markup.Attr(o.ID == selected, "selected")+`>%s</option>`, o.ID, o.Name)
	}
	m.Raw(`</select>`)
}

func resourceAction(t model.ResourceType) string {
	switch t {
	case model.ResourceVideo:
		return "Watch"
	case model.ResourceExercise:
		return "Start"
	}
	return "Read"
}
