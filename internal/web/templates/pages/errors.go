package pages

import (
	"github.com/a-h/templ"

	"github.com/mcoot/mindcare/internal/web/templates/layout"
	"github.com/mcoot/mindcare/internal/web/templates/markup"
)

// ErrorData is the data for error pages
type ErrorData struct {
	layout.PageData
	Status  int
	Message string
}

// Error renders an error page
func Error(data ErrorData) templ.Component {
	return layout.Base(data.PageData, markup.Component(func(m *markup.Writer) {
		m.Printf(`<section class="error"><h1>%d</h1><p>%s</p><a href="/">%s</a></section>`,
			data.Status, data.Message, data.T("nav.home"))
	}))
}
