package pages

import (
	"github.com/a-h/templ"

	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/web/templates/components"
	"github.com/mcoot/mindcare/internal/web/templates/layout"
	"github.com/mcoot/mindcare/internal/web/templates/markup"
)

// StressData is the data for the stress check page
type StressData struct {
	layout.PageData
	Result *model.StressResult
	Error  string
}

// Stress renders the mode picker and the latest result
func Stress(data StressData) templ.Component {
	return layout.Base(data.PageData, markup.Component(func(m *markup.Writer) {
		m.Printf(`<section class="stress"><h1>%s</h1>`, data.T("stress.title"))
		formError(m, data.Error)
		m.Raw(`<form id="stress-form" method="post" action="/stress">`)
		for _, mode := range []model.AnalysisMode{model.AnalysisCamera, model.AnalysisVoice, model.AnalysisFile} {
			m.Printf(`<button type="submit" name="mode" value="%s">%s</button>`, mode, data.T("stress."+string(mode)))
		}
		m.Raw(`</form>`)
		m.Render(components.StressResult(data.Result))
		m.Raw(`</section>`)
	}))
}
