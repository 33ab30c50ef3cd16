package pages

import (
	"github.com/a-h/templ"

	"github.com/mcoot/mindcare/internal/web/templates/layout"
	"github.com/mcoot/mindcare/internal/web/templates/markup"
)

// HomeData is the data for the landing page
type HomeData struct {
	layout.PageData
}

// Home renders the landing page
func Home(data HomeData) templ.Component {
	return layout.Base(data.PageData, markup.Component(func(m *markup.Writer) {
		m.Printf(`<section class="hero"><h1>%s</h1><p>%s</p>`, data.T("hero.title"), data.T("hero.subtitle"))
		target := "/signup"
		if data.User != nil {
			target = "/dashboard"
		}
		m.Printf(`<a class="cta" href="%s">%s</a></section>`, target, data.T("hero.cta"))

		m.Printf(`<section class="features"><h2>%s</h2><ul>`, data.T("nav.features"))
		for _, f := range []struct{ href, key string }{
			{"/copilot", "copilot.title"},
			{"/stress", "stress.title"},
			{"/forum", "forum.title"},
			{"/booking", "booking.title"},
			{"/mindfulness", "mindfulness.title"},
			{"/resources", "resources.title"},
		} {
			m.Printf(`<li><a href="%s">%s</a></li>`, f.href, data.T(f.key))
		}
		m.Raw(`</ul></section>`)
	}))
}
