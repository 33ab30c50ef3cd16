package pages

import (
	"github.com/a-h/templ"

	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/web/templates/layout"
	"github.com/mcoot/mindcare/internal/web/templates/markup"
)

// DashboardData is the data for the wellness dashboard
type DashboardData struct {
	layout.PageData
	Moods []model.Mood
}

// Dashboard renders the score, badges and mood check-in. User must be set.
func Dashboard(data DashboardData) templ.Component {
	return layout.Base(data.PageData, markup.Component(func(m *markup.Writer) {
		user := data.User
		m.Printf(`<section class="dashboard"><h1>%s</h1>`, data.T("dashboard.title"))
		m.Printf(`<p class="welcome">%s</p>`, user.Name)

		m.Printf(`<div class="score-card"><h2>%s</h2><span class="score">%d</span></div>`,
			data.T("dashboard.mentalScore"), user.MentalHealthScore)

		m.Printf(`<div class="badges"><h2>%s</h2><ul>`, data.T("dashboard.badges"))
		for _, b := range user.Badges {
			m.Printf(`<li class="badge">%s</li>`, b)
		}
		m.Raw(`</ul></div>`)

		m.Printf(`<form id="mood-form" method="post" action="/dashboard/mood"><h2>%s</h2>`, data.T("dashboard.moodToday"))
		for _, mood := range data.Moods {
			m.Printf(`<button type="submit" name="mood" value="%s" class="mood">%s</button>`, mood, mood)
		}
		m.Raw(`</form></section>`)
	}))
}
