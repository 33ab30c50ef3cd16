package pages

import (
	"github.com/a-h/templ"

	"github.com/mcoot/mindcare/internal/web/templates/layout"
	"github.com/mcoot/mindcare/internal/web/templates/markup"
)

// BreathingStep is one phase of the breathing pattern
type BreathingStep struct {
	Name    string
	Seconds int
}

// MindfulnessData is the data for the mindfulness room
type MindfulnessData struct {
	layout.PageData
	Breathing []BreathingStep
	Minutes   int
	Clock     string // mm:ss
	Ambiences []FilterOption
	Ambience  string
	Guide     []string
	Benefits  []string
	Error     string
}

// Mindfulness renders the breathing exercise, meditation timer and
// ambience picker
func Mindfulness(data MindfulnessData) templ.Component {
	return layout.Base(data.PageData, markup.Component(func(m *markup.Writer) {
		m.Printf(`<section class="mindfulness"><h1>%s</h1>`, data.T("mindfulness.title"))

		cycle := 0
		for _, s := range data.Breathing {
			cycle += s.Seconds
		}
		m.Printf(`<div class="breathing"><h2>%s</h2><p>%s</p>`, data.T("mindfulness.breathe"), data.T("mindfulness.pattern"))
		m.Printf(`<div class="breathing-circle" style="animation-duration: %ds"></div><ol class="breathing-steps">`, cycle)
		for _, s := range data.Breathing {
			m.Printf(`<li data-seconds="%d">%s %ds</li>`, s.Seconds, s.Name, s.Seconds)
		}
		m.Raw(`</ol></div>`)

		formError(m, data.Error)
		m.Printf(`<form id="meditation-timer" class="meditation" method="get" action="/mindfulness"><h2>%s</h2>`, data.T("mindfulness.meditate"))
		m.Printf(`<span class="timer">%s</span>`, data.Clock)
		m.Printf(`<input type="range" name="minutes" min="1" max="60" step="1" value="%d">`, data.Minutes)
		m.Printf(`<input type="hidden" name="ambience" value="%s">`, data.Ambience)
		m.Printf(`<button type="submit">%s</button></form>`, data.T("mindfulness.meditate"))

		m.Printf(`<div class="guide"><h2>%s</h2><ol>`, data.T("mindfulness.guide"))
		for _, step := range data.Guide {
			m.Printf(`<li>%s</li>`, step)
		}
		m.Raw(`</ol><ul class="benefits">`)
		for _, b := range data.Benefits {
			m.Printf(`<li>%s</li>`, b)
		}
		m.Raw(`</ul></div>`)

		m.Printf(`<div class="ambience"><h2>%s</h2><ul>`, data.T("mindfulness.ambience"))
		for _, a := range data.Ambiences {
			active := ""
			if a.ID == data.Ambience {
				active = ` class="active"`
			}
			m.Printf(`<li`+active+`><a href="/mindfulness?minutes=%d&amp;ambience=%s">%s</a></li>`, data.Minutes, a.ID, a.Name)
		}
		m.Raw(`</ul></div></section>`)
	}))
}
