package pages

import (
	"github.com/a-h/templ"

	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/web/templates/layout"
	"github.com/mcoot/mindcare/internal/web/templates/markup"
)

// EmergencyData is the data for the emergency support page
type EmergencyData struct {
	layout.PageData
	Helplines        []model.Helpline
	QuickActions     []model.QuickAction
	CrisisResources  []model.CrisisResource
	CopingStrategies []string
	WarningSigns     model.WarningSigns
	CrisisNumber     string // dialled by the "call" quick action
	ActiveCall       *model.Call
	Error            string
}

// Emergency renders helplines, quick actions, coping strategies and
// warning signs. Call buttons are disabled while a call is connecting.
func Emergency(data EmergencyData) templ.Component {
	return layout.Base(data.PageData, markup.Component(func(m *markup.Writer) {
		m.Printf(`<section class="emergency"><h1>%s</h1>`, data.T("emergency.title"))
		m.Raw(`<div class="alert urgent"><strong>If you are in immediate danger or having thoughts of self-harm, please call emergency services (112) right away.</strong></div>`)

		busy := data.ActiveCall != nil
		if busy {
			m.Printf(`<div class="call-status" role="status">%s %s (%s)</div>`,
				data.T("emergency.connecting"), data.ActiveCall.Helpline.Name, data.ActiveCall.Helpline.Number)
		}
		formError(m, data.Error)

		m.Printf(`<div class="helplines"><h2>%s</h2>`, data.T("emergency.helplines"))
		for _, h := range data.Helplines {
			m.Printf(`<div class="helpline-card"><h3>%s</h3><p>%s</p><span class="available">%s</span>`, h.Name, h.Description, h.Available)
			m.Printf(`<form method="post" action="/emergency/call"><input type="hidden" name="number" value="%s">`, h.Number)
			m.Printf(`<button type="submit" class="call"`+markup.Attr(busy, "disabled")+`>%s %s</button></form></div>`, data.T("emergency.call"), h.Number)
		}
		m.Raw(`</div>`)

		m.Printf(`<div class="quick-actions"><h2>%s</h2><ul>`, data.T("emergency.actions"))
		for _, a := range data.QuickActions {
			class := "quick-action"
			if a.Urgent {
				class += " urgent"
			}
			m.Printf(`<li class="%s" id="action-%s"><strong>%s</strong> <span>%s</span>`, class, a.ID, a.Title, a.Description)
			switch {
			case a.URL != "":
				m.Printf(` <a href="%s" target="_blank" rel="noopener">Open</a>`, a.URL)
			case a.ID == "call":
				m.Printf(`<form method="post" action="/emergency/call"><input type="hidden" name="number" value="%s">`, data.CrisisNumber)
				m.Raw(`<button type="submit"` + markup.Attr(busy, "disabled") + `>Call now</button></form>`)
			case a.ID == "contact":
				m.Raw(` <a href="/profile">Open</a>`)
			case a.ID == "plan":
				m.Raw(` <a href="#coping">Open</a>`)
			}
			m.Raw(`</li>`)
		}
		m.Raw(`</ul></div>`)

		m.Printf(`<div class="coping" id="coping"><h2>%s</h2><ol>`, data.T("emergency.coping"))
		for _, s := range data.CopingStrategies {
			m.Printf(`<li>%s</li>`, s)
		}
		m.Raw(`</ol></div>`)

		m.Printf(`<div class="crisis-resources"><h2>%s</h2>`, data.T("emergency.resources"))
		for _, r := range data.CrisisResources {
			m.Printf(`<div class="crisis-resource"><h3><a href="%s" target="_blank" rel="noopener">%s</a></h3><p>%s</p><ul>`, r.Website, r.Name, r.Description)
			for _, s := range r.Services {
				m.Printf(`<li>%s</li>`, s)
			}
			m.Raw(`</ul></div>`)
		}
		m.Raw(`</div>`)

		m.Printf(`<div class="warning-signs"><h2>%s</h2>`, data.T("emergency.warning"))
		m.Raw(`<div class="signs-immediate"><h3>Immediate Danger Signs:</h3><ul>`)
		for _, s := range data.WarningSigns.Immediate {
			m.Printf(`<li>%s</li>`, s)
		}
		m.Raw(`</ul></div><div class="signs-soon"><h3>Seek Support Soon:</h3><ul>`)
		for _, s := range data.WarningSigns.Soon {
			m.Printf(`<li>%s</li>`, s)
		}
		m.Raw(`</ul></div></div></section>`)
	}))
}
