package pages

import (
	"github.com/a-h/templ"

	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/web/templates/components"
	"github.com/mcoot/mindcare/internal/web/templates/layout"
	"github.com/mcoot/mindcare/internal/web/templates/markup"
)

// CopilotData is the data for the chat assistant page
type CopilotData struct {
	layout.PageData
	Messages    []model.ChatMessage
	Suggestions []model.ChatSuggestion
	Error       string
}

// Copilot renders the conversation and the message form
func Copilot(data CopilotData) templ.Component {
	return layout.Base(data.PageData, markup.Component(func(m *markup.Writer) {
		m.Printf(`<section class="copilot"><h1>%s</h1>`, data.T("copilot.title"))
		m.Raw(`<div id="messages">`)
		for _, msg := range data.Messages {
			m.Render(components.ChatMessage(msg))
		}
		m.Raw(`</div>`)
		formError(m, data.Error)

		m.Raw(`<form id="chat-form" method="post" action="/copilot" hx-post="/copilot" hx-target="#messages" hx-swap="beforeend">`)
		m.Printf(`<input type="text" name="message" placeholder="%s" autocomplete="off">`, data.T("copilot.placeholder"))
		m.Printf(`<button type="submit">%s</button></form>`, data.T("copilot.send"))

		m.Raw(`<ul class="suggestions">`)
		for _, s := range data.Suggestions {
			m.Printf(`<li><form method="post" action="/copilot"><button type="submit" name="message" value="%s" data-type="%s">%s</button></form></li>`,
				s.Text, s.Topic, s.Text)
		}
		m.Raw(`</ul></section>`)
	}))
}

// CopilotExchange renders the messages appended by one send, for htmx swaps
func CopilotExchange(messages []model.ChatMessage) templ.Component {
	return markup.Component(func(m *markup.Writer) {
		for _, msg := range messages {
			m.Render(components.ChatMessage(msg))
		}
	})
}
