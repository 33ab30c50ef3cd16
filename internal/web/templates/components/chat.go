package components

import (
	"github.com/a-h/templ"

	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/web/templates/markup"
)

// ChatMessage renders one copilot message bubble
func ChatMessage(msg model.ChatMessage) templ.Component {
	return markup.Component(func(m *markup.Writer) {
		m.Printf(`<div class="message message-%s" data-id="%s"`, msg.Sender, msg.ID)
		if msg.Type != model.MessageTypeNone {
			m.Printf(` data-type="%s"`, msg.Type)
		}
		if msg.Topic != "" {
			m.Printf(` data-topic="%s"`, msg.Topic)
		}
		m.Printf(`><p>%s</p><time>%s</time></div>`, msg.Content, msg.Timestamp.Format("15:04"))
	})
}
