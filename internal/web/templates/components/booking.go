package components

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/web/templates/markup"
)

// CounselorCard renders a counselor with a radio input for selection
func CounselorCard(c model.Counselor, selected bool) templ.Component {
	return markup.Component(func(m *markup.Writer) {
		m.Printf(`<label class="counselor" id="counselor-%s"><input type="radio" name="counselor" value="%s"`+markup.Attr(selected, "checked")+`>`, c.ID, c.ID)
		m.Printf(`<strong class="counselor-name">%s</strong> <span class="counselor-title">%s</span>`, c.Name, c.Title)
		m.Printf(`<span class="rating">%.1f</span> <span class="experience">%s</span>`, c.Rating, c.Experience)
		m.Printf(`<p class="specialization">%s</p>`, strings.Join(c.Specialization, ", "))
		days := make([]string, len(c.Availability))
		for i, d := range c.Availability {
			days[i] = d.String()
		}
		m.Printf(`<p class="availability">%s</p>`, strings.Join(days, ", "))
		m.Printf(`<p class="bio">%s</p></label>`, c.Bio)
	})
}

// BookingSummary renders a submitted booking
func BookingSummary(b *model.Booking) templ.Component {
	return markup.Component(func(m *markup.Writer) {
		if b == nil {
			return
		}
		m.Raw(`<dl class="booking-summary">`)
		m.Printf(`<dt>Counselor</dt><dd class="counselor-name">%s</dd>`, b.Counselor.Name)
		m.Printf(`<dt>Date</dt><dd class="date">%s</dd>`, b.Date)
		m.Printf(`<dt>Time</dt><dd class="time">%s</dd>`, b.Time)
		m.Printf(`<dt>Session</dt><dd class="session-type">%s</dd>`, b.SessionType)
		m.Printf(`<dt>Urgency</dt><dd class="urgency">%s</dd>`, b.Details.Urgency)
		m.Raw(`</dl>`)
	})
}
