package pages

import (
	"github.com/a-h/templ"

	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/services/booking"
	"github.com/mcoot/mindcare/internal/web/templates/components"
	"github.com/mcoot/mindcare/internal/web/templates/layout"
	"github.com/mcoot/mindcare/internal/web/templates/markup"
)

// BookingData is the data for the booking form
type BookingData struct {
	layout.PageData
	Counselors []model.Counselor
	TimeSlots  []model.TimeSlot
	Form       booking.Request
	MinDate    string
	Error      string
}

var sessionTypes = []model.SessionType{model.SessionTypeOnline, model.SessionTypeInPerson, model.SessionTypePhone}

var urgencies = []model.Urgency{model.UrgencyNormal, model.UrgencyModerate, model.UrgencyUrgent}

// Booking renders the counselor booking form
func Booking(data BookingData) templ.Component {
	return layout.Base(data.PageData, markup.Component(func(m *markup.Writer) {
		f := data.Form
		m.Printf(`<section class="booking"><h1>%s</h1>`, data.T("booking.title"))
		formError(m, data.Error)
		m.Raw(`<form id="booking-form" method="post" action="/booking"><fieldset class="counselors">`)
		for _, c := range data.Counselors {
			m.Render(components.CounselorCard(c, c.ID == f.CounselorID))
		}
		m.Raw(`</fieldset>`)

		m.Printf(`<label>Date<input type="date" name="date" min="%s" value="%s"></label>`, data.MinDate, f.Date)

		m.Raw(`<fieldset class="time-slots">`)
		for _, slot := range data.TimeSlots {
			m.Printf(`<label class="slot"><input type="radio" name="time" value="%s"`, slot.Time)
			m.Raw(markup.Attr(slot.Time == f.Time, "checked") + markup.Attr(!slot.Available, "disabled"))
			m.Printf(`>%s</label>`, slot.Time)
		}
		m.Raw(`</fieldset>`)

		m.Raw(`<select name="session_type">`)
		for _, st := range sessionTypes {
			m.Printf(`<option value="%s"`+markup.Attr(st == f.SessionType, "selected")+`>%s</option>`, st, st)
		}
		m.Raw(`</select>`)

		m.Printf(`<textarea name="reason" placeholder="Reason for booking">%s</textarea>`, f.Details.Reason)
		m.Raw(`<select name="urgency">`)
		for _, u := range urgencies {
			m.Printf(`<option value="%s"`+markup.Attr(u == f.Details.Urgency, "selected")+`>%s</option>`, u, u)
		}
		m.Raw(`</select>`)
		m.Raw(`<label><input type="checkbox" name="previous_counseling" value="true"` + markup.Attr(f.Details.PreviousCounseling, "checked") + `> I have had counseling before</label>`)
		m.Printf(`<textarea name="notes" placeholder="Anything else?">%s</textarea>`, f.Details.AdditionalNotes)
		m.Printf(`<button type="submit">%s</button></form></section>`, data.T("booking.submit"))
	}))
}

// BookingConfirmedData is the data for the confirmation page
type BookingConfirmedData struct {
	layout.PageData
	Booking *model.Booking
}

// BookingConfirmed renders the saved booking
func BookingConfirmed(data BookingConfirmedData) templ.Component {
	return layout.Base(data.PageData, markup.Component(func(m *markup.Writer) {
		m.Printf(`<section class="booking-confirmed"><h1>%s</h1>`, data.T("booking.confirmed"))
		m.Render(components.BookingSummary(data.Booking))
		m.Printf(`<a href="/dashboard">%s</a></section>`, data.T("nav.dashboard"))
	}))
}
