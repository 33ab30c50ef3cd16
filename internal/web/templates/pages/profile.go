package pages

import (
	"github.com/a-h/templ"

	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/web/templates/layout"
	"github.com/mcoot/mindcare/internal/web/templates/markup"
)

// ProfileData is the data for the profile page
type ProfileData struct {
	layout.PageData
	Settings model.Settings
	Error    string
}

// Profile renders the session projection, the editable details and the
// notification preferences. User must be set.
func Profile(data ProfileData) templ.Component {
	return layout.Base(data.PageData, markup.Component(func(m *markup.Writer) {
		user := data.User
		details := data.Settings.Details
		m.Printf(`<section class="profile"><h1>%s</h1>`, data.T("profile.title"))

		m.Raw(`<div class="profile-card">`)
		m.Printf(`<h2 class="profile-name">%s</h2><p class="profile-email">%s</p>`, user.Name, user.Email)
		m.Printf(`<div class="score-card"><h3>%s</h3><span class="score">%d</span></div>`,
			data.T("dashboard.mentalScore"), user.MentalHealthScore)
		m.Printf(`<div class="badges"><h3>%s</h3><ul>`, data.T("dashboard.badges"))
		for _, b := range user.Badges {
			m.Printf(`<li class="badge">%s</li>`, b)
		}
		m.Raw(`</ul></div></div>`)

		formError(m, data.Error)
		m.Printf(`<form id="profile-details" method="post" action="/profile"><h2>%s</h2>`, data.T("profile.details"))
		m.Printf(`<label>Bio<textarea name="bio" maxlength="%d">%s</textarea></label>`, model.MaxBioLength, details.Bio)
		m.Printf(`<label>University<input type="text" name="university" value="%s"></label>`, details.University)
		m.Printf(`<label>Year<input type="text" name="year" value="%s"></label>`, details.Year)
		m.Printf(`<fieldset><legend>%s</legend>`, data.T("profile.contact"))
		m.Printf(`<label>Name<input type="text" name="contact_name" value="%s"></label>`, details.EmergencyContact.Name)
		m.Printf(`<label>Phone<input type="tel" name="contact_phone" value="%s"></label>`, details.EmergencyContact.Phone)
		m.Printf(`<label>Relationship<input type="text" name="contact_relationship" value="%s"></label>`, details.EmergencyContact.Relationship)
		m.Printf(`</fieldset><button type="submit">%s</button></form>`, data.T("profile.save"))

		prefs := data.Settings.Preferences
		m.Printf(`<form id="profile-preferences" method="post" action="/profile/preferences"><h2>%s</h2>`, data.T("profile.preferences"))
		for _, p := range []struct {
			name, label string
			on          bool
		}{
			{"emailNotifications", "Email notifications", prefs.EmailNotifications},
			{"pushNotifications", "Push notifications", prefs.PushNotifications},
			{"weeklyReports", "Weekly wellness reports", prefs.WeeklyReports},
			{"communityUpdates", "Community updates", prefs.CommunityUpdates},
			{"crisisAlerts", "Crisis alerts", prefs.CrisisAlerts},
		} {
			m.Printf(`<label><input type="checkbox" name="%s" value="true"`+markup.Attr(p.on, "checked")+`> %s</label>`, p.name, p.label)
		}
		m.Printf(`<button type="submit">%s</button></form></section>`, data.T("profile.save"))
	}))
}
