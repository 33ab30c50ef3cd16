package pages

import (
	"github.com/a-h/templ"

	"github.com/mcoot/mindcare/internal/web/templates/layout"
	"github.com/mcoot/mindcare/internal/web/templates/markup"
)

// LoginData is the data for the login page
type LoginData struct {
	layout.PageData
	Email string
	Error string
	Next  string
}

// Login renders the login form
func Login(data LoginData) templ.Component {
	return layout.Base(data.PageData, markup.Component(func(m *markup.Writer) {
		m.Printf(`<section class="auth"><h1>%s</h1>`, data.T("auth.login"))
		formError(m, data.Error)
		m.Raw(`<form id="login-form" method="post" action="/login">`)
		m.Printf(`<input type="hidden" name="next" value="%s">`, data.Next)
		m.Printf(`<label>%s<input type="email" name="email" value="%s" required></label>`, data.T("auth.email"), data.Email)
		m.Printf(`<label>%s<input type="password" name="password" required></label>`, data.T("auth.password"))
		m.Printf(`<button type="submit">%s</button></form>`, data.T("auth.login"))
		m.Printf(`<p><a href="/signup">%s</a></p></section>`, data.T("auth.signup"))
	}))
}

// SignupData is the data for the signup page
type SignupData struct {
	layout.PageData
	Name  string
	Email string
	Error string
}

// Signup renders the signup form
func Signup(data SignupData) templ.Component {
	return layout.Base(data.PageData, markup.Component(func(m *markup.Writer) {
		m.Printf(`<section class="auth"><h1>%s</h1>`, data.T("auth.signup"))
		formError(m, data.Error)
		m.Raw(`<form id="signup-form" method="post" action="/signup">`)
		m.Printf(`<label>%s<input type="text" name="name" value="%s" required></label>`, data.T("auth.name"), data.Name)
		m.Printf(`<label>%s<input type="email" name="email" value="%s" required></label>`, data.T("auth.email"), data.Email)
		m.Printf(`<label>%s<input type="password" name="password" required></label>`, data.T("auth.password"))
		m.Printf(`<label>%s<input type="password" name="confirm_password" required></label>`, data.T("auth.confirmPassword"))
		m.Printf(`<button type="submit">%s</button></form>`, data.T("auth.signup"))
		m.Printf(`<p><a href="/login">%s</a></p></section>`, data.T("auth.login"))
	}))
}

func formError(m *markup.Writer, msg string) {
	if msg != "" {
		m.Printf(`<div class="form-error" role="alert">%s</div>`, msg)
	}
}
