// Package layout holds the page chrome shared by every page
package layout

import (
	"github.com/a-h/templ"

	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/web/templates/markup"
)

// FlashMessage is a one-shot notice carried across a redirect
type FlashMessage struct {
	Type    string // success, error or info
	Message string
}

// Translator resolves translation keys for the active language
type Translator interface {
	Translate(key string) string
	Language() model.Language
}

// PageData is the data every page needs to render the chrome
type PageData struct {
	Title  string
	Active string // nav key of the current page, e.g. "forum"
	User   *model.SessionUser
	Flash  *FlashMessage
	Locale Translator
}

// T translates key, returning it unchanged when no translator is set
func (p PageData) T(key string) string {
	if p.Locale == nil {
		return key
	}
	return p.Locale.Translate(key)
}

// Lang returns the active language tag
func (p PageData) Lang() model.Language {
	if p.Locale == nil {
		return model.DefaultLanguage
	}
	return p.Locale.Language()
}

// htmx and its SSE extension are loaded from the public package CDN
const (
	htmxScript    = "https://unpkg.com/htmx.org@2.0.4"
	htmxSSEScript = "https://unpkg.com/htmx-ext-sse@2.2.2"
)

type navItem struct {
	key  string
	href string
}

var navItems = []navItem{
	{"home", "/"},
	{"dashboard", "/dashboard"},
	{"copilot", "/copilot"},
	{"forum", "/forum"},
	{"booking", "/booking"},
	{"stress", "/stress"},
	{"resources", "/resources"},
	{"mindfulness", "/mindfulness"},
	{"profile", "/profile"},
	{"quickHelp", "/emergency"},
}

// Base wraps content in the document shell
func Base(data PageData, content templ.Component) templ.Component {
	return markup.Component(func(m *markup.Writer) {
		m.Printf(`<!DOCTYPE html><html lang="%s"><head><meta charset="utf-8">`, data.Lang())
		m.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.Printf(`<title>%s | MindCare</title>`, data.Title)
		m.Raw(`<link rel="stylesheet" href="/static/css/style.css">`)
		m.Raw(`<script src="` + htmxScript + `"></script><script src="` + htmxSSEScript + `"></script>`)
		m.Raw(`</head><body>`)
		m.Render(nav(data))
		m.Printf(`<div class="privacy-banner">%s</div>`, data.T("privacy.banner"))
		m.Render(Flash(data.Flash))
		m.Raw(`<main id="content">`)
		m.Render(content)
		m.Raw(`</main>`)
		m.Printf(`<footer><strong>%s</strong> <span class="helpline">%s</span></footer>`,
			data.T("emergency.title"), data.T("emergency.helpline"))
		m.Raw(`</body></html>`)
	})
}

func nav(data PageData) templ.Component {
	return markup.Component(func(m *markup.Writer) {
		m.Raw(`<nav class="navbar"><a class="brand" href="/">MindCare</a><ul class="nav-links">`)
		for _, item := range navItems {
			class := ""
			if item.key == data.Active {
				class = ` class="active"`
			}
			m.Printf(`<li><a href="%s"`+class+`>%s</a></li>`, item.href, data.T("nav."+item.key))
		}
		m.Raw(`</ul>`)

		next := model.LanguageHindi
		if data.Lang() == model.LanguageHindi {
			next = model.LanguageEnglish
		}
		m.Printf(`<form class="language-toggle" method="post" action="/language"><input type="hidden" name="lang" value="%s"><button type="submit">%s</button></form>`,
			next, data.T("nav.language"))

		if data.User != nil {
			m.Printf(`<span class="nav-user">%s</span>`, data.User.Name)
			m.Printf(`<form class="logout" method="post" action="/logout"><button type="submit">%s</button></form>`, data.T("nav.logout"))
		} else {
			m.Printf(`<a class="nav-login" href="/login">%s</a>`, data.T("nav.login"))
		}
		m.Raw(`</nav>`)
	})
}

// Flash renders a flash message, or nothing
func Flash(f *FlashMessage) templ.Component {
	return markup.Component(func(m *markup.Writer) {
		if f == nil || f.Message == "" {
			return
		}
		m.Printf(`<div class="flash flash-%s" role="alert">%s</div>`, f.Type, f.Message)
	})
}
