package pages

import (
	"github.com/a-h/templ"

	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/web/templates/components"
	"github.com/mcoot/mindcare/internal/web/templates/layout"
	"github.com/mcoot/mindcare/internal/web/templates/markup"
)

// ForumData is the data for the forum listing
type ForumData struct {
	layout.PageData
	Posts []model.Post
	Tags  []string
	Query string
	Tag   string
	Error string
}

// Forum renders the search form, new post form and post list. The list
// subscribes to /forum/events so new posts appear without a reload.
func Forum(data ForumData) templ.Component {
	return layout.Base(data.PageData, markup.Component(func(m *markup.Writer) {
		m.Printf(`<section class="forum" hx-ext="sse" sse-connect="/forum/events"><h1>%s</h1>`, data.T("forum.title"))

		m.Raw(`<form id="forum-search" method="get" action="/forum">`)
		m.Printf(`<input type="search" name="q" value="%s">`, data.Query)
		m.Printf(`<input type="hidden" name="tag" value="%s"><button type="submit">Search</button></form>`, data.Tag)

		m.Raw(`<ul class="popular-tags">`)
		for _, tag := range data.Tags {
			active := ""
			if tag == data.Tag {
				active = ` class="active"`
			}
			m.Printf(`<li`+active+`><a href="/forum?tag=%s">#%s</a></li>`, tag, tag)
		}
		m.Raw(`</ul>`)

		formError(m, data.Error)
		m.Printf(`<form id="new-post" method="post" action="/forum/posts"><h2>%s</h2>`, data.T("forum.newPost"))
		m.Raw(`<input type="text" name="title" placeholder="Title">`)
		m.Printf(`<textarea name="content" placeholder="%s"></textarea>`, data.T("forum.post"))
		m.Raw(`<input type="text" name="tags" placeholder="tags, comma separated">`)
		m.Raw(`<label><input type="checkbox" name="anonymous" value="true"> Post anonymously</label><button type="submit">Post</button></form>`)

		m.Raw(`<div id="forum-posts" sse-swap="post-created" hx-swap="afterbegin">`)
		if len(data.Posts) == 0 {
			m.Raw(`<p class="empty">No posts found.</p>`)
		}
		for _, post := range data.Posts {
			m.Render(components.PostCard(post))
		}
		m.Raw(`</div><div hidden sse-swap="post-updated" hx-swap="none"></div></section>`)
	}))
}

// ForumPostData is the data for a single thread
type ForumPostData struct {
	layout.PageData
	Post  model.Post
	Error string
}

// ForumPost renders a thread with its replies and a reply form
func ForumPost(data ForumPostData) templ.Component {
	return layout.Base(data.PageData, markup.Component(func(m *markup.Writer) {
		m.Raw(`<section class="thread"><a href="/forum">&larr; Forum</a>`)
		m.Render(components.PostCard(data.Post))
		m.Raw(`<ol class="replies">`)
		for _, r := range data.Post.Replies {
			m.Render(components.ReplyItem(r))
		}
		m.Raw(`</ol>`)
		formError(m, data.Error)
		m.Printf(`<form id="reply-form" method="post" action="/forum/posts/%s/replies">`, data.Post.ID)
		m.Printf(`<textarea name="content"></textarea><button type="submit">%s</button></form></section>`, data.T("forum.reply"))
	}))
}
