package components

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/web/templates/markup"
)

// PostElementID is the DOM id of a post card
func PostElementID(id model.PostID) string {
	return "post-" + string(id)
}

// LikesElementID is the DOM id of a post's like counter
func LikesElementID(id model.PostID) string {
	return PostElementID(id) + "-likes"
}

// RepliesElementID is the DOM id of a post's reply counter
func RepliesElementID(id model.PostID) string {
	return PostElementID(id) + "-replies"
}

// PostCard renders a post summary with its like button
func PostCard(post model.Post) templ.Component {
	return markup.Component(func(m *markup.Writer) {
		m.Printf(`<article class="post" id="%s">`, PostElementID(post.ID))
		m.Printf(`<h3 class="post-title"><a href="/forum/posts/%s">%s</a></h3>`, post.ID, post.Title)
		m.Render(AuthorLine(post.Author, post.CreatedAt.Format("2 Jan 2006 15:04")))
		m.Printf(`<p class="post-content">%s</p>`, post.Content)

		m.Raw(`<ul class="tags">`)
		for _, tag := range post.Tags {
			m.Printf(`<li class="tag"><a href="/forum?tag=%s">#%s</a></li>`, tag, tag)
		}
		m.Raw(`</ul>`)

		liked := ""
		if post.Liked {
			liked = " liked"
		}
		m.Printf(`<form class="like" method="post" action="/forum/posts/%s/like"><button type="submit" class="like-button%s">&#9829; `, post.ID, liked)
		m.Render(LikeCount(post))
		m.Raw(`</button></form>`)
		m.Render(ReplyCount(post))
		m.Raw(`</article>`)
	})
}

// LikeCount renders the like counter of a post
func LikeCount(post model.Post) templ.Component {
	return markup.Component(func(m *markup.Writer) {
		m.Printf(`<span class="like-count" id="%s">%d</span>`, LikesElementID(post.ID), post.Likes)
	})
}

// ReplyCount renders the reply counter of a post
func ReplyCount(post model.Post) templ.Component {
	return markup.Component(func(m *markup.Writer) {
		m.Printf(`<span class="reply-count" id="%s">%s</span>`, RepliesElementID(post.ID), ReplyLabel(post.ReplyCount))
	})
}

// ReplyLabel is the text shown in a reply counter
func ReplyLabel(n int) string {
	if n == 1 {
		return "1 reply"
	}
	return strconv.Itoa(n) + " replies"
}

// AuthorLine renders an author name, verified badge and timestamp
func AuthorLine(author model.Author, when string) templ.Component {
	return markup.Component(func(m *markup.Writer) {
		m.Printf(`<div class="author"><span class="author-name">%s</span>`, author.Name)
		if author.Verified {
			m.Raw(`<span class="verified" title="Verified">&#10003;</span>`)
		}
		m.Printf(`<time>%s</time></div>`, when)
	})
}

// ReplyItem renders one reply in a thread
func ReplyItem(reply model.Reply) templ.Component {
	return markup.Component(func(m *markup.Writer) {
		m.Printf(`<li class="reply" id="reply-%s">`, reply.ID)
		m.Render(AuthorLine(reply.Author, reply.CreatedAt.Format("2 Jan 2006 15:04")))
		m.Printf(`<p>%s</p></li>`, reply.Content)
	})
}
