package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/services/forum"
	"github.com/mcoot/mindcare/internal/web/middleware"
	"github.com/mcoot/mindcare/internal/web/sse"
	"github.com/mcoot/mindcare/internal/web/templates/pages"
)

// ForumHandler handles the peer forum pages and its event stream
type ForumHandler struct {
	forum      *forum.Service
	hubManager *sse.HubManager
	logger     *slog.Logger
}

// NewForumHandler creates a new ForumHandler
func NewForumHandler(forumService *forum.Service, hubManager *sse.HubManager, logger *slog.Logger) *ForumHandler {
	return &ForumHandler{
		forum:      forumService,
		hubManager: hubManager,
		logger:     logger,
	}
}

// List renders the forum, filtered by ?q= and ?tag=
func (h *ForumHandler) List(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r, http.StatusOK, "")
}

// Create adds a post from the new post form
func (h *ForumHandler) Create(w http.ResponseWriter, r *http.Request) {
	p := middleware.GetProfile(r.Context())
	author := authorFor(p.Session.Current(), r.FormValue("anonymous") == "true")

	post, err := h.forum.Create(r.Context(), author, r.FormValue("title"), r.FormValue("content"), splitTags(r.FormValue("tags")))
	if errors.Is(err, model.ErrInvalidPost) {
		h.renderList(w, r, http.StatusUnprocessableEntity, "Please give your post a title and some content")
		return
	}
	if err != nil {
		h.logger.Error("failed to create post", slog.Any("error", err))
		renderError(w, r, http.StatusInternalServerError, "Something went wrong")
		return
	}

	middleware.SetFlash(w, middleware.FlashSuccess, "Your post is live")
	http.Redirect(w, r, "/forum/posts/"+string(post.ID), http.StatusSeeOther)
}

// View renders a single thread
func (h *ForumHandler) View(w http.ResponseWriter, r *http.Request) {
	h.renderPost(w, r, http.StatusOK, "")
}

// Like toggles the profile's like on a post
func (h *ForumHandler) Like(w http.ResponseWriter, r *http.Request) {
	p := middleware.GetProfile(r.Context())
	id := model.PostID(mux.Vars(r)["id"])

	if _, err := h.forum.ToggleLike(r.Context(), id, p.ID); err != nil {
		NotFound(w, r)
		return
	}
	http.Redirect(w, r, refererPath(r), http.StatusSeeOther)
}

// Reply adds a reply to a thread
func (h *ForumHandler) Reply(w http.ResponseWriter, r *http.Request) {
	p := middleware.GetProfile(r.Context())
	id := model.PostID(mux.Vars(r)["id"])
	author := authorFor(p.Session.Current(), r.FormValue("anonymous") == "true")

	_, err := h.forum.Reply(r.Context(), id, author, r.FormValue("content"))
	switch {
	case errors.Is(err, model.ErrPostNotFound):
		NotFound(w, r)
		return
	case errors.Is(err, model.ErrEmptyReply):
		h.renderPost(w, r, http.StatusUnprocessableEntity, "Reply cannot be empty")
		return
	case err != nil:
		h.logger.Error("failed to add reply", slog.Any("error", err))
		renderError(w, r, http.StatusInternalServerError, "Something went wrong")
		return
	}

	http.Redirect(w, r, "/forum/posts/"+string(id), http.StatusSeeOther)
}

// Events streams forum updates over SSE
func (h *ForumHandler) Events(w http.ResponseWriter, r *http.Request) {
	p := middleware.GetProfile(r.Context())
	hub := h.hubManager.GetOrCreateHub(sse.ForumChannel)
	sse.ServeSSE(w, r, hub, p.ID)
}

func (h *ForumHandler) renderList(w http.ResponseWriter, r *http.Request, status int, errorMsg string) {
	p := middleware.GetProfile(r.Context())
	query := r.URL.Query().Get("q")
	tag := r.URL.Query().Get("tag")

	render(w, r, status, pages.Forum(pages.ForumData{
		PageData: pageData(r, "Forum", "forum"),
		Posts:    h.forum.List(query, tag, p.ID),
		Tags:     h.forum.Tags(),
		Query:    query,
		Tag:      tag,
		Error:    errorMsg,
	}))
}

func (h *ForumHandler) renderPost(w http.ResponseWriter, r *http.Request, status int, errorMsg string) {
	p := middleware.GetProfile(r.Context())
	post, err := h.forum.Get(model.PostID(mux.Vars(r)["id"]), p.ID)
	if err != nil {
		NotFound(w, r)
		return
	}

	render(w, r, status, pages.ForumPost(pages.ForumPostData{
		PageData: pageData(r, post.Title, "forum"),
		Post:     *post,
		Error:    errorMsg,
	}))
}

// authorFor names forum content after the logged in user unless they
// asked to stay anonymous
func authorFor(user *model.SessionUser, anonymous bool) model.Author {
	if user == nil || anonymous {
		return model.Author{Name: model.AnonymousAuthor}
	}
	return model.Author{Name: user.Name}
}

func splitTags(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return strings.Split(value, ",")
}
