package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/mindcare/internal/api/middleware"
	"github.com/mcoot/mindcare/internal/api/request"
	"github.com/mcoot/mindcare/internal/api/response"
	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/services/forum"
)

// ForumHandler handles peer forum endpoints
type ForumHandler struct {
	forum *forum.Service
}

// NewForumHandler creates a new forum handler
func NewForumHandler(forumService *forum.Service) *ForumHandler {
	return &ForumHandler{forum: forumService}
}

// List handles GET /api/v1/forum/posts?q=&tag=
func (h *ForumHandler) List(w http.ResponseWriter, r *http.Request) {
	p := middleware.MustGetProfile(r.Context())
	query := r.URL.Query()

	posts := h.forum.List(query.Get("q"), query.Get("tag"), p.ID)
	result := response.PostList{
		Posts: make([]response.Post, len(posts)),
		Tags:  h.forum.Tags(),
	}
	for i := range posts {
		result.Posts[i] = response.PostFromModel(&posts[i])
		result.Posts[i].Replies = nil
	}

	response.JSON(w, http.StatusOK, result)
}

// Get handles GET /api/v1/forum/posts/{id}
func (h *ForumHandler) Get(w http.ResponseWriter, r *http.Request) {
	p := middleware.MustGetProfile(r.Context())

	post, err := h.forum.Get(postID(r), p.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PostFromModel(post))
}

// Create handles POST /api/v1/forum/posts
func (h *ForumHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePostRequest
	if !decode(w, r, &req) {
		return
	}

	p := middleware.MustGetProfile(r.Context())
	post, err := h.forum.Create(r.Context(), authorFor(p.Session.Current(), req.Anonymous), req.Title, req.Content, req.Tags)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Created(w, response.PostFromModel(post))
}

// Like handles POST /api/v1/forum/posts/{id}/like, toggling the profile's like
func (h *ForumHandler) Like(w http.ResponseWriter, r *http.Request) {
	p := middleware.MustGetProfile(r.Context())

	post, err := h.forum.ToggleLike(r.Context(), postID(r), p.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PostFromModel(post))
}

// Reply handles POST /api/v1/forum/posts/{id}/replies
func (h *ForumHandler) Reply(w http.ResponseWriter, r *http.Request) {
	var req request.ReplyRequest
	if !decode(w, r, &req) {
		return
	}

	p := middleware.MustGetProfile(r.Context())
	reply, err := h.forum.Reply(r.Context(), postID(r), authorFor(p.Session.Current(), req.Anonymous), req.Content)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Created(w, response.ReplyFromModel(*reply))
}

func postID(r *http.Request) model.PostID {
	return model.PostID(mux.Vars(r)["id"])
}

// authorFor names logged in authors unless they chose to stay anonymous
func authorFor(user *model.SessionUser, anonymous bool) model.Author {
	if user == nil || anonymous {
		return model.Author{Name: model.AnonymousAuthor}
	}
	return model.Author{Name: user.Name}
}
