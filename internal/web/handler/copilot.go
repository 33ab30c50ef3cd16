package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mcoot/mindcare/internal/model"
	"github.com/mcoot/mindcare/internal/services/chat"
	"github.com/mcoot/mindcare/internal/services/scheduler"
	"github.com/mcoot/mindcare/internal/web/middleware"
	"github.com/mcoot/mindcare/internal/web/templates/pages"
)

// CopilotHandler handles the chat assistant page
type CopilotHandler struct {
	logger *slog.Logger
}

// NewCopilotHandler creates a new CopilotHandler
func NewCopilotHandler(logger *slog.Logger) *CopilotHandler {
	return &CopilotHandler{logger: logger}
}

// View renders the conversation so far
func (h *CopilotHandler) View(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "")
}

// Send posts a message and waits for the assistant's reply. htmx requests
// get just the new messages; plain form posts are redirected back.
func (h *CopilotHandler) Send(w http.ResponseWriter, r *http.Request) {
	p := middleware.GetProfile(r.Context())
	before := len(p.Chat.Messages())

	_, err := p.Chat.Send(r.Context(), r.FormValue("message"))
	switch {
	case errors.Is(err, model.ErrEmptyMessage):
		if isHTMX(r) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		h.renderPage(w, r, "Please type a message")
		return
	case errors.Is(err, scheduler.ErrCancelled):
		// The browser left before the reply was due; nobody is listening
		return
	case errors.Is(err, chat.ErrConversationClosed):
		renderError(w, r, http.StatusServiceUnavailable, "The conversation has ended, please reload")
		return
	case err != nil:
		h.logger.Error("chat send failed", slog.String("profile", string(p.ID)), slog.Any("error", err))
		renderError(w, r, http.StatusInternalServerError, "Something went wrong")
		return
	}

	if isHTMX(r) {
		messages := p.Chat.Messages()
		if before > len(messages) {
			before = len(messages)
		}
		render(w, r, http.StatusOK, pages.CopilotExchange(messages[before:]))
		return
	}
	http.Redirect(w, r, "/copilot", http.StatusSeeOther)
}

func (h *CopilotHandler) renderPage(w http.ResponseWriter, r *http.Request, errorMsg string) {
	p := middleware.GetProfile(r.Context())
	render(w, r, http.StatusOK, pages.Copilot(pages.CopilotData{
		PageData:    pageData(r, "AI Copilot", "copilot"),
		Messages:    p.Chat.Messages(),
		Suggestions: chat.Suggestions(),
		Error:       errorMsg,
	}))
}
