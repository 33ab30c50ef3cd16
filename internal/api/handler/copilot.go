package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mcoot/mindcare/internal/api/middleware"
	"github.com/mcoot/mindcare/internal/api/request"
	"github.com/mcoot/mindcare/internal/api/response"
	"github.com/mcoot/mindcare/internal/services/scheduler"
)

// CopilotHandler handles the AI copilot conversation
type CopilotHandler struct {
	logger *slog.Logger
}

// NewCopilotHandler creates a new copilot handler
func NewCopilotHandler(logger *slog.Logger) *CopilotHandler {
	return &CopilotHandler{logger: logger}
}

// Messages handles GET /api/v1/copilot/messages
func (h *CopilotHandler) Messages(w http.ResponseWriter, r *http.Request) {
	p := middleware.MustGetProfile(r.Context())
	response.JSON(w, http.StatusOK, response.ConversationFromModel(p.Chat.Messages()))
}

// Send handles POST /api/v1/copilot/messages. It blocks until the reply
// is ready and returns it.
func (h *CopilotHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req request.SendMessageRequest
	if !decode(w, r, &req) {
		return
	}

	p := middleware.MustGetProfile(r.Context())
	reply, err := p.Chat.Send(r.Context(), req.Content)
	if errors.Is(err, scheduler.ErrCancelled) && r.Context().Err() != nil {
		// Client went away
		return
	}
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Created(w, response.ChatMessageFromModel(*reply))
}
