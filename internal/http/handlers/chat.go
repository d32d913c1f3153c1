package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/http/render"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/http/validation"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/chat"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/shared/apperr"
)

type ChatHandler struct {
	Svc *chat.Service
}

func NewChatHandler(svc *chat.Service) *ChatHandler {
	return &ChatHandler{Svc: svc}
}

type chatRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message" binding:"required,max=2000"`
}

func (h *ChatHandler) Ask(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.InvalidErr("Check the form.", validation.FromBindError(err, &req)))
		return
	}

	reply, err := h.Svc.Ask(c.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrEmptyMessage):
			c.Error(apperr.InvalidErr("Message must not be empty.", nil))
		case errors.Is(err, chat.ErrChatDisabled):
			c.Error(apperr.ConflictErr("The assistant is not available right now."))
		default:
			c.Error(apperr.FetchErr("The assistant could not answer. Try again.", err))
		}
		return
	}

	render.OK(c, "reply", gin.H{
		"sessionId": reply.SessionID,
		"role":      reply.Role,
		"content":   reply.Content,
		"at":        reply.CreatedAt,
	})
}

func (h *ChatHandler) Transcript(c *gin.Context) {
	msgs, err := h.Svc.Transcript(c.Request.Context(), c.Param("session"))
	if err != nil {
		c.Error(apperr.Wrap(err))
		return
	}

	out := make([]gin.H, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, gin.H{"role": m.Role, "content": m.Content, "at": m.CreatedAt})
	}
	render.OK(c, "messages", out)
}
