package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/http/render"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/http/validation"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/newsletter"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/shared/apperr"
)

// NewsletterHandler covers the storefront-facing subscribe endpoints. The
// admin compose/send surface lives under handlers/admin.
type NewsletterHandler struct {
	Svc *newsletter.Service
}

func NewNewsletterHandler(svc *newsletter.Service) *NewsletterHandler {
	return &NewsletterHandler{Svc: svc}
}

type subscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"max=200"`
}

func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.InvalidErr("Check the form.", validation.FromBindError(err, &req)))
		return
	}

	if _, err := h.Svc.Subscribe(c.Request.Context(), req.Email, req.Name); err != nil {
		c.Error(apperr.Wrap(err))
		return
	}
	render.Message(c, "Subscribed. Welcome aboard!")
}

type unsubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	var req unsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.InvalidErr("Check the form.", validation.FromBindError(err, &req)))
		return
	}

	if err := h.Svc.Unsubscribe(c.Request.Context(), req.Email); err != nil {
		c.Error(apperr.Wrap(err))
		return
	}
	render.Message(c, "Unsubscribed.")
}
