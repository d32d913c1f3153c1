package admin

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/http/render"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/http/validation"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/newsletter"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/shared/apperr"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/pkg/view"
)

type NewsletterHandler struct {
	Svc *newsletter.Service
}

func NewNewsletterHandler(svc *newsletter.Service) *NewsletterHandler {
	return &NewsletterHandler{Svc: svc}
}

type composeRequest struct {
	Subject  string `json:"subject" binding:"required,max=255"`
	HTMLBody string `json:"htmlBody" binding:"required"`
	TextBody string `json:"textBody"`
}

func (h *NewsletterHandler) Compose(c *gin.Context) {
	var req composeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.InvalidErr("Check the form.", validation.FromBindError(err, &req)))
		return
	}

	n, err := h.Svc.Compose(c.Request.Context(), req.Subject, req.HTMLBody, req.TextBody)
	if err != nil {
		if errors.Is(err, newsletter.ErrEmptyNewsletter) {
			c.Error(apperr.InvalidErr("Subject and body are required.", nil))
			return
		}
		c.Error(apperr.Wrap(err))
		return
	}
	render.Created(c, "newsletter", newsletterView(n))
}

func (h *NewsletterHandler) List(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context())
	if err != nil {
		c.Error(apperr.Wrap(err))
		return
	}

	out := make([]view.Newsletter, 0, len(list))
	for _, n := range list {
		out = append(out, newsletterView(n))
	}
	render.OK(c, "newsletters", out)
}

func (h *NewsletterHandler) Send(c *gin.Context) {
	res, err := h.Svc.Send(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.Error(apperr.NotFoundErr("Newsletter not found."))
		case errors.Is(err, newsletter.ErrAlreadySent):
			c.Error(apperr.ConflictErr("This newsletter was already sent."))
		default:
			c.Error(apperr.Wrap(err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"sent":    res.Sent,
		"failed":  res.Failed,
	})
}

func newsletterView(n newsletter.Newsletter) view.Newsletter {
	return view.Newsletter{
		ID:          n.ID,
		Subject:     n.Subject,
		Status:      n.Status,
		SentCount:   n.SentCount,
		FailedCount: n.FailedCount,
		CreatedAt:   n.CreatedAt.Format(time.RFC3339),
	}
}
