package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/http/middleware"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/http/render"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/http/validation"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/users"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/shared/apperr"
)

type AuthHandler struct {
	Users      *users.Service
	SessionCfg middleware.SessionCfg
}

func NewAuthHandler(svc *users.Service, cfg middleware.SessionCfg) *AuthHandler {
	return &AuthHandler{Users: svc, SessionCfg: cfg}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.InvalidErr("Check the form.", validation.FromBindError(err, &req)))
		return
	}

	u, err := h.Users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrBadCredentials):
			c.Error(apperr.UnauthorizedErr("Email or password is incorrect."))
		case errors.Is(err, users.ErrBlocked):
			c.Error(apperr.ForbiddenErr("This account is blocked."))
		default:
			c.Error(apperr.Wrap(err))
		}
		return
	}

	sess, err := middleware.CreateSession(h.SessionCfg, u.ID)
	if err != nil {
		c.Error(apperr.Wrap(err))
		return
	}

	maxAge := int(h.SessionCfg.TTL.Seconds())
	c.SetCookie(h.SessionCfg.CookieName, sess.ID, maxAge, "/", "", h.SessionCfg.Secure, true)

	render.OK(c, "user", gin.H{
		"id":    u.ID,
		"email": u.Email,
		"role":  u.Role,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(h.SessionCfg.CookieName); err == nil && sessionID != "" {
		if err := middleware.DeleteSession(h.SessionCfg, sessionID); err != nil {
			c.Error(apperr.Wrap(err))
			return
		}
	}
	c.SetCookie(h.SessionCfg.CookieName, "", -1, "/", "", h.SessionCfg.Secure, true)
	render.Message(c, "Signed out.")
}

func (h *AuthHandler) Me(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"success": true, "user": nil})
		return
	}
	render.OK(c, "user", gin.H{
		"id":    u.ID,
		"email": u.Email,
		"role":  u.Role,
	})
}
