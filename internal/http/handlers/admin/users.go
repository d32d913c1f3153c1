package admin

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/http/middleware"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/http/render"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/http/validation"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/modules/users"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/shared/apperr"
	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/pkg/view"
)

const usersPageSize = 30

type UsersHandler struct {
	Svc *users.Service
}

func NewUsersHandler(svc *users.Service) *UsersHandler {
	return &UsersHandler{Svc: svc}
}

func (h *UsersHandler) List(c *gin.Context) {
	res, err := h.Svc.List(c.Request.Context(), users.ListParams{
		Q:        strings.TrimSpace(c.Query("q")),
		Role:     strings.TrimSpace(c.Query("role")),
		Page:     parseInt(c.Query("page"), 1),
		PageSize: usersPageSize,
	})
	if err != nil {
		c.Error(apperr.Wrap(err))
		return
	}

	items := make([]view.User, 0, len(res.Items))
	for _, u := range res.Items {
		items = append(items, userView(u))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"users":   items,
		"total":   res.Total,
	})
}

type createUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role" binding:"required,oneof=admin customer"`
}

func (h *UsersHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.InvalidErr("Check the form.", validation.FromBindError(err, &req)))
		return
	}

	u, err := h.Svc.Create(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			c.Error(apperr.ConflictErr("That email is already registered."))
			return
		}
		c.Error(apperr.Wrap(err))
		return
	}
	render.Created(c, "user", userView(u))
}

type setRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin customer"`
}

func (h *UsersHandler) SetRole(c *gin.Context) {
	var req setRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.InvalidErr("Check the form.", validation.FromBindError(err, &req)))
		return
	}

	id := c.Param("id")
	if cur, ok := middleware.CurrentUser(c); ok && cur.ID == id && req.Role != users.RoleAdmin {
		c.Error(apperr.ConflictErr("You cannot demote your own account."))
		return
	}

	if err := h.Svc.SetRole(c.Request.Context(), id, req.Role); err != nil {
		c.Error(userError(err))
		return
	}
	render.Message(c, "Role updated.")
}

type setBlockedRequest struct {
	Blocked *bool `json:"blocked" binding:"required"`
}

func (h *UsersHandler) SetBlocked(c *gin.Context) {
	var req setBlockedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.InvalidErr("Check the form.", validation.FromBindError(err, &req)))
		return
	}

	id := c.Param("id")
	if cur, ok := middleware.CurrentUser(c); ok && cur.ID == id && *req.Blocked {
		c.Error(apperr.ConflictErr("You cannot block your own account."))
		return
	}

	if err := h.Svc.SetBlocked(c.Request.Context(), id, *req.Blocked); err != nil {
		c.Error(userError(err))
		return
	}
	render.Message(c, "User updated.")
}

type setPasswordRequest struct {
	Password string `json:"password" binding:"required,min=8,max=72"`
}

func (h *UsersHandler) SetPassword(c *gin.Context) {
	var req setPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.InvalidErr("Check the form.", validation.FromBindError(err, &req)))
		return
	}

	if err := h.Svc.SetPassword(c.Request.Context(), c.Param("id"), req.Password); err != nil {
		c.Error(userError(err))
		return
	}
	render.Message(c, "Password updated.")
}

func userError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFoundErr("User not found.")
	}
	return apperr.Wrap(err)
}

func userView(u users.User) view.User {
	name := strings.TrimSpace(ptrStr(u.FirstName) + " " + ptrStr(u.LastName))
	return view.User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      name,
		Role:      u.Role,
		Blocked:   u.Blocked,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
