package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/home-hero-api/internal/application"
	"github.com/oksasatya/home-hero-api/internal/domain/entity"
	"github.com/oksasatya/home-hero-api/pkg/response"
	"github.com/oksasatya/home-hero-api/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	PhotoURL *string `json:"photoURL"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

type setRoleRequest struct {
	Role       string `json:"role" binding:"required,role"`
	AdminEmail string `json:"adminEmail"`
}

// Register handles POST /users. Registering an existing email is a no-op.
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, created, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	if !created {
		response.Success[any](c, http.StatusOK, gin.H{"inserted": false}, application.ErrUserExists.Message, nil)
		return
	}
	response.Success(c, http.StatusCreated, u, "user created", gin.H{"inserted": true})
}

// GetByEmail handles GET /users/email/:email.
func (h *UserHandler) GetByEmail(c *gin.Context) {
	u, err := h.Svc.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, u, "user", nil)
}

// UpdateByEmail handles PATCH /users/email/:email.
func (h *UserHandler) UpdateByEmail(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.UpdateByEmail(c.Request.Context(), c.Param("email"), entity.UserPatch{
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, u, "user updated", nil)
}

// List handles GET /users?adminEmail=.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.ListAll(c.Request.Context(), c.Query("adminEmail"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, users, "users", gin.H{"count": len(users)})
}

// SetRole handles PATCH /users/:id/role. The caller is identified by
// adminEmail in the body, falling back to the query string.
func (h *UserHandler) SetRole(c *gin.Context) {
	var req setRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	caller := req.AdminEmail
	if caller == "" {
		caller = c.Query("adminEmail")
	}
	u, err := h.Svc.SetRole(c.Request.Context(), c.Param("id"), req.Role, caller)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, u, "role updated", nil)
}
