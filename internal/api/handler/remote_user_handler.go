package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/accubooks/accounting-system/internal/core/domain"
)

// DirectoryRegistrar provisions accounts in the hosted directory.
type DirectoryRegistrar interface {
	Register(ctx context.Context, user *domain.User, password string) error
}

// RemoteUserHandler provisions hosted-directory accounts. Only mounted when
// the directory is configured.
type RemoteUserHandler struct {
	directory DirectoryRegistrar
}

func NewRemoteUserHandler(directory DirectoryRegistrar) *RemoteUserHandler {
	return &RemoteUserHandler{directory: directory}
}

type registerRemoteRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"required,oneof=admin staff viewer"`
	Name     string `json:"name"`
	Email    string `json:"email"    validate:"omitempty,email"`
}

// Register creates an account in the hosted directory.
//
// @Summary      Provision a hosted directory account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registerRemoteRequest  true  "Account details"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/users/remote [post]
func (h *RemoteUserHandler) Register(c echo.Context) error {
	var req registerRemoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user := &domain.User{
		Username: req.Username,
		Role:     req.Role,
		Name:     req.Name,
		Email:    req.Email,
	}
	if err := h.directory.Register(c.Request().Context(), user, req.Password); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "account provisioned"})
}
