package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ThemePreference is the stored UI theme setting.
type ThemePreference interface {
	Get(ctx context.Context) string
	Set(ctx context.Context, theme string) error
}

type ThemeHandler struct {
	store ThemePreference
}

func NewThemeHandler(store ThemePreference) *ThemeHandler {
	return &ThemeHandler{store: store}
}

type themeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

// Get returns the current UI theme.
//
// @Summary      Get UI theme
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  themeRequest
// @Router       /v1/theme [get]
func (h *ThemeHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, themeRequest{Theme: h.store.Get(c.Request().Context())})
}

// Set stores the UI theme preference.
//
// @Summary      Set UI theme
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      themeRequest  true  "light or dark"
// @Success      200   {object}  themeRequest
// @Failure      400   {object}  map[string]string
// @Router       /v1/theme [put]
func (h *ThemeHandler) Set(c echo.Context) error {
	var req themeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := h.store.Set(c.Request().Context(), req.Theme); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, req)
}
