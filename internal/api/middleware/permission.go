package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequirePermission gates a route on a role predicate such as
// domain.CanEdit or domain.CanManageUsers. The role must already be in
// context, so it composes after Auth.
func RequirePermission(allowed func(role string) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if !allowed(role) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
