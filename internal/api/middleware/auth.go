package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/accubooks/accounting-system/internal/core/ports"
)

// Auth validates the bearer token and injects the caller's identity into
// context. Two token kinds are accepted: an HS256 JWT issued by the hosted
// directory, or the opaque session token issued on a local login. The opaque
// token is checked against the current session; a stale token from a replaced
// session is rejected.
func Auth(jwtSecret string, sessions ports.SessionStore, state ports.AuthStateStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}
			token := parts[1]

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
				if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err == nil && tkn.Valid {
				c.Set("username", claims["username"])
				c.Set("role", claims["role"])
				return next(c)
			}

			current, err := sessions.Current(c.Request().Context())
			if err != nil || current == "" || current != token {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			st, err := state.Get(c.Request().Context())
			if err != nil || !st.IsAuthenticated || st.CurrentUser == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("username", st.CurrentUser.Username)
			c.Set("role", st.CurrentUser.Role)

			return next(c)
		}
	}
}
