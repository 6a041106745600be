package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/civicworks/complaint-system/internal/core/ports"
)

// Auth extracts the bearer token, validates it via the token service, and
// injects the caller's identity into the request context. Token errors pass
// through to the central error handler so expired and malformed tokens keep
// their distinct messages.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1], "")
			if err != nil {
				return err
			}

			c.Set("username", claims.Subject)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}
