package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/civicworks/complaint-system/internal/core/domain"
)

// RBAC enforces role-based access control. The caller's role must be one of
// allowedRoles; anything else surfaces as an access-denied error.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[string(r)] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return domain.ErrAccessDenied
			}
			return next(c)
		}
	}
}
