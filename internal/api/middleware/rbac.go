package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dropshipping/storefront-api/internal/core/domain"
)

// RequireRole enforces role-based access control. It assumes Auth ran
// first; a request with no identity is forbidden, never unauthorized,
// since the 401 case belongs to the auth gate.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[domain.Role(role)]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			return next(c)
		}
	}
}
