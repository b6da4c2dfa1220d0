package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dropshipping/storefront-api/internal/core/domain"
)

// identity is the verified session identity injected by the Auth
// middleware.
type identity struct {
	UserID string
	Role   domain.Role
	Email  string
}

// ctxIdentity extracts the identity set by the Auth middleware and
// fast-fails before any service call: a non-empty user id proves the
// middleware ran.
func ctxIdentity(c echo.Context) (identity, error) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	role, _ := c.Get("role").(string)
	email, _ := c.Get("email").(string)
	return identity{UserID: userID, Role: domain.Role(role), Email: email}, nil
}
