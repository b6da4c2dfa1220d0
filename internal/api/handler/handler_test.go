package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dropshipping/storefront-api/internal/core/domain"
)

// testErrorHandler mirrors the central error mapping for the domain
// errors these tests exercise. The full taxonomy is covered by the api
// package's own tests; importing it here would cycle.
func testErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code, msg := http.StatusInternalServerError, "internal server error"
		var he *echo.HTTPError
		switch {
		case errors.As(err, &he):
			code, msg = he.Code, fmt.Sprintf("%v", he.Message)
		case errors.Is(err, domain.ErrInvalidCredentials):
			code, msg = http.StatusUnauthorized, "Invalid credentials"
		case errors.Is(err, domain.ErrEmailTaken), errors.Is(err, domain.ErrEmployeeIDTaken):
			code, msg = http.StatusConflict, err.Error()
		case errors.Is(err, domain.ErrInvalidCategory):
			code, msg = http.StatusBadRequest, "Invalid category"
		case errors.Is(err, domain.ErrInvalidProductID):
			code, msg = http.StatusBadRequest, "Invalid id"
		case errors.Is(err, domain.ErrProductNotFound):
			code, msg = http.StatusNotFound, "Not found"
		case errors.Is(err, domain.ErrStoreUnavailable):
			code, msg = http.StatusServiceUnavailable, "DB not ready"
		}
		_ = c.JSON(code, map[string]string{"message": msg})
	}
}
