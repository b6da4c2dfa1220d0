package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dropshipping/storefront-api/internal/api/metrics"
	"github.com/dropshipping/storefront-api/internal/core/domain"
	"github.com/dropshipping/storefront-api/internal/core/ports"
)

// AdminHandler serves the superadmin-only admin directory routes.
type AdminHandler struct {
	adminService ports.AdminService
}

func NewAdminHandler(adminService ports.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

type provisionAdminRequest struct {
	Name       string `json:"name"       validate:"required"`
	EmployeeID string `json:"employeeId" validate:"required"`
	Email      string `json:"email"      validate:"required,email"`
	Password   string `json:"password"   validate:"required,min=6"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Role       string `json:"role"       validate:"omitempty,oneof=admin superadmin"`
}

type adminResponse struct {
	Admin *domain.AdminProfile `json:"admin"`
}

// Provision creates an admin account (User + directory entry).
//
// @Summary      Provision an admin account
// @Tags         admins
// @Accept       json
// @Produce      json
// @Security     SessionCookie
// @Param        body  body      provisionAdminRequest  true  "Admin details"
// @Success      201   {object}  adminResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /admins [post]
func (h *AdminHandler) Provision(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req provisionAdminRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.adminService.Provision(c.Request().Context(), ports.ProvisionAdminInput{
		Name:       req.Name,
		EmployeeID: req.EmployeeID,
		Email:      req.Email,
		Password:   req.Password,
		Phone:      req.Phone,
		Address:    req.Address,
		Role:       req.Role,
		ActorID:    id.UserID,
	})
	if err != nil {
		metrics.AdminsProvisionedTotal.WithLabelValues(provisionResult(err)).Inc()
		return err
	}

	metrics.AdminsProvisionedTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, adminResponse{Admin: profile})
}

// List returns the admin directory.
//
// @Summary      List admin profiles
// @Tags         admins
// @Produce      json
// @Security     SessionCookie
// @Success      200  {array}  domain.AdminProfile
// @Router       /admins [get]
func (h *AdminHandler) List(c echo.Context) error {
	profiles, err := h.adminService.List(c.Request().Context())
	if err != nil {
		return err
	}
	if profiles == nil {
		profiles = []*domain.AdminProfile{}
	}
	return c.JSON(http.StatusOK, profiles)
}

func provisionResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmailTaken), errors.Is(err, domain.ErrEmployeeIDTaken):
		return "conflict"
	default:
		return "error"
	}
}
