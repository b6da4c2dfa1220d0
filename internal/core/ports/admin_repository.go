package ports

import (
	"context"

	"github.com/dropshipping/storefront-api/internal/core/domain"
)

// AdminRepository defines persistence for the admin directory.
// EmployeeID uniqueness is enforced by a unique index; Create translates
// duplicate-key failures to domain.ErrEmployeeIDTaken.
type AdminRepository interface {
	Create(ctx context.Context, profile *domain.AdminProfile) (*domain.AdminProfile, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*domain.AdminProfile, error)
	List(ctx context.Context) ([]*domain.AdminProfile, error)
}
