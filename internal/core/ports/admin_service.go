package ports

import (
	"context"

	"github.com/dropshipping/storefront-api/internal/core/domain"
)

// ProvisionAdminInput carries a superadmin's request to create an admin
// account. Role may be empty (defaults to admin) or "superadmin".
type ProvisionAdminInput struct {
	Name       string
	EmployeeID string
	Email      string
	Password   string
	Phone      string
	Address    string
	Role       string
	ActorID    string // the provisioning superadmin
}

// AdminService provisions admin accounts across the credential store and
// the admin directory.
type AdminService interface {
	Provision(ctx context.Context, in ProvisionAdminInput) (*domain.AdminProfile, error)
	List(ctx context.Context) ([]*domain.AdminProfile, error)
}
