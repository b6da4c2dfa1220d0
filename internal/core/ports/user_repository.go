package ports

import (
	"context"

	"github.com/dropshipping/storefront-api/internal/core/domain"
)

// UserRepository defines persistence for the credential store.
// Email uniqueness is enforced by the store itself (unique index), so
// Create must translate the store's duplicate-key failure to
// domain.ErrEmailTaken even when a pre-check already ran.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id, name, phone, address string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	// DeleteByID is the compensating action for admin provisioning; it is
	// scoped to one generated identifier and is safe to retry.
	DeleteByID(ctx context.Context, id string) error
}
