package ports

import (
	"context"

	"github.com/dropshipping/storefront-api/internal/core/domain"
)

// ProductRepository is the read-only view over the catalog collection.
type ProductRepository interface {
	List(ctx context.Context, query domain.ListQuery) ([]*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
}
