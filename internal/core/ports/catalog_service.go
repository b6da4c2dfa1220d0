package ports

import (
	"context"

	"github.com/dropshipping/storefront-api/internal/core/domain"
)

// CatalogService serves product listings and single-product lookups.
type CatalogService interface {
	// List returns products for the given category ("" = all categories)
	// and raw pagination/sort parameters.
	List(ctx context.Context, category domain.Category, raw domain.RawListParams) ([]*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
}
