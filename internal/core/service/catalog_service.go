package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dropshipping/storefront-api/internal/core/domain"
	"github.com/dropshipping/storefront-api/internal/core/ports"
)

// ListCache abstracts the catalog list cache (Redis). Cache failures are
// never fatal: a miss or an error simply falls through to the store.
type ListCache interface {
	Get(ctx context.Context, query domain.ListQuery) ([]*domain.Product, bool, error)
	Set(ctx context.Context, query domain.ListQuery, products []*domain.Product) error
}

// CatalogService serves product listings. The catalog is read-only; the
// service only composes the query builder, the cache, and the repository.
type CatalogService struct {
	repo  ports.ProductRepository
	cache ListCache
	log   zerolog.Logger
}

func NewCatalogService(repo ports.ProductRepository, cache ListCache, log zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, cache: cache, log: log}
}

// List builds the deterministic store query from raw parameters and
// returns the matching products, consulting the cache first.
func (s *CatalogService) List(ctx context.Context, category domain.Category, raw domain.RawListParams) ([]*domain.Product, error) {
	query := domain.BuildListQuery(category, raw)

	if s.cache != nil {
		products, hit, err := s.cache.Get(ctx, query)
		if err != nil {
			s.log.Warn().Err(err).Msg("catalog cache read failed, querying store")
		} else if hit {
			return products, nil
		}
	}

	products, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, query, products); err != nil {
			s.log.Warn().Err(err).Msg("catalog cache write failed")
		}
	}
	return products, nil
}

// Get returns a single product by id.
func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}
