package ports

import (
	"context"

	"github.com/dropshipping/storefront-api/internal/core/domain"
)

// AuditRepository persists account activity events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}
