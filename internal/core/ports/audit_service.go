package ports

import (
	"context"

	"github.com/dropshipping/storefront-api/internal/core/domain"
)

// AuditService processes a single audit event pulled off the dispatcher.
type AuditService interface {
	Process(ctx context.Context, event domain.AuditEvent) error
}

// AuditRecorder is the fire-and-forget side used by business services.
// The queue dispatcher implements it.
type AuditRecorder interface {
	Enqueue(event domain.AuditEvent)
}
