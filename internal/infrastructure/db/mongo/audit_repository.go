package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/dropshipping/storefront-api/internal/core/domain"
)

const auditCollection = "audit_events"

// AuditRepository appends account activity events to the audit trail.
type AuditRepository struct {
	conn *Connector
}

func NewAuditRepository(conn *Connector) *AuditRepository {
	return &AuditRepository{conn: conn}
}

type auditDoc struct {
	Action    string    `bson:"action"`
	SubjectID string    `bson:"subject_id"`
	Email     string    `bson:"email"`
	ActorID   string    `bson:"actor_id,omitempty"`
	Timestamp time.Time `bson:"timestamp"`
}

func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	col, err := r.conn.Collection(auditCollection)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := auditDoc{
		Action:    string(event.Action),
		SubjectID: event.SubjectID,
		Email:     event.Email,
		ActorID:   event.ActorID,
		Timestamp: event.Timestamp,
	}
	if _, err := col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
