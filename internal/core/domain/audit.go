package domain

import "time"

// AuditAction identifies what an audit event records.
type AuditAction string

const (
	AuditRegistered       AuditAction = "registered"
	AuditLoggedIn         AuditAction = "logged_in"
	AuditProfileUpdated   AuditAction = "profile_updated"
	AuditPasswordChanged  AuditAction = "password_changed"
	AuditAdminProvisioned AuditAction = "admin_provisioned"
)

// AuditEvent is an append-only trail entry for account activity.
// Events are written asynchronously; losing in-flight events on shutdown
// is acceptable.
type AuditEvent struct {
	Action    AuditAction
	SubjectID string
	Email     string
	ActorID   string // empty for self-service actions
	Timestamp time.Time
}
