package ports

import (
	"context"

	"github.com/accessgate/rbac-system/internal/core/domain"
)

// AuditRecorder accepts auth events for asynchronous recording. Record
// must never block the login path.
type AuditRecorder interface {
	Record(event domain.AuthEvent)
}

// AuditSink persists auth events to durable storage.
type AuditSink interface {
	Insert(ctx context.Context, event *domain.AuthEvent) error
}
