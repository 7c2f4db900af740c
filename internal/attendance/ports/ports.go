// Package ports defines interfaces shared by the gate and the session.
package ports

import (
	"context"
	"log/slog"

	"presence/pkg/platform/audit"
	"presence/pkg/requestcontext"
)

// AuditPublisher emits audit events for attendance and account activity.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// LogAudit is a shared helper for logging audit events across attendance services.
// It logs to both the structured logger and the audit publisher if available.
func LogAudit(ctx context.Context, logger *slog.Logger, publisher AuditPublisher, action audit.AuditEvent, event audit.Event, attrs ...any) {
	event.Action = action.String()
	event.Category = action.Category()
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}
	if event.RequestID != "" {
		attrs = append(attrs, "request_id", event.RequestID)
	}
	if !event.UserID.IsNil() {
		attrs = append(attrs, "user_id", event.UserID.String())
	}

	args := append(attrs, "event", action.String(), "category", string(event.Category), "log_type", "audit")
	if logger != nil {
		logger.InfoContext(ctx, action.String(), args...)
	}

	if publisher == nil {
		return
	}
	if err := publisher.Emit(ctx, event); err != nil && logger != nil {
		logger.WarnContext(ctx, "failed to emit audit event", "event", action.String(), "error", err)
	}
}
