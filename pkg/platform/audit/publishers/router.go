// Package publishers composes audit sinks.
package publishers

import (
	"context"
	"errors"
	"log/slog"

	"presence/pkg/platform/audit"
)

// Router dispatches events to the publisher registered for their category.
// Events in unregistered categories go to the fallback.
type Router struct {
	routes   map[audit.EventCategory]audit.Publisher
	fallback audit.Publisher
	logger   *slog.Logger
}

// NewRouter creates a category router with an optional fallback publisher.
func NewRouter(logger *slog.Logger, fallback audit.Publisher) *Router {
	return &Router{
		routes:   make(map[audit.EventCategory]audit.Publisher),
		fallback: fallback,
		logger:   logger,
	}
}

// Register adds a publisher for a specific category.
func (r *Router) Register(category audit.EventCategory, publisher audit.Publisher) {
	r.routes[category] = publisher
}

func (r *Router) Emit(ctx context.Context, event audit.Event) error {
	publisher, ok := r.routes[event.Category]
	if !ok {
		if r.fallback != nil {
			return r.fallback.Emit(ctx, event)
		}
		if r.logger != nil {
			r.logger.WarnContext(ctx, "no audit publisher for category, dropping event",
				"category", string(event.Category),
				"action", event.Action,
			)
		}
		return nil
	}
	return publisher.Emit(ctx, event)
}

// Fanout emits to every publisher and joins their errors.
type Fanout []audit.Publisher

func (f Fanout) Emit(ctx context.Context, event audit.Event) error {
	var errs []error
	for _, p := range f {
		if err := p.Emit(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LogSink writes events to a logger at a fixed level.
type LogSink struct {
	Logger *slog.Logger
	Level  slog.Level
}

func (s LogSink) Emit(ctx context.Context, event audit.Event) error {
	if s.Logger == nil {
		return nil
	}
	s.Logger.Log(ctx, s.Level, "audit event",
		"category", string(event.Category),
		"action", event.Action,
		"user_id", event.UserID.String(),
		"decision", event.Decision,
		"reason", event.Reason,
		"request_id", event.RequestID,
	)
	return nil
}
