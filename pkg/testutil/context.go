package testutil

import (
	"context"
	"time"

	"github.com/google/uuid"

	id "presence/pkg/domain"
	"presence/pkg/requestcontext"
)

// ContextAt returns a context pinned to now with a fresh request ID, the way
// one shell command or request would see it.
func ContextAt(now time.Time) context.Context {
	ctx := requestcontext.WithTime(context.Background(), now)
	return requestcontext.WithRequestID(ctx, uuid.NewString())
}

// WithUser adds the acting user's ID to ctx.
func WithUser(ctx context.Context, userID id.UserID) context.Context {
	return requestcontext.WithUserID(ctx, userID)
}
