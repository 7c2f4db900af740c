package requestcontext

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	id "presence/pkg/domain"
)

func TestNow(t *testing.T) {
	t.Run("returns injected time", func(t *testing.T) {
		fixed := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
		ctx := WithTime(context.Background(), fixed)
		assert.Equal(t, fixed, Now(ctx))
	})

	t.Run("falls back to wall clock", func(t *testing.T) {
		before := time.Now()
		got := Now(context.Background())
		assert.False(t, got.Before(before))
	})
}

func TestValues(t *testing.T) {
	userID := id.NewUserID()
	ctx := WithRequestID(WithUserID(context.Background(), userID), "req-1")

	assert.Equal(t, userID, UserID(ctx))
	assert.Equal(t, "req-1", RequestID(ctx))
	assert.True(t, UserID(context.Background()).IsNil())
	assert.Empty(t, RequestID(context.Background()))
}
