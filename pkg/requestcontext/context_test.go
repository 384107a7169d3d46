package requestcontext

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccessors(t *testing.T) {
	ctx := context.Background()

	t.Run("empty context yields zero values", func(t *testing.T) {
		assert.Empty(t, RequestID(ctx))
		assert.Empty(t, ClientIP(ctx))
		assert.WithinDuration(t, time.Now(), Now(ctx), time.Second)
	})

	t.Run("values round-trip", func(t *testing.T) {
		fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		ctx := WithTime(WithClientIP(WithRequestID(ctx, "req-42"), "192.0.2.7"), fixed)

		assert.Equal(t, "req-42", RequestID(ctx))
		assert.Equal(t, "192.0.2.7", ClientIP(ctx))
		assert.Equal(t, fixed, Now(ctx))
	})
}
