package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_RoundTrip(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	type payload struct {
		Price float64 `json:"price"`
	}

	require.NoError(t, c.Set(ctx, "btc", payload{Price: 42000.5}, time.Minute))

	var got payload
	require.NoError(t, c.Get(ctx, "btc", &got))
	assert.Equal(t, 42000.5, got.Price)
}

func TestMemory_MissAndExpiry(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	var dest string
	assert.ErrorIs(t, c.Get(ctx, "absent", &dest), ErrMiss)

	require.NoError(t, c.Set(ctx, "gone", "v", -time.Second))
	assert.ErrorIs(t, c.Get(ctx, "gone", &dest), ErrMiss)

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	require.NoError(t, c.Delete(ctx, "k"))
	assert.ErrorIs(t, c.Get(ctx, "k", &dest), ErrMiss)
}
