package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) (*RedisClient, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := NewRedisClient(&Config{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

type entry struct {
	Name string `json:"name"`
}

func TestJSONRoundTrip(t *testing.T) {
	c, mr := newClient(t)
	ctx := context.Background()

	var got []entry
	hit, err := c.GetJSON(ctx, "missing", &got)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.SetJSON(ctx, "k", []entry{{Name: "a"}}, time.Minute))
	hit, err = c.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []entry{{Name: "a"}}, got)

	mr.FastForward(2 * time.Minute)
	hit, err = c.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestDeletePattern(t *testing.T) {
	c, mr := newClient(t)
	ctx := context.Background()

	for i := 0; i < 250; i++ {
		require.NoError(t, mr.Set(fmt.Sprintf("nodes:category:children:%d", i), "x"))
	}
	require.NoError(t, mr.Set("nodes:product:roots", "x"))

	require.NoError(t, c.DeletePattern(ctx, "nodes:category:*"))
	assert.Equal(t, []string{"nodes:product:roots"}, mr.Keys())
}

func TestDeletePatternBatchBoundaries(t *testing.T) {
	c, mr := newClient(t)
	ctx := context.Background()

	require.NoError(t, c.DeletePattern(ctx, "nodes:*"))

	for _, n := range []int{deleteBatch, deleteBatch + 1, 3 * deleteBatch} {
		for i := 0; i < n; i++ {
			require.NoError(t, mr.Set(fmt.Sprintf("nodes:product:type:%d", i), "x"))
		}
		require.NoError(t, c.DeletePattern(ctx, "nodes:product:*"))
		assert.Empty(t, mr.Keys(), "keys left after deleting %d", n)
	}
}

func TestLock(t *testing.T) {
	c, mr := newClient(t)
	ctx := context.Background()

	ok, err := c.AcquireLock(ctx, "lock", "owner-1", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.AcquireLock(ctx, "lock", "owner-2", time.Second)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.ReleaseLock(ctx, "lock", "owner-2"))
	assert.True(t, mr.Exists("lock"))

	require.NoError(t, c.ReleaseLock(ctx, "lock", "owner-1"))
	assert.False(t, mr.Exists("lock"))
}

func TestConnectFailure(t *testing.T) {
	_, err := NewRedisClient(&Config{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}
