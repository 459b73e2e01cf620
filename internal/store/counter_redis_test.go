package store

import (
	"context"
	"sync"
	"testing"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCounter(t *testing.T) (AccessCounter, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisAccessCounter(client, logger.Nop()), mr
}

func TestRedisAccessCounter_Increment(t *testing.T) {
	counter, mr := newTestCounter(t)
	ctx := context.Background()

	n, err := counter.Increment(ctx, "/article/all")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = counter.Increment(ctx, "/article/all")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	assert.Equal(t, "2", mr.HGet(accessCountKey, "/article/all"))
}

func TestRedisAccessCounter_ConcurrentIncrements(t *testing.T) {
	counter, mr := newTestCounter(t)
	ctx := context.Background()

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			_, err := counter.Increment(ctx, "/quote/random")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, "50", mr.HGet(accessCountKey, "/quote/random"))
}

func TestRedisAccessCounter_Counts(t *testing.T) {
	counter, mr := newTestCounter(t)
	ctx := context.Background()

	mr.HSet(accessCountKey, "/b", "3")
	mr.HSet(accessCountKey, "/a", "7")
	mr.HSet(accessCountKey, "/broken", "not-a-number")

	counts, err := counter.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.AccessCount{{Path: "/a", Count: 7}, {Path: "/b", Count: 3}}, counts)
}

func TestRedisAccessCounter_CountsEmpty(t *testing.T) {
	counter, _ := newTestCounter(t)

	counts, err := counter.Counts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, counts)
	assert.Empty(t, counts)
}

func TestRedisAccessCounter_Unavailable(t *testing.T) {
	counter, mr := newTestCounter(t)
	mr.Close()

	_, err := counter.Increment(context.Background(), "/x")
	assert.ErrorIs(t, err, ErrCounterUnavailable)

	_, err = counter.Counts(context.Background())
	assert.ErrorIs(t, err, ErrCounterUnavailable)
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(context.Background(), config.Redis{Address: mr.Addr()}, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, client)
	_ = client.Close()

	addr := mr.Addr()
	mr.Close()
	client, err = NewRedisClient(context.Background(), config.Redis{Address: addr}, logger.Nop())
	assert.ErrorIs(t, err, ErrCounterUnavailable)
	require.NotNil(t, client)
	_ = client.Close()
}
