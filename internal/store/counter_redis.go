package store

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
	"github.com/redis/go-redis/v9"
)

// accessCountKey is the Redis hash holding one field per request path.
const accessCountKey = "blog_access_cnt"

// NewRedisClient creates a client for the counter store and pings it. The
// client is returned even when the ping fails so that the caller can decide
// whether an unreachable counter store is fatal; go-redis reconnects lazily.
func NewRedisClient(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Str("address", cfg.Address).Msg("counter store is unreachable")
		return client, fmt.Errorf("%w: %w", ErrCounterUnavailable, err)
	}
	log.Info().Str("func", "NewRedisClient").Str("address", cfg.Address).Msg("connected to counter store successfully")

	return client, nil
}

type redisAccessCounter struct {
	client redis.Cmdable
	logger *logger.Logger
}

// NewRedisAccessCounter constructs an [AccessCounter] that keeps counters in
// a single Redis hash and increments them with HINCRBY.
func NewRedisAccessCounter(client redis.Cmdable, logger *logger.Logger) AccessCounter {
	logger.Debug().Msg("creating redis access counter")
	return &redisAccessCounter{
		client: client,
		logger: logger,
	}
}

func (c *redisAccessCounter) Increment(ctx context.Context, path string) (int64, error) {
	count, err := c.client.HIncrBy(ctx, accessCountKey, path, 1).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCounterUnavailable, err)
	}

	return count, nil
}

func (c *redisAccessCounter) Counts(ctx context.Context) ([]models.AccessCount, error) {
	log := logger.FromContext(ctx)

	fields, err := c.client.HGetAll(ctx, accessCountKey).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCounterUnavailable, err)
	}

	counts := make([]models.AccessCount, 0, len(fields))
	for path, raw := range fields {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Str("value", raw).Msg("skipping malformed access counter")
			continue
		}
		counts = append(counts, models.AccessCount{Path: path, Count: n})
	}

	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Path < counts[j].Path
	})

	return counts, nil
}
