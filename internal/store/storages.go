package store

import (
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	ArticleRepository ArticleRepository
	QuoteRepository   QuoteRepository
	AccessCounter     AccessCounter
}

// NewStorages wires the PostgreSQL repositories and the Redis counter.
func NewStorages(db *DB, rdb redis.Cmdable, logger *logger.Logger) *Storages {
	return &Storages{
		ArticleRepository: NewArticleRepository(db, logger),
		QuoteRepository:   NewQuoteRepository(db, logger),
		AccessCounter:     NewRedisAccessCounter(rdb, logger),
	}
}
