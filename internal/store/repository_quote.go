package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

// quoteRepository is the PostgreSQL-backed implementation of
// [QuoteRepository] over the "quotes" table.
type quoteRepository struct {
	*DB
	logger *logger.Logger
}

// NewQuoteRepository constructs a [QuoteRepository] backed by db.
func NewQuoteRepository(db *DB, logger *logger.Logger) QuoteRepository {
	logger.Debug().Msg("creating quote repository")
	return &quoteRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *quoteRepository) SaveQuote(ctx context.Context, quote models.Quote) (models.Quote, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertQuoteQuery(ctx, quote)
	if err != nil {
		log.Err(err).Str("func", "quoteRepository.SaveQuote").Msg("failed to create query")
		return models.Quote{}, err
	}

	saved, err := scanQuote(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "quoteRepository.SaveQuote").
			Str("pg_code", postgresError(err)).
			Msg("failed to insert quote")
		return models.Quote{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}

func (r *quoteRepository) RandomQuote(ctx context.Context) (models.Quote, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildRandomQuoteQuery(ctx)
	if err != nil {
		log.Err(err).Str("func", "quoteRepository.RandomQuote").Msg("failed to create query")
		return models.Quote{}, err
	}

	var quote models.Quote
	err = r.withRetry(ctx, func() error {
		var scanErr error
		quote, scanErr = scanQuote(r.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})

	switch {
	case err == nil:
		return quote, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Quote{}, ErrQuoteNotFound
	default:
		log.Err(err).Str("func", "quoteRepository.RandomQuote").Msg("failed to select random quote")
		return models.Quote{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func scanQuote(row rowScanner) (models.Quote, error) {
	var q models.Quote
	if err := row.Scan(&q.ID, &q.Content, &q.Author, &q.ImageURL, &q.CreatedAt); err != nil {
		return models.Quote{}, err
	}

	return q, nil
}
