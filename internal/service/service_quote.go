package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

type quoteService struct {
	quoteRepository store.QuoteRepository
	validator       validators.Validator
	ids             IDGenerator
	now             func() time.Time

	logger *logger.Logger
}

func NewQuoteService(quoteRepository store.QuoteRepository, validator validators.Validator, ids IDGenerator, logger *logger.Logger) QuoteService {
	return &quoteService{
		quoteRepository: quoteRepository,
		validator:       validator,
		ids:             ids,
		now:             time.Now,
		logger:          logger,
	}
}

func (s *quoteService) SaveQuote(ctx context.Context, quote models.Quote) (models.Quote, error) {
	if err := s.validator.Validate(ctx, quote); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("quote rejected by validation")
		return models.Quote{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	quote.ID = s.ids.Generate()
	quote.CreatedAt = s.now().UTC().Truncate(time.Microsecond)

	saved, err := s.quoteRepository.SaveQuote(ctx, quote)
	if err != nil {
		return models.Quote{}, fmt.Errorf("error saving quote: %w", err)
	}

	return saved, nil
}

func (s *quoteService) RandomQuote(ctx context.Context) (models.Quote, error) {
	quote, err := s.quoteRepository.RandomQuote(ctx)
	if err != nil {
		return models.Quote{}, fmt.Errorf("error getting random quote: %w", err)
	}

	return quote, nil
}
