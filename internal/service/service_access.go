package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

type accessService struct {
	accessCounter store.AccessCounter

	logger *logger.Logger
}

func NewAccessService(accessCounter store.AccessCounter, logger *logger.Logger) AccessService {
	return &accessService{
		accessCounter: accessCounter,
		logger:        logger,
	}
}

func (s *accessService) RecordAccess(ctx context.Context, path string) error {
	count, err := s.accessCounter.Increment(ctx, path)
	if err != nil {
		return fmt.Errorf("error recording access to %s: %w", path, err)
	}

	logger.FromContext(ctx).Trace().Str("path", path).Int64("count", count).Msg("access recorded")
	return nil
}

func (s *accessService) AccessCounts(ctx context.Context) ([]models.AccessCount, error) {
	counts, err := s.accessCounter.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading access counts: %w", err)
	}

	return nonNil(counts), nil
}
