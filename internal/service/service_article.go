package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

// articleService is the concrete implementation of ArticleService.
// Identifiers and timestamps are always assigned here; values supplied by
// clients in those fields are discarded.
type articleService struct {
	articleRepository store.ArticleRepository
	validator         validators.Validator
	ids               IDGenerator

	// now is the clock; timestamps are truncated to microseconds so that a
	// saved article compares equal to the one read back from PostgreSQL.
	now func() time.Time

	logger *logger.Logger
}

func NewArticleService(articleRepository store.ArticleRepository, validator validators.Validator, ids IDGenerator, logger *logger.Logger) ArticleService {
	return &articleService{
		articleRepository: articleRepository,
		validator:         validator,
		ids:               ids,
		now:               time.Now,
		logger:            logger,
	}
}

func (s *articleService) SaveArticle(ctx context.Context, article models.Article) (models.Article, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, article); err != nil {
		log.Debug().Err(err).Msg("article rejected by validation")
		return models.Article{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	now := s.timestamp()
	article.ID = s.ids.Generate()
	article.Title = strings.TrimSpace(article.Title)
	article.CreatedAt = now
	article.UpdatedAt = now
	if article.Tags == nil {
		article.Tags = models.Tags{}
	}

	saved, err := s.articleRepository.SaveArticle(ctx, article)
	if err != nil {
		return models.Article{}, fmt.Errorf("error saving article: %w", err)
	}

	log.Info().Str("id", saved.ID).Msg("article saved")
	return saved, nil
}

func (s *articleService) ListAllArticles(ctx context.Context) ([]models.Article, error) {
	articles, err := s.articleRepository.ListAllArticles(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing articles: %w", err)
	}

	return nonNil(articles), nil
}

func (s *articleService) ListRecentArticles(ctx context.Context, limit int) ([]models.Article, error) {
	if limit <= 0 {
		return []models.Article{}, nil
	}

	articles, err := s.articleRepository.ListRecentArticles(ctx, uint64(limit))
	if err != nil {
		return nil, fmt.Errorf("error listing recent articles: %w", err)
	}

	if len(articles) > limit {
		articles = articles[:limit]
	}

	return nonNil(articles), nil
}

func (s *articleService) GetArticle(ctx context.Context, id string) (models.Article, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Article{}, ErrEmptyID
	}

	article, err := s.articleRepository.GetArticle(ctx, id)
	if err != nil {
		return models.Article{}, fmt.Errorf("error getting article %s: %w", id, err)
	}

	return article, nil
}

func (s *articleService) UpdateArticle(ctx context.Context, id string, article models.Article) (models.Article, error) {
	log := logger.FromContext(ctx)

	id = strings.TrimSpace(id)
	if id == "" {
		return models.Article{}, ErrEmptyID
	}

	if err := s.validator.Validate(ctx, article); err != nil {
		log.Debug().Err(err).Str("id", id).Msg("article update rejected by validation")
		return models.Article{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	article.ID = id
	article.Title = strings.TrimSpace(article.Title)
	article.UpdatedAt = s.timestamp()
	if article.Tags == nil {
		article.Tags = models.Tags{}
	}

	updated, err := s.articleRepository.UpdateArticle(ctx, id, article)
	if err != nil {
		return models.Article{}, fmt.Errorf("error updating article %s: %w", id, err)
	}

	log.Info().Str("id", id).Msg("article updated")
	return updated, nil
}

func (s *articleService) RemoveArticle(ctx context.Context, id string) (models.Article, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Article{}, ErrEmptyID
	}

	removed, err := s.articleRepository.RemoveArticle(ctx, id)
	if err != nil {
		return models.Article{}, fmt.Errorf("error removing article %s: %w", id, err)
	}

	logger.FromContext(ctx).Info().Str("id", id).Msg("article removed")
	return removed, nil
}

func (s *articleService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
