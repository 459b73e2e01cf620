package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// articleRepository is the PostgreSQL-backed implementation of
// [ArticleRepository] over the "articles" table.
//
// Every method obtains a context-scoped logger via [logger.FromContext] so
// that database interactions carry the request trace id.
type articleRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewArticleRepository constructs an [ArticleRepository] backed by db.
func NewArticleRepository(db *DB, logger *logger.Logger) ArticleRepository {
	logger.Debug().Msg("creating article repository")
	return &articleRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *articleRepository) SaveArticle(ctx context.Context, article models.Article) (models.Article, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertArticleQuery(ctx, article)
	if err != nil {
		log.Err(err).Str("func", "articleRepository.SaveArticle").Msg("failed to create query")
		return models.Article{}, err
	}

	saved, err := scanArticle(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "articleRepository.SaveArticle").
			Str("pg_code", postgresError(err)).
			Str("id", article.ID).
			Msg("failed to insert article")
		return models.Article{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}

func (r *articleRepository) ListAllArticles(ctx context.Context) ([]models.Article, error) {
	return r.listArticles(ctx, 0)
}

func (r *articleRepository) ListRecentArticles(ctx context.Context, limit uint64) ([]models.Article, error) {
	if limit == 0 {
		return []models.Article{}, nil
	}

	return r.listArticles(ctx, limit)
}

func (r *articleRepository) listArticles(ctx context.Context, limit uint64) ([]models.Article, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListArticlesQuery(ctx, limit)
	if err != nil {
		log.Err(err).Str("func", "articleRepository.listArticles").Msg("failed to create query")
		return nil, err
	}

	var articles []models.Article
	err = r.withRetry(ctx, func() error {
		rows, queryErr := r.DB.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		articles = make([]models.Article, 0, 16)
		for rows.Next() {
			article, scanErr := scanArticle(rows)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			articles = append(articles, article)
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "articleRepository.listArticles").
			Uint64("limit", limit).
			Msg("failed to list articles")
		return nil, err
	}

	return articles, nil
}

func (r *articleRepository) GetArticle(ctx context.Context, id string) (models.Article, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetArticleQuery(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "articleRepository.GetArticle").Msg("failed to create query")
		return models.Article{}, err
	}

	var article models.Article
	err = r.withRetry(ctx, func() error {
		var scanErr error
		article, scanErr = scanArticle(r.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})

	return article, r.rowError(ctx, "articleRepository.GetArticle", id, err)
}

func (r *articleRepository) UpdateArticle(ctx context.Context, id string, article models.Article) (models.Article, error) {
	log := logger.FromContext(ctx)

	updatedAt := article.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = r.now().UTC()
	}

	query, args, err := buildUpdateArticleQuery(ctx, id, article, updatedAt)
	if err != nil {
		log.Err(err).Str("func", "articleRepository.UpdateArticle").Msg("failed to create query")
		return models.Article{}, err
	}

	updated, err := scanArticle(r.DB.QueryRowContext(ctx, query, args...))

	return updated, r.rowError(ctx, "articleRepository.UpdateArticle", id, err)
}

func (r *articleRepository) RemoveArticle(ctx context.Context, id string) (models.Article, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteArticleQuery(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "articleRepository.RemoveArticle").Msg("failed to create query")
		return models.Article{}, err
	}

	removed, err := scanArticle(r.DB.QueryRowContext(ctx, query, args...))

	return removed, r.rowError(ctx, "articleRepository.RemoveArticle", id, err)
}

// rowError translates the error of a single-row statement targeting id.
func (r *articleRepository) rowError(ctx context.Context, funcName, id string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		logger.FromContext(ctx).Debug().Str("func", funcName).Str("id", id).Msg("article not found")
		return ErrArticleNotFound
	default:
		logger.FromContext(ctx).Err(err).
			Str("func", funcName).
			Str("pg_code", postgresError(err)).
			Str("id", id).
			Msg("article query failed")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func scanArticle(row rowScanner) (models.Article, error) {
	var a models.Article
	err := row.Scan(&a.ID, &a.Title, &a.Summary, &a.Content, &a.Tags, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return models.Article{}, err
	}

	return a, nil
}
