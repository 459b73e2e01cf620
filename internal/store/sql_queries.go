package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-blog/models"
)

const (
	articlesTable = "articles"
	quotesTable   = "quotes"
)

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	articleColumns = []string{"id", "title", "summary", "content", "tags", "created_at", "updated_at"}
	quoteColumns   = []string{"id", "content", "author", "image_url", "created_at"}
)

func buildInsertArticleQuery(_ context.Context, a models.Article) (string, []any, error) {
	query, args, err := psql.Insert(articlesTable).
		Columns(articleColumns...).
		Values(a.ID, a.Title, a.Summary, a.Content, a.Tags, a.CreatedAt, a.UpdatedAt).
		Suffix(returning(articleColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListArticlesQuery selects articles newest first; a zero limit means
// no limit.
func buildListArticlesQuery(_ context.Context, limit uint64) (string, []any, error) {
	builder := psql.Select(articleColumns...).
		From(articlesTable).
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildGetArticleQuery(_ context.Context, id string) (string, []any, error) {
	query, args, err := psql.Select(articleColumns...).
		From(articlesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildUpdateArticleQuery(_ context.Context, id string, a models.Article, now time.Time) (string, []any, error) {
	query, args, err := psql.Update(articlesTable).
		Set("title", a.Title).
		Set("summary", a.Summary).
		Set("content", a.Content).
		Set("tags", a.Tags).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		Suffix(returning(articleColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteArticleQuery(_ context.Context, id string) (string, []any, error) {
	query, args, err := psql.Delete(articlesTable).
		Where(sq.Eq{"id": id}).
		Suffix(returning(articleColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertQuoteQuery(_ context.Context, q models.Quote) (string, []any, error) {
	query, args, err := psql.Insert(quotesTable).
		Columns(quoteColumns...).
		Values(q.ID, q.Content, q.Author, q.ImageURL, q.CreatedAt).
		Suffix(returning(quoteColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildRandomQuoteQuery(_ context.Context) (string, []any, error) {
	query, args, err := psql.Select(quoteColumns...).
		From(quotesTable).
		OrderBy("random()").
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}
