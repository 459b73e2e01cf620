// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store is the persistence layer of the blog: PostgreSQL-backed
// repositories for articles and quotes (the document store) and a
// Redis-backed access counter (the counter store).
package store

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ArticleRepository persists blog articles.
//
// Implementations return [ErrArticleNotFound] when an operation targets an
// id that does not exist. Returned slices are never nil.
type ArticleRepository interface {
	// SaveArticle inserts a fully populated article (id and timestamps
	// already assigned) and returns the stored row.
	SaveArticle(ctx context.Context, article models.Article) (models.Article, error)

	// ListAllArticles returns every article, newest first.
	ListAllArticles(ctx context.Context) ([]models.Article, error)

	// ListRecentArticles returns at most limit articles, newest first.
	ListRecentArticles(ctx context.Context, limit uint64) ([]models.Article, error)

	// GetArticle returns the article with the given id.
	GetArticle(ctx context.Context, id string) (models.Article, error)

	// UpdateArticle replaces the editable fields of the article with the
	// given id and returns the stored row.
	UpdateArticle(ctx context.Context, id string, article models.Article) (models.Article, error)

	// RemoveArticle deletes the article with the given id and returns it.
	RemoveArticle(ctx context.Context, id string) (models.Article, error)
}

// QuoteRepository persists quotes.
type QuoteRepository interface {
	// SaveQuote inserts a fully populated quote and returns the stored row.
	SaveQuote(ctx context.Context, quote models.Quote) (models.Quote, error)

	// RandomQuote returns one pseudo-randomly chosen quote, or
	// [ErrQuoteNotFound] when there are none.
	RandomQuote(ctx context.Context) (models.Quote, error)
}

// AccessCounter stores per-path request counters. Implementations must make
// Increment atomic on the store side; callers never read-then-write.
type AccessCounter interface {
	// Increment adds one to the counter of path and returns the new value.
	Increment(ctx context.Context, path string) (int64, error)

	// Counts returns every counter, sorted by path.
	Counts(ctx context.Context) ([]models.AccessCount, error)
}
