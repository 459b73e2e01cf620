// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the blog HTTP API.
//
// The primary abstraction is [BlogAdapter], which hides the transport from
// the command-line client. Every server response is an envelope; adapters
// unwrap its data and turn a non-zero envelope code into one of the sentinel
// errors of this package so that callers can use [errors.Is] (e.g.
// [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// BlogAdapter defines transport-agnostic communication with the blog server.
type BlogAdapter interface {
	// SetToken stores the bearer token attached to all subsequent admin
	// requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Login exchanges the admin credentials for a bearer token and stores it
	// via SetToken.
	Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error)

	// ListAllArticles returns every article, newest first.
	ListAllArticles(ctx context.Context) ([]models.Article, error)

	// ListRecentArticles returns the most recent articles.
	ListRecentArticles(ctx context.Context) ([]models.Article, error)

	// GetArticle returns the article with the given id.
	GetArticle(ctx context.Context, id string) (models.Article, error)

	// SaveArticle creates an article. Requires a token.
	SaveArticle(ctx context.Context, article models.Article) (models.Article, error)

	// UpdateArticle replaces the article with the given id. Requires a token.
	UpdateArticle(ctx context.Context, id string, article models.Article) (models.Article, error)

	// RemoveArticle deletes the article with the given id and returns it.
	// Requires a token.
	RemoveArticle(ctx context.Context, id string) (models.Article, error)

	// RandomQuote returns one quote chosen by the server.
	RandomQuote(ctx context.Context) (models.Quote, error)

	// SaveQuote creates a quote. Requires a token.
	SaveQuote(ctx context.Context, quote models.Quote) (models.Quote, error)

	// AccessCounts returns the per-path request counters. Requires a token.
	AccessCounts(ctx context.Context) ([]models.AccessCount, error)

	// Version returns the server build information.
	Version(ctx context.Context) (models.AppInfo, error)
}
