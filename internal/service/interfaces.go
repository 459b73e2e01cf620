// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the blog between the HTTP
// handlers and the store: identifier and timestamp assignment, payload
// validation, admin authentication and access telemetry.
package service

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type ArticleService interface {
	SaveArticle(ctx context.Context, article models.Article) (models.Article, error)
	ListAllArticles(ctx context.Context) ([]models.Article, error)
	ListRecentArticles(ctx context.Context, limit int) ([]models.Article, error)
	GetArticle(ctx context.Context, id string) (models.Article, error)
	UpdateArticle(ctx context.Context, id string, article models.Article) (models.Article, error)
	RemoveArticle(ctx context.Context, id string) (models.Article, error)
}

type QuoteService interface {
	SaveQuote(ctx context.Context, quote models.Quote) (models.Quote, error)
	RandomQuote(ctx context.Context) (models.Quote, error)
}

type AuthService interface {
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AccessService records and reports per-path request counts. RecordAccess
// errors are informational; callers must not fail a request because of them.
type AccessService interface {
	RecordAccess(ctx context.Context, path string) error
	AccessCounts(ctx context.Context) ([]models.AccessCount, error)
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
}

// IDGenerator issues identifiers for new documents.
type IDGenerator interface {
	Generate() string
}
