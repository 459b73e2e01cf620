package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildArticleQueries(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	article := models.Article{
		ID:        "0190a1b2-0000-7000-8000-000000000001",
		Title:     "title",
		Summary:   "summary",
		Content:   "content",
		Tags:      models.Tags{"go"},
		CreatedAt: now,
		UpdatedAt: now,
	}

	tests := []struct {
		name      string
		build     func() (string, []any, error)
		wantQuery string
		wantArgs  int
	}{
		{
			name:      "insert",
			build:     func() (string, []any, error) { return buildInsertArticleQuery(ctx, article) },
			wantQuery: "INSERT INTO articles (id,title,summary,content,tags,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id, title, summary, content, tags, created_at, updated_at",
			wantArgs:  7,
		},
		{
			name:      "list all",
			build:     func() (string, []any, error) { return buildListArticlesQuery(ctx, 0) },
			wantQuery: "SELECT id, title, summary, content, tags, created_at, updated_at FROM articles ORDER BY created_at DESC, id DESC",
		},
		{
			name:      "list recent",
			build:     func() (string, []any, error) { return buildListArticlesQuery(ctx, 5) },
			wantQuery: "SELECT id, title, summary, content, tags, created_at, updated_at FROM articles ORDER BY created_at DESC, id DESC LIMIT 5",
		},
		{
			name:      "get",
			build:     func() (string, []any, error) { return buildGetArticleQuery(ctx, article.ID) },
			wantQuery: "SELECT id, title, summary, content, tags, created_at, updated_at FROM articles WHERE id = $1",
			wantArgs:  1,
		},
		{
			name:      "update",
			build:     func() (string, []any, error) { return buildUpdateArticleQuery(ctx, article.ID, article, now) },
			wantQuery: "UPDATE articles SET title = $1, summary = $2, content = $3, tags = $4, updated_at = $5 WHERE id = $6 RETURNING id, title, summary, content, tags, created_at, updated_at",
			wantArgs:  6,
		},
		{
			name:      "delete",
			build:     func() (string, []any, error) { return buildDeleteArticleQuery(ctx, article.ID) },
			wantQuery: "DELETE FROM articles WHERE id = $1 RETURNING id, title, summary, content, tags, created_at, updated_at",
			wantArgs:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.build()
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Len(t, args, tt.wantArgs)
		})
	}
}

func TestBuildUpdateArticleQuery_KeepsCreatedAt(t *testing.T) {
	query, _, err := buildUpdateArticleQuery(context.Background(), "id", models.Article{}, time.Now())
	require.NoError(t, err)
	assert.NotContains(t, query, "created_at =")
	assert.NotContains(t, query, "SET id")
}

func TestBuildQuoteQueries(t *testing.T) {
	ctx := context.Background()

	query, args, err := buildInsertQuoteQuery(ctx, models.Quote{ID: "q1", Content: "c", Author: "a"})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO quotes (id,content,author,image_url,created_at) VALUES ($1,$2,$3,$4,$5) RETURNING id, content, author, image_url, created_at", query)
	assert.Equal(t, "q1", args[0])

	query, args, err = buildRandomQuoteQuery(ctx)
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, content, author, image_url, created_at FROM quotes ORDER BY random() LIMIT 1", query)
	assert.Empty(t, args)
}
