package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return &DB{DB: db, logger: logger.Nop(), errorClassificator: NewPostgresErrorClassifier()}, mock
}

func newTestArticleRepo(t *testing.T) (*articleRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newTestDB(t)
	return &articleRepository{
		DB:     db,
		logger: logger.Nop(),
		now:    func() time.Time { return testNow },
	}, mock
}

func articleRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "summary", "content", "tags", "created_at", "updated_at"})
}

func TestArticleRepository_SaveArticle(t *testing.T) {
	repo, mock := newTestArticleRepo(t)
	ctx := context.Background()

	article := models.Article{
		ID:        "a1",
		Title:     "Hello",
		Summary:   "first",
		Content:   "body",
		Tags:      models.Tags{"go", "web"},
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}

	mock.ExpectQuery("INSERT INTO articles").
		WithArgs("a1", "Hello", "first", "body", sqlmock.AnyArg(), testNow, testNow).
		WillReturnRows(articleRows().AddRow("a1", "Hello", "first", "body", []byte(`["go","web"]`), testNow, testNow))

	saved, err := repo.SaveArticle(ctx, article)
	require.NoError(t, err)
	assert.Equal(t, article, saved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleRepository_SaveArticle_DBError(t *testing.T) {
	repo, mock := newTestArticleRepo(t)

	mock.ExpectQuery("INSERT INTO articles").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.SaveArticle(context.Background(), models.Article{ID: "a1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestArticleRepository_ListAllArticles(t *testing.T) {
	t.Run("rows are returned in store order", func(t *testing.T) {
		repo, mock := newTestArticleRepo(t)
		older := testNow.Add(-time.Hour)

		mock.ExpectQuery("SELECT (.+) FROM articles ORDER BY created_at DESC, id DESC$").
			WillReturnRows(articleRows().
				AddRow("a2", "new", "", "", []byte(`[]`), testNow, testNow).
				AddRow("a1", "old", "", "", nil, older, older))

		articles, err := repo.ListAllArticles(context.Background())
		require.NoError(t, err)
		require.Len(t, articles, 2)
		assert.Equal(t, "a2", articles[0].ID)
		assert.Equal(t, "a1", articles[1].ID)
		assert.NotNil(t, articles[1].Tags)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty table yields empty non-nil slice", func(t *testing.T) {
		repo, mock := newTestArticleRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM articles").WillReturnRows(articleRows())

		articles, err := repo.ListAllArticles(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, articles)
		assert.Empty(t, articles)
	})

	t.Run("scan error", func(t *testing.T) {
		repo, mock := newTestArticleRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM articles").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("a1"))

		_, err := repo.ListAllArticles(context.Background())
		assert.ErrorIs(t, err, ErrScanningRow)
	})
}

func TestArticleRepository_ListRecentArticles(t *testing.T) {
	t.Run("limit is applied", func(t *testing.T) {
		repo, mock := newTestArticleRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM articles ORDER BY created_at DESC, id DESC LIMIT 3").
			WillReturnRows(articleRows().AddRow("a1", "t", "", "", []byte(`[]`), testNow, testNow))

		articles, err := repo.ListRecentArticles(context.Background(), 3)
		require.NoError(t, err)
		assert.Len(t, articles, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero limit does not query", func(t *testing.T) {
		repo, mock := newTestArticleRepo(t)

		articles, err := repo.ListRecentArticles(context.Background(), 0)
		require.NoError(t, err)
		assert.NotNil(t, articles)
		assert.Empty(t, articles)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestArticleRepository_GetArticle(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestArticleRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM articles WHERE id = \\$1").
			WithArgs("a1").
			WillReturnRows(articleRows().AddRow("a1", "t", "s", "c", []byte(`["x"]`), testNow, testNow))

		article, err := repo.GetArticle(context.Background(), "a1")
		require.NoError(t, err)
		assert.Equal(t, "a1", article.ID)
		assert.Equal(t, models.Tags{"x"}, article.Tags)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestArticleRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM articles WHERE id = \\$1").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetArticle(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrArticleNotFound)
	})

	t.Run("retryable error is retried", func(t *testing.T) {
		repo, mock := newTestArticleRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM articles").
			WillReturnError(pgError(pgerrcode.SerializationFailure))
		mock.ExpectQuery("SELECT (.+) FROM articles").
			WillReturnRows(articleRows().AddRow("a1", "t", "", "", []byte(`[]`), testNow, testNow))

		article, err := repo.GetArticle(context.Background(), "a1")
		require.NoError(t, err)
		assert.Equal(t, "a1", article.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("non-retryable error is returned", func(t *testing.T) {
		repo, mock := newTestArticleRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM articles").
			WillReturnError(errors.New("network down"))

		_, err := repo.GetArticle(context.Background(), "a1")
		assert.ErrorIs(t, err, ErrExecutingQuery)
		assert.NotErrorIs(t, err, ErrArticleNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestArticleRepository_UpdateArticle(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		repo, mock := newTestArticleRepo(t)
		created := testNow.Add(-24 * time.Hour)

		mock.ExpectQuery("UPDATE articles SET").
			WithArgs("new title", "", "", sqlmock.AnyArg(), testNow, "a1").
			WillReturnRows(articleRows().AddRow("a1", "new title", "", "", []byte(`[]`), created, testNow))

		updated, err := repo.UpdateArticle(context.Background(), "a1", models.Article{Title: "new title"})
		require.NoError(t, err)
		assert.Equal(t, created, updated.CreatedAt)
		assert.Equal(t, testNow, updated.UpdatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestArticleRepo(t)

		mock.ExpectQuery("UPDATE articles SET").
			WillReturnRows(articleRows())

		_, err := repo.UpdateArticle(context.Background(), "missing", models.Article{})
		assert.ErrorIs(t, err, ErrArticleNotFound)
	})
}

func TestArticleRepository_RemoveArticle(t *testing.T) {
	t.Run("removed article is returned", func(t *testing.T) {
		repo, mock := newTestArticleRepo(t)

		mock.ExpectQuery("DELETE FROM articles WHERE id = \\$1").
			WithArgs("a1").
			WillReturnRows(articleRows().AddRow("a1", "gone", "", "", []byte(`[]`), testNow, testNow))

		removed, err := repo.RemoveArticle(context.Background(), "a1")
		require.NoError(t, err)
		assert.Equal(t, "gone", removed.Title)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestArticleRepo(t)

		mock.ExpectQuery("DELETE FROM articles").
			WillReturnRows(articleRows())

		_, err := repo.RemoveArticle(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrArticleNotFound)
	})
}
