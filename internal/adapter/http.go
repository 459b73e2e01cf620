package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
	"github.com/go-resty/resty/v2"
)

type httpBlogAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPBlogAdapter constructs an HTTP implementation of [BlogAdapter]
// for the server at cfg.ServerAddress. A bare "host:port" address is
// treated as http.
func NewHTTPBlogAdapter(cfg config.ClientConfig, logger *logger.Logger) (BlogAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	a := &httpBlogAdapter{client: client, logger: logger}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpBlogAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpBlogAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpBlogAdapter) Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error) {
	var login models.LoginResponse
	if err := h.do(h.client.R().SetContext(ctx).SetBody(credentials), http.MethodPost, "/admin/login", &login); err != nil {
		return models.LoginResponse{}, fmt.Errorf("login: %w", err)
	}

	h.SetToken(login.Token)
	h.logger.Debug().Time("expires_at", time.Unix(login.ExpiresAt, 0)).Msg("logged in")

	return login, nil
}

func (h *httpBlogAdapter) ListAllArticles(ctx context.Context) ([]models.Article, error) {
	var articles []models.Article
	if err := h.do(h.client.R().SetContext(ctx), http.MethodGet, "/article/all", &articles); err != nil {
		return nil, fmt.Errorf("list all articles: %w", err)
	}
	return articles, nil
}

func (h *httpBlogAdapter) ListRecentArticles(ctx context.Context) ([]models.Article, error) {
	var articles []models.Article
	if err := h.do(h.client.R().SetContext(ctx), http.MethodGet, "/article/recent", &articles); err != nil {
		return nil, fmt.Errorf("list recent articles: %w", err)
	}
	return articles, nil
}

func (h *httpBlogAdapter) GetArticle(ctx context.Context, id string) (models.Article, error) {
	var article models.Article
	if err := h.do(h.client.R().SetContext(ctx), http.MethodGet, "/article/get/"+url.PathEscape(id), &article); err != nil {
		return models.Article{}, fmt.Errorf("get article: %w", err)
	}
	return article, nil
}

func (h *httpBlogAdapter) SaveArticle(ctx context.Context, article models.Article) (models.Article, error) {
	var saved models.Article
	if err := h.do(h.authedRequest(ctx).SetBody(article), http.MethodPost, "/admin/article/save", &saved); err != nil {
		return models.Article{}, fmt.Errorf("save article: %w", err)
	}
	return saved, nil
}

func (h *httpBlogAdapter) UpdateArticle(ctx context.Context, id string, article models.Article) (models.Article, error) {
	var updated models.Article
	if err := h.do(h.authedRequest(ctx).SetBody(article), http.MethodPut, "/admin/article/update/"+url.PathEscape(id), &updated); err != nil {
		return models.Article{}, fmt.Errorf("update article: %w", err)
	}
	return updated, nil
}

func (h *httpBlogAdapter) RemoveArticle(ctx context.Context, id string) (models.Article, error) {
	var removed models.Article
	if err := h.do(h.authedRequest(ctx), http.MethodDelete, "/admin/article/remove/"+url.PathEscape(id), &removed); err != nil {
		return models.Article{}, fmt.Errorf("remove article: %w", err)
	}
	return removed, nil
}

func (h *httpBlogAdapter) RandomQuote(ctx context.Context) (models.Quote, error) {
	var quote models.Quote
	if err := h.do(h.client.R().SetContext(ctx), http.MethodGet, "/quote/random", &quote); err != nil {
		return models.Quote{}, fmt.Errorf("random quote: %w", err)
	}
	return quote, nil
}

func (h *httpBlogAdapter) SaveQuote(ctx context.Context, quote models.Quote) (models.Quote, error) {
	var saved models.Quote
	if err := h.do(h.authedRequest(ctx).SetBody(quote), http.MethodPost, "/admin/quote/save", &saved); err != nil {
		return models.Quote{}, fmt.Errorf("save quote: %w", err)
	}
	return saved, nil
}

func (h *httpBlogAdapter) AccessCounts(ctx context.Context) ([]models.AccessCount, error) {
	var counts []models.AccessCount
	if err := h.do(h.authedRequest(ctx), http.MethodGet, "/admin/access", &counts); err != nil {
		return nil, fmt.Errorf("access counts: %w", err)
	}
	return counts, nil
}

func (h *httpBlogAdapter) Version(ctx context.Context) (models.AppInfo, error) {
	var info models.AppInfo
	if err := h.do(h.client.R().SetContext(ctx), http.MethodGet, "/version", &info); err != nil {
		return models.AppInfo{}, fmt.Errorf("version: %w", err)
	}
	return info, nil
}

// do executes req and unwraps the response envelope into dst.
func (h *httpBlogAdapter) do(req *resty.Request, method, path string, dst any) error {
	if req.Body != nil {
		req.SetHeader("Content-Type", "application/json")
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}

	h.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("blog server responded")

	return unwrap(resp, dst)
}

func (h *httpBlogAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
