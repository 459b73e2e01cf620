package http

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/metrics"
	"github.com/MKhiriev/go-blog/internal/pathmatch"
	"github.com/MKhiriev/go-blog/internal/service"
)

// defaultCounterTimeout applies when the configuration leaves the counter
// timeout unset.
const defaultCounterTimeout = 20 * time.Millisecond

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	// protected and exempt are compiled once and never modified afterwards
	protected pathmatch.Rules
	exempt    pathmatch.Rules

	allowedOrigins []string
	recentLimit    int
	counterTimeout time.Duration

	logger *logger.Logger
}

// NewHandler compiles the access rules from cfg. An invalid rule is
// returned as an error; the server must not start with it.
func NewHandler(services *service.Services, cfg *config.StructuredConfig, metrics *metrics.Metrics, logger *logger.Logger) (*Handler, error) {
	protected, err := pathmatch.ParseAll(cfg.Access.ProtectedPaths)
	if err != nil {
		return nil, fmt.Errorf("invalid protected path rule: %w", err)
	}

	exempt, err := pathmatch.ParseAll(cfg.Access.ExemptPaths)
	if err != nil {
		return nil, fmt.Errorf("invalid exempt path rule: %w", err)
	}

	counterTimeout := cfg.Storage.Redis.CounterTimeout
	if counterTimeout <= 0 {
		counterTimeout = defaultCounterTimeout
	}

	logger.Info().
		Strs("protected", protected.Patterns()).
		Strs("exempt", exempt.Patterns()).
		Msg("http handler created")

	return &Handler{
		services:       services,
		metrics:        metrics,
		protected:      protected,
		exempt:         exempt,
		allowedOrigins: cfg.Server.AllowedOrigins,
		recentLimit:    cfg.Server.RecentArticlesLimit,
		counterTimeout: counterTimeout,
		logger:         logger,
	}, nil
}
