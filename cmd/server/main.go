package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/config"
	handler "github.com/MKhiriev/go-blog/internal/handler/http"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/metrics"
	"github.com/MKhiriev/go-blog/internal/server"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	bootLog := logger.NewLogger("go-blog-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	log := newLogger(cfg.App)
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("redis", cfg.Storage.Redis.Address).
		Strs("protected", cfg.Access.ProtectedPaths).
		Strs("exempt", cfg.Access.ExemptPaths).
		Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to document store")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	// the counter store is best-effort: the server starts without it
	rdb, err := store.NewRedisClient(ctx, cfg.Storage.Redis, log)
	if err != nil {
		log.Warn().Err(err).Msg("access counter store is unavailable, counting will be skipped")
	}
	defer rdb.Close()

	storages := store.NewStorages(db, rdb, log)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services := service.NewServices(storages, cfg, buildInfo, log)

	h, err := handler.NewHandler(services, cfg, metrics.New(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating HTTP handler")
	}

	srv, err := server.NewServer(h.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func newLogger(cfg config.App) *logger.Logger {
	opts := []logger.Option{logger.WithLevel(cfg.LogLevel)}
	if cfg.LogFormat == "console" {
		opts = append(opts, logger.WithConsole())
	}

	return logger.NewLogger("go-blog-server", opts...)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
