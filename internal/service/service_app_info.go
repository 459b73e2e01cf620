package service

import (
	"context"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

const notAvailable = "N/A"

type appInfoService struct {
	info models.AppInfo

	logger *logger.Logger
}

// NewAppInfoService combines the configured version with the linker-injected
// build metadata. A configured version takes precedence over the build one.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	version := cfg.Version
	if version == "" {
		version = buildInfo.BuildVersion()
	}

	return &appInfoService{
		info: models.AppInfo{
			Version:     orNotAvailable(version),
			BuildDate:   orNotAvailable(buildInfo.BuildDate()),
			BuildCommit: orNotAvailable(buildInfo.BuildCommit()),
		},
		logger: logger,
	}
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return s.info
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
