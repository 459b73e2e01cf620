package service

import (
	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

type Services struct {
	ArticleService ArticleService
	QuoteService   QuoteService
	AuthService    AuthService
	AccessService  AccessService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	validator := validators.NewBlogValidator()
	ids := utils.NewUUIDGenerator()

	return &Services{
		ArticleService: NewArticleService(storages.ArticleRepository, validator, ids, logger),
		QuoteService:   NewQuoteService(storages.QuoteRepository, validator, ids, logger),
		AuthService:    NewAuthService(cfg.App, validator, logger),
		AccessService:  NewAccessService(storages.AccessCounter, logger),
		AppInfoService: NewAppInfoService(cfg.App, buildInfo, logger),
	}
}
