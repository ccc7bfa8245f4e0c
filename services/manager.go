package services

import (
	"labisco_server/database"
	"labisco_server/storage"
	"labisco_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService      *AuthService
	CacheService     *CacheService
	CatalogService   *CatalogService
	DraftService     *DraftService
	ImageService     *ImageService
	EmailService     *EmailService
	SettingsService  *SettingsService
	DashboardService *DashboardService
	HealthService    *HealthService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, store database.KVStore, images storage.Storage) (*ServiceManager, error) {
	cacheService := NewCacheService(logger, store)
	authService, err := NewAuthService(cfg, logger, cacheService)
	if err != nil {
		return nil, err
	}

	emailService := NewEmailService(logger, cfg.Email)
	imageService := NewImageService(logger, images, cfg.Images)
	catalogService := NewCatalogService(logger, store, cfg.Store.ProductsKey, emailService)
	draftService := NewDraftService(logger, cacheService, catalogService, imageService, cfg.Store.DraftTTL)

	return &ServiceManager{
		AuthService:      authService,
		CacheService:     cacheService,
		CatalogService:   catalogService,
		DraftService:     draftService,
		ImageService:     imageService,
		EmailService:     emailService,
		SettingsService:  NewSettingsService(logger, cfg.Settings),
		DashboardService: NewDashboardService(catalogService),
		HealthService:    NewHealthService(logger, store, cfg.Store.Driver),
	}, nil
}
