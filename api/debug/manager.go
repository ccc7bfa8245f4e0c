package debug

import (
	"labisco_server/api/middleware"
	"labisco_server/config"
	"labisco_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type DebugRoutesManager struct {
	logger         *gecho.Logger
	catalogService *services.CatalogService
	mw             *middleware.Middleware
}

func NewDebugRoutesManager(logger *gecho.Logger, catalogService *services.CatalogService, mw *middleware.Middleware) *DebugRoutesManager {
	return &DebugRoutesManager{
		logger:         logger,
		catalogService: catalogService,
		mw:             mw,
	}
}

func (drm *DebugRoutesManager) RegisterRoutes(r chi.Router) {
	// Debug routes - only in non-production environments
	if !config.IsProduction() {
		r.Route("/debug", func(r chi.Router) {
			r.Use(drm.mw.SessionMiddleware)
			r.Use(drm.mw.RequireAuth)
			r.Use(drm.mw.CSRFMiddleware())
			r.Post("/catalog/reseed", drm.ReseedCatalog)
		})
	}
}
