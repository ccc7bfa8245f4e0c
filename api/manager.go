package api

import (
	"labisco_server/api/admin"
	"labisco_server/api/auth"
	"labisco_server/api/debug"
	"labisco_server/api/health"
	"labisco_server/api/middleware"
	"labisco_server/services"
	"labisco_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	healthRoutes *health.HealthRoutesManager
	authRoutes   *auth.AuthRoutesManager
	adminRoutes  *admin.AdminRoutesManager
	debugRoutes  *debug.DebugRoutesManager
}

func NewRouterManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	sm *services.ServiceManager,
	mw *middleware.Middleware,
) *routerManager {
	return &routerManager{
		healthRoutes: health.NewHealthRoutesManager(sm.HealthService),
		authRoutes:   auth.NewAuthRoutesManager(logger, sm.AuthService, cfg, mw),
		adminRoutes:  admin.NewAdminRoutesManager(logger, sm, mw),
		debugRoutes:  debug.NewDebugRoutesManager(logger, sm.CatalogService, mw),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.healthRoutes.RegisterRoutes(r)
	rm.authRoutes.RegisterRoutes(r)
	rm.adminRoutes.RegisterRoutes(r)
	rm.debugRoutes.RegisterRoutes(r)
}
