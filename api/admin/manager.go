package admin

import (
	"labisco_server/api/middleware"
	"labisco_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AdminRoutesManager struct {
	logger           *gecho.Logger
	catalogService   *services.CatalogService
	draftService     *services.DraftService
	settingsService  *services.SettingsService
	dashboardService *services.DashboardService
	mw               *middleware.Middleware
}

func NewAdminRoutesManager(logger *gecho.Logger, sm *services.ServiceManager, mw *middleware.Middleware) *AdminRoutesManager {
	return &AdminRoutesManager{
		logger:           logger,
		catalogService:   sm.CatalogService,
		draftService:     sm.DraftService,
		settingsService:  sm.SettingsService,
		dashboardService: sm.DashboardService,
		mw:               mw,
	}
}

func (ar *AdminRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(ar.mw.SessionMiddleware)
		r.Use(ar.mw.RequireAuth)

		r.Get("/dashboard", ar.GetDashboard)
		r.Get("/settings", ar.GetSettings)

		r.Get("/products", ar.ListProducts)
		r.Get("/products/{id}", ar.GetProduct)

		// Protected routes behind CSRF
		r.Group(func(r chi.Router) {
			r.Use(ar.mw.CSRFMiddleware())

			r.Put("/settings", ar.SaveSettings)

			r.Post("/products", ar.CreateProduct)
			r.Put("/products/{id}", ar.UpdateProduct)
			r.Delete("/products/{id}", ar.DeleteProduct)
		})

		r.Route("/products/drafts", func(r chi.Router) {
			r.Get("/{draftID}", ar.GetDraft)

			r.Group(func(r chi.Router) {
				r.Use(ar.mw.CSRFMiddleware())

				r.Post("/", ar.CreateDraft)
				r.Patch("/{draftID}", ar.UpdateDraftFields)
				r.Delete("/{draftID}", ar.DiscardDraft)
				r.Post("/{draftID}/submit", ar.SubmitDraft)

				r.Post("/{draftID}/variants", ar.AddDraftVariant)
				r.Patch("/{draftID}/variants/{variantID}", ar.UpdateDraftVariant)
				r.Delete("/{draftID}/variants/{variantID}", ar.RemoveDraftVariant)

				r.Post("/{draftID}/images", ar.AddDraftImages)
				r.Delete("/{draftID}/images/{index}", ar.RemoveDraftImage)
			})
		})
	})
}
