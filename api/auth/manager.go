package auth

import (
	"labisco_server/api/middleware"
	"labisco_server/services"
	"labisco_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AuthRoutesManager struct {
	logger      *gecho.Logger
	authService *services.AuthService
	cfg         *structs.Config
	mw          *middleware.Middleware
}

func NewAuthRoutesManager(
	logger *gecho.Logger,
	authService *services.AuthService,
	cfg *structs.Config,
	mw *middleware.Middleware,
) *AuthRoutesManager {
	return &AuthRoutesManager{
		logger:      logger,
		authService: authService,
		cfg:         cfg,
		mw:          mw,
	}
}

func (ar *AuthRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Use(ar.mw.SessionMiddleware)

		// CSRF token endpoint (must be called before state-changing routes)
		r.Get("/csrf", ar.HandleCSRF)

		r.Group(func(r chi.Router) {
			r.Use(ar.mw.CSRFMiddleware())
			r.With(ar.mw.AuthRateLimit()).Post("/login", ar.HandleLogin)
			r.Post("/logout", ar.HandleLogout)
		})

		// Signed-in only
		r.Group(func(r chi.Router) {
			r.Use(ar.mw.RequireAuth)
			r.Use(ar.mw.CSRFMiddleware())
			r.Get("/me", ar.HandleMe)
			r.Get("/theme", ar.HandleGetTheme)
			r.Put("/theme", ar.HandleSetTheme)
			r.Post("/theme/toggle", ar.HandleToggleTheme)
		})
	})
}
