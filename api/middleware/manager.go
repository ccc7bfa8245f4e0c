package middleware

import (
	"labisco_server/services"
	"labisco_server/structs"

	"github.com/MonkyMars/gecho"
)

type Middleware struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	authService  *services.AuthService
	cacheService *services.CacheService
}

func NewMiddleware(cfg *structs.Config, logger *gecho.Logger, authService *services.AuthService, cacheService *services.CacheService) *Middleware {
	return &Middleware{
		logger:       logger,
		cfg:          cfg,
		authService:  authService,
		cacheService: cacheService,
	}
}
