package auth

import (
	"net/http"

	"labisco_server/api/middleware"
	"labisco_server/lib"

	"github.com/MonkyMars/gecho"
)

func (ar *AuthRoutesManager) HandleLogout(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if ok && session.IsAuthenticated {
		if err := ar.authService.Logout(r.Context(), session.ID); err != nil {
			ar.logger.Error("Failed to clear session during logout", gecho.Field("error", err))
			gecho.InternalServerError(w, gecho.WithMessage("Failed to logout"), gecho.Send())
			return
		}
	}

	lib.ClearCookie(lib.AccessCookieName, w)

	gecho.Success(w,
		gecho.WithMessage("Logged out successfully"),
		gecho.WithData(map[string]string{"redirect_to": "/login"}),
		gecho.Send(),
	)
}
