package middleware

import (
	"context"
	"net/http"
	"strings"

	"labisco_server/lib"
	"labisco_server/structs"

	"github.com/MonkyMars/gecho"
)

type contextKey string

const SessionContextKey contextKey = "session"

// SessionMiddleware resolves the access cookie to the stored session and puts it
// in the request context. Requests without a valid session get an anonymous one.
func (mw *Middleware) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := &structs.Session{State: structs.SessionAnonymous}

		claims, err := lib.ExtractClaims(r, mw.authService.GetAccessTokenSecret())
		if err == nil {
			stored, err := mw.authService.GetSession(r.Context(), claims.Jti)
			if err != nil {
				mw.logger.Warn("Failed to load session", gecho.Field("error", err))
			} else {
				session = stored
			}
		} else if err != http.ErrNoCookie {
			mw.logger.Debug("Ignoring invalid access token", gecho.Field("error", err))
		}

		ctx := context.WithValue(r.Context(), SessionContextKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth rejects anonymous sessions and tells the client where to go to log
// in and which dashboard page to come back to. Must be used after SessionMiddleware.
func (mw *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := GetSessionFromContext(r.Context())
		if !ok || !session.IsAuthenticated {
			gecho.Unauthorized(w,
				gecho.WithMessage("Please log in to continue"),
				gecho.WithData(map[string]string{
					"redirect_to": "/login",
					"from":        clientRoute(r.URL.Path),
				}),
				gecho.Send(),
			)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientRoute maps an admin API path to the dashboard page that calls it, so the
// login page can send the user back there. Anything unknown goes to the dashboard.
func clientRoute(apiPath string) string {
	rest, _ := strings.CutPrefix(apiPath, "/admin/")
	parts := strings.Split(strings.Trim(rest, "/"), "/")

	switch {
	case parts[0] == "settings":
		return "/settings"
	case parts[0] != "products":
		return "/"
	case len(parts) == 1:
		return "/products"
	case parts[1] == "drafts":
		return "/products/new"
	case len(parts) == 2:
		return "/products/edit/" + parts[1]
	}
	return "/products"
}

// GetSessionFromContext returns the session placed by SessionMiddleware.
func GetSessionFromContext(ctx context.Context) (*structs.Session, bool) {
	session, ok := ctx.Value(SessionContextKey).(*structs.Session)
	return session, ok
}
