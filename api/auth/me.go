package auth

import (
	"net/http"

	"labisco_server/api/middleware"

	"github.com/MonkyMars/gecho"
)

func (ar *AuthRoutesManager) HandleMe(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.GetSessionFromContext(r.Context())
	gecho.Success(w,
		gecho.WithData(session),
		gecho.Send(),
	)
}
