package auth

import (
	"net/http"

	"labisco_server/api/middleware"
	"labisco_server/lib"
	"labisco_server/structs"

	"github.com/MonkyMars/gecho"
)

func (ar *AuthRoutesManager) HandleGetTheme(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.GetSessionFromContext(r.Context())

	theme, err := ar.authService.GetTheme(r.Context(), session.User.ID)
	if err != nil {
		ar.logger.Warn("Failed to read theme, using default", gecho.Field("error", err))
	}

	gecho.Success(w,
		gecho.WithData(structs.ThemeRequest{Theme: theme}),
		gecho.Send(),
	)
}

func (ar *AuthRoutesManager) HandleSetTheme(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.GetSessionFromContext(r.Context())

	body, err := lib.ExtractAndValidateBody[structs.ThemeRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Theme must be light or dark"), gecho.Send())
		return
	}

	if err := ar.authService.SetTheme(r.Context(), session.User.ID, body.Theme); err != nil {
		ar.logger.Error("Failed to store theme", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Failed to save theme"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(body),
		gecho.Send(),
	)
}

func (ar *AuthRoutesManager) HandleToggleTheme(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.GetSessionFromContext(r.Context())

	theme, err := ar.authService.ToggleTheme(r.Context(), session.User.ID)
	if err != nil {
		ar.logger.Error("Failed to toggle theme", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Failed to save theme"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(structs.ThemeRequest{Theme: theme}),
		gecho.Send(),
	)
}
