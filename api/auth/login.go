package auth

import (
	"context"
	"errors"
	"net/http"

	"labisco_server/lib"
	"labisco_server/services"
	"labisco_server/structs"

	"github.com/MonkyMars/gecho"
)

const invalidCredentialsMessage = "Invalid email or password. Please try again."

func (ar *AuthRoutesManager) HandleLogin(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.AuthRequest](r)
	if err != nil {
		ar.logger.Debug("Failed to extract login body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Email and password are required"), gecho.Send())
		return
	}

	session, err := ar.authService.Login(r.Context(), body)
	if err != nil {
		switch {
		case errors.Is(err, lib.ErrInvalidCredentials):
			gecho.Unauthorized(w, gecho.WithMessage(invalidCredentialsMessage), gecho.Send())
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			ar.logger.Debug("Login abandoned by client", gecho.Field("error", err))
			gecho.ServiceUnavailable(w, gecho.WithMessage("Login was cancelled"), gecho.Send())
		default:
			ar.logger.Error("Login failed", gecho.Field("error", err))
			gecho.InternalServerError(w, gecho.WithMessage("Unable to complete login. Please try again"), gecho.Send())
		}
		return
	}

	accessToken, expiry, err := ar.authService.GenerateAccessToken(session)
	if err != nil {
		ar.logger.Error("Failed to generate access token", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to complete login. Please try again"), gecho.Send())
		return
	}

	lib.SetCookie(lib.AccessCookieName, accessToken, expiry, w)

	gecho.Success(w,
		gecho.WithMessage("Login successful"),
		gecho.WithData(structs.LoginResponse{
			User:       session.User,
			RedirectTo: services.RedirectTarget(body.From),
		}),
		gecho.Send(),
	)
}
