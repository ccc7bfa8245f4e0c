package handling

import (
	"context"
	"errors"
	"net/http"

	"labisco_server/lib"

	"github.com/MonkyMars/gecho"
)

func HandleError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) {
	logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", msg), gecho.WithCallerSkip(3))

	gecho.InternalServerError(w, gecho.WithMessage(msg), gecho.Send())
}

// HandleServiceError maps the errors returned by services to a response.
// Anything it does not recognise becomes a 500 through HandleError.
func HandleServiceError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) {
	var ve *lib.ValidationError

	switch {
	case errors.As(err, &ve):
		gecho.BadRequest(w,
			gecho.WithMessage("Please check the highlighted fields and try again"),
			gecho.WithData(ve),
			gecho.Send(),
		)
		return

	case errors.Is(err, lib.ErrNotFound):
		gecho.NotFound(w, gecho.WithMessage("Product not found"), gecho.Send())
		return

	case errors.Is(err, lib.ErrDraftNotFound):
		gecho.NotFound(w, gecho.WithMessage("Draft not found or expired"), gecho.Send())
		return

	case errors.Is(err, lib.ErrVariantNotFound):
		gecho.NotFound(w, gecho.WithMessage("Variant not found"), gecho.Send())
		return

	case errors.Is(err, lib.ErrLastVariant),
		errors.Is(err, lib.ErrImageIndex),
		errors.Is(err, lib.ErrUnsupportedImage),
		errors.Is(err, lib.ErrImageTooLarge):
		gecho.BadRequest(w, gecho.WithMessage(err.Error()), gecho.Send())
		return

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		logger.Debug("Request ended before completion", gecho.Field("error", err), gecho.Field("msg", msg))
		gecho.ServiceUnavailable(w, gecho.WithMessage("Request was cancelled"), gecho.Send())
		return
	}

	HandleError(err, msg, logger, w)
}
