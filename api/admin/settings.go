package admin

import (
	"net/http"

	"labisco_server/handling"
	"labisco_server/lib"
	"labisco_server/structs"

	"github.com/MonkyMars/gecho"
)

func (ar *AdminRoutesManager) GetSettings(w http.ResponseWriter, r *http.Request) {
	gecho.Success(w,
		gecho.WithData(ar.settingsService.Load()),
		gecho.Send(),
	)
}

// SaveSettings validates and acknowledges the settings. They are not stored.
func (ar *AdminRoutesManager) SaveSettings(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractBody[structs.ShopSettings](r)
	if err != nil {
		ar.logger.Debug("Failed to extract settings body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the settings and try again"), gecho.Send())
		return
	}

	saved, err := ar.settingsService.Save(r.Context(), *body)
	if err != nil {
		handling.HandleServiceError(err, "Unable to save settings. Please try again", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Settings saved successfully"),
		gecho.WithData(saved),
		gecho.Send(),
	)
}
