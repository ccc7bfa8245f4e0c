package admin

import (
	"net/http"

	"labisco_server/handling"

	"github.com/MonkyMars/gecho"
)

func (ar *AdminRoutesManager) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := ar.dashboardService.GetDashboard(r.Context())
	if err != nil {
		handling.HandleServiceError(err, "Unable to load the dashboard. Please try again", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(dashboard),
		gecho.Send(),
	)
}
