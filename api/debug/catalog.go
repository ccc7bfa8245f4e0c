package debug

import (
	"net/http"

	"labisco_server/handling"

	"github.com/MonkyMars/gecho"
)

// ReseedCatalog puts the demo products back, dropping every local change.
func (drm *DebugRoutesManager) ReseedCatalog(w http.ResponseWriter, r *http.Request) {
	products, err := drm.catalogService.Reseed(r.Context())
	if err != nil {
		handling.HandleError(err, "Failed to reseed the catalog", drm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Catalog reseeded"),
		gecho.WithData(map[string]int{"products": len(products)}),
		gecho.Send(),
	)
}
