package admin

import (
	"errors"
	"net/http"

	"labisco_server/handling"
	"labisco_server/lib"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

func (ar *AdminRoutesManager) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		gecho.BadRequest(w, gecho.WithMessage("Please select a product to delete"), gecho.Send())
		return
	}

	err := ar.catalogService.DeleteProduct(r.Context(), productID)
	if errors.Is(err, lib.ErrNotFound) {
		gecho.NotFound(w, gecho.WithMessage("Product not found"), gecho.Send())
		return
	}
	if err != nil {
		handling.HandleServiceError(err, "Unable to delete product. Please try again", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product deleted successfully"),
		gecho.WithData(map[string]string{"id": productID}),
		gecho.Send(),
	)
}
