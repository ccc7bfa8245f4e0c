package admin

import (
	"errors"
	"net/http"

	"labisco_server/handling"
	"labisco_server/lib"
	"labisco_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// productNotFound is the response for an edit of an id that is not in the catalog.
func productNotFound(w http.ResponseWriter, id string) {
	gecho.NotFound(w,
		gecho.WithMessage("Product not found"),
		gecho.WithData(map[string]string{
			"id":      id,
			"back_to": "/products",
		}),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := ar.catalogService.FindProduct(r.Context(), id)
	if errors.Is(err, lib.ErrNotFound) {
		productNotFound(w, id)
		return
	}
	if err != nil {
		handling.HandleServiceError(err, "Unable to load product. Please try again", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"product":    product,
			"categories": structs.ProductCategories,
		}),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	body, err := lib.ExtractBody[structs.ProductRequest](r)
	if err != nil {
		ar.logger.Debug("Failed to extract product body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the product information and try again"), gecho.Send())
		return
	}

	product, err := ar.catalogService.SaveProduct(r.Context(), productFromRequest(body), id)
	if errors.Is(err, lib.ErrNotFound) {
		productNotFound(w, id)
		return
	}
	if err != nil {
		handling.HandleServiceError(err, "Unable to update product. Please try again", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product updated successfully"),
		gecho.WithData(map[string]any{
			"product":     product,
			"redirect_to": "/products",
		}),
		gecho.Send(),
	)
}
