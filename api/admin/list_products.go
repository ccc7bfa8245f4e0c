package admin

import (
	"net/http"

	"labisco_server/handling"
	"labisco_server/lib"
	"labisco_server/services"

	"github.com/MonkyMars/gecho"
)

func (ar *AdminRoutesManager) ListProducts(w http.ResponseWriter, r *http.Request) {
	opts, err := handling.ParseProductListOptions(r)
	if err != nil {
		ar.logger.Warn("Failed to parse product list options", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Invalid query parameters"), gecho.Send())
		return
	}

	products, err := ar.catalogService.SearchProducts(r.Context(), opts.Search)
	if err != nil {
		handling.HandleServiceError(err, "Unable to load products. Please try again", ar.logger, w)
		return
	}

	rows := services.BuildProductRows(products)
	if opts.Currency != lib.DefaultCurrency {
		for i := range rows {
			rows[i].PriceRange = lib.PriceRangeIn(opts.Currency, rows[i].Variants)
		}
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products": rows,
			"search":   opts.Search,
			"currency": opts.Currency,
		}),
		gecho.Send(),
	)
}
