package admin

import (
	"net/http"

	"labisco_server/handling"
	"labisco_server/lib"
	"labisco_server/structs"

	"github.com/MonkyMars/gecho"
)

func productFromRequest(body *structs.ProductRequest) structs.Product {
	return structs.Product{
		Name:        body.Name,
		Category:    body.Category,
		ImageURLs:   body.ImageURLs,
		Description: body.Description,
		Variants:    body.Variants,
	}
}

func (ar *AdminRoutesManager) CreateProduct(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractBody[structs.ProductRequest](r)
	if err != nil {
		ar.logger.Debug("Failed to extract product body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Please check the product information and try again"), gecho.Send())
		return
	}

	ar.logger.Debug("CreateProduct request received",
		gecho.Field("product_name", body.Name),
		gecho.Field("images_count", len(body.ImageURLs)),
		gecho.Field("variants_count", len(body.Variants)),
	)

	product, err := ar.catalogService.SaveProduct(r.Context(), productFromRequest(body), "")
	if err != nil {
		handling.HandleServiceError(err, "Unable to create product. Please try again", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product created successfully"),
		gecho.WithData(map[string]any{
			"product":     product,
			"redirect_to": "/products",
		}),
		gecho.Send(),
	)
}
