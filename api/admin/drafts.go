package admin

import (
	"errors"
	"io"
	"net/http"

	"labisco_server/handling"
	"labisco_server/lib"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

const maxMultipartMemory = 32 << 20

type CreateDraftRequest struct {
	ProductID string `json:"product_id"`
}

func (ar *AdminRoutesManager) CreateDraft(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractBody[CreateDraftRequest](r)
	if errors.Is(err, io.EOF) {
		body, err = &CreateDraftRequest{}, nil
	}
	if err != nil {
		ar.logger.Debug("Failed to extract draft body", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Invalid draft request"), gecho.Send())
		return
	}

	draft, err := ar.draftService.Create(r.Context(), body.ProductID)
	if errors.Is(err, lib.ErrNotFound) {
		productNotFound(w, body.ProductID)
		return
	}
	if err != nil {
		handling.HandleServiceError(err, "Unable to open the product form. Please try again", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(draft),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) GetDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := ar.draftService.Get(r.Context(), chi.URLParam(r, "draftID"))
	if err != nil {
		handling.HandleServiceError(err, "Unable to load the product form", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(draft),
		gecho.Send(),
	)
}

// UpdateDraftFields sets name, category or description from a flat JSON object.
func (ar *AdminRoutesManager) UpdateDraftFields(w http.ResponseWriter, r *http.Request) {
	fields, err := lib.ExtractBody[map[string]string](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Fields must be a JSON object of strings"), gecho.Send())
		return
	}

	draft, err := ar.draftService.SetFields(r.Context(), chi.URLParam(r, "draftID"), *fields)
	if err != nil {
		handling.HandleServiceError(err, "Unable to update the product form", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(draft),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) DiscardDraft(w http.ResponseWriter, r *http.Request) {
	if err := ar.draftService.Discard(r.Context(), chi.URLParam(r, "draftID")); err != nil {
		handling.HandleServiceError(err, "Unable to discard the product form", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Changes discarded"),
		gecho.WithData(map[string]string{"redirect_to": "/products"}),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) SubmitDraft(w http.ResponseWriter, r *http.Request) {
	product, err := ar.draftService.Submit(r.Context(), chi.URLParam(r, "draftID"))
	if err != nil {
		handling.HandleServiceError(err, "Unable to save product. Please try again", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product saved successfully"),
		gecho.WithData(map[string]any{
			"product":     product,
			"redirect_to": "/products",
		}),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) AddDraftVariant(w http.ResponseWriter, r *http.Request) {
	draft, err := ar.draftService.AddVariant(r.Context(), chi.URLParam(r, "draftID"))
	if err != nil {
		handling.HandleServiceError(err, "Unable to add a variant", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(draft),
		gecho.Send(),
	)
}

// UpdateDraftVariant takes the raw input values keyed by field: name, sku, price or stock.
func (ar *AdminRoutesManager) UpdateDraftVariant(w http.ResponseWriter, r *http.Request) {
	fields, err := lib.ExtractBody[map[string]string](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Fields must be a JSON object of strings"), gecho.Send())
		return
	}

	draft, err := ar.draftService.UpdateVariant(r.Context(),
		chi.URLParam(r, "draftID"),
		chi.URLParam(r, "variantID"),
		*fields,
	)
	if err != nil {
		handling.HandleServiceError(err, "Unable to update the variant", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(draft),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) RemoveDraftVariant(w http.ResponseWriter, r *http.Request) {
	draft, err := ar.draftService.RemoveVariant(r.Context(),
		chi.URLParam(r, "draftID"),
		chi.URLParam(r, "variantID"),
	)
	if err != nil {
		handling.HandleServiceError(err, "Unable to remove the variant", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(draft),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) AddDraftImages(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		ar.logger.Debug("Failed to parse image upload", gecho.Field("error", err))
		gecho.BadRequest(w, gecho.WithMessage("Images must be sent as multipart form data"), gecho.Send())
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		gecho.BadRequest(w, gecho.WithMessage("Please select at least one image"), gecho.Send())
		return
	}

	draft, err := ar.draftService.AddImages(r.Context(), chi.URLParam(r, "draftID"), files)
	if err != nil {
		handling.HandleServiceError(err, "Unable to add images. Please try again", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(draft),
		gecho.Send(),
	)
}

func (ar *AdminRoutesManager) RemoveDraftImage(w http.ResponseWriter, r *http.Request) {
	index, err := handling.ParseIndex(chi.URLParam(r, "index"))
	if err != nil {
		handling.HandleServiceError(err, "Invalid image position", ar.logger, w)
		return
	}

	draft, err := ar.draftService.RemoveImage(r.Context(), chi.URLParam(r, "draftID"), index)
	if err != nil {
		handling.HandleServiceError(err, "Unable to remove the image", ar.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(draft),
		gecho.Send(),
	)
}
