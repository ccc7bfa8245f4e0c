package services

import (
	"context"
	"math"
	"mime/multipart"
	"strconv"
	"strings"

	"labisco_server/lib"
	"labisco_server/structs"

	"github.com/shopspring/decimal"
)

// ProductForm is the editable state behind the create/edit product screen.
// It always holds at least one variant row.
type ProductForm struct {
	EditingID   string                   `json:"editing_id,omitempty"`
	Name        string                   `json:"name"`
	Category    string                   `json:"category"`
	Description string                   `json:"description"`
	ImageURLs   []string                 `json:"image_urls"`
	Variants    []structs.ProductVariant `json:"variants"`
}

func NewProductForm(product *structs.Product) *ProductForm {
	f := &ProductForm{}
	f.LoadFor(product)
	return f
}

// LoadFor resets the form. With a product the form edits a deep copy of it,
// without one it starts a blank product in the first category.
func (f *ProductForm) LoadFor(product *structs.Product) {
	if product == nil {
		*f = ProductForm{
			Category:  structs.ProductCategories[0],
			ImageURLs: []string{},
			Variants:  []structs.ProductVariant{newVariantRow()},
		}
		return
	}

	*f = ProductForm{
		EditingID:   product.ID,
		Name:        product.Name,
		Category:    product.Category,
		Description: product.Description,
		ImageURLs:   append([]string{}, product.ImageURLs...),
		Variants:    append([]structs.ProductVariant{}, product.Variants...),
	}
	if len(f.Variants) == 0 {
		f.Variants = []structs.ProductVariant{newVariantRow()}
	}
}

func newVariantRow() structs.ProductVariant {
	return structs.ProductVariant{ID: lib.NewVariantID(), Price: decimal.Zero}
}

func (f *ProductForm) AddVariantRow() structs.ProductVariant {
	v := newVariantRow()
	f.Variants = append(f.Variants, v)
	return v
}

// RemoveVariantRow refuses to drop the last remaining variant.
func (f *ProductForm) RemoveVariantRow(variantID string) error {
	if len(f.Variants) <= 1 {
		return lib.ErrLastVariant
	}

	idx := f.variantIndex(variantID)
	if idx < 0 {
		return lib.ErrVariantNotFound
	}

	f.Variants = append(f.Variants[:idx:idx], f.Variants[idx+1:]...)
	return nil
}

// UpdateVariantField sets one field of a variant from raw input. Price and stock
// that do not parse become 0.
func (f *ProductForm) UpdateVariantField(variantID, field, raw string) error {
	idx := f.variantIndex(variantID)
	if idx < 0 {
		return lib.ErrVariantNotFound
	}
	v := &f.Variants[idx]

	switch field {
	case "name":
		v.Name = raw
	case "sku":
		v.SKU = raw
	case "price":
		v.Price = parsePrice(raw)
	case "stock":
		v.Stock = parseStock(raw)
	default:
		ve := &lib.ValidationError{}
		ve.Add(field, "is not an editable variant field")
		return ve
	}
	return nil
}

// SetField sets one of the top-level text fields.
func (f *ProductForm) SetField(field, raw string) error {
	switch field {
	case "name":
		f.Name = raw
	case "category":
		f.Category = raw
	case "description":
		f.Description = raw
	default:
		ve := &lib.ValidationError{}
		ve.Add(field, "is not an editable product field")
		return ve
	}
	return nil
}

// AddImages stores a batch of uploads and appends their URLs in selection order.
// If any file in the batch fails nothing is appended.
func (f *ProductForm) AddImages(ctx context.Context, images *ImageService, files []*multipart.FileHeader) error {
	urls, err := images.StoreUploads(ctx, files)
	if err != nil {
		return err
	}
	f.AppendImages(urls...)
	return nil
}

// AppendImages adds already stored image URLs after the existing ones.
func (f *ProductForm) AppendImages(urls ...string) {
	f.ImageURLs = append(f.ImageURLs, urls...)
}

// RemoveImage drops the image at index and returns its URL.
func (f *ProductForm) RemoveImage(index int) (string, error) {
	if index < 0 || index >= len(f.ImageURLs) {
		return "", lib.ErrImageIndex
	}
	removed := f.ImageURLs[index]
	f.ImageURLs = append(f.ImageURLs[:index:index], f.ImageURLs[index+1:]...)
	return removed, nil
}

// Submit validates the form and emits the product it describes. The id is the
// edited product's id, or empty for a new product.
func (f *ProductForm) Submit() (structs.Product, error) {
	product := structs.Product{
		ID:          f.EditingID,
		Name:        strings.TrimSpace(f.Name),
		Category:    f.Category,
		Description: f.Description,
		ImageURLs:   append([]string{}, f.ImageURLs...),
		Variants:    append([]structs.ProductVariant{}, f.Variants...),
	}

	if err := lib.ValidateStruct(product); err != nil {
		return structs.Product{}, err
	}
	return product, nil
}

func (f *ProductForm) variantIndex(variantID string) int {
	for i := range f.Variants {
		if f.Variants[i].ID == variantID {
			return i
		}
	}
	return -1
}

func parsePrice(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func parseStock(raw string) int {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	// Values outside the int range count as unparsable, like NaN and Inf.
	if fl, err := strconv.ParseFloat(raw, 64); err == nil && fl >= math.MinInt64 && fl < math.MaxInt64 {
		return int(fl)
	}
	return 0
}
