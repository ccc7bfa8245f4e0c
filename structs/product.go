package structs

import "github.com/shopspring/decimal"

// ProductVariant is a priced, stocked sub-unit of a product (a size or a weight).
type ProductVariant struct {
	ID    string          `json:"id"`
	Name  string          `json:"name" validate:"required"`
	Price decimal.Decimal `json:"price" validate:"gte=0"`
	Stock int             `json:"stock" validate:"gte=0"`
	SKU   string          `json:"sku,omitempty"`
}

type Product struct {
	ID          string           `json:"id"`
	Name        string           `json:"name" validate:"required"`
	Category    string           `json:"category" validate:"required,category"`
	ImageURLs   []string         `json:"image_urls" validate:"dive,image_ref"`
	Description string           `json:"description,omitempty"`
	Variants    []ProductVariant `json:"variants" validate:"required,min=1,unique=ID,dive"`
}

// ProductRow is one line of the product table: the product plus its derived display fields.
type ProductRow struct {
	Product
	PriceRange   string `json:"price_range"`
	TotalStock   int    `json:"total_stock"`
	PrimaryImage string `json:"primary_image,omitempty"`
}

// ProductRequest is the body accepted when a full product is created or edited in one call.
type ProductRequest struct {
	Name        string           `json:"name"`
	Category    string           `json:"category"`
	ImageURLs   []string         `json:"image_urls"`
	Description string           `json:"description"`
	Variants    []ProductVariant `json:"variants"`
}

var ProductCategories = []string{
	"Spices & Seasonings",
	"Grains & Flours",
	"Oils & Fats",
	"Beverages",
	"Snacks",
	"Personal Care",
}

func IsProductCategory(category string) bool {
	for _, c := range ProductCategories {
		if c == category {
			return true
		}
	}
	return false
}
