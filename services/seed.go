package services

import (
	"labisco_server/structs"

	"github.com/shopspring/decimal"
)

// SeedProducts returns a fresh copy of the catalog written to an empty store.
func SeedProducts() []structs.Product {
	return []structs.Product{
		{
			ID:          "prod-1",
			Name:        "Ofada Rice",
			Category:    "Grains & Flours",
			ImageURLs:   []string{},
			Description: "Locally grown, unpolished ofada rice.",
			Variants: []structs.ProductVariant{
				{ID: "variant-1a", Name: "1kg", Price: decimal.NewFromInt(2500), Stock: 40, SKU: "OFA-1KG"},
				{ID: "variant-1b", Name: "5kg", Price: decimal.NewFromInt(11500), Stock: 12, SKU: "OFA-5KG"},
			},
		},
		{
			ID:          "prod-2",
			Name:        "Red Palm Oil",
			Category:    "Oils & Fats",
			ImageURLs:   []string{},
			Description: "Cold-pressed red palm oil.",
			Variants: []structs.ProductVariant{
				{ID: "variant-2a", Name: "1L", Price: decimal.NewFromInt(3200), Stock: 25, SKU: "RPO-1L"},
				{ID: "variant-2b", Name: "4L", Price: decimal.NewFromInt(12000), Stock: 3, SKU: "RPO-4L"},
			},
		},
		{
			ID:          "prod-3",
			Name:        "Suya Spice",
			Category:    "Spices & Seasonings",
			ImageURLs:   []string{},
			Description: "Yaji blend for grilled meats.",
			Variants: []structs.ProductVariant{
				{ID: "variant-3a", Name: "100g", Price: decimal.NewFromInt(1200), Stock: 60, SKU: "SUY-100G"},
			},
		},
		{
			ID:          "prod-4",
			Name:        "Zobo Drink",
			Category:    "Beverages",
			ImageURLs:   []string{},
			Description: "Hibiscus drink with ginger and cloves.",
			Variants: []structs.ProductVariant{
				{ID: "variant-4a", Name: "50cl", Price: decimal.NewFromInt(500), Stock: 80},
				{ID: "variant-4b", Name: "1L", Price: decimal.NewFromInt(900), Stock: 35},
			},
		},
		{
			ID:        "prod-5",
			Name:      "Plantain Chips",
			Category:  "Snacks",
			ImageURLs: []string{},
			Variants: []structs.ProductVariant{
				{ID: "variant-5a", Name: "Small", Price: decimal.NewFromInt(300), Stock: 100},
				{ID: "variant-5b", Name: "Large", Price: decimal.NewFromInt(750), Stock: 45},
			},
		},
		{
			ID:          "prod-6",
			Name:        "Black Soap",
			Category:    "Personal Care",
			ImageURLs:   []string{},
			Description: "Traditional African black soap.",
			Variants: []structs.ProductVariant{
				{ID: "variant-6a", Name: "200g", Price: decimal.NewFromInt(1500), Stock: 20, SKU: "BSO-200G"},
			},
		},
	}
}

func seedStats() []structs.StatCard {
	return []structs.StatCard{
		{Title: "Total Revenue", Value: "₦1,250,000", Change: "+12% from last month", ChangeType: "positive"},
		{Title: "Total Orders", Value: "320", Change: "+5% from last month", ChangeType: "positive"},
		{Title: "New Customers", Value: "45", Change: "-2% from last month", ChangeType: "negative"},
		{Title: "Pending Orders", Value: "12"},
	}
}

func seedSales() []structs.SalesPoint {
	return []structs.SalesPoint{
		{Month: "Jan", Sales: 150000},
		{Month: "Feb", Sales: 180000},
		{Month: "Mar", Sales: 165000},
		{Month: "Apr", Sales: 210000},
		{Month: "May", Sales: 240000},
		{Month: "Jun", Sales: 305000},
	}
}

func seedOrderStatus() []structs.NamedValue {
	return []structs.NamedValue{
		{Name: "Pending", Value: 12},
		{Name: "Processing", Value: 25},
		{Name: "Shipped", Value: 48},
		{Name: "Delivered", Value: 220},
		{Name: "Cancelled", Value: 15},
	}
}

// DefaultShopSettings is what the settings page loads every time.
func DefaultShopSettings() structs.ShopSettings {
	return structs.ShopSettings{
		ShopName: "Labisco Store",
		Currency: "NGN",
		Timezone: "Africa/Lagos (GMT+1)",
		Notifications: structs.NotificationSettings{
			NewOrders: true,
			LowStock:  true,
		},
	}
}
