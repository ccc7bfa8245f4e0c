package services

import (
	"context"

	"labisco_server/structs"
)

type DashboardService struct {
	catalog *CatalogService
}

func NewDashboardService(catalog *CatalogService) *DashboardService {
	return &DashboardService{catalog: catalog}
}

// GetDashboard combines the fixed sales figures with totals from the live catalog.
func (ds *DashboardService) GetDashboard(ctx context.Context) (*structs.Dashboard, error) {
	products, err := ds.catalog.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	totals := structs.CatalogTotals{Products: len(products)}
	perCategory := make(map[string]int, len(structs.ProductCategories))
	for _, p := range products {
		totals.Variants += len(p.Variants)
		for _, v := range p.Variants {
			totals.TotalStock += v.Stock
		}
		perCategory[p.Category]++
	}

	categories := make([]structs.NamedValue, 0, len(structs.ProductCategories))
	for _, c := range structs.ProductCategories {
		categories = append(categories, structs.NamedValue{Name: c, Value: perCategory[c]})
	}

	return &structs.Dashboard{
		Stats:         seedStats(),
		Sales:         seedSales(),
		OrderStatus:   seedOrderStatus(),
		Categories:    categories,
		CatalogTotals: totals,
	}, nil
}
