package structs

type StatCard struct {
	Title      string `json:"title"`
	Value      string `json:"value"`
	Change     string `json:"change,omitempty"`
	ChangeType string `json:"change_type,omitempty"` // positive, negative
}

type SalesPoint struct {
	Month string `json:"month"`
	Sales int    `json:"sales"`
}

type NamedValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type CatalogTotals struct {
	Products   int `json:"products"`
	Variants   int `json:"variants"`
	TotalStock int `json:"total_stock"`
}

type Dashboard struct {
	Stats         []StatCard    `json:"stats"`
	Sales         []SalesPoint  `json:"sales"`
	OrderStatus   []NamedValue  `json:"order_status"`
	Categories    []NamedValue  `json:"categories"`
	CatalogTotals CatalogTotals `json:"catalog_totals"`
}
