package handling

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"labisco_server/lib"
	"labisco_server/structs"
)

// ProductListOptions are the query parameters of the product table.
type ProductListOptions struct {
	Search   string `json:"search"`
	Currency string `json:"currency"`
}

// ParseProductListOptions parses ?search= and ?currency= for the product list.
func ParseProductListOptions(r *http.Request) (*ProductListOptions, error) {
	query := r.URL.Query()

	opts := &ProductListOptions{
		Search:   strings.TrimSpace(query.Get("search")),
		Currency: lib.DefaultCurrency,
	}

	if currency := query.Get("currency"); currency != "" {
		currency = strings.ToUpper(strings.TrimSpace(currency))
		if !isOneOf(structs.Currencies, currency) {
			return nil, fmt.Errorf("unsupported currency %q", currency)
		}
		opts.Currency = currency
	}

	return opts, nil
}

// ParseIndex parses a non-negative position from a path parameter.
func ParseIndex(raw string) (int, error) {
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 0 {
		return 0, lib.ErrImageIndex
	}
	return idx, nil
}

func isOneOf(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}
