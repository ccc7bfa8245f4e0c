package lib

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewProductID returns an id in the "prod-<uuid>" form used by the catalog.
func NewProductID() string {
	return "prod-" + uuid.NewString()
}

// NewVariantID returns an id in the "variant-<uuid>" form used by the catalog.
func NewVariantID() string {
	return "variant-" + uuid.NewString()
}

// GenerateSKU builds a SKU from the first letters of the product and variant names
// and a short random suffix, e.g. "PAL-1L-3F9A".
func GenerateSKU(productName, variantName string) string {
	clean := func(s string, max int) string {
		s = strings.Map(func(r rune) rune {
			if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, strings.ToUpper(s))
		if len(s) > max {
			s = s[:max]
		}
		return s
	}

	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:4])

	name := clean(productName, 3)
	if name == "" {
		name = "PRD"
	}
	if v := clean(variantName, 4); v != "" {
		return fmt.Sprintf("%s-%s-%s", name, v, suffix)
	}
	return fmt.Sprintf("%s-%s", name, suffix)
}
