package handling

import (
	"net/http/httptest"
	"testing"

	"labisco_server/lib"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProductListOptions(t *testing.T) {
	opts, err := ParseProductListOptions(httptest.NewRequest("GET", "/admin/products", nil))
	require.NoError(t, err)
	assert.Equal(t, &ProductListOptions{Currency: "NGN"}, opts)

	opts, err = ParseProductListOptions(httptest.NewRequest("GET", "/admin/products?search=+rice+&currency=usd", nil))
	require.NoError(t, err)
	assert.Equal(t, "rice", opts.Search)
	assert.Equal(t, "USD", opts.Currency)

	_, err = ParseProductListOptions(httptest.NewRequest("GET", "/admin/products?currency=BTC", nil))
	assert.Error(t, err)
}

func TestParseIndex(t *testing.T) {
	idx, err := ParseIndex("2")
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	for _, raw := range []string{"-1", "x", ""} {
		_, err := ParseIndex(raw)
		assert.ErrorIs(t, err, lib.ErrImageIndex)
	}
}
