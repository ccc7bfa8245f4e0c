package services

import (
	"context"
	"strings"
	"testing"

	"labisco_server/lib"
	"labisco_server/storage"
	"labisco_server/structs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadForNewProduct(t *testing.T) {
	f := NewProductForm(nil)
	assert.Empty(t, f.EditingID)
	assert.Equal(t, structs.ProductCategories[0], f.Category)
	require.Len(t, f.Variants, 1)
	assert.NotEmpty(t, f.Variants[0].ID)
	assert.True(t, f.Variants[0].Price.IsZero())
	assert.Empty(t, f.ImageURLs)
}

func TestLoadForCopiesProduct(t *testing.T) {
	p := sampleProduct("Chin Chin")
	p.ID = "prod-9"
	p.Variants[0].ID = "variant-a"
	p.Variants[1].ID = "variant-b"
	p.ImageURLs = []string{"one"}

	f := NewProductForm(&p)
	assert.Equal(t, "prod-9", f.EditingID)

	require.NoError(t, f.UpdateVariantField("variant-a", "name", "Tiny"))
	_, err := f.RemoveImage(0)
	require.NoError(t, err)

	assert.Equal(t, "Small", p.Variants[0].Name)
	assert.Equal(t, []string{"one"}, p.ImageURLs)
}

func TestRemoveVariantRow(t *testing.T) {
	f := NewProductForm(nil)
	only := f.Variants[0].ID

	assert.ErrorIs(t, f.RemoveVariantRow(only), lib.ErrLastVariant)
	assert.Len(t, f.Variants, 1)

	added := f.AddVariantRow()
	assert.Len(t, f.Variants, 2)
	assert.ErrorIs(t, f.RemoveVariantRow("variant-unknown"), lib.ErrVariantNotFound)

	require.NoError(t, f.RemoveVariantRow(only))
	require.Len(t, f.Variants, 1)
	assert.Equal(t, added.ID, f.Variants[0].ID)

	assert.ErrorIs(t, f.RemoveVariantRow(added.ID), lib.ErrLastVariant)
}

func TestUpdateVariantFieldParsing(t *testing.T) {
	f := NewProductForm(nil)
	id := f.Variants[0].ID

	tests := []struct {
		field, raw string
		price      string
		stock      int
	}{
		{"price", "12.50", "12.5", 0},
		{"price", "abc", "0", 0},
		{"price", "", "0", 0},
		{"stock", "7", "0", 7},
		{"stock", "3.9", "0", 3},
		{"stock", "lots", "0", 0},
		{"stock", "1e20", "0", 0},
		{"stock", "-1e20", "0", 0},
		{"stock", "99999999999999999999", "0", 0},
		{"stock", "NaN", "0", 0},
		{"stock", "Inf", "0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.field+"="+tt.raw, func(t *testing.T) {
			f.Variants[0].Price = decimal.Zero
			f.Variants[0].Stock = 0
			require.NoError(t, f.UpdateVariantField(id, tt.field, tt.raw))
			assert.True(t, decimal.RequireFromString(tt.price).Equal(f.Variants[0].Price))
			assert.Equal(t, tt.stock, f.Variants[0].Stock)
		})
	}

	require.NoError(t, f.UpdateVariantField(id, "sku", "SKU-1"))
	assert.Equal(t, "SKU-1", f.Variants[0].SKU)

	var ve *lib.ValidationError
	assert.ErrorAs(t, f.UpdateVariantField(id, "color", "red"), &ve)
	assert.ErrorIs(t, f.UpdateVariantField("nope", "name", "x"), lib.ErrVariantNotFound)
}

func TestSubmit(t *testing.T) {
	t.Run("blank form is rejected", func(t *testing.T) {
		f := NewProductForm(nil)
		_, err := f.Submit()

		var ve *lib.ValidationError
		require.ErrorAs(t, err, &ve)
		fields := make([]string, 0, len(ve.Errors))
		for _, fe := range ve.Errors {
			fields = append(fields, fe.Field)
		}
		assert.ElementsMatch(t, []string{"name", "variants[0].name"}, fields)
	})

	t.Run("negative values are rejected", func(t *testing.T) {
		f := NewProductForm(nil)
		id := f.Variants[0].ID
		require.NoError(t, f.SetField("name", "Garri"))
		require.NoError(t, f.UpdateVariantField(id, "name", "1kg"))
		require.NoError(t, f.UpdateVariantField(id, "price", "-1"))
		require.NoError(t, f.UpdateVariantField(id, "stock", "-3"))

		_, err := f.Submit()
		var ve *lib.ValidationError
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("valid form emits copies", func(t *testing.T) {
		f := NewProductForm(nil)
		id := f.Variants[0].ID
		require.NoError(t, f.SetField("name", "  Garri "))
		require.NoError(t, f.SetField("category", "Grains & Flours"))
		require.NoError(t, f.UpdateVariantField(id, "name", "1kg"))
		require.NoError(t, f.UpdateVariantField(id, "price", "800"))
		f.ImageURLs = []string{"img"}

		p, err := f.Submit()
		require.NoError(t, err)
		assert.Empty(t, p.ID)
		assert.Equal(t, "Garri", p.Name)

		f.Variants[0].Name = "changed"
		f.ImageURLs[0] = "changed"
		assert.Equal(t, "1kg", p.Variants[0].Name)
		assert.Equal(t, "img", p.ImageURLs[0])
	})

	assert.Error(t, NewProductForm(nil).SetField("id", "prod-1"))
}

func TestAddImagesKeepsSelectionOrder(t *testing.T) {
	images := NewImageService(testLogger(), storage.NewInline(), testConfig().Images)
	f := NewProductForm(nil)

	files := multipartFiles(t,
		upload{"a.png", pngBytes},
		upload{"b.gif", gifBytes},
		upload{"c.jpg", jpegBytes},
	)
	require.NoError(t, f.AddImages(context.Background(), images, files))

	require.Len(t, f.ImageURLs, 3)
	assert.True(t, strings.HasPrefix(f.ImageURLs[0], "data:image/png;base64,"))
	assert.True(t, strings.HasPrefix(f.ImageURLs[1], "data:image/gif;base64,"))
	assert.True(t, strings.HasPrefix(f.ImageURLs[2], "data:image/jpeg;base64,"))
}

func TestAddImagesRejectsWholeBatch(t *testing.T) {
	images := NewImageService(testLogger(), storage.NewInline(), testConfig().Images)
	f := NewProductForm(nil)
	f.ImageURLs = []string{"existing"}

	files := multipartFiles(t,
		upload{"a.png", pngBytes},
		upload{"notes.txt", []byte("just some text")},
	)
	err := f.AddImages(context.Background(), images, files)
	assert.ErrorIs(t, err, lib.ErrUnsupportedImage)
	assert.Equal(t, []string{"existing"}, f.ImageURLs)
}

func TestAddImagesSizeAndCountLimits(t *testing.T) {
	cfg := &structs.ImageConfig{MaxFileBytes: 4, MaxFiles: 1}
	images := NewImageService(testLogger(), storage.NewInline(), cfg)

	_, err := images.StoreUploads(context.Background(), multipartFiles(t, upload{"a.png", pngBytes}))
	assert.ErrorIs(t, err, lib.ErrImageTooLarge)

	_, err = images.StoreUploads(context.Background(), multipartFiles(t,
		upload{"a.gif", []byte("GIF8")},
		upload{"b.gif", []byte("GIF8")},
	))
	var ve *lib.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestRemoveImage(t *testing.T) {
	f := NewProductForm(nil)
	f.ImageURLs = []string{"a", "b", "c"}

	removed, err := f.RemoveImage(1)
	require.NoError(t, err)
	assert.Equal(t, "b", removed)
	assert.Equal(t, []string{"a", "c"}, f.ImageURLs)

	_, err = f.RemoveImage(2)
	assert.ErrorIs(t, err, lib.ErrImageIndex)
	_, err = f.RemoveImage(-1)
	assert.ErrorIs(t, err, lib.ErrImageIndex)
}
