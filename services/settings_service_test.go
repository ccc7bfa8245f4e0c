package services

import (
	"context"
	"testing"
	"time"

	"labisco_server/lib"
	"labisco_server/structs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsSaveDoesNotPersist(t *testing.T) {
	ss := NewSettingsService(testLogger(), &structs.SettingsConfig{})

	view := ss.Load()
	assert.Equal(t, DefaultShopSettings(), view.Settings)
	assert.Equal(t, structs.Currencies, view.Options.Currencies)

	changed := view.Settings
	changed.ShopName = "Renamed"
	changed.Currency = "USD"

	saved, err := ss.Save(context.Background(), changed)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", saved.ShopName)

	assert.Equal(t, DefaultShopSettings(), ss.Load().Settings)
}

func TestSettingsSaveValidates(t *testing.T) {
	ss := NewSettingsService(testLogger(), &structs.SettingsConfig{})

	bad := DefaultShopSettings()
	bad.ShopName = ""
	bad.Currency = "BTC"

	_, err := ss.Save(context.Background(), bad)
	var ve *lib.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestSettingsSaveDelay(t *testing.T) {
	ss := NewSettingsService(testLogger(), &structs.SettingsConfig{SaveDelay: 30 * time.Millisecond})

	start := time.Now()
	_, err := ss.Save(context.Background(), DefaultShopSettings())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ss.Save(ctx, DefaultShopSettings())
	assert.ErrorIs(t, err, context.Canceled)
}
