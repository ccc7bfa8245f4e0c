package services

import (
	"context"

	"labisco_server/lib"
	"labisco_server/structs"

	"github.com/MonkyMars/gecho"
)

// SettingsService serves the shop settings form. Saves are validated and
// acknowledged after a delay but never stored.
type SettingsService struct {
	logger *gecho.Logger
	cfg    *structs.SettingsConfig
}

func NewSettingsService(logger *gecho.Logger, cfg *structs.SettingsConfig) *SettingsService {
	return &SettingsService{
		logger: logger,
		cfg:    cfg,
	}
}

func (ss *SettingsService) Load() structs.SettingsView {
	return structs.SettingsView{
		Settings: DefaultShopSettings(),
		Options: structs.SettingsOptions{
			Currencies: append([]string{}, structs.Currencies...),
			Timezones:  append([]string{}, structs.Timezones...),
		},
	}
}

func (ss *SettingsService) Save(ctx context.Context, settings structs.ShopSettings) (*structs.ShopSettings, error) {
	if err := lib.ValidateStruct(settings); err != nil {
		return nil, err
	}

	if err := sleepCtx(ctx, ss.cfg.SaveDelay); err != nil {
		return nil, err
	}

	ss.logger.Info("Shop settings saved",
		gecho.Field("shop_name", settings.ShopName),
		gecho.Field("currency", settings.Currency),
	)
	return &settings, nil
}
