package structs

type NotificationSettings struct {
	NewOrders bool `json:"new_orders"`
	LowStock  bool `json:"low_stock"`
}

type ShopSettings struct {
	ShopName      string               `json:"shop_name" validate:"required"`
	Currency      string               `json:"currency" validate:"required,currency"`
	Timezone      string               `json:"timezone" validate:"required,timezone_option"`
	Notifications NotificationSettings `json:"notifications"`
}

var Currencies = []string{"NGN", "USD", "EUR", "GBP", "JPY", "AUD"}

var Timezones = []string{
	"Africa/Lagos (GMT+1)",
	"America/New_York (GMT-4)",
	"Europe/London (GMT+1)",
	"Asia/Tokyo (GMT+9)",
	"Australia/Sydney (GMT+10)",
	"Pacific/Auckland (GMT+12)",
}

// SettingsOptions lists the values the settings form may choose from.
type SettingsOptions struct {
	Currencies []string `json:"currencies"`
	Timezones  []string `json:"timezones"`
}

type SettingsView struct {
	Settings ShopSettings    `json:"settings"`
	Options  SettingsOptions `json:"options"`
}
