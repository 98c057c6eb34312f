package domain

// Well-known settings keys.
const (
	// SettingStoreName is the shop name shown on receipts and screens.
	SettingStoreName = "store_name"
)

// DefaultStoreName is seeded into the settings table on first startup.
const DefaultStoreName = "Toko Sejahtera"
