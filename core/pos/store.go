package pos

import "time"

// Store is a physical or logical retail location. Vendor exports rarely carry
// store topology, so a migration run usually holds a single synthesized
// default store.
type Store struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Code      string             `json:"code"`
	Contact   ContactInformation `json:"contact"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// Kiosk is a point-of-sale terminal bound to a store.
type Kiosk struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	StoreID     string           `json:"store_id"`
	Preferences KioskPreferences `json:"preferences"`
	LastOnline  time.Time        `json:"last_online"`
	Disabled    bool             `json:"disabled"`
}

// KioskPreferences holds per-device settings.
type KioskPreferences struct {
	PrinterID         string `json:"printer_id"`
	CashDrawerEnabled bool   `json:"cash_drawer_enabled"`
}
