package shopify

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"stock-migrator/core/pos"
)

// Shopify exports carry no store or kiosk data, so these parsers ignore the
// file contents and synthesize a single default location the rest of the run
// can anchor to.

// ParseStores appends a default store when the aggregate has none.
func ParseStores(_ []byte, agg *pos.Aggregate, log *zap.Logger) (int, error) {
	if _, ok := agg.DefaultStore(); ok {
		return 0, nil
	}

	now := time.Now().UTC()
	store := pos.Store{
		ID:   uuid.NewString(),
		Name: "Main Store",
		Code: "001",
		Contact: pos.ContactInformation{
			Name: "Main Store",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	log.Info("synthesized default store", zap.String("store_id", store.ID))
	agg.Stores = append(agg.Stores, store)
	return 1, nil
}

// ParseKiosks appends a default kiosk bound to the default store when the
// aggregate has none.
func ParseKiosks(_ []byte, agg *pos.Aggregate, log *zap.Logger) (int, error) {
	if _, ok := agg.DefaultKiosk(); ok {
		return 0, nil
	}

	storeID := ""
	if store, ok := agg.DefaultStore(); ok {
		storeID = store.ID
	}

	kiosk := pos.Kiosk{
		ID:         uuid.NewString(),
		Name:       "Imported Register",
		StoreID:    storeID,
		LastOnline: time.Now().UTC(),
		Disabled:   true,
	}

	log.Info("synthesized default kiosk",
		zap.String("kiosk_id", kiosk.ID),
		zap.String("store_id", storeID),
	)
	agg.Kiosks = append(agg.Kiosks, kiosk)
	return 1, nil
}
