package pos

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order and fulfillment statuses produced by migration. Imported history is
// coarse: an order is either still queued or already fulfilled.
const (
	StatusQueued    = "queued"
	StatusFulfilled = "fulfilled"
)

// Transaction is a completed sale. Its identity is vendor-supplied (the
// export's own order identifier), unlike every other entity in the model.
type Transaction struct {
	ID         string          `json:"id"`
	Reference  string          `json:"reference"`
	CustomerID string          `json:"customer_id"`
	KioskID    string          `json:"kiosk_id"`
	Orders     []Order         `json:"orders"`
	Payments   []Payment       `json:"payments"`
	OrderTotal decimal.Decimal `json:"order_total"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Order is one shipment/fulfillment grouping inside a transaction.
type Order struct {
	ID            string            `json:"id"`
	Reference     string            `json:"reference"`
	Origin        Location          `json:"origin"`
	Destination   Location          `json:"destination"`
	Products      []ProductPurchase `json:"products"`
	StatusHistory []OrderStatus     `json:"status_history"`
	CreatedAt     time.Time         `json:"created_at"`
}

// OrderStatus is one entry in an order's status history.
type OrderStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Location is an order endpoint: a store code when known, otherwise bare
// contact information (vendor exports rarely identify the selling store).
type Location struct {
	StoreCode string             `json:"store_code"`
	Contact   ContactInformation `json:"contact"`
}

// ProductPurchase is a line item on an order.
type ProductPurchase struct {
	ID          string                `json:"id"`
	ProductCode string                `json:"product_code"`
	ProductName string                `json:"product_name"`
	Quantity    decimal.Decimal       `json:"quantity"`
	Price       decimal.Decimal       `json:"price"`
	Fulfillment []FulfillmentInstance `json:"fulfillment"`
}

// FulfillmentInstance tracks a single unit of a purchased line item through
// pick and fulfillment. Quantity N on a line item expands to N instances.
type FulfillmentInstance struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Payment is one payment record against a transaction.
type Payment struct {
	ID        string    `json:"id"`
	Method    string    `json:"payment_method"`
	Amount    Amount    `json:"amount"`
	Processor string    `json:"processor"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Amount is a currency-qualified quantity of money.
type Amount struct {
	Quantity decimal.Decimal `json:"quantity"`
	Currency string          `json:"currency"`
}
