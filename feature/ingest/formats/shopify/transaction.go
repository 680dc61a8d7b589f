package shopify

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"stock-migrator/core/pos"
	"stock-migrator/core/utils"
	"stock-migrator/feature/ingest/formats"
)

// ParseTransactions reads a Shopify order export and appends the grouped
// transactions to the aggregate. Unknown billing names synthesize a customer
// on the spot.
func ParseTransactions(data []byte, agg *pos.Aggregate, log *zap.Logger) (int, error) {
	rows, err := decodeRows[TransactionRecord](data)
	if err != nil {
		return 0, formats.ReadFailure("failed to decode order export: %v", err)
	}

	transactions := formats.ParseGroups(rows, agg, log, parseTransactionGroup)
	agg.Transactions = append(agg.Transactions, transactions...)
	return len(transactions), nil
}

// parseTransactionGroup consumes all consecutive rows sharing one order
// reference (the Name column) and folds them into a single transaction with
// one order and one line item per row.
func parseTransactionGroup(rows []*TransactionRecord, cursor *int, agg *pos.Aggregate, log *zap.Logger) (pos.Transaction, error) {
	if *cursor >= len(rows) {
		return pos.Transaction{}, formats.ErrEndOfInput
	}
	first := rows[*cursor]

	now := time.Now().UTC()
	created := utils.ToTime(first.CreatedAt, now)
	fulfilled := utils.ToTime(first.FulfilledAt, now)

	customerID, contact := resolveCustomer(first, agg, log)

	status := pos.StatusQueued
	if first.FulfilledAt != "" {
		status = pos.StatusFulfilled
	}

	// Shopify exports do not identify the selling store, so both order
	// endpoints fall back to the customer's own contact details.
	location := pos.Location{Contact: contact}

	order := pos.Order{
		ID:          uuid.NewString(),
		Reference:   first.OrderName,
		Origin:      location,
		Destination: location,
		Products:    []pos.ProductPurchase{},
		StatusHistory: []pos.OrderStatus{
			{Status: status, Timestamp: fulfilled},
		},
		CreatedAt: created,
	}

	for *cursor < len(rows) && rows[*cursor].OrderName == first.OrderName {
		row := rows[*cursor]
		order.Products = append(order.Products, lineItem(row, status, fulfilled))
		*cursor++
	}

	kioskID := ""
	if kiosk, ok := agg.DefaultKiosk(); ok {
		kioskID = kiosk.ID
	}

	txnID := first.ID
	if txnID == "" {
		txnID = uuid.NewString()
	}

	total := utils.ToDecimal(first.Total, decimal.Zero)

	return pos.Transaction{
		ID:         txnID,
		Reference:  first.OrderName,
		CustomerID: customerID,
		KioskID:    kioskID,
		Orders:     []pos.Order{order},
		Payments: []pos.Payment{{
			ID:        uuid.NewString(),
			Method:    first.PaymentMethod,
			Amount:    pos.Amount{Quantity: total, Currency: first.Currency},
			Processor: first.PaymentReference,
			Status:    first.FinancialStatus,
			Timestamp: utils.ToTime(first.PaidAt, created),
		}},
		OrderTotal: total,
		CreatedAt:  created,
	}, nil
}

// lineItem converts one export row into a purchase, expanding its quantity
// into per-unit fulfillment instances. Fractional quantities floor to whole
// units.
func lineItem(row *TransactionRecord, status string, fulfilled time.Time) pos.ProductPurchase {
	quantity := utils.ToDecimal(row.LineitemQuantity, decimal.NewFromInt(1))

	units := int(quantity.Floor().IntPart())
	instances := make([]pos.FulfillmentInstance, 0, max(units, 0))
	for i := 0; i < units; i++ {
		instances = append(instances, pos.FulfillmentInstance{
			ID:        uuid.NewString(),
			Status:    status,
			Timestamp: fulfilled,
		})
	}

	return pos.ProductPurchase{
		ID:          uuid.NewString(),
		ProductCode: row.LineitemSKU,
		ProductName: row.LineitemName,
		Quantity:    quantity,
		Price:       utils.ToDecimal(row.LineitemPrice, decimal.Zero),
		Fulfillment: instances,
	}
}

// resolveCustomer finds the order's customer by billing name, synthesizing
// and appending one from the billing columns when no existing customer
// matches.
func resolveCustomer(row *TransactionRecord, agg *pos.Aggregate, log *zap.Logger) (string, pos.ContactInformation) {
	if existing, ok := agg.CustomerByReference(row.BillingName); ok {
		return existing.ID, existing.Contact
	}

	now := time.Now().UTC()
	customer := pos.Customer{
		ID:   uuid.NewString(),
		Name: row.BillingName,
		Contact: pos.ContactInformation{
			Name:     row.BillingName,
			Mobile:   pos.NewMobile(row.BillingPhone),
			Email:    pos.NewEmail(row.Email),
			Landline: row.BillingPhone,
			Address: pos.Address{
				Street:  row.BillingAddress1,
				Street2: row.BillingAddress2,
				City:    row.BillingCity,
				Country: row.BillingCountry,
				POCode:  row.BillingZip,
			},
		},
		Balance:          decimal.Zero,
		AcceptsMarketing: false,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	log.Debug("synthesized customer for order",
		zap.String("order", row.OrderName),
		zap.String("customer", customer.Name),
	)

	agg.Customers = append(agg.Customers, customer)
	return customer.ID, customer.Contact
}
