package shopify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"stock-migrator/core/pos"
)

func TestParseTransactionGroupFoldsSharedReference(t *testing.T) {
	rows := []*TransactionRecord{
		{OrderName: "#1001", BillingName: "Jane Doe", Total: "30.00", Currency: "NZD",
			PaymentMethod: "card", LineitemName: "Tee", LineitemQuantity: "1", LineitemPrice: "10.00",
			CreatedAt: "2023-04-01 10:00:00 +1200"},
		{OrderName: "#1001", BillingName: "Jane Doe", LineitemName: "Mug", LineitemQuantity: "2", LineitemPrice: "10.00"},
		{OrderName: "#1002", BillingName: "Jane Doe", LineitemName: "Cap", LineitemQuantity: "1", LineitemPrice: "5.00"},
	}

	agg := pos.NewAggregate()
	cursor := 0
	txn, err := parseTransactionGroup(rows, &cursor, agg, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 2, cursor)
	assert.Equal(t, "#1001", txn.Reference)
	require.Len(t, txn.Orders, 1)
	assert.Len(t, txn.Orders[0].Products, 2)
	assert.Equal(t, "30", txn.OrderTotal.String())

	require.Len(t, txn.Payments, 1)
	assert.Equal(t, "card", txn.Payments[0].Method)
	assert.Equal(t, "NZD", txn.Payments[0].Amount.Currency)
}

func TestParseTransactionsSynthesizesCustomerOnce(t *testing.T) {
	rows := []*TransactionRecord{
		{OrderName: "#1001", BillingName: "Jane Doe", LineitemName: "Tee", LineitemQuantity: "1"},
		{OrderName: "#1002", BillingName: "Jane Doe", LineitemName: "Mug", LineitemQuantity: "1"},
	}

	agg := pos.NewAggregate()

	cursor := 0
	first, err := parseTransactionGroup(rows, &cursor, agg, zap.NewNop())
	require.NoError(t, err)
	second, err := parseTransactionGroup(rows, &cursor, agg, zap.NewNop())
	require.NoError(t, err)

	require.Len(t, agg.Customers, 1)
	assert.Equal(t, "Jane Doe", agg.Customers[0].Name)
	assert.Equal(t, agg.Customers[0].ID, first.CustomerID)
	assert.Equal(t, first.CustomerID, second.CustomerID)
}

func TestParseTransactionGroupReusesExistingCustomer(t *testing.T) {
	agg := pos.NewAggregate()
	agg.Customers = append(agg.Customers, pos.Customer{ID: "cust-1", Name: "John Smith"})

	rows := []*TransactionRecord{
		{OrderName: "#2001", BillingName: "John Smith", LineitemName: "Tea", LineitemQuantity: "1"},
	}

	cursor := 0
	txn, err := parseTransactionGroup(rows, &cursor, agg, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "cust-1", txn.CustomerID)
	assert.Len(t, agg.Customers, 1)
}

func TestLineItemFloorsFractionalQuantity(t *testing.T) {
	rows := []*TransactionRecord{
		{OrderName: "#3001", BillingName: "Kay", LineitemName: "Flour", LineitemQuantity: "2.7", LineitemPrice: "4.00"},
	}

	cursor := 0
	txn, err := parseTransactionGroup(rows, &cursor, pos.NewAggregate(), zap.NewNop())
	require.NoError(t, err)

	item := txn.Orders[0].Products[0]
	assert.Equal(t, "2.7", item.Quantity.String())
	assert.Len(t, item.Fulfillment, 2)
}

func TestParseTransactionGroupStatusFromFulfillment(t *testing.T) {
	agg := pos.NewAggregate()
	agg.Kiosks = append(agg.Kiosks, pos.Kiosk{ID: "kiosk-1"})

	rows := []*TransactionRecord{
		{OrderName: "#4001", BillingName: "Lee", FulfilledAt: "2023-04-02 09:30:00 +1200",
			LineitemName: "Pot", LineitemQuantity: "1"},
		{OrderName: "#4002", BillingName: "Lee", LineitemName: "Pan", LineitemQuantity: "1"},
	}

	cursor := 0
	fulfilled, err := parseTransactionGroup(rows, &cursor, agg, zap.NewNop())
	require.NoError(t, err)
	queued, err := parseTransactionGroup(rows, &cursor, agg, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, pos.StatusFulfilled, fulfilled.Orders[0].StatusHistory[0].Status)
	assert.Equal(t, pos.StatusQueued, queued.Orders[0].StatusHistory[0].Status)
	assert.Equal(t, "kiosk-1", fulfilled.KioskID)
}

func TestParseTransactionsEndToEnd(t *testing.T) {
	csv := "Name,Email,Financial Status,Currency,Total,Created at,Lineitem quantity,Lineitem name,Lineitem price,Billing Name,Payment Method,Id\n" +
		"#1001,jane@example.com,paid,NZD,30.00,2023-04-01 10:00:00 +1200,1,Tee,10.00,Jane Doe,card,5001\n" +
		"#1001,jane@example.com,paid,NZD,30.00,2023-04-01 10:00:00 +1200,2,Mug,10.00,Jane Doe,card,5001\n"

	agg := pos.NewAggregate()
	count, err := ParseTransactions([]byte(csv), agg, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 1, count)
	require.Len(t, agg.Transactions, 1)
	assert.Equal(t, "5001", agg.Transactions[0].ID)
	assert.Len(t, agg.Transactions[0].Orders[0].Products, 2)
	require.Len(t, agg.Customers, 1)
}
