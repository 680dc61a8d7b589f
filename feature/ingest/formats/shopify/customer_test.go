package shopify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"stock-migrator/core/pos"
)

func TestParseCustomersBuildsCustomerFromRow(t *testing.T) {
	csv := "First Name,Last Name,Email,Accepts Email Marketing,Address1,City,Country,Zip,Phone,Note,Tax Exempt\n" +
		"Jan,Kowalski,jan@example.com,yes,12 High St,Auckland,New Zealand,1010,+64211234567,Prefers pickup,yes\n"

	agg := pos.NewAggregate()
	count, err := ParseCustomers([]byte(csv), agg, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, 1, count)

	customer := agg.Customers[0]
	assert.NotEmpty(t, customer.ID)
	assert.Equal(t, "Jan Kowalski", customer.Name)
	assert.Equal(t, "jan@example.com", customer.Contact.Email.Full)
	assert.Equal(t, "example.com", customer.Contact.Email.Domain)
	assert.Equal(t, "12 High St", customer.Contact.Address.Street)
	assert.Equal(t, "TAX-EXEMPT", customer.SpecialPricing)
	assert.True(t, customer.AcceptsMarketing)

	require.Len(t, customer.Notes, 1)
	assert.Equal(t, "Prefers pickup", customer.Notes[0].Message)
	assert.Equal(t, importAuthor, customer.Notes[0].Author)
}

func TestParseCustomerRowWithoutNote(t *testing.T) {
	rows := []*CustomerRecord{
		{FirstName: "Ada", LastName: "Lovelace", TaxExempt: "no", AcceptsMarketing: "no"},
	}

	cursor := 0
	customer, err := parseCustomerRow(rows, &cursor, pos.NewAggregate(), zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 1, cursor)
	assert.Empty(t, customer.Notes)
	assert.Empty(t, customer.SpecialPricing)
	assert.False(t, customer.AcceptsMarketing)
}
