package shopify

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"stock-migrator/core/pos"
	"stock-migrator/feature/ingest/formats"
)

// importAuthor is stamped on notes carried over from vendor exports so they
// are distinguishable from notes written by staff after migration.
const importAuthor = "SHOPIFY-IMPORT"

// ParseCustomers reads a Shopify customer export and appends one customer per
// row to the aggregate.
func ParseCustomers(data []byte, agg *pos.Aggregate, log *zap.Logger) (int, error) {
	rows, err := decodeRows[CustomerRecord](data)
	if err != nil {
		return 0, formats.ReadFailure("failed to decode customer export: %v", err)
	}

	customers := formats.ParseGroups(rows, agg, log, parseCustomerRow)
	agg.Customers = append(agg.Customers, customers...)
	return len(customers), nil
}

func parseCustomerRow(rows []*CustomerRecord, cursor *int, _ *pos.Aggregate, _ *zap.Logger) (pos.Customer, error) {
	if *cursor >= len(rows) {
		return pos.Customer{}, formats.ErrEndOfInput
	}
	row := rows[*cursor]
	*cursor++

	name := fmt.Sprintf("%s %s", row.FirstName, row.LastName)
	now := time.Now().UTC()

	var notes []pos.Note
	if row.Note != "" {
		notes = append(notes, pos.Note{
			Message:   row.Note,
			Author:    importAuthor,
			Timestamp: now,
		})
	}

	special := ""
	if row.TaxExempt == "yes" {
		special = "TAX-EXEMPT"
	}

	return pos.Customer{
		ID:   uuid.NewString(),
		Name: name,
		Contact: pos.ContactInformation{
			Name:     name,
			Mobile:   pos.NewMobile(row.Phone),
			Email:    pos.NewEmail(row.Email),
			Landline: row.Phone,
			Address: pos.Address{
				Street:  row.Street,
				Street2: row.Street2,
				City:    row.City,
				Country: row.Country,
				POCode:  row.Zip,
			},
		},
		Notes:            notes,
		Balance:          decimal.Zero,
		SpecialPricing:   special,
		AcceptsMarketing: row.AcceptsMarketing == "yes",
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}
