package shopify

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"stock-migrator/core/pos"
	"stock-migrator/core/utils"
	"stock-migrator/feature/ingest/formats"
)

// ParseProducts reads a Shopify product export and appends the grouped
// products to the aggregate.
func ParseProducts(data []byte, agg *pos.Aggregate, log *zap.Logger) (int, error) {
	rows, err := decodeRows[ProductRecord](data)
	if err != nil {
		return 0, formats.ReadFailure("failed to decode product export: %v", err)
	}

	products := formats.ParseGroups(rows, agg, log, parseProductGroup)
	agg.Products = append(agg.Products, products...)
	return len(products), nil
}

// parseProductGroup consumes one product's rows: a title row carrying the
// listing and option names, followed by continuation rows (empty title, one
// per additional variant). The cursor always advances, even on failure, so
// the group loop cannot stall on a bad row.
func parseProductGroup(rows []*ProductRecord, cursor *int, agg *pos.Aggregate, log *zap.Logger) (pos.Product, error) {
	start := *cursor
	if start >= len(rows) {
		return pos.Product{}, formats.ErrEndOfInput
	}

	first := rows[start]
	if first.Title == "" {
		*cursor++
		return pos.Product{}, formats.ReadFailure("row %d has no product title", start)
	}

	// Shopify supplies no product identifiers we can preserve.
	sku := uuid.NewString()
	ident := pos.ProductIdentification{SKU: sku}
	now := time.Now().UTC()

	groups := []pos.VariantCategory{}
	optionNames := [3]string{first.Option1Name, first.Option2Name, first.Option3Name}
	for _, name := range optionNames {
		if name != "" {
			groups = append(groups, pos.VariantCategory{Category: name, Variants: []pos.Variant{}})
		}
	}

	product := pos.Product{
		ID:              uuid.NewString(),
		Name:            first.Title,
		NameLong:        first.Title,
		Company:         first.Vendor,
		VariantGroups:   groups,
		Variants:        []pos.VariantInformation{},
		SKU:             sku,
		Images:          []string{first.ImageSrc},
		Tags:            []string{first.Tags},
		Description:     first.Body,
		DescriptionLong: first.Body,
		Specifications:  []pos.Specification{},
		Identification:  ident,
		Visible:         pos.VisibilityShowWhenInStock,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	for *cursor < len(rows) {
		row := rows[*cursor]

		// A fresh title past the first row begins the next product; an empty
		// title with no price is a blank spacer row.
		if (row.Title != "" && *cursor != start) || (row.Title == "" && row.Price == "") {
			break
		}

		name := strings.TrimSpace(fmt.Sprintf("%s %s %s", row.Option1Value, row.Option2Value, row.Option3Value))
		if name == "Default Title" {
			name = product.Name
		}

		price, err := utils.ParseDecimal(row.Price)
		if err != nil {
			*cursor++
			return pos.Product{}, formats.FormatFailure("row %d has unparseable price %q", *cursor-1, row.Price)
		}

		variant := pos.VariantInformation{
			ID:              uuid.NewString(),
			Name:            name,
			Stock:           variantStock(row, agg),
			Images:          []string{row.VariantImage},
			RetailPrice:     price,
			MarginalPrice:   utils.ToDecimal(row.CostPerItem, price),
			LoyaltyDiscount: pos.AbsoluteDiscount(decimal.Zero),
			VariantCode:     []string{row.SKU},
			OrderHistory:    []string{},
			StockInformation: pos.StockInformation{
				StockGroup:       row.Type,
				SalesGroup:       row.ProductCategory,
				Brand:            row.Vendor,
				TaxCode:          row.TaxCode,
				Weight:           row.Grams,
				Volume:           "0.00",
				MaxVolume:        "0.00",
				Discontinued:     row.Status != "active",
				Shippable:        utils.ToBool(row.RequiresShipping),
				SizeOverrideUnit: row.WeightUnit,
				SizeXUnit:        row.WeightUnit,
				SizeYUnit:        row.WeightUnit,
				SizeZUnit:        row.WeightUnit,
			},
			Barcode:        row.Barcode,
			Identification: ident,
			BuyMin:         decimal.Zero,
			BuyMax:         decimal.NewFromInt(-1),
			StockTracking:  true,
		}

		attachOptionValue(&product, first.Option1Name, row.Option1Value, row.VariantImage, log)
		attachOptionValue(&product, first.Option2Name, row.Option2Value, row.VariantImage, log)
		attachOptionValue(&product, first.Option3Name, row.Option3Value, row.VariantImage, log)

		product.Variants = append(product.Variants, variant)
		*cursor++
	}

	return product, nil
}

// variantStock anchors the row's inventory count to the run's default store.
// Without a store there is nowhere to hold stock, so it stays empty.
func variantStock(row *ProductRecord, agg *pos.Aggregate) []pos.StockEntry {
	store, ok := agg.DefaultStore()
	if !ok {
		return []pos.StockEntry{}
	}
	return []pos.StockEntry{{
		StoreID: store.ID,
		Quantity: pos.StockQuantity{
			OnHand: utils.ToDecimal(row.InventoryQty, decimal.Zero),
		},
	}}
}

// attachOptionValue records an option value under its category, skipping
// duplicates. A value whose category is missing is dropped with an error log;
// it means the export's continuation rows disagree with the title row.
func attachOptionValue(product *pos.Product, optionName, value, image string, log *zap.Logger) {
	if value == "" {
		return
	}

	category, ok := product.Category(optionName)
	if !ok {
		log.Error("no variant group for option value",
			zap.String("product", product.Name),
			zap.String("group", optionName),
			zap.String("value", value),
		)
		return
	}

	category.AddVariant(pos.Variant{
		Name:          value,
		Images:        []string{image},
		MarginalPrice: decimal.Zero,
		VariantCode:   fmt.Sprintf("%s-%s", optionName, value),
		OrderHistory:  []string{},
	})
}
