package pos

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductVisibility controls when a product is shown in storefronts.
type ProductVisibility string

const (
	VisibilityAlways          ProductVisibility = "always"
	VisibilityShowWhenInStock ProductVisibility = "show_when_in_stock"
	VisibilityHidden          ProductVisibility = "hidden"
)

// Product is a sellable item. One product groups many variant instances (one
// per option combination), each with its own pricing and stock data.
//
// Invariants: category names are unique within a product, and variant value
// names are unique within their category.
type Product struct {
	ID              string                `json:"id"`
	Name            string                `json:"name"`
	NameLong        string                `json:"name_long"`
	Company         string                `json:"company"`
	VariantGroups   []VariantCategory     `json:"variant_groups"`
	Variants        []VariantInformation  `json:"variants"`
	SKU             string                `json:"sku"`
	Images          []string              `json:"images"`
	Tags            []string              `json:"tags"`
	Description     string                `json:"description"`
	DescriptionLong string                `json:"description_long"`
	Specifications  []Specification       `json:"specifications"`
	Identification  ProductIdentification `json:"identification"`
	Visible         ProductVisibility     `json:"visible"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// Specification is a named free-form attribute.
type Specification struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// VariantCategory is one option axis (e.g. "Size") holding the de-duplicated
// values seen for that axis.
type VariantCategory struct {
	Category string    `json:"category"`
	Variants []Variant `json:"variants"`
}

// Variant is a single value on an option axis (e.g. "Large").
type Variant struct {
	Name          string          `json:"name"`
	Images        []string        `json:"images"`
	MarginalPrice decimal.Decimal `json:"marginal_price"`
	VariantCode   string          `json:"variant_code"`
	OrderHistory  []string        `json:"order_history"`
}

// Category returns the variant category with the given name, if present.
func (p *Product) Category(name string) (*VariantCategory, bool) {
	for i := range p.VariantGroups {
		if p.VariantGroups[i].Category == name {
			return &p.VariantGroups[i], true
		}
	}
	return nil, false
}

// AddVariant appends a value to the category unless a value of the same name
// already exists. Reports whether the value was added.
func (c *VariantCategory) AddVariant(v Variant) bool {
	for i := range c.Variants {
		if c.Variants[i].Name == v.Name {
			return false
		}
	}
	c.Variants = append(c.Variants, v)
	return true
}

// VariantInformation is one purchasable variant instance of a product.
type VariantInformation struct {
	ID               string                `json:"id"`
	Name             string                `json:"name"`
	Stock            []StockEntry          `json:"stock"`
	Images           []string              `json:"images"`
	RetailPrice      decimal.Decimal       `json:"retail_price"`
	MarginalPrice    decimal.Decimal       `json:"marginal_price"`
	LoyaltyDiscount  DiscountValue         `json:"loyalty_discount"`
	VariantCode      []string              `json:"variant_code"`
	OrderHistory     []string              `json:"order_history"`
	StockInformation StockInformation      `json:"stock_information"`
	Barcode          string                `json:"barcode"`
	Identification   ProductIdentification `json:"identification"`
	BuyMin           decimal.Decimal       `json:"buy_min"`
	BuyMax           decimal.Decimal       `json:"buy_max"`
	StockTracking    bool                  `json:"stock_tracking"`
}

// StockEntry records stock levels of a variant at one store.
type StockEntry struct {
	StoreID  string        `json:"store_id"`
	Quantity StockQuantity `json:"quantity"`
}

// StockQuantity splits holdings into sellable and committed portions.
type StockQuantity struct {
	OnHand  decimal.Decimal `json:"on_hand"`
	OnOrder decimal.Decimal `json:"on_order"`
	OnHold  decimal.Decimal `json:"on_hold"`
}

// DiscountValue is either an absolute amount or a percentage.
type DiscountValue struct {
	Kind   string          `json:"kind"` // "absolute" or "percentage"
	Amount decimal.Decimal `json:"amount"`
}

// AbsoluteDiscount returns a fixed-amount discount.
func AbsoluteDiscount(amount decimal.Decimal) DiscountValue {
	return DiscountValue{Kind: "absolute", Amount: amount}
}

// StockInformation carries warehouse and logistics metadata for a variant.
type StockInformation struct {
	StockGroup       string          `json:"stock_group"`
	SalesGroup       string          `json:"sales_group"`
	ValueStream      string          `json:"value_stream"`
	Brand            string          `json:"brand"`
	TaxCode          string          `json:"tax_code"`
	Weight           string          `json:"weight"`
	Volume           string          `json:"volume"`
	MaxVolume        string          `json:"max_volume"`
	BackOrder        bool            `json:"back_order"`
	Discontinued     bool            `json:"discontinued"`
	NonDiminishing   bool            `json:"non_diminishing"`
	Shippable        bool            `json:"shippable"`
	SizeOverrideUnit string          `json:"size_override_unit"`
	SizeXUnit        string          `json:"size_x_unit"`
	SizeYUnit        string          `json:"size_y_unit"`
	SizeZUnit        string          `json:"size_z_unit"`
	SizeX            decimal.Decimal `json:"size_x"`
	SizeY            decimal.Decimal `json:"size_y"`
	SizeZ            decimal.Decimal `json:"size_z"`
	MinStockAlert    decimal.Decimal `json:"min_stock_before_alert"`
	MinStockLevel    decimal.Decimal `json:"min_stock_level"`
	Colli            string          `json:"colli"`
}

// ProductIdentification groups the external identification codes of a product
// or variant.
type ProductIdentification struct {
	SKU         string `json:"sku"`
	EAN         string `json:"ean"`
	HSCode      string `json:"hs_code"`
	ArticleCode string `json:"article_code"`
	ISBN        string `json:"isbn"`
}
