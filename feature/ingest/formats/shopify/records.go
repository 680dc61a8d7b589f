package shopify

import "github.com/gocarina/gocsv"

// ProductRecord is one row of a Shopify product export. The first row of a
// product carries the full listing; continuation rows carry only the variant
// columns and leave Title empty.
type ProductRecord struct {
	Handle           string `csv:"Handle"`
	Title            string `csv:"Title"`
	Body             string `csv:"Body (HTML)"`
	Vendor           string `csv:"Vendor"`
	ProductCategory  string `csv:"Product Category"`
	Type             string `csv:"Type"`
	Tags             string `csv:"Tags"`
	Published        string `csv:"Published"`
	Option1Name      string `csv:"Option1 Name"`
	Option1Value     string `csv:"Option1 Value"`
	Option2Name      string `csv:"Option2 Name"`
	Option2Value     string `csv:"Option2 Value"`
	Option3Name      string `csv:"Option3 Name"`
	Option3Value     string `csv:"Option3 Value"`
	SKU              string `csv:"Variant SKU"`
	Grams            string `csv:"Variant Grams"`
	InventoryTracker string `csv:"Variant Inventory Tracker"`
	InventoryQty     string `csv:"Variant Inventory Qty"`
	InventoryPolicy  string `csv:"Variant Inventory Policy"`
	Price            string `csv:"Variant Price"`
	CompareAtPrice   string `csv:"Variant Compare At Price"`
	RequiresShipping string `csv:"Variant Requires Shipping"`
	Taxable          string `csv:"Variant Taxable"`
	Barcode          string `csv:"Variant Barcode"`
	ImageSrc         string `csv:"Image Src"`
	VariantImage     string `csv:"Variant Image"`
	WeightUnit       string `csv:"Variant Weight Unit"`
	TaxCode          string `csv:"Variant Tax Code"`
	CostPerItem      string `csv:"Cost per item"`
	Status           string `csv:"Status"`
}

// CustomerRecord is one row of a Shopify customer export.
type CustomerRecord struct {
	FirstName        string `csv:"First Name"`
	LastName         string `csv:"Last Name"`
	Email            string `csv:"Email"`
	AcceptsMarketing string `csv:"Accepts Email Marketing"`
	Company          string `csv:"Company"`
	Street           string `csv:"Address1"`
	Street2          string `csv:"Address2"`
	City             string `csv:"City"`
	Province         string `csv:"Province"`
	Country          string `csv:"Country"`
	Zip              string `csv:"Zip"`
	Phone            string `csv:"Phone"`
	TotalSpent       string `csv:"Total Spent"`
	TotalOrders      string `csv:"Total Orders"`
	Tags             string `csv:"Tags"`
	Note             string `csv:"Note"`
	TaxExempt        string `csv:"Tax Exempt"`
}

// TransactionRecord is one row of a Shopify order export. Multi-item orders
// repeat the order-level columns on every line item row; the Name column is
// the order reference that groups them.
type TransactionRecord struct {
	OrderName         string `csv:"Name"`
	Email             string `csv:"Email"`
	FinancialStatus   string `csv:"Financial Status"`
	PaidAt            string `csv:"Paid at"`
	FulfillmentStatus string `csv:"Fulfillment Status"`
	FulfilledAt       string `csv:"Fulfilled at"`
	Currency          string `csv:"Currency"`
	Subtotal          string `csv:"Subtotal"`
	Total             string `csv:"Total"`
	CreatedAt         string `csv:"Created at"`
	LineitemQuantity  string `csv:"Lineitem quantity"`
	LineitemName      string `csv:"Lineitem name"`
	LineitemPrice     string `csv:"Lineitem price"`
	LineitemSKU       string `csv:"Lineitem sku"`
	BillingName       string `csv:"Billing Name"`
	BillingStreet     string `csv:"Billing Street"`
	BillingAddress1   string `csv:"Billing Address1"`
	BillingAddress2   string `csv:"Billing Address2"`
	BillingCity       string `csv:"Billing City"`
	BillingZip        string `csv:"Billing Zip"`
	BillingCountry    string `csv:"Billing Country"`
	BillingPhone      string `csv:"Billing Phone"`
	Notes             string `csv:"Notes"`
	PaymentMethod     string `csv:"Payment Method"`
	PaymentReference  string `csv:"Payment Reference"`
	ID                string `csv:"Id"`
}

func decodeRows[R any](data []byte) ([]*R, error) {
	var rows []*R
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
