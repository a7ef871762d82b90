package magentodomain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Order struct {
	EntityID          int                  `json:"entity_id"`
	IncrementID       string               `json:"increment_id"`
	Status            string               `json:"status"`
	State             string               `json:"state"`
	GrandTotal        decimal.Decimal      `json:"grand_total"`
	Subtotal          decimal.Decimal      `json:"subtotal"`
	TaxAmount         decimal.Decimal      `json:"tax_amount"`
	CurrencyCode      string               `json:"order_currency_code"`
	CreatedAt         string               `json:"created_at"`
	UpdatedAt         string               `json:"updated_at"`
	CustomerID        int                  `json:"customer_id"`
	CustomerEmail     string               `json:"customer_email"`
	CustomerFirstname string               `json:"customer_firstname"`
	CustomerLastname  string               `json:"customer_lastname"`
	BillingAddress    *Address             `json:"billing_address,omitempty"`
	Extension         *OrderExtensionAttrs `json:"extension_attributes,omitempty"`
	Items             []OrderItem          `json:"items"`
}

type OrderItem struct {
	ItemID       int             `json:"item_id"`
	ParentItemID *int            `json:"parent_item_id,omitempty"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	ProductType  string          `json:"product_type"`
	QtyOrdered   decimal.Decimal `json:"qty_ordered"`
	Price        decimal.Decimal `json:"price"`
	RowTotal     decimal.Decimal `json:"row_total"`
}

type Address struct {
	CountryID string   `json:"country_id"`
	City      string   `json:"city"`
	Postcode  string   `json:"postcode"`
	Street    []string `json:"street"`
}

type OrderExtensionAttrs struct {
	ShippingAssignments []ShippingAssignment `json:"shipping_assignments"`
}

type ShippingAssignment struct {
	Shipping struct {
		Address *Address `json:"address,omitempty"`
		Method  string   `json:"method"`
	} `json:"shipping"`
}

// BillingCountry retorna o país de cobrança em maiúsculas ou vazio
func (o *Order) BillingCountry() string {
	if o.BillingAddress == nil {
		return ""
	}
	return strings.ToUpper(o.BillingAddress.CountryID)
}

// ShippingCountry considera apenas a primeira atribuição de envio, como o Magento expõe no pedido
func (o *Order) ShippingCountry() string {
	if o.Extension == nil || len(o.Extension.ShippingAssignments) == 0 {
		return ""
	}

	address := o.Extension.ShippingAssignments[0].Shipping.Address
	if address == nil {
		return ""
	}

	return strings.ToUpper(address.CountryID)
}
