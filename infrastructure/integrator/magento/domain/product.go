package magentodomain

import (
	"fmt"
	"strings"
)

type Product struct {
	ID                  int               `json:"id"`
	SKU                 string            `json:"sku"`
	Name                string            `json:"name"`
	Price               float64           `json:"price"`
	Status              int               `json:"status"`
	Visibility          int               `json:"visibility"`
	TypeID              string            `json:"type_id"`
	CreatedAt           string            `json:"created_at"`
	UpdatedAt           string            `json:"updated_at"`
	ExtensionAttributes map[string]any    `json:"extension_attributes,omitempty"`
	CustomAttributes    []CustomAttribute `json:"custom_attributes,omitempty"`
	ProductLinks        []ProductLink     `json:"product_links,omitempty"`
}

// CustomAttribute guarda o valor cru: o Magento devolve string, número ou lista
type CustomAttribute struct {
	AttributeCode string `json:"attribute_code"`
	Value         any    `json:"value"`
}

type ProductLink struct {
	SKU               string `json:"sku"`
	LinkType          string `json:"link_type"`
	LinkedProductSKU  string `json:"linked_product_sku"`
	LinkedProductType string `json:"linked_product_type"`
	Position          int    `json:"position"`
}

type Category struct {
	ID       int    `json:"id"`
	ParentID int    `json:"parent_id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
	Position int    `json:"position"`
	Level    int    `json:"level"`
	Path     string `json:"path"`
}

type StockItem struct {
	ItemID      int     `json:"item_id"`
	ProductID   int     `json:"product_id"`
	StockID     int     `json:"stock_id"`
	Qty         float64 `json:"qty"`
	IsInStock   bool    `json:"is_in_stock"`
	MinSaleQty  float64 `json:"min_sale_qty"`
	MaxSaleQty  float64 `json:"max_sale_qty"`
	ManageStock bool    `json:"manage_stock"`
}

func (p *Product) CustomAttributeMap() map[string]any {
	attributes := make(map[string]any, len(p.CustomAttributes))
	for _, attr := range p.CustomAttributes {
		attributes[attr.AttributeCode] = attr.Value
	}
	return attributes
}

func (p *Product) CustomAttribute(code string) (any, bool) {
	for _, attr := range p.CustomAttributes {
		if attr.AttributeCode == code {
			return attr.Value, true
		}
	}
	return nil, false
}

// CategoryIDs lê o atributo category_ids, que pode vir como lista, texto JSON, lista separada por vírgula ou escalar
func (p *Product) CategoryIDs() []string {
	value, ok := p.CustomAttribute("category_ids")
	if !ok || value == nil {
		return nil
	}

	ids := make([]string, 0)
	switch v := value.(type) {
	case []any:
		for _, item := range v {
			ids = append(ids, fmt.Sprint(item))
		}
	case []string:
		ids = append(ids, v...)
	case string:
		text := strings.TrimSpace(v)
		text = strings.TrimPrefix(text, "[")
		text = strings.TrimSuffix(text, "]")
		for _, part := range strings.Split(text, ",") {
			part = strings.Trim(strings.TrimSpace(part), `"`)
			if part != "" {
				ids = append(ids, part)
			}
		}
	default:
		ids = append(ids, fmt.Sprint(v))
	}

	return ids
}

// RelatedSKUs retorna os SKUs ligados com link_type "related"
func (p *Product) RelatedSKUs() []string {
	skus := make([]string, 0)
	for _, link := range p.ProductLinks {
		if link.LinkType == "related" && link.LinkedProductSKU != "" {
			skus = append(skus, link.LinkedProductSKU)
		}
	}
	return skus
}
