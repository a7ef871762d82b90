package domain

type ProductDetails struct {
	ID                  int            `json:"id"`
	SKU                 string         `json:"sku"`
	Name                string         `json:"name"`
	Price               float64        `json:"price"`
	Status              int            `json:"status"`
	Visibility          int            `json:"visibility"`
	TypeID              string         `json:"type_id"`
	CreatedAt           string         `json:"created_at"`
	UpdatedAt           string         `json:"updated_at"`
	ExtensionAttributes map[string]any `json:"extension_attributes,omitempty"`
	CustomAttributes    map[string]any `json:"custom_attributes"`
}

type ProductSummary struct {
	ID     int     `json:"id"`
	SKU    string  `json:"sku"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Status int     `json:"status"`
	TypeID string  `json:"type_id"`
}

type ProductSearchResult struct {
	TotalCount *int             `json:"total_count"`
	Items      []ProductSummary `json:"items"`
}

type ProductBaseAttributes struct {
	ID         int     `json:"id"`
	SKU        string  `json:"sku"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Status     int     `json:"status"`
	Visibility int     `json:"visibility"`
	TypeID     string  `json:"type_id"`
}

type ProductAttributes struct {
	BaseAttributes   ProductBaseAttributes `json:"base_attributes"`
	CustomAttributes map[string]any        `json:"custom_attributes"`
}

type ProductStock struct {
	SKU         string  `json:"sku"`
	ProductID   int     `json:"product_id"`
	Qty         float64 `json:"qty"`
	IsInStock   bool    `json:"is_in_stock"`
	MinSaleQty  float64 `json:"min_sale_qty"`
	MaxSaleQty  float64 `json:"max_sale_qty"`
	ManageStock bool    `json:"manage_stock"`
}

type CategoryDetails struct {
	ID       int    `json:"id"`
	ParentID int    `json:"parent_id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
	Level    int    `json:"level"`
	Path     string `json:"path"`
}

// LookupFailure substitui um item de um lote cuja consulta falhou
type LookupFailure struct {
	ID    string `json:"id,omitempty"`
	SKU   string `json:"sku,omitempty"`
	Error string `json:"error"`
}
