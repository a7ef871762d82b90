package domain

type OrderStatus struct {
	OrderID       int     `json:"order_id"`
	IncrementID   string  `json:"increment_id"`
	Status        string  `json:"status"`
	State         string  `json:"state"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
	GrandTotal    float64 `json:"grand_total"`
	Currency      string  `json:"currency"`
	CustomerEmail string  `json:"customer_email"`
	CustomerName  string  `json:"customer_name"`
	ItemCount     int     `json:"item_count"`
}

type CustomerInfo struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// CustomerOrderItem.ProductDetails é ProductDetails, LookupFailure ou objeto vazio para itens sem SKU
type CustomerOrderItem struct {
	SKU            string  `json:"sku"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	QtyOrdered     float64 `json:"qty_ordered"`
	ProductDetails any     `json:"product_details"`
}

type CustomerOrder struct {
	OrderID     int                 `json:"order_id"`
	IncrementID string              `json:"increment_id"`
	CreatedAt   string              `json:"created_at"`
	Status      string              `json:"status"`
	Total       float64             `json:"total"`
	Items       []CustomerOrderItem `json:"items"`
}

type CustomerOrders struct {
	Customer CustomerInfo    `json:"customer"`
	Orders   []CustomerOrder `json:"orders"`
}
