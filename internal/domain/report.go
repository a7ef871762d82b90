package domain

const AllFilter = "All"

type ReportPeriod struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ReportQuery ecoa os parâmetros usados em cada relatório
type ReportQuery struct {
	DateRange         string       `json:"date_range"`
	Country           string       `json:"country,omitempty"`
	NormalizedCountry string       `json:"normalized_country,omitempty"`
	Status            string       `json:"status"`
	IncludeTax        *bool        `json:"include_tax,omitempty"`
	Period            ReportPeriod `json:"period"`
}

func NewReportQuery(dateRange DateRange, status string) ReportQuery {
	if status == "" {
		status = AllFilter
	}

	return ReportQuery{
		DateRange: dateRange.Label,
		Status:    status,
		Period: ReportPeriod{
			StartDate: dateRange.Start.Format("2006-01-02"),
			EndDate:   dateRange.End.Format("2006-01-02"),
		},
	}
}

type RevenueSummary struct {
	Revenue           float64 `json:"revenue"`
	Currency          string  `json:"currency"`
	OrderCount        int     `json:"order_count"`
	AverageOrderValue float64 `json:"average_order_value"`
	TaxAmount         float64 `json:"tax_amount"`
}

type RevenueReport struct {
	Query  ReportQuery    `json:"query"`
	Result RevenueSummary `json:"result"`
}

type OrderCountSummary struct {
	OrderCount int `json:"order_count"`
}

type OrderCountReport struct {
	Query  ReportQuery       `json:"query"`
	Result OrderCountSummary `json:"result"`
}

type TopProduct struct {
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type ProductSalesSummary struct {
	TotalOrders              int          `json:"total_orders"`
	TotalOrderItems          int          `json:"total_order_items"`
	TotalProductQuantity     float64      `json:"total_product_quantity"`
	AverageProductsPerOrder  float64      `json:"average_products_per_order"`
	TotalRevenue             float64      `json:"total_revenue"`
	AverageRevenuePerProduct float64      `json:"average_revenue_per_product"`
	TopProducts              []TopProduct `json:"top_products"`
}

type ProductSalesReport struct {
	Query  ReportQuery         `json:"query"`
	Result ProductSalesSummary `json:"result"`
}
