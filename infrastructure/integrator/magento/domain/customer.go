package magentodomain

type Customer struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	CreatedAt string `json:"created_at"`
	GroupID   int    `json:"group_id"`
	StoreID   int    `json:"store_id"`
}

type StoreConfig struct {
	ID                 int    `json:"id"`
	Code               string `json:"code"`
	WebsiteID          int    `json:"website_id"`
	Locale             string `json:"locale"`
	BaseCurrencyCode   string `json:"base_currency_code"`
	DefaultDisplayCode string `json:"default_display_currency_code"`
	Timezone           string `json:"timezone"`
	BaseURL            string `json:"base_url"`
}

// SearchResult é o envelope das buscas do Magento. TotalCount é nulo quando a API omite o campo.
type SearchResult[T any] struct {
	Items      []T  `json:"items"`
	TotalCount *int `json:"total_count,omitempty"`
}
