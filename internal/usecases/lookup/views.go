package lookup

import (
	"strings"

	magentodomain "github.com/vfg2006/magento-reporting-api/infrastructure/integrator/magento/domain"
	"github.com/vfg2006/magento-reporting-api/internal/domain"
)

func FactoryProductDetails(product *magentodomain.Product) *domain.ProductDetails {
	return &domain.ProductDetails{
		ID:                  product.ID,
		SKU:                 product.SKU,
		Name:                product.Name,
		Price:               product.Price,
		Status:              product.Status,
		Visibility:          product.Visibility,
		TypeID:              product.TypeID,
		CreatedAt:           product.CreatedAt,
		UpdatedAt:           product.UpdatedAt,
		ExtensionAttributes: product.ExtensionAttributes,
		CustomAttributes:    product.CustomAttributeMap(),
	}
}

func FactoryProductSearchResult(result *magentodomain.SearchResult[magentodomain.Product]) *domain.ProductSearchResult {
	items := make([]domain.ProductSummary, 0, len(result.Items))
	for _, product := range result.Items {
		items = append(items, domain.ProductSummary{
			ID:     product.ID,
			SKU:    product.SKU,
			Name:   product.Name,
			Price:  product.Price,
			Status: product.Status,
			TypeID: product.TypeID,
		})
	}

	return &domain.ProductSearchResult{
		TotalCount: result.TotalCount,
		Items:      items,
	}
}

func FactoryOrderStatus(order *magentodomain.Order) *domain.OrderStatus {
	return &domain.OrderStatus{
		OrderID:       order.EntityID,
		IncrementID:   order.IncrementID,
		Status:        order.Status,
		State:         order.State,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
		GrandTotal:    order.GrandTotal.InexactFloat64(),
		Currency:      order.CurrencyCode,
		CustomerEmail: order.CustomerEmail,
		CustomerName:  strings.TrimSpace(order.CustomerFirstname + " " + order.CustomerLastname),
		ItemCount:     len(order.Items),
	}
}
