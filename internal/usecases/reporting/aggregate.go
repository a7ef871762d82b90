package reporting

import (
	"sort"

	"github.com/shopspring/decimal"
	magentodomain "github.com/vfg2006/magento-reporting-api/infrastructure/integrator/magento/domain"
	"github.com/vfg2006/magento-reporting-api/internal/domain"
	"github.com/vfg2006/magento-reporting-api/pkg/utils"
)

const TopProductsLimit = 10

// SumRevenue soma grand_total e tax_amount com precisão decimal e só arredonda na saída.
// Sem imposto, a receita é grand_total - tax_amount.
func SumRevenue(orders []magentodomain.Order, includeTax bool, currency string) domain.RevenueSummary {
	revenue := decimal.Zero
	tax := decimal.Zero

	for _, order := range orders {
		revenue = revenue.Add(order.GrandTotal)
		tax = tax.Add(order.TaxAmount)
	}

	if !includeTax {
		revenue = revenue.Sub(tax)
	}

	orderCount := len(orders)

	return domain.RevenueSummary{
		Revenue:           utils.RoundWithTwoDecimalPlace(revenue),
		Currency:          currency,
		OrderCount:        orderCount,
		AverageOrderValue: utils.RoundWithTwoDecimalPlace(utils.SafeDivide(revenue, decimal.NewFromInt(int64(orderCount)))),
		TaxAmount:         utils.RoundWithTwoDecimalPlace(tax),
	}
}

// FilterByCountry mantém os pedidos cujo país de cobrança OU de entrega é o código informado
func FilterByCountry(orders []magentodomain.Order, countryCode string) []magentodomain.Order {
	filtered := make([]magentodomain.Order, 0, len(orders))
	for _, order := range orders {
		if order.BillingCountry() == countryCode || order.ShippingCountry() == countryCode {
			filtered = append(filtered, order)
		}
	}
	return filtered
}

type productTotals struct {
	sku      string
	name     string
	quantity decimal.Decimal
	revenue  decimal.Decimal
}

// AggregateProductSales acumula quantidade e row_total por SKU na ordem em que aparecem.
// O ranking é estável: empates mantêm a ordem de inserção.
// Itens sem SKU entram nos totais, mas não no ranking.
func AggregateProductSales(orders []magentodomain.Order) domain.ProductSalesSummary {
	totalRevenue := decimal.Zero
	totalQuantity := decimal.Zero
	totalOrderItems := 0

	index := make(map[string]int)
	products := make([]*productTotals, 0)

	for _, order := range orders {
		totalRevenue = totalRevenue.Add(order.GrandTotal)
		totalOrderItems += len(order.Items)

		for _, item := range order.Items {
			totalQuantity = totalQuantity.Add(item.QtyOrdered)

			if item.SKU == "" {
				continue
			}

			position, ok := index[item.SKU]
			if !ok {
				position = len(products)
				index[item.SKU] = position
				products = append(products, &productTotals{
					sku:      item.SKU,
					name:     item.Name,
					quantity: decimal.Zero,
					revenue:  decimal.Zero,
				})
			}

			products[position].quantity = products[position].quantity.Add(item.QtyOrdered)
			products[position].revenue = products[position].revenue.Add(item.RowTotal)
		}
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].quantity.GreaterThan(products[j].quantity)
	})

	if len(products) > TopProductsLimit {
		products = products[:TopProductsLimit]
	}

	topProducts := make([]domain.TopProduct, 0, len(products))
	for _, product := range products {
		topProducts = append(topProducts, domain.TopProduct{
			SKU:      product.sku,
			Name:     product.name,
			Quantity: product.quantity.InexactFloat64(),
			Revenue:  utils.RoundWithTwoDecimalPlace(product.revenue),
		})
	}

	totalOrders := len(orders)

	return domain.ProductSalesSummary{
		TotalOrders:              totalOrders,
		TotalOrderItems:          totalOrderItems,
		TotalProductQuantity:     totalQuantity.InexactFloat64(),
		AverageProductsPerOrder:  utils.RoundWithTwoDecimalPlace(utils.SafeDivide(totalQuantity, decimal.NewFromInt(int64(totalOrders)))),
		TotalRevenue:             utils.RoundWithTwoDecimalPlace(totalRevenue),
		AverageRevenuePerProduct: utils.RoundWithTwoDecimalPlace(utils.SafeDivide(totalRevenue, totalQuantity)),
		TopProducts:              topProducts,
	}
}
