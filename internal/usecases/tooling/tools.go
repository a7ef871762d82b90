package tooling

import (
	"context"

	"github.com/vfg2006/magento-reporting-api/internal/domain"
)

func argument(name, argType string, required bool, description string) domain.ToolArgument {
	return domain.ToolArgument{Name: name, Type: argType, Required: required, Description: description}
}

const dateRangeHelp = "today, yesterday, this week, last week, this month, last month, ytd, last year, " +
	"YYYY-MM-DD or 'YYYY-MM-DD to YYYY-MM-DD'"

var (
	skuArgument        = argument("sku", "string", true, "Product SKU")
	dateRangeArgument  = argument("date_range", "string", true, dateRangeHelp)
	statusArgument     = argument("status", "string", false, "Order status filter, 'All' or empty for every status")
	includeTaxArgument = argument("include_tax", "boolean", false, "Include tax in revenue (default true)")
)

func (d *ToolDispatcher) catalog() []tool {
	return []tool{
		{
			descriptor: domain.ToolDescriptor{
				Name:        "get_product_by_sku",
				Description: "Get detailed product information by SKU",
				Arguments:   []domain.ToolArgument{skuArgument},
			},
			handle: d.getProductBySKU,
		},
		{
			descriptor: domain.ToolDescriptor{
				Name:        "get_product_by_id",
				Description: "Get detailed product information by product ID",
				Arguments:   []domain.ToolArgument{argument("id", "string", true, "Product entity ID")},
			},
			handle: d.getProductByID,
		},
		{
			descriptor: domain.ToolDescriptor{
				Name:        "search_products",
				Description: "Search products by name or by explicit filter groups",
				Arguments: []domain.ToolArgument{
					argument("query", "string", false, "Text matched against the product name"),
					argument("filter_groups", "array", false, "Magento filter groups, required when query is empty"),
					argument("page_size", "integer", false, "Items per page (default 10)"),
					argument("current_page", "integer", false, "Page number (default 1)"),
					argument("sort_field", "string", false, "Sort field"),
					argument("sort_direction", "string", false, "ASC or DESC"),
				},
			},
			handle: d.searchProducts,
		},
		{
			descriptor: domain.ToolDescriptor{
				Name:        "advanced_product_search",
				Description: "Search products by a single attribute condition",
				Arguments: []domain.ToolArgument{
					argument("field", "string", true, "Attribute code"),
					argument("value", "string", true, "Value compared with the attribute"),
					argument("condition_type", "string", false, "Magento condition type (default eq)"),
					argument("page_size", "integer", false, "Items per page (default 10)"),
					argument("current_page", "integer", false, "Page number (default 1)"),
					argument("sort_field", "string", false, "Sort field (default entity_id)"),
					argument("sort_direction", "string", false, "ASC or DESC (default DESC)"),
				},
			},
			handle: d.advancedProductSearch,
		},
		{
			descriptor: domain.ToolDescriptor{
				Name:        "get_product_categories",
				Description: "Get the categories a product belongs to",
				Arguments:   []domain.ToolArgument{skuArgument},
			},
			handle: d.getProductCategories,
		},
		{
			descriptor: domain.ToolDescriptor{
				Name:        "get_related_products",
				Description: "Get products linked to a product as related",
				Arguments:   []domain.ToolArgument{skuArgument},
			},
			handle: d.getRelatedProducts,
		},
		{
			descriptor: domain.ToolDescriptor{
				Name:        "get_product_stock",
				Description: "Get stock information for a product",
				Arguments:   []domain.ToolArgument{skuArgument},
			},
			handle: d.getProductStock,
		},
		{
			descriptor: domain.ToolDescriptor{
				Name:        "get_product_attributes",
				Description: "Get base and custom attributes of a product",
				Arguments:   []domain.ToolArgument{skuArgument},
			},
			handle: d.getProductAttributes,
		},
		{
			descriptor: domain.ToolDescriptor{
				Name:        "get_order_status",
				Description: "Get the status of an order by entity ID or increment ID",
				Arguments: []domain.ToolArgument{
					argument("order_id", "string", true, "Order entity ID or increment ID (alias: orderId)"),
				},
			},
			handle: d.getOrderStatus,
		},
		{
			descriptor: domain.ToolDescriptor{
				Name:        "get_customer_ordered_products_by_email",
				Description: "Get every order of a customer with the ordered products",
				Arguments:   []domain.ToolArgument{argument("email", "string", true, "Customer email")},
			},
			handle: d.getCustomerOrderedProducts,
		},
		{
			descriptor: domain.ToolDescriptor{
				Name:        "get_order_count",
				Description: "Count orders placed in a date range",
				Arguments:   []domain.ToolArgument{dateRangeArgument, statusArgument},
			},
			handle: d.getOrderCount,
		},
		{
			descriptor: domain.ToolDescriptor{
				Name:        "get_revenue",
				Description: "Total revenue, order count and average order value for a date range",
				Arguments:   []domain.ToolArgument{dateRangeArgument, statusArgument, includeTaxArgument},
			},
			handle: d.getRevenue,
		},
		{
			descriptor: domain.ToolDescriptor{
				Name:        "get_product_sales",
				Description: "Product sales statistics and top products for a date range",
				Arguments: []domain.ToolArgument{
					dateRangeArgument,
					statusArgument,
					argument("country", "string", false, "Country name or ISO code"),
				},
			},
			handle: d.getProductSales,
		},
		{
			descriptor: domain.ToolDescriptor{
				Name:        "get_revenue_by_country",
				Description: "Revenue of orders billed or shipped to a country",
				Arguments: []domain.ToolArgument{
					dateRangeArgument,
					argument("country", "string", true, "Country name or ISO code"),
					statusArgument,
					includeTaxArgument,
				},
			},
			handle: d.getRevenueByCountry,
		},
	}
}

func (d *ToolDispatcher) getProductBySKU(ctx context.Context, args map[string]any) (any, error) {
	var in skuArguments
	if err := decodeArguments(args, &in); err != nil {
		return nil, err
	}
	return d.lookuper.GetProductBySKU(ctx, in.SKU)
}

func (d *ToolDispatcher) getProductByID(ctx context.Context, args map[string]any) (any, error) {
	var in productIDArguments
	if err := decodeArguments(args, &in); err != nil {
		return nil, err
	}
	return d.lookuper.GetProductByID(ctx, in.ID)
}

func (d *ToolDispatcher) searchProducts(ctx context.Context, args map[string]any) (any, error) {
	var in searchArguments
	if err := decodeArguments(args, &in); err != nil {
		return nil, err
	}
	return d.lookuper.SearchProducts(ctx, in.params())
}

func (d *ToolDispatcher) advancedProductSearch(ctx context.Context, args map[string]any) (any, error) {
	var in advancedSearchArguments
	if err := decodeArguments(args, &in); err != nil {
		return nil, err
	}
	return d.lookuper.SearchProducts(ctx, in.params())
}

func (d *ToolDispatcher) getProductCategories(ctx context.Context, args map[string]any) (any, error) {
	var in skuArguments
	if err := decodeArguments(args, &in); err != nil {
		return nil, err
	}
	return d.lookuper.GetProductCategories(ctx, in.SKU)
}

func (d *ToolDispatcher) getRelatedProducts(ctx context.Context, args map[string]any) (any, error) {
	var in skuArguments
	if err := decodeArguments(args, &in); err != nil {
		return nil, err
	}
	return d.lookuper.GetRelatedProducts(ctx, in.SKU)
}

func (d *ToolDispatcher) getProductStock(ctx context.Context, args map[string]any) (any, error) {
	var in skuArguments
	if err := decodeArguments(args, &in); err != nil {
		return nil, err
	}
	return d.lookuper.GetProductStock(ctx, in.SKU)
}

func (d *ToolDispatcher) getProductAttributes(ctx context.Context, args map[string]any) (any, error) {
	var in skuArguments
	if err := decodeArguments(args, &in); err != nil {
		return nil, err
	}
	return d.lookuper.GetProductAttributes(ctx, in.SKU)
}

func (d *ToolDispatcher) getOrderStatus(ctx context.Context, args map[string]any) (any, error) {
	var in orderStatusArguments
	if err := decodeArguments(args, &in); err != nil {
		return nil, err
	}
	return d.lookuper.GetOrderStatus(ctx, in.id())
}

func (d *ToolDispatcher) getCustomerOrderedProducts(ctx context.Context, args map[string]any) (any, error) {
	var in emailArguments
	if err := decodeArguments(args, &in); err != nil {
		return nil, err
	}
	return d.lookuper.GetCustomerOrderedProducts(ctx, in.Email)
}

func (d *ToolDispatcher) getOrderCount(ctx context.Context, args map[string]any) (any, error) {
	var in reportArguments
	if err := decodeArguments(args, &in); err != nil {
		return nil, err
	}
	return d.reporter.GetOrderCount(ctx, in.params())
}

func (d *ToolDispatcher) getRevenue(ctx context.Context, args map[string]any) (any, error) {
	var in reportArguments
	if err := decodeArguments(args, &in); err != nil {
		return nil, err
	}
	return d.reporter.GetRevenue(ctx, in.params())
}

func (d *ToolDispatcher) getProductSales(ctx context.Context, args map[string]any) (any, error) {
	var in reportArguments
	if err := decodeArguments(args, &in); err != nil {
		return nil, err
	}
	return d.reporter.GetProductSales(ctx, in.params())
}

func (d *ToolDispatcher) getRevenueByCountry(ctx context.Context, args map[string]any) (any, error) {
	var in countryReportArguments
	if err := decodeArguments(args, &in); err != nil {
		return nil, err
	}
	return d.reporter.GetRevenueByCountry(ctx, in.params())
}
