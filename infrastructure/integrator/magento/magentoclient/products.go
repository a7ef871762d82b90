package magentoclient

import (
	"context"
	"net/url"

	magentodomain "github.com/vfg2006/magento-reporting-api/infrastructure/integrator/magento/domain"
)

func (c *MagentoClient) GetProductBySKU(ctx context.Context, sku string) (*magentodomain.Product, error) {
	var response magentodomain.Product
	if err := c.get(ctx, "products", "/products/"+url.PathEscape(sku), nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *MagentoClient) SearchProducts(ctx context.Context, criteria *magentodomain.SearchCriteria) (*magentodomain.SearchResult[magentodomain.Product], error) {
	var response magentodomain.SearchResult[magentodomain.Product]
	if err := c.get(ctx, "products", "/products", criteria.Values(), &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *MagentoClient) GetRelatedProducts(ctx context.Context, sku string) ([]magentodomain.ProductLink, error) {
	var response []magentodomain.ProductLink
	if err := c.get(ctx, "products", "/products/"+url.PathEscape(sku)+"/links/related", nil, &response); err != nil {
		return nil, err
	}
	return response, nil
}

func (c *MagentoClient) GetCategory(ctx context.Context, categoryID string) (*magentodomain.Category, error) {
	var response magentodomain.Category
	if err := c.get(ctx, "categories", "/categories/"+url.PathEscape(categoryID), nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *MagentoClient) GetStockItem(ctx context.Context, sku string) (*magentodomain.StockItem, error) {
	var response magentodomain.StockItem
	if err := c.get(ctx, "stock", "/stockItems/"+url.PathEscape(sku), nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
