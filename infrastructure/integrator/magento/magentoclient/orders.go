package magentoclient

import (
	"context"
	"net/url"

	magentodomain "github.com/vfg2006/magento-reporting-api/infrastructure/integrator/magento/domain"
)

func (c *MagentoClient) SearchOrders(ctx context.Context, criteria *magentodomain.SearchCriteria) (*magentodomain.SearchResult[magentodomain.Order], error) {
	var response magentodomain.SearchResult[magentodomain.Order]
	if err := c.get(ctx, "orders", "/orders", criteria.Values(), &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *MagentoClient) GetOrderByID(ctx context.Context, orderID string) (*magentodomain.Order, error) {
	var response magentodomain.Order
	if err := c.get(ctx, "orders", "/orders/"+url.PathEscape(orderID), nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
