package magentoclient

import (
	"context"

	magentodomain "github.com/vfg2006/magento-reporting-api/infrastructure/integrator/magento/domain"
)

func (c *MagentoClient) SearchCustomers(ctx context.Context, criteria *magentodomain.SearchCriteria) (*magentodomain.SearchResult[magentodomain.Customer], error) {
	var response magentodomain.SearchResult[magentodomain.Customer]
	if err := c.get(ctx, "customers", "/customers/search", criteria.Values(), &response); err != nil {
		return nil, err
	}
	return &response, nil
}
