package magento

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	magentodomain "github.com/vfg2006/magento-reporting-api/infrastructure/integrator/magento/domain"
	"github.com/vfg2006/magento-reporting-api/infrastructure/integrator/magento/magentoclient"
	"github.com/vfg2006/magento-reporting-api/internal/config"
)

type MagentoIntegrator interface {
	FetchAllOrders(ctx context.Context, groups []magentodomain.FilterGroup) ([]magentodomain.Order, error)
	CountOrders(ctx context.Context, groups []magentodomain.FilterGroup) (int, error)
	GetOrder(ctx context.Context, orderID string) (*magentodomain.Order, error)

	GetProduct(ctx context.Context, sku string) (*magentodomain.Product, error)
	GetProductByID(ctx context.Context, productID string) (*magentodomain.Product, error)
	SearchProducts(ctx context.Context, criteria *magentodomain.SearchCriteria) (*magentodomain.SearchResult[magentodomain.Product], error)
	GetProductsBySKU(ctx context.Context, skus []string) []Lookup[magentodomain.Product]
	GetCategories(ctx context.Context, categoryIDs []string) []Lookup[magentodomain.Category]
	GetRelatedProducts(ctx context.Context, sku string) ([]Lookup[magentodomain.Product], error)
	GetStockItem(ctx context.Context, sku string) (*magentodomain.StockItem, error)

	FindCustomerByEmail(ctx context.Context, email string) (*magentodomain.Customer, error)
	Ping(ctx context.Context) error
}

type MagentoService struct {
	cfg    *config.Config
	Client magentoclient.Client
}

func New(cfg *config.Config, client magentoclient.Client) MagentoIntegrator {
	return &MagentoService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MagentoService) paginationOptions() PaginationOptions {
	return PaginationOptions{
		PageSize: s.cfg.Magento.PageSize,
		MaxPages: s.cfg.Magento.MaxPages,
	}
}

func (s *MagentoService) FetchAllOrders(ctx context.Context, groups []magentodomain.FilterGroup) ([]magentodomain.Order, error) {
	criteria := magentodomain.NewSearchCriteria(groups...)

	orders, err := FetchAllPages[magentodomain.Order](ctx, s.Client.SearchOrders, criteria, s.paginationOptions())
	if err != nil {
		logrus.WithError(err).Error("magento: failed to fetch orders")
		return nil, err
	}

	return orders, nil
}

// CountOrders lê o total_count de uma página de um item.
// Se a API omitir o total_count, percorre todas as páginas.
func (s *MagentoService) CountOrders(ctx context.Context, groups []magentodomain.FilterGroup) (int, error) {
	criteria := magentodomain.NewSearchCriteria(groups...).Paginate(1, 1)

	result, err := s.Client.SearchOrders(ctx, criteria)
	if err != nil {
		return 0, errors.Wrap(err, "magento: failed to count orders")
	}

	if result.TotalCount != nil {
		return *result.TotalCount, nil
	}

	logrus.Warn("magento: total_count missing, counting orders by pagination")

	orders, err := s.FetchAllOrders(ctx, groups)
	if err != nil {
		return 0, err
	}

	return len(orders), nil
}

// GetOrder tenta primeiro o entity_id numérico e depois o increment_id.
// OrderNotFound só é retornado quando as duas buscas não encontram o pedido.
func (s *MagentoService) GetOrder(ctx context.Context, orderID string) (*magentodomain.Order, error) {
	if _, err := strconv.Atoi(orderID); err == nil {
		order, err := s.Client.GetOrderByID(ctx, orderID)
		if err == nil {
			return order, nil
		}

		logrus.WithFields(logrus.Fields{
			"magento_order_id": orderID,
			"error":            err.Error(),
		}).Debug("magento: order id lookup failed, searching by increment_id")
	}

	criteria := magentodomain.NewSearchCriteria().WhereEq("increment_id", orderID).Paginate(1, 1)

	result, err := s.Client.SearchOrders(ctx, criteria)
	if err != nil {
		return nil, errors.Wrap(err, "magento: failed to search order by increment_id")
	}

	if len(result.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}

	return &result.Items[0], nil
}

func (s *MagentoService) GetProduct(ctx context.Context, sku string) (*magentodomain.Product, error) {
	product, err := s.Client.GetProductBySKU(ctx, sku)
	if err != nil {
		if magentodomain.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, sku)
		}
		return nil, err
	}

	return product, nil
}

// GetProductByID localiza o SKU pelo entity_id e então carrega o produto completo
func (s *MagentoService) GetProductByID(ctx context.Context, productID string) (*magentodomain.Product, error) {
	criteria := magentodomain.NewSearchCriteria().WhereEq("entity_id", productID).Paginate(1, 1)

	result, err := s.Client.SearchProducts(ctx, criteria)
	if err != nil {
		return nil, err
	}

	if len(result.Items) == 0 {
		return nil, fmt.Errorf("%w: id %s", ErrProductNotFound, productID)
	}

	return s.GetProduct(ctx, result.Items[0].SKU)
}

func (s *MagentoService) SearchProducts(ctx context.Context, criteria *magentodomain.SearchCriteria) (*magentodomain.SearchResult[magentodomain.Product], error) {
	return s.Client.SearchProducts(ctx, criteria)
}

func (s *MagentoService) GetProductsBySKU(ctx context.Context, skus []string) []Lookup[magentodomain.Product] {
	results := fanOut(ctx, s.cfg.Magento.MaxConcurrentLookups, skus, s.GetProduct)

	for _, result := range results {
		if result.Err != nil {
			logrus.WithFields(logrus.Fields{
				"magento_sku": result.Key,
				"error":       result.Err.Error(),
			}).Warn("magento: failed to load product details")
		}
	}

	return results
}

func (s *MagentoService) GetCategories(ctx context.Context, categoryIDs []string) []Lookup[magentodomain.Category] {
	results := fanOut(ctx, s.cfg.Magento.MaxConcurrentLookups, categoryIDs, s.Client.GetCategory)

	for _, result := range results {
		if result.Err != nil {
			logrus.WithFields(logrus.Fields{
				"magento_category_id": result.Key,
				"error":               result.Err.Error(),
			}).Warn("magento: failed to load category")
		}
	}

	return results
}

func (s *MagentoService) GetRelatedProducts(ctx context.Context, sku string) ([]Lookup[magentodomain.Product], error) {
	links, err := s.Client.GetRelatedProducts(ctx, sku)
	if err != nil {
		if magentodomain.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, sku)
		}
		return nil, err
	}

	skus := make([]string, 0, len(links))
	for _, link := range links {
		if link.LinkedProductSKU != "" {
			skus = append(skus, link.LinkedProductSKU)
		}
	}

	return s.GetProductsBySKU(ctx, skus), nil
}

func (s *MagentoService) GetStockItem(ctx context.Context, sku string) (*magentodomain.StockItem, error) {
	stock, err := s.Client.GetStockItem(ctx, sku)
	if err != nil {
		if magentodomain.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, sku)
		}
		return nil, err
	}

	return stock, nil
}

func (s *MagentoService) FindCustomerByEmail(ctx context.Context, email string) (*magentodomain.Customer, error) {
	criteria := magentodomain.NewSearchCriteria().WhereEq("email", email).Paginate(1, 1)

	result, err := s.Client.SearchCustomers(ctx, criteria)
	if err != nil {
		return nil, errors.Wrap(err, "magento: failed to search customer")
	}

	if len(result.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrCustomerNotFound, email)
	}

	return &result.Items[0], nil
}

// Ping verifica se a API responde com o token configurado
func (s *MagentoService) Ping(ctx context.Context) error {
	_, err := s.Client.GetStoreConfigs(ctx)
	return err
}
