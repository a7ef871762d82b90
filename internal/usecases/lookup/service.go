package lookup

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/magento-reporting-api/infrastructure/integrator/magento"
	magentodomain "github.com/vfg2006/magento-reporting-api/infrastructure/integrator/magento/domain"
	"github.com/vfg2006/magento-reporting-api/internal/config"
	"github.com/vfg2006/magento-reporting-api/internal/domain"
)

const (
	DefaultSearchPageSize = 10
	DefaultSortField      = "entity_id"
)

// SearchParams cobre search_products e advanced_product_search.
// Query vira um filtro name like %query%; FilterGroups é usado como veio.
type SearchParams struct {
	Query         string
	FilterGroups  []magentodomain.FilterGroup
	PageSize      int
	CurrentPage   int
	SortField     string
	SortDirection string
}

type Lookuper interface {
	GetProductBySKU(ctx context.Context, sku string) (*domain.ProductDetails, error)
	GetProductByID(ctx context.Context, productID string) (*domain.ProductDetails, error)
	SearchProducts(ctx context.Context, params SearchParams) (*domain.ProductSearchResult, error)
	GetProductCategories(ctx context.Context, sku string) ([]any, error)
	GetRelatedProducts(ctx context.Context, sku string) ([]any, error)
	GetProductStock(ctx context.Context, sku string) (*domain.ProductStock, error)
	GetProductAttributes(ctx context.Context, sku string) (*domain.ProductAttributes, error)
	GetOrderStatus(ctx context.Context, orderID string) (*domain.OrderStatus, error)
	GetCustomerOrderedProducts(ctx context.Context, email string) (*domain.CustomerOrders, error)
}

type LookupService struct {
	cfg            *config.Config
	magentoService magento.MagentoIntegrator
}

func NewLookupService(cfg *config.Config, magentoService magento.MagentoIntegrator) Lookuper {
	return &LookupService{
		cfg:            cfg,
		magentoService: magentoService,
	}
}

func (s *LookupService) GetProductBySKU(ctx context.Context, sku string) (*domain.ProductDetails, error) {
	product, err := s.magentoService.GetProduct(ctx, sku)
	if err != nil {
		return nil, err
	}
	return FactoryProductDetails(product), nil
}

func (s *LookupService) GetProductByID(ctx context.Context, productID string) (*domain.ProductDetails, error) {
	product, err := s.magentoService.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	return FactoryProductDetails(product), nil
}

func (s *LookupService) SearchProducts(ctx context.Context, params SearchParams) (*domain.ProductSearchResult, error) {
	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = DefaultSearchPageSize
	}

	currentPage := params.CurrentPage
	if currentPage <= 0 {
		currentPage = 1
	}

	criteria := magentodomain.NewSearchCriteria(params.FilterGroups...)
	if query := strings.TrimSpace(params.Query); query != "" {
		criteria.Where("name", magentodomain.ConditionLike, "%"+query+"%")
	}

	if params.SortField != "" {
		direction := magentodomain.SortDirection(strings.ToUpper(params.SortDirection))
		criteria.SortBy(params.SortField, direction)
	}

	criteria.Paginate(pageSize, currentPage)

	result, err := s.magentoService.SearchProducts(ctx, criteria)
	if err != nil {
		return nil, err
	}

	return FactoryProductSearchResult(result), nil
}

// GetProductCategories devolve uma categoria por id; falhas individuais viram {id, error}
func (s *LookupService) GetProductCategories(ctx context.Context, sku string) ([]any, error) {
	product, err := s.magentoService.GetProduct(ctx, sku)
	if err != nil {
		return nil, err
	}

	categoryIDs := product.CategoryIDs()
	categories := make([]any, 0, len(categoryIDs))
	if len(categoryIDs) == 0 {
		return categories, nil
	}

	for _, lookup := range s.magentoService.GetCategories(ctx, categoryIDs) {
		if lookup.Err != nil {
			categories = append(categories, domain.LookupFailure{ID: lookup.Key, Error: lookup.Err.Error()})
			continue
		}

		categories = append(categories, domain.CategoryDetails{
			ID:       lookup.Value.ID,
			ParentID: lookup.Value.ParentID,
			Name:     lookup.Value.Name,
			IsActive: lookup.Value.IsActive,
			Level:    lookup.Value.Level,
			Path:     lookup.Value.Path,
		})
	}

	return categories, nil
}

func (s *LookupService) GetRelatedProducts(ctx context.Context, sku string) ([]any, error) {
	lookups, err := s.magentoService.GetRelatedProducts(ctx, sku)
	if err != nil {
		return nil, err
	}

	return productsOrFailures(lookups), nil
}

func (s *LookupService) GetProductStock(ctx context.Context, sku string) (*domain.ProductStock, error) {
	stock, err := s.magentoService.GetStockItem(ctx, sku)
	if err != nil {
		return nil, err
	}

	return &domain.ProductStock{
		SKU:         sku,
		ProductID:   stock.ProductID,
		Qty:         stock.Qty,
		IsInStock:   stock.IsInStock,
		MinSaleQty:  stock.MinSaleQty,
		MaxSaleQty:  stock.MaxSaleQty,
		ManageStock: stock.ManageStock,
	}, nil
}

func (s *LookupService) GetProductAttributes(ctx context.Context, sku string) (*domain.ProductAttributes, error) {
	product, err := s.magentoService.GetProduct(ctx, sku)
	if err != nil {
		return nil, err
	}

	return &domain.ProductAttributes{
		BaseAttributes: domain.ProductBaseAttributes{
			ID:         product.ID,
			SKU:        product.SKU,
			Name:       product.Name,
			Price:      product.Price,
			Status:     product.Status,
			Visibility: product.Visibility,
			TypeID:     product.TypeID,
		},
		CustomAttributes: product.CustomAttributeMap(),
	}, nil
}

func (s *LookupService) GetOrderStatus(ctx context.Context, orderID string) (*domain.OrderStatus, error) {
	order, err := s.magentoService.GetOrder(ctx, strings.TrimSpace(orderID))
	if err != nil {
		return nil, err
	}
	return FactoryOrderStatus(order), nil
}

// GetCustomerOrderedProducts lista os pedidos do cliente e enriquece cada SKU distinto uma única vez
func (s *LookupService) GetCustomerOrderedProducts(ctx context.Context, email string) (*domain.CustomerOrders, error) {
	customer, err := s.magentoService.FindCustomerByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	groups := magentodomain.NewSearchCriteria().WhereEq("customer_email", email).FilterGroups

	orders, err := s.magentoService.FetchAllOrders(ctx, groups)
	if err != nil {
		return nil, err
	}

	skus := make([]string, 0)
	seen := make(map[string]bool)
	for _, order := range orders {
		for _, item := range order.Items {
			if item.SKU != "" && !seen[item.SKU] {
				seen[item.SKU] = true
				skus = append(skus, item.SKU)
			}
		}
	}

	details := make(map[string]any, len(skus))
	if len(skus) > 0 {
		for _, lookup := range s.magentoService.GetProductsBySKU(ctx, skus) {
			details[lookup.Key] = productOrFailure(lookup)
		}
	}

	logrus.WithFields(logrus.Fields{
		"orders":       len(orders),
		"distinct_sku": len(skus),
	}).Debug("lookup: customer orders loaded")

	customerOrders := make([]domain.CustomerOrder, 0, len(orders))
	for _, order := range orders {
		items := make([]domain.CustomerOrderItem, 0, len(order.Items))
		for _, item := range order.Items {
			productDetails, ok := details[item.SKU]
			if !ok {
				productDetails = map[string]any{}
			}

			items = append(items, domain.CustomerOrderItem{
				SKU:            item.SKU,
				Name:           item.Name,
				Price:          item.Price.InexactFloat64(),
				QtyOrdered:     item.QtyOrdered.InexactFloat64(),
				ProductDetails: productDetails,
			})
		}

		customerOrders = append(customerOrders, domain.CustomerOrder{
			OrderID:     order.EntityID,
			IncrementID: order.IncrementID,
			CreatedAt:   order.CreatedAt,
			Status:      order.Status,
			Total:       order.GrandTotal.InexactFloat64(),
			Items:       items,
		})
	}

	return &domain.CustomerOrders{
		Customer: domain.CustomerInfo{
			ID:        customer.ID,
			Email:     customer.Email,
			Firstname: customer.Firstname,
			Lastname:  customer.Lastname,
		},
		Orders: customerOrders,
	}, nil
}

func productOrFailure(lookup magento.Lookup[magentodomain.Product]) any {
	if lookup.Err != nil {
		return domain.LookupFailure{SKU: lookup.Key, Error: lookup.Err.Error()}
	}
	return FactoryProductDetails(lookup.Value)
}

func productsOrFailures(lookups []magento.Lookup[magentodomain.Product]) []any {
	products := make([]any, 0, len(lookups))
	for _, lookup := range lookups {
		products = append(products, productOrFailure(lookup))
	}
	return products
}
