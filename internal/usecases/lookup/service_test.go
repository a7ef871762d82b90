package lookup

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/magento-reporting-api/infrastructure/integrator/magento"
	magentodomain "github.com/vfg2006/magento-reporting-api/infrastructure/integrator/magento/domain"
	"github.com/vfg2006/magento-reporting-api/infrastructure/integrator/magento/mocks"
	"github.com/vfg2006/magento-reporting-api/internal/config"
	"github.com/vfg2006/magento-reporting-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestLookupService(ctrl *gomock.Controller) (*LookupService, *mocks.MockMagentoIntegrator) {
	magentoService := mocks.NewMockMagentoIntegrator(ctrl)
	return &LookupService{cfg: &config.Config{}, magentoService: magentoService}, magentoService
}

func TestLookupService_GetProductBySKU(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, magentoService := newTestLookupService(ctrl)

	magentoService.EXPECT().GetProduct(gomock.Any(), "MJ01").Return(&magentodomain.Product{
		ID:    1,
		SKU:   "MJ01",
		Name:  "Jacket",
		Price: 42.5,
		CustomAttributes: []magentodomain.CustomAttribute{
			{AttributeCode: "color", Value: "49"},
			{AttributeCode: "category_ids", Value: []any{"3", "5"}},
		},
	}, nil)

	product, err := service.GetProductBySKU(context.Background(), "MJ01")
	require.NoError(t, err)

	assert.Equal(t, "Jacket", product.Name)
	assert.Equal(t, map[string]any{"color": "49", "category_ids": []any{"3", "5"}}, product.CustomAttributes)

	magentoService.EXPECT().GetProduct(gomock.Any(), "NOPE").Return(nil, magento.ErrProductNotFound)

	_, err = service.GetProductBySKU(context.Background(), "NOPE")
	assert.True(t, errors.Is(err, magento.ErrProductNotFound))
}

func TestLookupService_SearchProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, magentoService := newTestLookupService(ctrl)

	tests := []struct {
		name     string
		params   SearchParams
		validate func(t *testing.T, criteria *magentodomain.SearchCriteria)
	}{
		{
			name:   "busca por nome com paginação padrão",
			params: SearchParams{Query: "shirt"},
			validate: func(t *testing.T, criteria *magentodomain.SearchCriteria) {
				require.Len(t, criteria.FilterGroups, 1)
				assert.Equal(t, magentodomain.Filter{Field: "name", Value: "%shirt%", ConditionType: magentodomain.ConditionLike}, criteria.FilterGroups[0].Filters[0])
				assert.Equal(t, 10, criteria.PageSize)
				assert.Equal(t, 1, criteria.CurrentPage)
				assert.Empty(t, criteria.SortOrders)
			},
		},
		{
			name: "grupos explícitos com ordenação",
			params: SearchParams{
				FilterGroups: []magentodomain.FilterGroup{
					{Filters: []magentodomain.Filter{{Field: "price", Value: "100", ConditionType: magentodomain.ConditionGt}}},
				},
				PageSize:      25,
				CurrentPage:   2,
				SortField:     "price",
				SortDirection: "desc",
			},
			validate: func(t *testing.T, criteria *magentodomain.SearchCriteria) {
				require.Len(t, criteria.FilterGroups, 1)
				assert.Equal(t, "price", criteria.FilterGroups[0].Filters[0].Field)
				assert.Equal(t, []magentodomain.SortOrder{{Field: "price", Direction: magentodomain.SortDesc}}, criteria.SortOrders)
				assert.Equal(t, 25, criteria.PageSize)
				assert.Equal(t, 2, criteria.CurrentPage)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			magentoService.EXPECT().SearchProducts(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, criteria *magentodomain.SearchCriteria) (*magentodomain.SearchResult[magentodomain.Product], error) {
					tt.validate(t, criteria)
					total := 1
					return &magentodomain.SearchResult[magentodomain.Product]{
						Items:      []magentodomain.Product{{ID: 9, SKU: "S1", Name: "Shirt", TypeID: "simple"}},
						TotalCount: &total,
					}, nil
				})

			result, err := service.SearchProducts(context.Background(), tt.params)
			require.NoError(t, err)
			assert.Equal(t, 1, *result.TotalCount)
			assert.Equal(t, []domain.ProductSummary{{ID: 9, SKU: "S1", Name: "Shirt", TypeID: "simple"}}, result.Items)
		})
	}
}

func TestLookupService_GetProductCategories(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, magentoService := newTestLookupService(ctrl)

	magentoService.EXPECT().GetProduct(gomock.Any(), "MJ01").Return(&magentodomain.Product{
		SKU:              "MJ01",
		CustomAttributes: []magentodomain.CustomAttribute{{AttributeCode: "category_ids", Value: `["3","77"]`}},
	}, nil)
	magentoService.EXPECT().GetCategories(gomock.Any(), []string{"3", "77"}).Return([]magento.Lookup[magentodomain.Category]{
		{Key: "3", Value: &magentodomain.Category{ID: 3, Name: "Jackets", IsActive: true}},
		{Key: "77", Err: fmt.Errorf("magento GET /categories/77 returned 404: not found")},
	})

	categories, err := service.GetProductCategories(context.Background(), "MJ01")
	require.NoError(t, err)

	assert.Equal(t, []any{
		domain.CategoryDetails{ID: 3, Name: "Jackets", IsActive: true},
		domain.LookupFailure{ID: "77", Error: "magento GET /categories/77 returned 404: not found"},
	}, categories)
}

func TestLookupService_GetProductCategories_WithoutCategories(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, magentoService := newTestLookupService(ctrl)

	magentoService.EXPECT().GetProduct(gomock.Any(), "GIFT").Return(&magentodomain.Product{SKU: "GIFT"}, nil)

	categories, err := service.GetProductCategories(context.Background(), "GIFT")
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestLookupService_GetOrderStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, magentoService := newTestLookupService(ctrl)

	magentoService.EXPECT().GetOrder(gomock.Any(), "000000042").Return(&magentodomain.Order{
		EntityID:          7,
		IncrementID:       "000000042",
		Status:            "processing",
		State:             "processing",
		GrandTotal:        decimal.RequireFromString("99.90"),
		CurrencyCode:      "EUR",
		CustomerFirstname: "Ana",
		CustomerLastname:  "Silva",
		Items:             []magentodomain.OrderItem{{SKU: "A"}, {SKU: "B"}},
	}, nil)

	status, err := service.GetOrderStatus(context.Background(), " 000000042 ")
	require.NoError(t, err)

	assert.Equal(t, 7, status.OrderID)
	assert.Equal(t, "processing", status.Status)
	assert.Equal(t, 99.9, status.GrandTotal)
	assert.Equal(t, "Ana Silva", status.CustomerName)
	assert.Equal(t, 2, status.ItemCount)

	magentoService.EXPECT().GetOrder(gomock.Any(), "1").Return(nil, magento.ErrOrderNotFound)

	_, err = service.GetOrderStatus(context.Background(), "1")
	assert.True(t, errors.Is(err, magento.ErrOrderNotFound))
}

func TestLookupService_GetCustomerOrderedProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, magentoService := newTestLookupService(ctrl)

	email := "ana@example.com"

	magentoService.EXPECT().FindCustomerByEmail(gomock.Any(), email).
		Return(&magentodomain.Customer{ID: 3, Email: email, Firstname: "Ana", Lastname: "Silva"}, nil)

	magentoService.EXPECT().FetchAllOrders(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, groups []magentodomain.FilterGroup) ([]magentodomain.Order, error) {
			require.Len(t, groups, 1)
			assert.Equal(t, magentodomain.Filter{Field: "customer_email", Value: email, ConditionType: magentodomain.ConditionEq}, groups[0].Filters[0])

			return []magentodomain.Order{
				{EntityID: 1, IncrementID: "001", Items: []magentodomain.OrderItem{{SKU: "A", QtyOrdered: decimal.NewFromInt(1)}, {SKU: "B"}}},
				{EntityID: 2, IncrementID: "002", Items: []magentodomain.OrderItem{{SKU: "A"}, {SKU: "", Name: "Frete"}}},
			}, nil
		})

	magentoService.EXPECT().GetProductsBySKU(gomock.Any(), []string{"A", "B"}).Return([]magento.Lookup[magentodomain.Product]{
		{Key: "A", Value: &magentodomain.Product{ID: 10, SKU: "A", Name: "Produto A"}},
		{Key: "B", Err: magento.ErrProductNotFound},
	})

	result, err := service.GetCustomerOrderedProducts(context.Background(), email)
	require.NoError(t, err)

	assert.Equal(t, domain.CustomerInfo{ID: 3, Email: email, Firstname: "Ana", Lastname: "Silva"}, result.Customer)
	require.Len(t, result.Orders, 2)

	first := result.Orders[0]
	assert.Equal(t, 1.0, first.Items[0].QtyOrdered)
	details, ok := first.Items[0].ProductDetails.(*domain.ProductDetails)
	require.True(t, ok)
	assert.Equal(t, "Produto A", details.Name)
	assert.Equal(t, domain.LookupFailure{SKU: "B", Error: "product not found"}, first.Items[1].ProductDetails)

	assert.Equal(t, map[string]any{}, result.Orders[1].Items[1].ProductDetails)
}

func TestLookupService_GetCustomerOrderedProducts_CustomerNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, magentoService := newTestLookupService(ctrl)

	magentoService.EXPECT().FindCustomerByEmail(gomock.Any(), "ghost@example.com").Return(nil, magento.ErrCustomerNotFound)

	result, err := service.GetCustomerOrderedProducts(context.Background(), "ghost@example.com")
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, magento.ErrCustomerNotFound))
}
