package tooling

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/magento-reporting-api/infrastructure/integrator/magento"
	magentodomain "github.com/vfg2006/magento-reporting-api/infrastructure/integrator/magento/domain"
	"github.com/vfg2006/magento-reporting-api/internal/domain"
	"github.com/vfg2006/magento-reporting-api/internal/usecases/lookup"
	lookupMocks "github.com/vfg2006/magento-reporting-api/internal/usecases/lookup/mocks"
	"github.com/vfg2006/magento-reporting-api/internal/usecases/reporting"
	reportingMocks "github.com/vfg2006/magento-reporting-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/magento-reporting-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newTestDispatcher(ctrl *gomock.Controller) (Dispatcher, *reportingMocks.MockReporter, *lookupMocks.MockLookuper) {
	reporter := reportingMocks.NewMockReporter(ctrl)
	lookuper := lookupMocks.NewMockLookuper(ctrl)
	return NewToolDispatcher(reporter, lookuper), reporter, lookuper
}

func boolPtr(v bool) *bool {
	return &v
}

func TestToolDispatcher_ListTools(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatcher, _, _ := newTestDispatcher(ctrl)

	tools := dispatcher.ListTools()
	require.Len(t, tools, 14)

	names := make([]string, 0, len(tools))
	for _, descriptor := range tools {
		names = append(names, descriptor.Name)
		assert.NotEmpty(t, descriptor.Description, descriptor.Name)
	}

	assert.Equal(t, "get_product_by_sku", names[0])
	assert.Contains(t, names, "get_customer_ordered_products_by_email")
	assert.Contains(t, names, "get_revenue_by_country")
	assert.Contains(t, names, "advanced_product_search")
}

func TestToolDispatcher_Call(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		tool     string
		args     map[string]any
		setup    func(reporter *reportingMocks.MockReporter, lookuper *lookupMocks.MockLookuper)
		validate func(t *testing.T, result *domain.ToolResult, err error)
	}{
		{
			name: "produto por sku serializado com indentação",
			tool: "get_product_by_sku",
			args: map[string]any{"sku": "MJ01"},
			setup: func(_ *reportingMocks.MockReporter, lookuper *lookupMocks.MockLookuper) {
				lookuper.EXPECT().GetProductBySKU(gomock.Any(), "MJ01").Return(&domain.ProductDetails{ID: 1, SKU: "MJ01", Name: "Jacket"}, nil)
			},
			validate: func(t *testing.T, result *domain.ToolResult, err error) {
				require.NoError(t, err)
				require.Len(t, result.Content, 1)
				assert.Equal(t, domain.ContentTypeText, result.Content[0].Type)
				assert.False(t, result.IsError)
				assert.Contains(t, result.Content[0].Text, "\n  \"sku\": \"MJ01\"")
			},
		},
		{
			name:  "sku ausente é argumento inválido",
			tool:  "get_product_by_sku",
			args:  map[string]any{},
			setup: func(_ *reportingMocks.MockReporter, _ *lookupMocks.MockLookuper) {},
			validate: func(t *testing.T, result *domain.ToolResult, err error) {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidArguments))
				assert.True(t, result.IsError)
				assert.Equal(t, "Error: invalid arguments: sku is required", result.Content[0].Text)

				var toolErr *ToolError
				require.True(t, errors.As(err, &toolErr))
				assert.Equal(t, apiErrors.ErrInvalidRequest, toolErr.Code)
				assert.Equal(t, "get_product_by_sku", toolErr.Tool)
			},
		},
		{
			name:  "ferramenta desconhecida",
			tool:  "drop_database",
			args:  nil,
			setup: func(_ *reportingMocks.MockReporter, _ *lookupMocks.MockLookuper) {},
			validate: func(t *testing.T, result *domain.ToolResult, err error) {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownOperation))
				assert.True(t, result.IsError)
				assert.Equal(t, "Error: unknown operation: drop_database", result.Content[0].Text)
			},
		},
		{
			name: "status do pedido aceita orderId",
			tool: "get_order_status",
			args: map[string]any{"orderId": 42},
			setup: func(_ *reportingMocks.MockReporter, lookuper *lookupMocks.MockLookuper) {
				lookuper.EXPECT().GetOrderStatus(gomock.Any(), "42").Return(&domain.OrderStatus{OrderID: 42, Status: "processing"}, nil)
			},
			validate: func(t *testing.T, result *domain.ToolResult, err error) {
				require.NoError(t, err)
				assert.Contains(t, result.Content[0].Text, "processing")
			},
		},
		{
			name: "pedido não encontrado",
			tool: "get_order_status",
			args: map[string]any{"order_id": "000000999"},
			setup: func(_ *reportingMocks.MockReporter, lookuper *lookupMocks.MockLookuper) {
				lookuper.EXPECT().GetOrderStatus(gomock.Any(), "000000999").Return(nil, magento.ErrOrderNotFound)
			},
			validate: func(t *testing.T, result *domain.ToolResult, err error) {
				var toolErr *ToolError
				require.True(t, errors.As(err, &toolErr))
				assert.Equal(t, apiErrors.ErrOrderNotFound, toolErr.Code)
				assert.Equal(t, "Error: order not found", result.Content[0].Text)
			},
		},
		{
			name:  "email inválido",
			tool:  "get_customer_ordered_products_by_email",
			args:  map[string]any{"email": "not-an-email"},
			setup: func(_ *reportingMocks.MockReporter, _ *lookupMocks.MockLookuper) {},
			validate: func(t *testing.T, result *domain.ToolResult, err error) {
				assert.True(t, errors.Is(err, ErrInvalidArguments))
				assert.Equal(t, "Error: invalid arguments: email must be a valid email address", result.Content[0].Text)
			},
		},
		{
			name: "receita com include_tax textual",
			tool: "get_revenue",
			args: map[string]any{"date_range": "last month", "include_tax": "false", "status": "complete"},
			setup: func(reporter *reportingMocks.MockReporter, _ *lookupMocks.MockLookuper) {
				reporter.EXPECT().GetRevenue(gomock.Any(), reporting.ReportParams{
					DateRange:  "last month",
					Status:     "complete",
					IncludeTax: boolPtr(false),
				}).Return(&domain.RevenueReport{Result: domain.RevenueSummary{Revenue: 25, Currency: "EUR", OrderCount: 1}}, nil)
			},
			validate: func(t *testing.T, result *domain.ToolResult, err error) {
				require.NoError(t, err)
				assert.Contains(t, result.Content[0].Text, "\"currency\": \"EUR\"")
			},
		},
		{
			name: "expressão de data inválida",
			tool: "get_order_count",
			args: map[string]any{"date_range": "next week"},
			setup: func(reporter *reportingMocks.MockReporter, _ *lookupMocks.MockLookuper) {
				reporter.EXPECT().GetOrderCount(gomock.Any(), reporting.ReportParams{DateRange: "next week"}).
					Return(nil, fmt.Errorf("%w: next week", domain.ErrInvalidDateExpression))
			},
			validate: func(t *testing.T, result *domain.ToolResult, err error) {
				var toolErr *ToolError
				require.True(t, errors.As(err, &toolErr))
				assert.Equal(t, apiErrors.ErrInvalidDateExpression, toolErr.Code)
				assert.Equal(t, "Error: invalid date expression: next week", result.Content[0].Text)
			},
		},
		{
			name:  "receita por país exige country",
			tool:  "get_revenue_by_country",
			args:  map[string]any{"date_range": "today"},
			setup: func(_ *reportingMocks.MockReporter, _ *lookupMocks.MockLookuper) {},
			validate: func(t *testing.T, result *domain.ToolResult, err error) {
				assert.True(t, errors.Is(err, ErrInvalidArguments))
				assert.Equal(t, "Error: invalid arguments: country is required", result.Content[0].Text)
			},
		},
		{
			name: "falha remota vira erro de serviço externo",
			tool: "get_product_sales",
			args: map[string]any{"date_range": "today", "country": "Netherlands"},
			setup: func(reporter *reportingMocks.MockReporter, _ *lookupMocks.MockLookuper) {
				reporter.EXPECT().GetProductSales(gomock.Any(), reporting.ReportParams{DateRange: "today", Country: "Netherlands"}).
					Return(nil, &magentodomain.RemoteError{Method: "GET", Path: "/orders", StatusCode: 500, Message: "boom"})
			},
			validate: func(t *testing.T, result *domain.ToolResult, err error) {
				var toolErr *ToolError
				require.True(t, errors.As(err, &toolErr))
				assert.Equal(t, apiErrors.ErrExternalService, toolErr.Code)
				assert.True(t, result.IsError)
			},
		},
		{
			name: "busca avançada com valores padrão",
			tool: "advanced_product_search",
			args: map[string]any{"field": "price", "value": 100, "condition_type": "gt"},
			setup: func(_ *reportingMocks.MockReporter, lookuper *lookupMocks.MockLookuper) {
				lookuper.EXPECT().SearchProducts(gomock.Any(), lookup.SearchParams{
					FilterGroups: []magentodomain.FilterGroup{
						{Filters: []magentodomain.Filter{{Field: "price", Value: "100", ConditionType: magentodomain.ConditionGt}}},
					},
					SortField:     "entity_id",
					SortDirection: "DESC",
				}).Return(&domain.ProductSearchResult{Items: []domain.ProductSummary{}}, nil)
			},
			validate: func(t *testing.T, result *domain.ToolResult, err error) {
				require.NoError(t, err)
				assert.False(t, result.IsError)
			},
		},
		{
			name:  "condição desconhecida rejeitada",
			tool:  "advanced_product_search",
			args:  map[string]any{"field": "price", "value": "1", "condition_type": "between"},
			setup: func(_ *reportingMocks.MockReporter, _ *lookupMocks.MockLookuper) {},
			validate: func(t *testing.T, result *domain.ToolResult, err error) {
				assert.True(t, errors.Is(err, ErrInvalidArguments))
				assert.Contains(t, result.Content[0].Text, "condition_type must be one of")
			},
		},
		{
			name:  "busca sem query nem filtros",
			tool:  "search_products",
			args:  map[string]any{"page_size": 5},
			setup: func(_ *reportingMocks.MockReporter, _ *lookupMocks.MockLookuper) {},
			validate: func(t *testing.T, result *domain.ToolResult, err error) {
				assert.True(t, errors.Is(err, ErrInvalidArguments))
				assert.Equal(t, "Error: invalid arguments: query is required", result.Content[0].Text)
			},
		},
		{
			name: "busca com filterGroups em camelCase",
			tool: "search_products",
			args: map[string]any{
				"filterGroups": []any{
					map[string]any{"filters": []any{map[string]any{"field": "sku", "value": "MJ%"}}},
				},
				"page_size": "20",
			},
			setup: func(_ *reportingMocks.MockReporter, lookuper *lookupMocks.MockLookuper) {
				lookuper.EXPECT().SearchProducts(gomock.Any(), lookup.SearchParams{
					FilterGroups: []magentodomain.FilterGroup{
						{Filters: []magentodomain.Filter{{Field: "sku", Value: "MJ%", ConditionType: magentodomain.ConditionEq}}},
					},
					PageSize: 20,
				}).Return(&domain.ProductSearchResult{}, nil)
			},
			validate: func(t *testing.T, result *domain.ToolResult, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "produtos relacionados com falhas parciais",
			tool: "get_related_products",
			args: map[string]any{"sku": "MJ01"},
			setup: func(_ *reportingMocks.MockReporter, lookuper *lookupMocks.MockLookuper) {
				lookuper.EXPECT().GetRelatedProducts(gomock.Any(), "MJ01").Return([]any{
					domain.ProductDetails{SKU: "MJ02"},
					domain.LookupFailure{SKU: "MJ03", Error: "product not found"},
				}, nil)
			},
			validate: func(t *testing.T, result *domain.ToolResult, err error) {
				require.NoError(t, err)
				assert.Contains(t, result.Content[0].Text, "MJ02")
				assert.Contains(t, result.Content[0].Text, "product not found")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dispatcher, reporter, lookuper := newTestDispatcher(ctrl)
			tt.setup(reporter, lookuper)

			result, err := dispatcher.Call(context.Background(), tt.tool, tt.args)
			require.NotNil(t, result)
			tt.validate(t, result, err)
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{name: "produto", err: fmt.Errorf("%w: MJ01", magento.ErrProductNotFound), code: apiErrors.ErrProductNotFound},
		{name: "cliente", err: magento.ErrCustomerNotFound, code: apiErrors.ErrCustomerNotFound},
		{name: "país obrigatório", err: reporting.ErrCountryRequired, code: apiErrors.ErrInvalidRequest},
		{name: "remoto 404 sem sentinela de domínio", err: &magentodomain.RemoteError{Method: "GET", Path: "/x", StatusCode: 404}, code: apiErrors.ErrExternalService},
		{name: "limite de paginação", err: fmt.Errorf("wrap: %w", magento.ErrPaginationLimitExceeded), code: apiErrors.ErrPaginationLimitExceeded},
		{name: "timeout", err: context.DeadlineExceeded, code: apiErrors.ErrCommunication},
		{name: "desconhecido", err: errors.New("boom"), code: apiErrors.ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, classify(tt.err))
		})
	}
}
