package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	magentodomain "github.com/vfg2006/magento-reporting-api/infrastructure/integrator/magento/domain"
	"github.com/vfg2006/magento-reporting-api/infrastructure/integrator/magento/mocks"
	"github.com/vfg2006/magento-reporting-api/internal/config"
	"github.com/vfg2006/magento-reporting-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestReportingService(ctrl *gomock.Controller) (*ReportingService, *mocks.MockMagentoIntegrator) {
	magentoService := mocks.NewMockMagentoIntegrator(ctrl)

	service := &ReportingService{
		cfg: &config.Config{
			App:   config.App{Location: time.UTC},
			Store: config.Store{Currency: "EUR"},
		},
		magentoService: magentoService,
		now: func() time.Time {
			return time.Date(2026, time.October, 14, 15, 30, 0, 0, time.UTC)
		},
	}

	return service, magentoService
}

func boolPtr(v bool) *bool {
	return &v
}

func TestReportingService_GetRevenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, magentoService := newTestReportingService(ctrl)

	magentoService.EXPECT().FetchAllOrders(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, groups []magentodomain.FilterGroup) ([]magentodomain.Order, error) {
			require.Len(t, groups, 3)
			assert.Equal(t, magentodomain.Filter{Field: "created_at", Value: "2026-10-05 00:00:00", ConditionType: magentodomain.ConditionGteq}, groups[0].Filters[0])
			assert.Equal(t, magentodomain.Filter{Field: "created_at", Value: "2026-10-11 23:59:59", ConditionType: magentodomain.ConditionLteq}, groups[1].Filters[0])
			assert.Equal(t, magentodomain.Filter{Field: "status", Value: "complete", ConditionType: magentodomain.ConditionEq}, groups[2].Filters[0])

			return []magentodomain.Order{
				{GrandTotal: dec("10.005"), TaxAmount: dec("1.00")},
				{GrandTotal: dec("20.00"), TaxAmount: dec("0")},
			}, nil
		})

	report, err := service.GetRevenue(context.Background(), ReportParams{
		DateRange:  "last week",
		Status:     "complete",
		IncludeTax: boolPtr(false),
	})
	require.NoError(t, err)

	assert.Equal(t, "Last week", report.Query.DateRange)
	assert.Equal(t, "complete", report.Query.Status)
	assert.Equal(t, domain.ReportPeriod{StartDate: "2026-10-05", EndDate: "2026-10-11"}, report.Query.Period)
	require.NotNil(t, report.Query.IncludeTax)
	assert.False(t, *report.Query.IncludeTax)

	assert.Equal(t, 29.00, report.Result.Revenue)
	assert.Equal(t, "EUR", report.Result.Currency)
	assert.Equal(t, 2, report.Result.OrderCount)
}

func TestReportingService_GetRevenue_InvalidDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestReportingService(ctrl)

	report, err := service.GetRevenue(context.Background(), ReportParams{DateRange: "next century"})
	assert.Nil(t, report)
	assert.True(t, errors.Is(err, domain.ErrInvalidDateExpression))
}

func TestReportingService_GetRevenue_RemoteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, magentoService := newTestReportingService(ctrl)

	remoteErr := &magentodomain.RemoteError{Method: "GET", Path: "/orders", StatusCode: 500, Message: "boom"}
	magentoService.EXPECT().FetchAllOrders(gomock.Any(), gomock.Any()).Return(nil, remoteErr)

	report, err := service.GetRevenue(context.Background(), ReportParams{DateRange: "today"})
	assert.Nil(t, report)
	assert.True(t, errors.Is(err, magentodomain.ErrRemoteFetch))
}

func TestReportingService_GetRevenueByCountry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, magentoService := newTestReportingService(ctrl)

	nlToUS := orderWithCountries(1, "NL", "US")
	nlToUS.GrandTotal = dec("50")
	nlToUS.TaxAmount = dec("5")

	deToDE := orderWithCountries(2, "DE", "DE")
	deToDE.GrandTotal = dec("80")

	magentoService.EXPECT().FetchAllOrders(gomock.Any(), gomock.Len(2)).
		Return([]magentodomain.Order{nlToUS, deToDE}, nil)

	report, err := service.GetRevenueByCountry(context.Background(), ReportParams{DateRange: "today", Country: "Netherlands"})
	require.NoError(t, err)

	assert.Equal(t, "Netherlands", report.Query.Country)
	assert.Equal(t, "NL", report.Query.NormalizedCountry)
	assert.Equal(t, domain.AllFilter, report.Query.Status)
	assert.True(t, *report.Query.IncludeTax)
	assert.Equal(t, 50.0, report.Result.Revenue)
	assert.Equal(t, 1, report.Result.OrderCount)
	assert.Equal(t, 5.0, report.Result.TaxAmount)

	_, err = service.GetRevenueByCountry(context.Background(), ReportParams{DateRange: "today"})
	assert.True(t, errors.Is(err, ErrCountryRequired))
}

func TestReportingService_GetOrderCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, magentoService := newTestReportingService(ctrl)

	magentoService.EXPECT().CountOrders(gomock.Any(), gomock.Len(2)).Return(42, nil)

	report, err := service.GetOrderCount(context.Background(), ReportParams{DateRange: "2026-01-01 to 2026-01-31"})
	require.NoError(t, err)

	assert.Equal(t, 42, report.Result.OrderCount)
	assert.Equal(t, "2026-01-01 to 2026-01-31", report.Query.DateRange)
	assert.Nil(t, report.Query.IncludeTax)
}

func TestReportingService_GetOrderCount_AllStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, magentoService := newTestReportingService(ctrl)

	magentoService.EXPECT().CountOrders(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, groups []magentodomain.FilterGroup) (int, error) {
			require.Len(t, groups, 2)
			for _, group := range groups {
				assert.Equal(t, createdAtField, group.Filters[0].Field)
			}
			return 7, nil
		})

	report, err := service.GetOrderCount(context.Background(), ReportParams{DateRange: "today", Status: "all"})
	require.NoError(t, err)

	assert.Equal(t, 7, report.Result.OrderCount)
}

func TestReportingService_GetProductSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, magentoService := newTestReportingService(ctrl)

	nl := orderWithCountries(1, "NL", "NL")
	nl.GrandTotal = dec("30")
	nl.Items = []magentodomain.OrderItem{{SKU: "A", Name: "A", QtyOrdered: dec("3"), RowTotal: dec("30")}}

	us := orderWithCountries(2, "US", "US")
	us.GrandTotal = dec("10")
	us.Items = []magentodomain.OrderItem{{SKU: "B", Name: "B", QtyOrdered: dec("1"), RowTotal: dec("10")}}

	magentoService.EXPECT().FetchAllOrders(gomock.Any(), gomock.Any()).
		Return([]magentodomain.Order{nl, us}, nil).Times(2)

	all, err := service.GetProductSales(context.Background(), ReportParams{DateRange: "this month"})
	require.NoError(t, err)
	assert.Equal(t, domain.AllFilter, all.Query.Country)
	assert.Equal(t, 2, all.Result.TotalOrders)
	assert.Equal(t, "2026-10-01", all.Query.Period.StartDate)
	assert.Equal(t, "2026-10-14", all.Query.Period.EndDate)

	holland, err := service.GetProductSales(context.Background(), ReportParams{DateRange: "this month", Country: "holland"})
	require.NoError(t, err)
	assert.Equal(t, "holland", holland.Query.Country)
	assert.Equal(t, 1, holland.Result.TotalOrders)
	require.Len(t, holland.Result.TopProducts, 1)
	assert.Equal(t, "A", holland.Result.TopProducts[0].SKU)
}
