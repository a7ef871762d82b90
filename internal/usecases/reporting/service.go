package reporting

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/magento-reporting-api/infrastructure/integrator/magento"
	magentodomain "github.com/vfg2006/magento-reporting-api/infrastructure/integrator/magento/domain"
	"github.com/vfg2006/magento-reporting-api/internal/config"
	"github.com/vfg2006/magento-reporting-api/internal/domain"
)

var ErrCountryRequired = errors.New("country is required")

const createdAtField = "created_at"

// ReportParams são os argumentos comuns dos relatórios. IncludeTax nulo equivale a true.
type ReportParams struct {
	DateRange  string
	Status     string
	Country    string
	IncludeTax *bool
}

func (p ReportParams) includeTax() bool {
	return p.IncludeTax == nil || *p.IncludeTax
}

type Reporter interface {
	GetRevenue(ctx context.Context, params ReportParams) (*domain.RevenueReport, error)
	GetRevenueByCountry(ctx context.Context, params ReportParams) (*domain.RevenueReport, error)
	GetOrderCount(ctx context.Context, params ReportParams) (*domain.OrderCountReport, error)
	GetProductSales(ctx context.Context, params ReportParams) (*domain.ProductSalesReport, error)
}

type ReportingService struct {
	cfg            *config.Config
	magentoService magento.MagentoIntegrator
	now            func() time.Time
}

func NewReportingService(cfg *config.Config, magentoService magento.MagentoIntegrator) Reporter {
	return &ReportingService{
		cfg:            cfg,
		magentoService: magentoService,
		now:            time.Now,
	}
}

func (s *ReportingService) location() *time.Location {
	if s.cfg.App.Location != nil {
		return s.cfg.App.Location
	}
	return time.Local
}

// resolve converte a expressão de data e monta os grupos de filtro: created_at >= início,
// created_at <= fim e, se houver, status = valor no índice seguinte ("All" não filtra)
func (s *ReportingService) resolve(params ReportParams) (domain.DateRange, []magentodomain.FilterGroup, error) {
	dateRange, err := domain.ResolveDateRange(params.DateRange, s.now().In(s.location()))
	if err != nil {
		return domain.DateRange{}, nil, err
	}

	groups := magentodomain.BuildDateRangeFilter(createdAtField, dateRange.Start, dateRange.End)

	if status := strings.TrimSpace(params.Status); status != "" && !strings.EqualFold(status, domain.AllFilter) {
		groups = append(groups, magentodomain.FilterGroup{
			Filters: []magentodomain.Filter{{Field: "status", Value: status, ConditionType: magentodomain.ConditionEq}},
		})
	}

	return dateRange, groups, nil
}

func (s *ReportingService) GetRevenue(ctx context.Context, params ReportParams) (*domain.RevenueReport, error) {
	dateRange, groups, err := s.resolve(params)
	if err != nil {
		return nil, err
	}

	orders, err := s.magentoService.FetchAllOrders(ctx, groups)
	if err != nil {
		return nil, err
	}

	includeTax := params.includeTax()

	query := domain.NewReportQuery(dateRange, params.Status)
	query.IncludeTax = &includeTax

	logrus.WithFields(logrus.Fields{
		"date_range": dateRange.Label,
		"orders":     len(orders),
	}).Debug("reporting: revenue calculated")

	return &domain.RevenueReport{
		Query:  query,
		Result: SumRevenue(orders, includeTax, s.cfg.Store.Currency),
	}, nil
}

func (s *ReportingService) GetRevenueByCountry(ctx context.Context, params ReportParams) (*domain.RevenueReport, error) {
	if strings.TrimSpace(params.Country) == "" {
		return nil, ErrCountryRequired
	}

	dateRange, groups, err := s.resolve(params)
	if err != nil {
		return nil, err
	}

	orders, err := s.magentoService.FetchAllOrders(ctx, groups)
	if err != nil {
		return nil, err
	}

	normalizedCountry := domain.NormalizeCountry(params.Country)
	filtered := FilterByCountry(orders, normalizedCountry)
	includeTax := params.includeTax()

	query := domain.NewReportQuery(dateRange, params.Status)
	query.Country = params.Country
	query.NormalizedCountry = normalizedCountry
	query.IncludeTax = &includeTax

	logrus.WithFields(logrus.Fields{
		"date_range": dateRange.Label,
		"country":    normalizedCountry,
		"orders":     len(orders),
		"matched":    len(filtered),
	}).Debug("reporting: revenue by country calculated")

	return &domain.RevenueReport{
		Query:  query,
		Result: SumRevenue(filtered, includeTax, s.cfg.Store.Currency),
	}, nil
}

func (s *ReportingService) GetOrderCount(ctx context.Context, params ReportParams) (*domain.OrderCountReport, error) {
	dateRange, groups, err := s.resolve(params)
	if err != nil {
		return nil, err
	}

	count, err := s.magentoService.CountOrders(ctx, groups)
	if err != nil {
		return nil, err
	}

	return &domain.OrderCountReport{
		Query:  domain.NewReportQuery(dateRange, params.Status),
		Result: domain.OrderCountSummary{OrderCount: count},
	}, nil
}

func (s *ReportingService) GetProductSales(ctx context.Context, params ReportParams) (*domain.ProductSalesReport, error) {
	dateRange, groups, err := s.resolve(params)
	if err != nil {
		return nil, err
	}

	orders, err := s.magentoService.FetchAllOrders(ctx, groups)
	if err != nil {
		return nil, err
	}

	query := domain.NewReportQuery(dateRange, params.Status)
	query.Country = domain.AllFilter

	if country := strings.TrimSpace(params.Country); country != "" {
		query.Country = country
		orders = FilterByCountry(orders, domain.NormalizeCountry(country))
	}

	return &domain.ProductSalesReport{
		Query:  query,
		Result: AggregateProductSales(orders),
	}, nil
}
