package tooling

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	magentodomain "github.com/vfg2006/magento-reporting-api/infrastructure/integrator/magento/domain"
	"github.com/vfg2006/magento-reporting-api/internal/usecases/lookup"
	"github.com/vfg2006/magento-reporting-api/internal/usecases/reporting"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Mensagens usam o nome do argumento, não o nome do campo Go
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// decodeArguments converte o mapa de argumentos no struct de destino e valida as tags.
// Números e booleanos enviados como texto são aceitos.
func decodeArguments(args map[string]any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           target,
	})
	if err != nil {
		return fmt.Errorf("internal decoder error: %w", err)
	}

	if err := decoder.Decode(args); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidArguments, err.Error())
	}

	if err := validate.Struct(target); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return fmt.Errorf("%w: %s", ErrInvalidArguments, describe(validationErrors))
		}
		return fmt.Errorf("internal validator error: %w", err)
	}

	return nil
}

func describe(validationErrors validator.ValidationErrors) string {
	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		field := fieldErr.Field()

		switch fieldErr.Tag() {
		case "required", "required_without", "required_without_all":
			messages = append(messages, field+" is required")
		case "email":
			messages = append(messages, field+" must be a valid email address")
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s must be one of [%s]", field, fieldErr.Param()))
		case "min":
			messages = append(messages, fmt.Sprintf("%s must be at least %s", field, fieldErr.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s failed %s validation", field, fieldErr.Tag()))
		}
	}
	return strings.Join(messages, "; ")
}

type skuArguments struct {
	SKU string `mapstructure:"sku" validate:"required"`
}

type productIDArguments struct {
	ID string `mapstructure:"id" validate:"required"`
}

type orderStatusArguments struct {
	OrderID      string `mapstructure:"order_id" validate:"required_without=OrderIDAlias"`
	OrderIDAlias string `mapstructure:"orderId"`
}

func (a orderStatusArguments) id() string {
	if a.OrderID != "" {
		return a.OrderID
	}
	return a.OrderIDAlias
}

type emailArguments struct {
	Email string `mapstructure:"email" validate:"required,email"`
}

type filterArgument struct {
	Field         string `mapstructure:"field" validate:"required"`
	Value         string `mapstructure:"value"`
	ConditionType string `mapstructure:"condition_type" validate:"omitempty,oneof=eq neq gt gteq lt lteq like nlike in nin null notnull from to finset"`
}

type filterGroupArgument struct {
	Filters []filterArgument `mapstructure:"filters" validate:"required,min=1,dive"`
}

type searchArguments struct {
	Query             string                `mapstructure:"query" validate:"required_without_all=FilterGroups FilterGroupsAlias"`
	FilterGroups      []filterGroupArgument `mapstructure:"filter_groups" validate:"omitempty,dive"`
	FilterGroupsAlias []filterGroupArgument `mapstructure:"filterGroups" validate:"omitempty,dive"`
	PageSize          int                   `mapstructure:"page_size" validate:"omitempty,min=1"`
	CurrentPage       int                   `mapstructure:"current_page" validate:"omitempty,min=1"`
	SortField         string                `mapstructure:"sort_field"`
	SortDirection     string                `mapstructure:"sort_direction" validate:"omitempty,oneof=ASC DESC asc desc"`
}

func (a searchArguments) params() lookup.SearchParams {
	filterGroups := a.FilterGroups
	if len(filterGroups) == 0 {
		filterGroups = a.FilterGroupsAlias
	}

	groups := make([]magentodomain.FilterGroup, 0, len(filterGroups))
	for _, group := range filterGroups {
		filters := make([]magentodomain.Filter, 0, len(group.Filters))
		for _, filter := range group.Filters {
			filters = append(filters, toFilter(filter.Field, filter.Value, filter.ConditionType))
		}
		groups = append(groups, magentodomain.FilterGroup{Filters: filters})
	}

	return lookup.SearchParams{
		Query:         a.Query,
		FilterGroups:  groups,
		PageSize:      a.PageSize,
		CurrentPage:   a.CurrentPage,
		SortField:     a.SortField,
		SortDirection: a.SortDirection,
	}
}

type advancedSearchArguments struct {
	Field         string `mapstructure:"field" validate:"required"`
	Value         string `mapstructure:"value" validate:"required"`
	ConditionType string `mapstructure:"condition_type" validate:"omitempty,oneof=eq neq gt gteq lt lteq like nlike in nin null notnull from to finset"`
	PageSize      int    `mapstructure:"page_size" validate:"omitempty,min=1"`
	CurrentPage   int    `mapstructure:"current_page" validate:"omitempty,min=1"`
	SortField     string `mapstructure:"sort_field"`
	SortDirection string `mapstructure:"sort_direction" validate:"omitempty,oneof=ASC DESC asc desc"`
}

func (a advancedSearchArguments) params() lookup.SearchParams {
	sortField := a.SortField
	if sortField == "" {
		sortField = lookup.DefaultSortField
	}

	sortDirection := a.SortDirection
	if sortDirection == "" {
		sortDirection = string(magentodomain.SortDesc)
	}

	return lookup.SearchParams{
		FilterGroups: []magentodomain.FilterGroup{
			{Filters: []magentodomain.Filter{toFilter(a.Field, a.Value, a.ConditionType)}},
		},
		PageSize:      a.PageSize,
		CurrentPage:   a.CurrentPage,
		SortField:     sortField,
		SortDirection: sortDirection,
	}
}

func toFilter(field, value, condition string) magentodomain.Filter {
	conditionType := magentodomain.ConditionType(condition)
	if conditionType == "" {
		conditionType = magentodomain.ConditionEq
	}
	return magentodomain.Filter{Field: field, Value: value, ConditionType: conditionType}
}

type reportArguments struct {
	DateRange  string `mapstructure:"date_range" validate:"required"`
	Status     string `mapstructure:"status"`
	Country    string `mapstructure:"country"`
	IncludeTax *bool  `mapstructure:"include_tax"`
}

type countryReportArguments struct {
	DateRange  string `mapstructure:"date_range" validate:"required"`
	Country    string `mapstructure:"country" validate:"required"`
	Status     string `mapstructure:"status"`
	IncludeTax *bool  `mapstructure:"include_tax"`
}

func (a reportArguments) params() reporting.ReportParams {
	return reporting.ReportParams{
		DateRange:  a.DateRange,
		Status:     a.Status,
		Country:    a.Country,
		IncludeTax: a.IncludeTax,
	}
}

func (a countryReportArguments) params() reporting.ReportParams {
	return reporting.ReportParams{
		DateRange:  a.DateRange,
		Status:     a.Status,
		Country:    a.Country,
		IncludeTax: a.IncludeTax,
	}
}
