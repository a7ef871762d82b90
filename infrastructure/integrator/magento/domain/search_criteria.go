package magentodomain

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/vfg2006/magento-reporting-api/pkg/utils"
)

type ConditionType string

const (
	ConditionEq      ConditionType = "eq"
	ConditionNeq     ConditionType = "neq"
	ConditionGt      ConditionType = "gt"
	ConditionGteq    ConditionType = "gteq"
	ConditionLt      ConditionType = "lt"
	ConditionLteq    ConditionType = "lteq"
	ConditionLike    ConditionType = "like"
	ConditionNlike   ConditionType = "nlike"
	ConditionIn      ConditionType = "in"
	ConditionNin     ConditionType = "nin"
	ConditionNull    ConditionType = "null"
	ConditionNotNull ConditionType = "notnull"
	ConditionFrom    ConditionType = "from"
	ConditionTo      ConditionType = "to"
	ConditionFinset  ConditionType = "finset"
)

var validConditions = map[ConditionType]bool{
	ConditionEq: true, ConditionNeq: true, ConditionGt: true, ConditionGteq: true,
	ConditionLt: true, ConditionLteq: true, ConditionLike: true, ConditionNlike: true,
	ConditionIn: true, ConditionNin: true, ConditionNull: true, ConditionNotNull: true,
	ConditionFrom: true, ConditionTo: true, ConditionFinset: true,
}

func (c ConditionType) Valid() bool {
	return validConditions[c]
}

type Filter struct {
	Field         string        `json:"field"`
	Value         string        `json:"value"`
	ConditionType ConditionType `json:"condition_type,omitempty"`
}

// FilterGroup é uma disjunção (OR) de filtros. Grupos diferentes são combinados com AND.
type FilterGroup struct {
	Filters []Filter `json:"filters"`
}

type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

type SortOrder struct {
	Field     string
	Direction SortDirection
}

// SearchCriteria monta o parâmetro searchCriteria do Magento.
// Os índices dos grupos são sempre a posição no slice, então permanecem densos e crescentes.
type SearchCriteria struct {
	FilterGroups []FilterGroup
	SortOrders   []SortOrder
	PageSize     int
	CurrentPage  int
}

func NewSearchCriteria(groups ...FilterGroup) *SearchCriteria {
	return &SearchCriteria{FilterGroups: groups}
}

func (s *SearchCriteria) AddFilterGroup(filters ...Filter) *SearchCriteria {
	s.FilterGroups = append(s.FilterGroups, FilterGroup{Filters: filters})
	return s
}

func (s *SearchCriteria) AddFilterGroups(groups ...FilterGroup) *SearchCriteria {
	s.FilterGroups = append(s.FilterGroups, groups...)
	return s
}

// Where adiciona um grupo com um único filtro
func (s *SearchCriteria) Where(field string, condition ConditionType, value string) *SearchCriteria {
	return s.AddFilterGroup(Filter{Field: field, Value: value, ConditionType: condition})
}

func (s *SearchCriteria) WhereEq(field, value string) *SearchCriteria {
	return s.Where(field, ConditionEq, value)
}

func (s *SearchCriteria) SortBy(field string, direction SortDirection) *SearchCriteria {
	s.SortOrders = append(s.SortOrders, SortOrder{Field: field, Direction: direction})
	return s
}

func (s *SearchCriteria) Paginate(pageSize, currentPage int) *SearchCriteria {
	s.PageSize = pageSize
	s.CurrentPage = currentPage
	return s
}

// WithPage devolve uma cópia apontando para outra página, sem alterar o original
func (s *SearchCriteria) WithPage(pageSize, currentPage int) *SearchCriteria {
	return s.Clone().Paginate(pageSize, currentPage)
}

func (s *SearchCriteria) Clone() *SearchCriteria {
	clone := &SearchCriteria{
		FilterGroups: make([]FilterGroup, len(s.FilterGroups)),
		SortOrders:   append([]SortOrder(nil), s.SortOrders...),
		PageSize:     s.PageSize,
		CurrentPage:  s.CurrentPage,
	}
	for i, group := range s.FilterGroups {
		clone.FilterGroups[i] = FilterGroup{Filters: append([]Filter(nil), group.Filters...)}
	}
	return clone
}

// Values serializa para searchCriteria[filter_groups][i][filters][j][field|value|condition_type],
// searchCriteria[sortOrders][k][field|direction], searchCriteria[pageSize] e searchCriteria[currentPage]
func (s *SearchCriteria) Values() url.Values {
	values := url.Values{}

	for i, group := range s.FilterGroups {
		for j, filter := range group.Filters {
			prefix := fmt.Sprintf("searchCriteria[filter_groups][%d][filters][%d]", i, j)
			values.Set(prefix+"[field]", filter.Field)
			values.Set(prefix+"[value]", filter.Value)

			condition := filter.ConditionType
			if condition == "" {
				condition = ConditionEq
			}
			values.Set(prefix+"[condition_type]", string(condition))
		}
	}

	for k, order := range s.SortOrders {
		prefix := fmt.Sprintf("searchCriteria[sortOrders][%d]", k)
		values.Set(prefix+"[field]", order.Field)

		direction := order.Direction
		if direction == "" {
			direction = SortAsc
		}
		values.Set(prefix+"[direction]", string(direction))
	}

	if s.PageSize > 0 {
		values.Set("searchCriteria[pageSize]", strconv.Itoa(s.PageSize))
	}
	if s.CurrentPage > 0 {
		values.Set("searchCriteria[currentPage]", strconv.Itoa(s.CurrentPage))
	}

	// Sem nenhum critério o Magento exige o parâmetro vazio
	if len(values) == 0 {
		values.Set("searchCriteria", "")
	}

	return values
}

func (s *SearchCriteria) Encode() string {
	return s.Values().Encode()
}

// BuildDateRangeFilter gera exatamente dois grupos: field >= start e field <= end,
// formatados em yyyy-MM-dd HH:mm:ss no fuso das datas recebidas
func BuildDateRangeFilter(field string, start, end time.Time) []FilterGroup {
	return []FilterGroup{
		{Filters: []Filter{{Field: field, Value: utils.FormatMagentoDateTime(start), ConditionType: ConditionGteq}}},
		{Filters: []Filter{{Field: field, Value: utils.FormatMagentoDateTime(end), ConditionType: ConditionLteq}}},
	}
}
