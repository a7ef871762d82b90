package magento

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	magentodomain "github.com/vfg2006/magento-reporting-api/infrastructure/integrator/magento/domain"
	"github.com/vfg2006/magento-reporting-api/pkg/metrics"
)

const DefaultPageSize = 100

// PageFetcher busca uma única página com os critérios recebidos
type PageFetcher[T any] func(ctx context.Context, criteria *magentodomain.SearchCriteria) (*magentodomain.SearchResult[T], error)

type PaginationOptions struct {
	PageSize int
	// MaxPages limita o número de requisições; zero desabilita o limite
	MaxPages int
}

// FetchAllPages percorre as páginas em sequência a partir da página 1 e acumula os itens.
// Para quando uma página vem com menos de PageSize itens ou quando o total_count (se informado) é alcançado.
// Qualquer falha descarta o que já foi buscado.
func FetchAllPages[T any](ctx context.Context, fetch PageFetcher[T], base *magentodomain.SearchCriteria, opts PaginationOptions) ([]T, error) {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	if base == nil {
		base = magentodomain.NewSearchCriteria()
	}

	items := make([]T, 0)
	page := 1
	for ; ; page++ {
		if opts.MaxPages > 0 && page > opts.MaxPages {
			logrus.WithFields(logrus.Fields{
				"magento_max_pages": opts.MaxPages,
				"magento_page_size": pageSize,
			}).Error("magento: pagination limit exceeded")

			return nil, fmt.Errorf("%w: more than %d pages of %d items", ErrPaginationLimitExceeded, opts.MaxPages, pageSize)
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result, err := fetch(ctx, base.WithPage(pageSize, page))
		if err != nil {
			return nil, errors.Wrapf(err, "magento: failed to fetch page %d", page)
		}

		items = append(items, result.Items...)

		if len(result.Items) < pageSize {
			break
		}

		if result.TotalCount != nil && len(items) >= *result.TotalCount {
			break
		}
	}

	metrics.MagentoPagesFetched.Observe(float64(page))

	logrus.WithFields(logrus.Fields{
		"magento_pages": page,
		"magento_items": len(items),
	}).Debug("magento: pagination finished")

	return items, nil
}
