package magentoclient

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	magentodomain "github.com/vfg2006/magento-reporting-api/infrastructure/integrator/magento/domain"
	"github.com/vfg2006/magento-reporting-api/internal/config"
	"github.com/vfg2006/magento-reporting-api/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	SearchOrders(ctx context.Context, criteria *magentodomain.SearchCriteria) (*magentodomain.SearchResult[magentodomain.Order], error)
	GetOrderByID(ctx context.Context, orderID string) (*magentodomain.Order, error)

	GetProductBySKU(ctx context.Context, sku string) (*magentodomain.Product, error)
	SearchProducts(ctx context.Context, criteria *magentodomain.SearchCriteria) (*magentodomain.SearchResult[magentodomain.Product], error)
	GetRelatedProducts(ctx context.Context, sku string) ([]magentodomain.ProductLink, error)
	GetCategory(ctx context.Context, categoryID string) (*magentodomain.Category, error)
	GetStockItem(ctx context.Context, sku string) (*magentodomain.StockItem, error)

	SearchCustomers(ctx context.Context, criteria *magentodomain.SearchCriteria) (*magentodomain.SearchResult[magentodomain.Customer], error)
	GetStoreConfigs(ctx context.Context) ([]magentodomain.StoreConfig, error)
}

type MagentoClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func NewClient(cfg *config.Config) Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.Magento.InsecureSkipVerify {
		// Apenas para lojas locais com certificado autoassinado
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	}

	return &MagentoClient{
		httpClient: &http.Client{
			Timeout:   cfg.Magento.Timeout,
			Transport: transport,
		},
		baseURL: cfg.Magento.BaseURL,
		token:   cfg.Magento.AccessToken,
	}
}

// get executa um GET autenticado e decodifica o corpo em out.
// Qualquer falha vira *magentodomain.RemoteError.
func (c *MagentoClient) get(ctx context.Context, resource, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &magentodomain.RemoteError{
			Method:  http.MethodGet,
			Path:    path,
			Message: "erro ao criar a requisição",
			Err:     errors.Wrap(err, "new request"),
		}
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.MagentoRequestDuration.WithLabelValues(resource).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MagentoRequestsTotal.WithLabelValues(resource, "error").Inc()
		logrus.WithFields(logrus.Fields{
			"magento_path": path,
			"error":        err.Error(),
		}).Error("magento: request failed")

		return &magentodomain.RemoteError{Method: http.MethodGet, Path: path, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	metrics.MagentoRequestsTotal.WithLabelValues(resource, strconv.Itoa(resp.StatusCode)).Inc()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &magentodomain.RemoteError{
			Method:     http.MethodGet,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    "erro ao ler resposta",
			Err:        err,
		}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return handleErrorResponse(path, resp, body)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		logrus.WithFields(logrus.Fields{
			"magento_path": path,
			"error":        err.Error(),
		}).Error("magento: failed to decode response")

		return &magentodomain.RemoteError{
			Method:     http.MethodGet,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    "erro ao decodificar a resposta",
			Err:        err,
		}
	}

	return nil
}

func handleErrorResponse(path string, resp *http.Response, body []byte) error {
	message := resp.Status

	var errorResponse magentodomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResponse); err == nil && errorResponse.Message != "" {
		message = errorResponse.Text()
	}

	logrus.WithFields(logrus.Fields{
		"magento_path":   path,
		"magento_status": resp.StatusCode,
		"error":          message,
	}).Warn("magento: request returned error status")

	return &magentodomain.RemoteError{
		Method:     http.MethodGet,
		Path:       path,
		StatusCode: resp.StatusCode,
		Message:    message,
	}
}

func (c *MagentoClient) GetStoreConfigs(ctx context.Context) ([]magentodomain.StoreConfig, error) {
	var response []magentodomain.StoreConfig
	if err := c.get(ctx, "store", "/store/storeConfigs", nil, &response); err != nil {
		return nil, err
	}
	return response, nil
}
