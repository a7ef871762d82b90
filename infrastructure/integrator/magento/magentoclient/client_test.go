package magentoclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	magentodomain "github.com/vfg2006/magento-reporting-api/infrastructure/integrator/magento/domain"
	"github.com/vfg2006/magento-reporting-api/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(&config.Config{
		Magento: config.Magento{
			BaseURL:     server.URL + "/rest/V1",
			AccessToken: "secret-token",
			Timeout:     5 * time.Second,
		},
	})
}

func TestMagentoClient_SearchOrders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rest/V1/orders", r.URL.Path)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))

		query := r.URL.Query()
		assert.Equal(t, "status", query.Get("searchCriteria[filter_groups][0][filters][0][field]"))
		assert.Equal(t, "complete", query.Get("searchCriteria[filter_groups][0][filters][0][value]"))
		assert.Equal(t, "100", query.Get("searchCriteria[pageSize]"))
		assert.Equal(t, "2", query.Get("searchCriteria[currentPage]"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [
				{
					"entity_id": 7,
					"increment_id": "000000007",
					"status": "complete",
					"grand_total": 10.005,
					"tax_amount": "1.00",
					"billing_address": {"country_id": "nl"},
					"extension_attributes": {"shipping_assignments": [{"shipping": {"address": {"country_id": "US"}}}]},
					"items": [{"sku": "A", "name": "Produto A", "qty_ordered": 2, "row_total": 10.005}]
				}
			],
			"total_count": 101
		}`))
	})

	criteria := magentodomain.NewSearchCriteria().WhereEq("status", "complete").Paginate(100, 2)
	result, err := client.SearchOrders(context.Background(), criteria)
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	require.NotNil(t, result.TotalCount)
	assert.Equal(t, 101, *result.TotalCount)

	order := result.Items[0]
	assert.Equal(t, 7, order.EntityID)
	assert.Equal(t, "10.005", order.GrandTotal.String())
	assert.Equal(t, "1", order.TaxAmount.String())
	assert.Equal(t, "NL", order.BillingCountry())
	assert.Equal(t, "US", order.ShippingCountry())
	assert.Equal(t, "2", order.Items[0].QtyOrdered.String())
}

func TestMagentoClient_SearchWithoutTotalCount(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/V1/customers/search", r.URL.Path)
		_, _ = w.Write([]byte(`{"items": [{"id": 3, "email": "joe@example.com"}]}`))
	})

	result, err := client.SearchCustomers(context.Background(), magentodomain.NewSearchCriteria().WhereEq("email", "joe@example.com"))
	require.NoError(t, err)

	assert.Nil(t, result.TotalCount)
	assert.Equal(t, "joe@example.com", result.Items[0].Email)
}

func TestMagentoClient_EscapesSKU(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/V1/products/MJ01%2FXS", r.URL.EscapedPath())
		_, _ = w.Write([]byte(`{"id": 1, "sku": "MJ01/XS", "name": "Jacket", "price": 42.5}`))
	})

	product, err := client.GetProductBySKU(context.Background(), "MJ01/XS")
	require.NoError(t, err)
	assert.Equal(t, "MJ01/XS", product.SKU)
	assert.Equal(t, 42.5, product.Price)
}

func TestMagentoClient_Errors(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		validate func(t *testing.T, err error)
	}{
		{
			name: "404 com mensagem do Magento",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"message": "The entity that was requested doesn't exist. Verify the %1 and try again.", "parameters": ["order"]}`))
			},
			validate: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, magentodomain.ErrRemoteFetch))
				assert.True(t, magentodomain.IsNotFound(err))

				var remoteErr *magentodomain.RemoteError
				require.True(t, errors.As(err, &remoteErr))
				assert.Equal(t, http.StatusNotFound, remoteErr.StatusCode)
				assert.Equal(t, "/orders/42", remoteErr.Path)
				assert.Equal(t, "The entity that was requested doesn't exist. Verify the order and try again.", remoteErr.Message)
			},
		},
		{
			name: "500 sem corpo JSON",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`<html>oops</html>`))
			},
			validate: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, magentodomain.ErrRemoteFetch))
				assert.False(t, magentodomain.IsNotFound(err))
				assert.Contains(t, err.Error(), "500 Internal Server Error")
			},
		},
		{
			name: "corpo inválido",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"entity_id": "not-a-number"`))
			},
			validate: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, magentodomain.ErrRemoteFetch))
				assert.Contains(t, err.Error(), "erro ao decodificar a resposta")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)

			order, err := client.GetOrderByID(context.Background(), "42")
			require.Error(t, err)
			assert.Nil(t, order)
			tt.validate(t, err)
		})
	}
}

func TestMagentoClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := NewClient(&config.Config{Magento: config.Magento{BaseURL: baseURL, Timeout: time.Second}})

	_, err := client.GetStoreConfigs(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, magentodomain.ErrRemoteFetch))
	assert.False(t, magentodomain.IsNotFound(err))
}

func TestMagentoClient_ContextCanceled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetStoreConfigs(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
