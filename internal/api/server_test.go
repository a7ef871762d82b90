package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/magento-reporting-api/internal/config"
	"github.com/vfg2006/magento-reporting-api/internal/domain"
	"github.com/vfg2006/magento-reporting-api/internal/usecases/authenticating"
	"github.com/vfg2006/magento-reporting-api/internal/usecases/tooling/mocks"
	"github.com/vfg2006/magento-reporting-api/pkg/log"
	"github.com/vfg2006/magento-reporting-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

type staticHealth struct{}

func (staticHealth) Status() domain.RemoteHealth                  { return domain.RemoteHealth{} }
func (staticHealth) CheckNow(context.Context) domain.RemoteHealth { return domain.RemoteHealth{} }

func TestServer_MiddlewareChain(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{}
	cfg.Auth.Secret = "segredo"
	cfg.Server.AllowedOrigins = []string{"*"}

	authenticator := authenticating.NewService(cfg)
	dispatcher := mocks.NewMockDispatcher(ctrl)

	server, err := New(cfg, dispatcher, authenticator, staticHealth{})
	require.NoError(t, err)
	handler := server.Handler()

	// Sem token a chamada é barrada antes do dispatcher
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/mcp", strings.NewReader(`{"params":{"name":"x"}}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.CorrelationIDHeader))

	// Healthcheck continua público
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	token, err := authenticator.GenerateToken("agent", 0)
	require.NoError(t, err)

	dispatcher.EXPECT().ListTools().Return([]domain.ToolDescriptor{})

	req := httptest.NewRequest(http.MethodGet, "/v1/tools", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
