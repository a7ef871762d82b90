package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/magento-reporting-api/internal/api/handler/router"
	"github.com/vfg2006/magento-reporting-api/internal/usecases/tooling"
)

func Healthcheck(checker RemoteHealthChecker) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(checker),
		},
		{
			Path:    "/v1/healthcheck/remote",
			Method:  http.MethodPost,
			Handler: RunRemoteHealthCheck(checker),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Tools(dispatcher tooling.Dispatcher) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/tools",
			Method:  http.MethodGet,
			Handler: ListTools(dispatcher),
		},
		{
			Path:    "/v1/tools/:name",
			Method:  http.MethodPost,
			Handler: CallTool(dispatcher),
		},
		{
			Path:    "/v1/mcp",
			Method:  http.MethodPost,
			Handler: MCPCall(dispatcher),
		},
	}
}
