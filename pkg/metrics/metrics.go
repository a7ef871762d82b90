package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_total_requests",
		Help: "Total requests to the HTTP",
	},
		[]string{"method", "path", "code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "http_request_duration",
		Help: "Duration of HTTP requests",
	},
		[]string{"method", "path"},
	)

	// ferramentas expostas pelo dispatcher
	ToolCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tool_calls_total",
		Help: "Total number of tool calls by result status",
	},
		[]string{"tool", "status"},
	)

	ToolCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "tool_call_duration_seconds",
		Help: "Duration of tool calls",
	},
		[]string{"tool"},
	)

	// chamadas à API do Magento
	MagentoRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "magento_requests_total",
		Help: "Total requests sent to the Magento REST API",
	},
		[]string{"resource", "code"},
	)

	MagentoRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "magento_request_duration_seconds",
		Help: "Duration of Magento REST API requests",
	},
		[]string{"resource"},
	)

	MagentoPagesFetched = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "magento_pages_fetched",
		Help:    "Number of pages walked by a paginated fetch",
		Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250, 500},
	})

	MagentoUp = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "magento_up",
		Help: "1 if the Magento API answered the last health probe, 0 if not",
	})
)
