package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/vfg2006/magento-reporting-api/pkg/metrics"
)

// normalizePath troca o nome da ferramenta por :name para não explodir a cardinalidade
func normalizePath(path string) string {
	if strings.HasPrefix(path, "/v1/tools/") {
		return "/v1/tools/:name"
	}
	return path
}

func MetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			lrw := newLoggingResponseWriter(w)
			next.ServeHTTP(lrw, r)

			path := normalizePath(r.URL.Path)
			metrics.HTTPRequestCount.WithLabelValues(r.Method, path, fmt.Sprint(lrw.statusCode)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
		})
	}
}
