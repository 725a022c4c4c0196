package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/liveturb/escalando-agora-api/pkg/metrics"
)

// MetricsMiddleware registra contagem, duração e requisições em andamento
func MetricsMiddleware(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}

			m.IncHTTPRequestsInFlight()
			defer m.DecHTTPRequestsInFlight()

			lrw := newLoggingResponseWriter(w)
			start := time.Now()

			next.ServeHTTP(lrw, r)

			m.RecordHTTPRequest(r.Method, endpointLabel(r.URL.Path), strconv.Itoa(lrw.statusCode), time.Since(start))
		})
	}
}

// endpointLabel troca ids numéricos por :id para não explodir a cardinalidade
func endpointLabel(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if segment == "" {
			continue
		}
		if _, err := strconv.Atoi(segment); err == nil {
			segments[i] = ":id"
		}
	}
	return strings.Join(segments, "/")
}
