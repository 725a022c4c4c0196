package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

// Pinger é implementado pelas conexões de Redis e Postgres.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthcheckResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// HealthcheckHandler responde 503 quando alguma dependência não responde ao ping.
func HealthcheckHandler(checks map[string]Pinger) http.Handler {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		body := healthcheckResponse{
			Status:    "ok",
			Timestamp: time.Now().Format(time.RFC3339),
		}
		status := http.StatusOK

		for _, name := range names {
			if body.Checks == nil {
				body.Checks = make(map[string]string, len(names))
			}
			if err := checks[name].Ping(ctx); err != nil {
				logrus.WithError(err).WithField("dependency", name).Warn("healthcheck falhou")
				body.Checks[name] = "down"
				body.Status = "degraded"
				status = http.StatusServiceUnavailable
				continue
			}
			body.Checks[name] = "up"
		}

		writeJSON(w, status, body)
	})
}
