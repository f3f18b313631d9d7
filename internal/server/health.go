package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"time"
)

const healthCheckTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthChecker reports the state of every dependency, e.g. {"broker":"ok","database":"unavailable"}.
// Any failing dependency turns the response into 503.
type HealthChecker struct {
	checks map[string]Pinger
	log    *slog.Logger
}

func NewHealthChecker(checks map[string]Pinger, log *slog.Logger) *HealthChecker {
	return &HealthChecker{checks: checks, log: log}
}

func (h *HealthChecker) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	h.log.DebugContext(req.Context(), "Performing health checks...")

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := make(map[string]string, len(names))
	overallStatus := http.StatusOK

	for _, name := range names {
		ctx, cancel := context.WithTimeout(req.Context(), healthCheckTimeout)
		err := h.checks[name].Ping(ctx)
		cancel()

		if err != nil {
			status[name] = "unavailable"
			overallStatus = http.StatusServiceUnavailable
			h.log.WarnContext(req.Context(), "Health check failed", "dependency", name, "error", err)
			continue
		}
		status[name] = "ok"
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(overallStatus)
	if err := json.NewEncoder(writer).Encode(status); err != nil {
		h.log.ErrorContext(req.Context(), "Failed to write health check response", "error", err)
	}

	h.log.DebugContext(req.Context(), "Health checks completed", "status", overallStatus)
}
