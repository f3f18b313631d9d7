package server

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const requestIDHeader = "X-Request-ID"

type ctxKey int

const requestIDKey ctxKey = iota

// RequestID returns the identifier assigned to the request by the requestID middleware.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// statusRecorder remembers the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter

	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// requestID honours an incoming X-Request-ID header or generates a new one.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, req *http.Request) {
		id := req.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		writer.Header().Set(requestIDHeader, id)

		next.ServeHTTP(writer, req.WithContext(context.WithValue(req.Context(), requestIDKey, id)))
	})
}

func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	log = log.With(slog.String("division", "http"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, req *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}

			next.ServeHTTP(rec, req)

			log.InfoContext(req.Context(), "Request served",
				"method", req.Method,
				"path", req.URL.Path,
				"status", rec.status,
				"duration", time.Since(start).String(),
				"request_id", RequestID(req.Context()),
			)
		})
	}
}

// instrument records request count and latency labelled by the matched route template.
func instrument(appMetrics *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, req *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}

			next.ServeHTTP(rec, req)

			route := "unknown"
			if current := mux.CurrentRoute(req); current != nil {
				if tmpl, err := current.GetPathTemplate(); err == nil {
					route = tmpl
				}
			}

			appMetrics.HTTPRequests.WithLabelValues(req.Method, route, strconv.Itoa(rec.status)).Inc()
			appMetrics.HTTPRequestDuration.WithLabelValues(req.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}

// timeout bounds the request context, and with it every store call made on its behalf.
func timeout(d time.Duration) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}

		return http.HandlerFunc(func(writer http.ResponseWriter, req *http.Request) {
			ctx, cancel := context.WithTimeout(req.Context(), d)
			defer cancel()

			next.ServeHTTP(writer, req.WithContext(ctx))
		})
	}
}
