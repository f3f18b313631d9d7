package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options wires the router to its collaborators.
type Options struct {
	Log            *slog.Logger
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	Companies      CompanyService
	Employees      EmployeeService
	Health         http.Handler
	RequestTimeout time.Duration
}

// NewRouter builds the HTTP API:
//
//	GET|POST           /companies
//	GET|PUT|DELETE     /companies/{id}
//	GET|POST           /employees
//	GET|PUT|DELETE     /employees/{id}
//	GET                /healthz
//	GET                /metrics
func NewRouter(opts Options) http.Handler {
	router := mux.NewRouter()
	router.NotFoundHandler = errorHandler(opts.Log, http.StatusNotFound)
	router.MethodNotAllowedHandler = errorHandler(opts.Log, http.StatusMethodNotAllowed)

	router.Use(instrument(opts.Metrics), timeout(opts.RequestTimeout))

	companies := &companyHandler{log: opts.Log, service: opts.Companies}
	router.HandleFunc("/companies", companies.list).Methods(http.MethodGet)
	router.HandleFunc("/companies", companies.create).Methods(http.MethodPost)
	router.HandleFunc("/companies/{id}", companies.get).Methods(http.MethodGet)
	router.HandleFunc("/companies/{id}", companies.update).Methods(http.MethodPut)
	router.HandleFunc("/companies/{id}", companies.delete).Methods(http.MethodDelete)

	employees := &employeeHandler{log: opts.Log, service: opts.Employees}
	router.HandleFunc("/employees", employees.list).Methods(http.MethodGet)
	router.HandleFunc("/employees", employees.create).Methods(http.MethodPost)
	router.HandleFunc("/employees/{id}", employees.get).Methods(http.MethodGet)
	router.HandleFunc("/employees/{id}", employees.update).Methods(http.MethodPut)
	router.HandleFunc("/employees/{id}", employees.delete).Methods(http.MethodDelete)

	if opts.Health != nil {
		router.Handle("/healthz", opts.Health).Methods(http.MethodGet)
	}
	if opts.Gatherer != nil {
		router.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	return requestID(accessLog(opts.Log)(router))
}

func errorHandler(log *slog.Logger, code int) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, req *http.Request) {
		writeJSON(log, writer, req, code, errorResponse{Error: http.StatusText(code)})
	})
}
