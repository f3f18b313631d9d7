package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnknownOlympus/hestia/internal/broker"
	"github.com/UnknownOlympus/hestia/internal/config"
	applog "github.com/UnknownOlympus/hestia/internal/lib/logger"
	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/repository"
	"github.com/UnknownOlympus/hestia/internal/server"
	"github.com/UnknownOlympus/hestia/internal/services/companies"
	"github.com/UnknownOlympus/hestia/internal/services/employees"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// main is the entry point of the application.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	cfg := config.MustLoad()

	logger := applog.Setup(cfg.Env, os.Stdout)

	err := run(ctx, cfg, logger)
	stop()
	if err != nil {
		logger.ErrorContext(ctx, "Application stopped with error", sl.Err(err))
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Application stopped gracefully...")
}

// run wires the API and blocks until ctx is cancelled or the server fails.
// Resources opened here are released before it returns.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	// Create a separate registry for metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	dtb, err := repository.NewDatabase(
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Dbname)
	if err != nil {
		return fmt.Errorf("failed to connect to DB: %w", err)
	}
	defer dtb.Close()

	checks := map[string]server.Pinger{"database": dtb}

	var sender broker.Sender = broker.NoopPublisher{}
	if cfg.Broker.URL != "" {
		publisher, pubErr := broker.NewPublisher(cfg.Broker.URL, cfg.Broker.Queue)
		if pubErr != nil {
			return fmt.Errorf("failed to connect to broker: %w", pubErr)
		}
		defer func() {
			if closeErr := publisher.Close(); closeErr != nil {
				logger.Warn("Failed to close broker connection", sl.Err(closeErr))
			}
		}()
		sender = publisher
		checks["broker"] = publisher
		logger.InfoContext(ctx, "Change events enabled", "queue", cfg.Broker.Queue)
	} else {
		logger.InfoContext(ctx, "Broker URL is not set, change events are disabled")
	}
	emitter := broker.NewEmitter(sender, logger, appMetrics)

	companyService := companies.NewService(logger, repository.NewCompanyRepository(dtb, appMetrics), emitter)
	staff := employees.NewStaff(logger, repository.NewEmployeeRepository(dtb, appMetrics), emitter)

	router := server.NewRouter(server.Options{
		Log:            logger,
		Metrics:        appMetrics,
		Gatherer:       reg,
		Companies:      companyService,
		Employees:      staff,
		Health:         server.NewHealthChecker(checks, logger),
		RequestTimeout: cfg.HTTP.RequestTimeout,
	})

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.", "env", cfg.Env)

	return server.Run(ctx, logger, cfg.HTTP, router)
}
