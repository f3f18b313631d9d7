package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/UnknownOlympus/hestia/internal/admin"
	"github.com/UnknownOlympus/hestia/internal/broker"
	"github.com/UnknownOlympus/hestia/internal/config"
	"github.com/UnknownOlympus/hestia/internal/importer"
	applog "github.com/UnknownOlympus/hestia/internal/lib/logger"
	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/repository"
	"github.com/UnknownOlympus/hestia/internal/services/employees"
	"github.com/prometheus/client_golang/prometheus"
)

const downloadTimeout = 30 * time.Second

// options are the command line flags of a single admin run.
type options struct {
	task         string
	source       string
	company      string
	placeholders bool
}

func main() {
	var opts options
	flag.StringVar(&opts.task, "task", "seed", "task to run: seed, import")
	flag.StringVar(&opts.source, "file", "", "import: path or http(s) URL of an HTML staff table")
	flag.StringVar(&opts.company, "company", "", "import: company that receives the employees (created when missing)")
	flag.BoolVar(&opts.placeholders, "placeholder-emails", false,
		"import: replace missing or invalid emails with generated ones")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	cfg := config.MustLoad()
	logger := applog.Setup(cfg.Env, os.Stdout)

	err := run(ctx, cfg, logger, opts, os.Stdout)
	stop()
	if err != nil {
		logger.ErrorContext(ctx, "Admin task failed", "task", opts.task, sl.Err(err))
		os.Exit(1)
	}
}

func (o options) validate() error {
	switch o.task {
	case "seed":
		return nil
	case "import":
		if o.source == "" {
			return errors.New("import: -file is required")
		}
		return nil
	default:
		return fmt.Errorf("unknown task %q, expected seed or import", o.task)
	}
}

// run executes one task and prints its report to out.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts options, out io.Writer) error {
	if err := opts.validate(); err != nil {
		return err
	}

	appMetrics := metrics.NewMetrics(prometheus.NewRegistry())

	dtb, err := repository.NewDatabase(
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Dbname)
	if err != nil {
		return fmt.Errorf("failed to connect to DB: %w", err)
	}
	defer dtb.Close()

	var sender broker.Sender = broker.NoopPublisher{}
	if cfg.Broker.URL != "" {
		publisher, pubErr := broker.NewPublisher(cfg.Broker.URL, cfg.Broker.Queue)
		if pubErr != nil {
			return fmt.Errorf("failed to connect to broker: %w", pubErr)
		}
		defer publisher.Close()
		sender = publisher
	}
	emitter := broker.NewEmitter(sender, logger, appMetrics)
	staff := employees.NewStaff(logger, repository.NewEmployeeRepository(dtb, appMetrics), emitter)
	tasks := admin.NewTasks(logger, repository.NewCompanyRepository(dtb, appMetrics), staff, appMetrics)

	var report admin.Report

	switch opts.task {
	case "seed":
		report, err = tasks.Seed(ctx)
	case "import":
		client := importer.NewHTTPClient(logger, downloadTimeout)
		in, openErr := importer.Open(ctx, client, opts.source)
		if openErr != nil {
			return fmt.Errorf("import: %w", openErr)
		}
		defer in.Close()

		report, err = tasks.Import(ctx, in, admin.ImportOptions{Company: opts.company, PlaceholderEmails: opts.placeholders})
	}
	if err != nil {
		return fmt.Errorf("%s failed: %w", opts.task, err)
	}

	_, err = fmt.Fprintf(out, "✅ Task %q finished: companies=%d companies_created=%d created=%d existing=%d invalid=%d\n",
		opts.task, report.Companies, report.CompaniesCreated, report.Created, report.Existing, report.Invalid)

	return err
}
