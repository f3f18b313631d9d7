// Package admin implements the one-off maintenance tasks run by cmd/admin.
package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/models"
)

const itemTimeout = 3 * time.Second

// CompanyResolver is implemented by the company repository.
type CompanyResolver interface {
	GetOrCreateCompanyID(ctx context.Context, name string) (int64, bool, error)
}

// Staff is implemented by employees.Staff.
type Staff interface {
	Create(ctx context.Context, input models.EmployeeInput) (models.Employee, error)
	FindByEmail(ctx context.Context, companyID int64, email string) (models.Employee, error)
}

// Report summarizes a task run.
type Report struct {
	Companies        int
	CompaniesCreated int
	Created          int
	Existing         int
	Invalid          int
}

type Tasks struct {
	log       *slog.Logger
	companies CompanyResolver
	staff     Staff
	metrics   *metrics.Metrics
}

func NewTasks(log *slog.Logger, companies CompanyResolver, staff Staff, metrics *metrics.Metrics) *Tasks {
	return &Tasks{log: log, companies: companies, staff: staff, metrics: metrics}
}

func (t *Tasks) initLogger(opn string) *slog.Logger {
	return t.log.With(
		sl.Op(opn),
		slog.String("division", "admin"),
	)
}

type outcome int

const (
	outcomeCreated outcome = iota
	outcomeExisting
	outcomeInvalid
)

func (r *Report) add(o outcome) {
	switch o {
	case outcomeCreated:
		r.Created++
	case outcomeExisting:
		r.Existing++
	case outcomeInvalid:
		r.Invalid++
	}
}

// resolveCompany finds or creates the named company. Only inserted companies are counted
// as imported items.
func (t *Tasks) resolveCompany(ctx context.Context, report *Report, name string) (int64, error) {
	companyID, created, err := t.companies.GetOrCreateCompanyID(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("failed to save company '%s' in repository: %w", name, err)
	}

	report.Companies++
	if created {
		report.CompaniesCreated++
		t.metrics.ItemsImported.WithLabelValues("company").Inc()
	}

	return companyID, nil
}

// ensureEmployee creates the employee unless the company already has one with the same email.
// Inputs rejected by validation are reported as outcomeInvalid, not as an error.
func (t *Tasks) ensureEmployee(ctx context.Context, log *slog.Logger, input models.EmployeeInput) (outcome, error) {
	ictx, cancel := context.WithTimeout(ctx, itemTimeout)
	defer cancel()

	if input.Email != "" {
		existing, err := t.staff.FindByEmail(ictx, input.CompanyID, input.Email)
		switch {
		case err == nil:
			log.DebugContext(ctx, "employee is existed, skipped", "id", existing.ID, "email", input.Email)
			return outcomeExisting, nil
		case !errors.Is(err, models.ErrNotFound):
			return 0, fmt.Errorf("failed to look up employee %s: %w", input.Email, err)
		}
	}

	employee, err := t.staff.Create(ictx, input)
	if err != nil {
		if errors.Is(err, models.ErrInvalidInput) {
			log.WarnContext(ctx, "Employee skipped", "first_name", input.FirstName, "last_name", input.LastName, sl.Err(err))
			return outcomeInvalid, nil
		}
		return 0, fmt.Errorf("failed to create employee %s %s: %w", input.FirstName, input.LastName, err)
	}

	t.metrics.ItemsImported.WithLabelValues("employee").Inc()
	log.InfoContext(ctx, "Employee created", "id", employee.ID, "company_id", employee.CompanyID)

	return outcomeCreated, nil
}
