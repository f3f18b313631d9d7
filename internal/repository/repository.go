package repository

import (
	"context"
	"errors"
	"time"

	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes the repository translates into domain errors.
const (
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
)

type Repository struct {
	db      Database
	metrics *metrics.Metrics
}

// CompanyRepoIface represents the interface for interacting with company data in the repository.
type CompanyRepoIface interface {
	ListCompanies(ctx context.Context) ([]models.Company, error)
	GetCompanyByID(ctx context.Context, identifier int64) (models.Company, error)
	ListEmployeesByCompany(ctx context.Context, companyID int64) ([]models.Employee, error)
	SaveCompany(ctx context.Context, name string) (models.Company, error)
	UpdateCompany(ctx context.Context, identifier int64, name string) (models.Company, error)
	DeleteCompany(ctx context.Context, identifier int64) error
	GetOrCreateCompanyID(ctx context.Context, name string) (int64, bool, error)
}

func NewCompanyRepository(db Database, metrics *metrics.Metrics) CompanyRepoIface {
	return &Repository{db: db, metrics: metrics}
}

// EmployeeRepoIface represents the interface for interacting with employee data in the repository.
type EmployeeRepoIface interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployeeByID(ctx context.Context, identifier int64) (models.Employee, error)
	GetEmployeeByEmail(ctx context.Context, companyID int64, email string) (models.Employee, error)
	SaveEmployee(ctx context.Context, employee models.Employee) (models.Employee, error)
	UpdateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error)
	DeleteEmployee(ctx context.Context, identifier int64) error
}

func NewEmployeeRepository(db Database, metrics *metrics.Metrics) EmployeeRepoIface {
	return &Repository{db: db, metrics: metrics}
}

// observe starts a timer for the given query type. The returned func records the duration.
func (r *Repository) observe(queryType string) func() {
	startTime := time.Now()

	return func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues(queryType).Observe(duration)
	}
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

type rowScanner interface {
	Scan(dest ...any) error
}
