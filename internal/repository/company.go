package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/jackc/pgx/v5"
)

// ListCompanies returns every company ordered by identifier.
func (r *Repository) ListCompanies(ctx context.Context) ([]models.Company, error) {
	defer r.observe("list_companies")()

	query := `SELECT id, name, created_at, updated_at FROM companies ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	companies := make([]models.Company, 0)
	for rows.Next() {
		company, scanErr := scanCompany(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan company: %w", scanErr)
		}
		companies = append(companies, company)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate companies: %w", err)
	}

	return companies, nil
}

// GetCompanyByID retrieves a company from the database by its ID.
func (r *Repository) GetCompanyByID(ctx context.Context, identifier int64) (models.Company, error) {
	defer r.observe("get_company_by_id")()

	query := `SELECT id, name, created_at, updated_at FROM companies WHERE id = $1`

	company, err := scanCompany(r.db.QueryRow(ctx, query, identifier))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Company{}, fmt.Errorf("%w: company %d", models.ErrNotFound, identifier)
		}
		return models.Company{}, fmt.Errorf("failed to get company by id: %w", err)
	}

	return company, nil
}

// ListEmployeesByCompany returns the employees of one company ordered by identifier.
func (r *Repository) ListEmployeesByCompany(ctx context.Context, companyID int64) ([]models.Employee, error) {
	defer r.observe("list_company_employees")()

	query := `
		SELECT id, first_name, last_name, position, email, company_id, created_at, updated_at
		FROM employees
		WHERE company_id = $1
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees of company %d: %w", companyID, err)
	}
	defer rows.Close()

	employees := make([]models.Employee, 0)
	for rows.Next() {
		employee, scanErr := scanEmployee(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", scanErr)
		}
		employees = append(employees, employee)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

// SaveCompany inserts a new company and returns it with the store-assigned identifier.
func (r *Repository) SaveCompany(ctx context.Context, name string) (models.Company, error) {
	defer r.observe("save_company")()

	query := `
		INSERT INTO companies (name)
		VALUES ($1)
		RETURNING id, name, created_at, updated_at`

	company, err := scanCompany(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if code := pgErrorCode(err); code == pgCheckViolation || code == pgNotNullViolation {
			return models.Company{}, fmt.Errorf("%w: company name is required", models.ErrInvalidInput)
		}
		return models.Company{}, fmt.Errorf("failed to save company: %w", err)
	}

	return company, nil
}

// UpdateCompany renames a company and returns the updated row.
func (r *Repository) UpdateCompany(ctx context.Context, identifier int64, name string) (models.Company, error) {
	defer r.observe("update_company")()

	query := `
		UPDATE companies
		SET name = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING id, name, created_at, updated_at`

	company, err := scanCompany(r.db.QueryRow(ctx, query, identifier, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Company{}, fmt.Errorf("%w: company %d", models.ErrNotFound, identifier)
		}
		if code := pgErrorCode(err); code == pgCheckViolation || code == pgNotNullViolation {
			return models.Company{}, fmt.Errorf("%w: company name is required", models.ErrInvalidInput)
		}
		return models.Company{}, fmt.Errorf("failed to update company data: %w", err)
	}

	return company, nil
}

// DeleteCompany removes a company. Companies that still have employees are not removed.
func (r *Repository) DeleteCompany(ctx context.Context, identifier int64) error {
	defer r.observe("delete_company")()

	tag, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, identifier)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return fmt.Errorf("company %d: %w", identifier, models.ErrCompanyHasEmployees)
		}
		return fmt.Errorf("failed to delete company: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: company %d", models.ErrNotFound, identifier)
	}

	return nil
}

// GetOrCreateCompanyID returns the identifier of the oldest company with the given name,
// creating the company when none exists. created reports whether a row was inserted.
func (r *Repository) GetOrCreateCompanyID(ctx context.Context, name string) (int64, bool, error) {
	defer r.observe("get_or_create_company")()

	var companyID int64
	err := r.db.QueryRow(ctx, "SELECT id FROM companies WHERE name = $1 ORDER BY id LIMIT 1", name).Scan(&companyID)
	if err == nil {
		return companyID, false, nil // company is found, return id
	}

	if errors.Is(err, pgx.ErrNoRows) {
		// company not found, insert it
		err = r.db.QueryRow(ctx, "INSERT INTO companies (name) VALUES ($1) RETURNING id", name).Scan(&companyID)
		if err != nil {
			return 0, false, fmt.Errorf("error inserting new company '%s': %w", name, err)
		}
		return companyID, true, nil
	}

	return 0, false, fmt.Errorf("request error to `companies`: %w", err)
}

func scanCompany(row rowScanner) (models.Company, error) {
	var company models.Company

	err := row.Scan(&company.ID, &company.Name, &company.CreatedAt, &company.UpdatedAt)
	if err != nil {
		return models.Company{}, err
	}

	return company, nil
}
