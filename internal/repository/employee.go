package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/jackc/pgx/v5"
)

const employeeWithCompanyColumns = `
		SELECT e.id, e.first_name, e.last_name, e.position, e.email, e.company_id, c.name, e.created_at, e.updated_at
		FROM employees e
		JOIN companies c ON c.id = e.company_id`

// savedEmployeeColumns reads back a row written by a "saved" CTE together with its company name.
const savedEmployeeColumns = `
		SELECT s.id, s.first_name, s.last_name, s.position, s.email, s.company_id, c.name, s.created_at, s.updated_at
		FROM saved s
		JOIN companies c ON c.id = s.company_id`

// ListEmployees returns every employee, together with the name of its company, ordered by identifier.
func (r *Repository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	defer r.observe("list_employees")()

	query := employeeWithCompanyColumns + `
		ORDER BY e.id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]models.Employee, 0)
	for rows.Next() {
		employee, scanErr := scanEmployeeWithCompany(rows)
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

// GetEmployeeByID retrieves an employee from the database by their ID.
func (r *Repository) GetEmployeeByID(ctx context.Context, identifier int64) (models.Employee, error) {
	defer r.observe("get_employee_by_id")()

	query := employeeWithCompanyColumns + `
		WHERE e.id = $1`

	employee, err := scanEmployeeWithCompany(r.db.QueryRow(ctx, query, identifier))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Employee{}, fmt.Errorf("%w: employee %d", models.ErrNotFound, identifier)
		}
		return models.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return employee, nil
}

// GetEmployeeByEmail retrieves an employee of the given company by email address.
func (r *Repository) GetEmployeeByEmail(ctx context.Context, companyID int64, email string) (models.Employee, error) {
	defer r.observe("get_employee_by_email")()

	query := employeeWithCompanyColumns + `
		WHERE e.company_id = $1 AND lower(e.email) = lower($2)
		ORDER BY e.id
		LIMIT 1`

	employee, err := scanEmployeeWithCompany(r.db.QueryRow(ctx, query, companyID, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Employee{}, fmt.Errorf("%w: employee %s", models.ErrNotFound, email)
		}
		return models.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return employee, nil
}

// SaveEmployee inserts a new employee and returns it with the store-assigned identifier.
// The referenced company must exist.
func (r *Repository) SaveEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	defer r.observe("save_employee")()

	query := `
		WITH saved AS (
			INSERT INTO employees (first_name, last_name, position, email, company_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, first_name, last_name, position, email, company_id, created_at, updated_at
		)` + savedEmployeeColumns

	saved, err := scanEmployeeWithCompany(r.db.QueryRow(ctx, query,
		employee.FirstName, employee.LastName, employee.Position, employee.Email, employee.CompanyID))
	if err != nil {
		switch pgErrorCode(err) {
		case pgForeignKeyViolation:
			return models.Employee{}, fmt.Errorf("company %d: %w", employee.CompanyID, models.ErrUnknownCompany)
		case pgCheckViolation, pgNotNullViolation:
			return models.Employee{}, fmt.Errorf("%w: employee is missing required fields", models.ErrInvalidInput)
		}
		return models.Employee{}, fmt.Errorf("failed to save employee: %w", err)
	}

	return saved, nil
}

// UpdateEmployee replaces an employee's personal fields. The owning company never changes.
func (r *Repository) UpdateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	defer r.observe("update_employee")()

	query := `
		WITH saved AS (
			UPDATE employees
			SET first_name = $2, last_name = $3, position = $4, email = $5, updated_at = CURRENT_TIMESTAMP
			WHERE id = $1
			RETURNING id, first_name, last_name, position, email, company_id, created_at, updated_at
		)` + savedEmployeeColumns

	updated, err := scanEmployeeWithCompany(r.db.QueryRow(ctx, query,
		employee.ID, employee.FirstName, employee.LastName, employee.Position, employee.Email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Employee{}, fmt.Errorf("%w: employee %d", models.ErrNotFound, employee.ID)
		}
		if code := pgErrorCode(err); code == pgCheckViolation || code == pgNotNullViolation {
			return models.Employee{}, fmt.Errorf("%w: employee is missing required fields", models.ErrInvalidInput)
		}
		return models.Employee{}, fmt.Errorf("failed to update employee data: %w", err)
	}

	return updated, nil
}

// DeleteEmployee removes an employee.
func (r *Repository) DeleteEmployee(ctx context.Context, identifier int64) error {
	defer r.observe("delete_employee")()

	tag, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, identifier)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: employee %d", models.ErrNotFound, identifier)
	}

	return nil
}

func scanEmployee(row rowScanner) (models.Employee, error) {
	var employee models.Employee

	err := row.Scan(
		&employee.ID, &employee.FirstName, &employee.LastName, &employee.Position,
		&employee.Email, &employee.CompanyID, &employee.CreatedAt, &employee.UpdatedAt)
	if err != nil {
		return models.Employee{}, err
	}

	return employee, nil
}

func scanEmployeeWithCompany(row rowScanner) (models.Employee, error) {
	var employee models.Employee

	err := row.Scan(
		&employee.ID, &employee.FirstName, &employee.LastName, &employee.Position,
		&employee.Email, &employee.CompanyID, &employee.CompanyName, &employee.CreatedAt, &employee.UpdatedAt)
	if err != nil {
		return models.Employee{}, err
	}

	return employee, nil
}
