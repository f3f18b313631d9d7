package employees

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/UnknownOlympus/hestia/internal/broker"
	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/lib/validate"
	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/UnknownOlympus/hestia/internal/repository"
)

// EventEmitter publishes change events. Implemented by broker.Emitter.
type EventEmitter interface {
	Emit(ctx context.Context, event broker.Event)
}

type Staff struct {
	log       *slog.Logger
	repo      repository.EmployeeRepoIface
	events    EventEmitter
	validator *validate.Validator
}

func NewStaff(log *slog.Logger, repo repository.EmployeeRepoIface, events EventEmitter) *Staff {
	return &Staff{log: log, repo: repo, events: events, validator: validate.New()}
}

func (s *Staff) initLogger(opn string) *slog.Logger {
	return s.log.With(
		sl.Op(opn),
		slog.String("division", "employee"),
	)
}

// List returns all employees with the names of their companies.
func (s *Staff) List(ctx context.Context) ([]models.Employee, error) {
	employees, err := s.repo.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return employees, nil
}

func (s *Staff) Get(ctx context.Context, identifier int64) (models.Employee, error) {
	employee, err := s.repo.GetEmployeeByID(ctx, identifier)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to get employee %d: %w", identifier, err)
	}

	return employee, nil
}

// Create validates the input and stores a new employee. An unknown company is reported
// as models.ErrUnknownCompany by the repository.
func (s *Staff) Create(ctx context.Context, input models.EmployeeInput) (models.Employee, error) {
	const opn = "Employee.Create"
	log := s.initLogger(opn)

	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = strings.TrimSpace(input.Email)
	input.Position = trimPosition(input.Position)

	if err := s.validator.Struct(input); err != nil {
		return models.Employee{}, err
	}

	position := input.Position
	if position != nil && *position == "" {
		position = nil
	}

	employee, err := s.repo.SaveEmployee(ctx, models.Employee{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Position:  position,
		Email:     input.Email,
		CompanyID: input.CompanyID,
	})
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	log.InfoContext(ctx, "Employee created", "id", employee.ID, "company_id", employee.CompanyID)
	s.events.Emit(ctx, newEvent(broker.ActionCreated, employee))

	return employee, nil
}

// Update replaces the personal fields of an employee. A nil position keeps the stored value,
// an empty one clears it.
func (s *Staff) Update(ctx context.Context, identifier int64, input models.EmployeeUpdate) (models.Employee, error) {
	const opn = "Employee.Update"
	log := s.initLogger(opn)

	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = strings.TrimSpace(input.Email)
	input.Position = trimPosition(input.Position)

	if err := s.validator.Struct(input); err != nil {
		return models.Employee{}, err
	}

	existing, err := s.repo.GetEmployeeByID(ctx, identifier)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to update employee %d: %w", identifier, err)
	}

	existing.FirstName = input.FirstName
	existing.LastName = input.LastName
	existing.Email = input.Email
	if input.Position != nil {
		existing.Position = input.Position
		if *input.Position == "" {
			existing.Position = nil
		}
	}

	employee, err := s.repo.UpdateEmployee(ctx, existing)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to update employee %d: %w", identifier, err)
	}

	log.InfoContext(ctx, "Employee updated", "id", employee.ID)
	s.events.Emit(ctx, newEvent(broker.ActionUpdated, employee))

	return employee, nil
}

func (s *Staff) Delete(ctx context.Context, identifier int64) error {
	const opn = "Employee.Delete"
	log := s.initLogger(opn)

	employee, err := s.repo.GetEmployeeByID(ctx, identifier)
	if err != nil {
		return fmt.Errorf("failed to delete employee %d: %w", identifier, err)
	}

	if err = s.repo.DeleteEmployee(ctx, identifier); err != nil {
		log.WarnContext(ctx, "Employee was not deleted", "id", identifier, sl.Err(err))
		return fmt.Errorf("failed to delete employee %d: %w", identifier, err)
	}

	log.InfoContext(ctx, "Employee deleted", "id", identifier)
	s.events.Emit(ctx, newEvent(broker.ActionDeleted, employee))

	return nil
}

// FindByEmail looks up an employee of a company by email address.
func (s *Staff) FindByEmail(ctx context.Context, companyID int64, email string) (models.Employee, error) {
	employee, err := s.repo.GetEmployeeByEmail(ctx, companyID, strings.TrimSpace(email))
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to find employee by email: %w", err)
	}

	return employee, nil
}

func trimPosition(position *string) *string {
	if position == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*position)

	return &trimmed
}

func newEvent(action string, employee models.Employee) broker.Event {
	return broker.Event{
		Action:    action,
		Entity:    broker.EntityEmployee,
		ID:        employee.ID,
		CompanyID: employee.CompanyID,
		Name:      employee.FirstName + " " + employee.LastName,
	}
}
