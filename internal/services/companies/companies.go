package companies

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

type Service struct {
	log       *slog.Logger
	repo      repository.CompanyRepoIface
	events    EventEmitter
	validator *validate.Validator
}

func NewService(log *slog.Logger, repo repository.CompanyRepoIface, events EventEmitter) *Service {
	return &Service{log: log, repo: repo, events: events, validator: validate.New()}
}

func (s *Service) initLogger(opn string) *slog.Logger {
	return s.log.With(
		sl.Op(opn),
		slog.String("division", "company"),
	)
}

// List returns all companies ordered by identifier.
func (s *Service) List(ctx context.Context) ([]models.Company, error) {
	companies, err := s.repo.ListCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	return companies, nil
}

// Get returns a company together with its employees.
func (s *Service) Get(ctx context.Context, identifier int64) (models.CompanyDetails, error) {
	company, err := s.repo.GetCompanyByID(ctx, identifier)
	if err != nil {
		return models.CompanyDetails{}, fmt.Errorf("failed to get company %d: %w", identifier, err)
	}

	employees, err := s.repo.ListEmployeesByCompany(ctx, identifier)
	if err != nil {
		return models.CompanyDetails{}, fmt.Errorf("failed to get employees of company %d: %w", identifier, err)
	}
	if employees == nil {
		employees = []models.Employee{}
	}

	return models.CompanyDetails{Company: company, Employees: employees}, nil
}

// Create validates the input and stores a new company.
func (s *Service) Create(ctx context.Context, input models.CompanyInput) (models.Company, error) {
	const opn = "Companies.Create"
	log := s.initLogger(opn)

	input.Name = strings.TrimSpace(input.Name)
	if err := s.validator.Struct(input); err != nil {
		return models.Company{}, err
	}

	company, err := s.repo.SaveCompany(ctx, input.Name)
	if err != nil {
		return models.Company{}, fmt.Errorf("failed to create company: %w", err)
	}

	log.InfoContext(ctx, "Company created", "id", company.ID, "name", company.Name)
	s.events.Emit(ctx, broker.Event{
		Action: broker.ActionCreated,
		Entity: broker.EntityCompany,
		ID:     company.ID,
		Name:   company.Name,
	})

	return company, nil
}

// Update renames an existing company.
func (s *Service) Update(ctx context.Context, identifier int64, input models.CompanyInput) (models.Company, error) {
	const opn = "Companies.Update"
	log := s.initLogger(opn)

	input.Name = strings.TrimSpace(input.Name)
	if err := s.validator.Struct(input); err != nil {
		return models.Company{}, err
	}

	company, err := s.repo.UpdateCompany(ctx, identifier, input.Name)
	if err != nil {
		return models.Company{}, fmt.Errorf("failed to update company %d: %w", identifier, err)
	}

	log.InfoContext(ctx, "Company updated", "id", company.ID, "name", company.Name)
	s.events.Emit(ctx, broker.Event{
		Action: broker.ActionUpdated,
		Entity: broker.EntityCompany,
		ID:     company.ID,
		Name:   company.Name,
	})

	return company, nil
}

// Delete removes a company that has no employees.
func (s *Service) Delete(ctx context.Context, identifier int64) error {
	const opn = "Companies.Delete"
	log := s.initLogger(opn)

	company, err := s.repo.GetCompanyByID(ctx, identifier)
	if err != nil {
		return fmt.Errorf("failed to delete company %d: %w", identifier, err)
	}

	if err = s.repo.DeleteCompany(ctx, identifier); err != nil {
		log.WarnContext(ctx, "Company was not deleted", "id", identifier, sl.Err(err))
		return fmt.Errorf("failed to delete company %d: %w", identifier, err)
	}

	log.InfoContext(ctx, "Company deleted", "id", company.ID, "name", company.Name)
	s.events.Emit(ctx, broker.Event{
		Action: broker.ActionDeleted,
		Entity: broker.EntityCompany,
		ID:     company.ID,
		Name:   company.Name,
	})

	return nil
}
