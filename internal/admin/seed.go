package admin

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/UnknownOlympus/hestia/internal/models"
)

//go:embed seeds/companies.json
var companiesJSON []byte

type seedCompany struct {
	Name      string         `json:"name"`
	Employees []seedEmployee `json:"employees"`
}

type seedEmployee struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Position  *string `json:"position"`
	Email     string  `json:"email"`
}

// Seed loads the embedded fixture. It is idempotent: companies are matched by name and
// employees by email within their company.
func (t *Tasks) Seed(ctx context.Context) (Report, error) {
	return t.SeedFrom(ctx, companiesJSON)
}

// SeedFrom loads a fixture in the embedded format.
func (t *Tasks) SeedFrom(ctx context.Context, fixture []byte) (Report, error) {
	const opn = "Admin.Seed"
	log := t.initLogger(opn)

	var report Report

	var items []seedCompany
	if err := json.Unmarshal(fixture, &items); err != nil {
		return report, fmt.Errorf("failed to decode seed fixture: %w", err)
	}

	for _, item := range items {
		companyID, err := t.resolveCompany(ctx, &report, item.Name)
		if err != nil {
			return report, err
		}

		for _, emp := range item.Employees {
			result, ensureErr := t.ensureEmployee(ctx, log, models.EmployeeInput{
				FirstName: emp.FirstName,
				LastName:  emp.LastName,
				Position:  emp.Position,
				Email:     emp.Email,
				CompanyID: companyID,
			})
			if ensureErr != nil {
				return report, ensureErr
			}
			report.add(result)
		}
	}

	log.InfoContext(ctx, "Seed completed",
		"companies", report.Companies, "companies_created", report.CompaniesCreated, "created", report.Created, "existing", report.Existing, "invalid", report.Invalid)

	return report, nil
}
