package admin

import (
	"context"
	"fmt"
	"io"
	"net/mail"
	"strings"

	"github.com/UnknownOlympus/hestia/internal/importer"
	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/tamathecxder/randomail"
)

// ImportOptions configures Import.
type ImportOptions struct {
	// Company receives the imported employees. It is created when missing.
	Company string
	// PlaceholderEmails replaces missing or malformed addresses with generated ones
	// instead of skipping the row.
	PlaceholderEmails bool
}

// Import creates the employees listed in an HTML staff table. Rows that fail validation are
// logged and skipped, rows whose email already exists in the company are left untouched.
func (t *Tasks) Import(ctx context.Context, in io.Reader, opts ImportOptions) (Report, error) {
	const opn = "Admin.Import"
	log := t.initLogger(opn)

	var report Report

	opts.Company = strings.TrimSpace(opts.Company)
	if opts.Company == "" {
		return report, fmt.Errorf("%w: company name is required", models.ErrInvalidInput)
	}

	rows, err := importer.ParseStaffTable(in)
	if err != nil {
		return report, fmt.Errorf("failed to parse staff table: %w", err)
	}
	log.InfoContext(ctx, "Staff table parsed", "rows", len(rows))

	companyID, err := t.resolveCompany(ctx, &report, opts.Company)
	if err != nil {
		return report, err
	}

	for _, row := range rows {
		input := row.Input
		input.CompanyID = companyID

		if opts.PlaceholderEmails && !isEmail(input.Email) {
			log.InfoContext(ctx, "Employee has invalid email, it will be replaced with temporary random email.",
				"line", row.Line, "email", input.Email)
			input.Email = randomail.GenerateRandomEmail()
		}

		result, ensureErr := t.ensureEmployee(ctx, log.With("line", row.Line), input)
		if ensureErr != nil {
			return report, fmt.Errorf("line %d: %w", row.Line, ensureErr)
		}
		report.add(result)
	}

	log.InfoContext(ctx, "Import completed",
		"company_id", companyID, "created", report.Created, "existing", report.Existing, "invalid", report.Invalid)

	return report, nil
}

func isEmail(address string) bool {
	parsed, err := mail.ParseAddress(address)
	return err == nil && parsed.Address == address
}
