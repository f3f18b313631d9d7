// Package importer reads employee records out of HTML staff tables.
package importer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/UnknownOlympus/hestia/internal/models"
)

var ErrNoStaffTable = errors.New("no staff table found")

const (
	colFirstName = "first_name"
	colLastName  = "last_name"
	colFullName  = "full_name"
	colPosition  = "position"
	colEmail     = "email"
)

// headerAliases maps normalized header text to a column.
var headerAliases = map[string]string{
	"first name": colFirstName,
	"firstname":  colFirstName,
	"first_name": colFirstName,
	"last name":  colLastName,
	"lastname":   colLastName,
	"last_name":  colLastName,
	"surname":    colLastName,
	"name":       colFullName,
	"full name":  colFullName,
	"fullname":   colFullName,
	"position":   colPosition,
	"title":      colPosition,
	"job title":  colPosition,
	"email":      colEmail,
	"e-mail":     colEmail,
}

// Row is one parsed table row. Line is the 1-based row number below the header.
type Row struct {
	Line  int
	Input models.EmployeeInput
}

// ParseStaffTable parses the first table whose header names at least a name column and an email column.
// Columns are matched by header text, so their order does not matter. Cells are trimmed,
// an empty position becomes nil. CompanyID is left for the caller to fill in.
func ParseStaffTable(in io.Reader) ([]Row, error) {
	doc, err := goquery.NewDocumentFromReader(in)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	var rows []Row
	found := false

	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		columns, headerless, ok := headerColumns(table)
		if !ok {
			return true
		}
		found = true

		line := 0
		table.Find("tr").Each(func(idx int, tr *goquery.Selection) {
			cells := tr.Find("td")
			if cells.Length() == 0 || (headerless && idx == 0) {
				return // header row
			}
			line++

			rows = append(rows, Row{Line: line, Input: rowInput(cells, columns)})
		})

		return false
	})

	if !found {
		return nil, ErrNoStaffTable
	}

	return rows, nil
}

// headerColumns maps column indexes to known columns, using <th> cells or, without them,
// the cells of the first row. headerless reports the latter case.
func headerColumns(table *goquery.Selection) (map[int]string, bool, bool) {
	header := table.Find("tr").FilterFunction(func(_ int, tr *goquery.Selection) bool {
		return tr.Find("th").Length() > 0
	}).First()
	cells := header.Find("th")
	headerless := header.Length() == 0
	if headerless {
		cells = table.Find("tr").First().Find("td")
	}

	columns := make(map[int]string)
	seen := make(map[string]bool)
	cells.Each(func(idx int, cell *goquery.Selection) {
		text := strings.ToLower(strings.Join(strings.Fields(cell.Text()), " "))
		if column, ok := headerAliases[text]; ok && !seen[column] {
			columns[idx] = column
			seen[column] = true
		}
	})

	hasName := seen[colFullName] || (seen[colFirstName] && seen[colLastName])

	return columns, headerless, hasName && seen[colEmail]
}

func rowInput(cells *goquery.Selection, columns map[int]string) models.EmployeeInput {
	var input models.EmployeeInput

	cells.Each(func(idx int, cell *goquery.Selection) {
		column, ok := columns[idx]
		if !ok {
			return
		}
		value := strings.TrimSpace(cell.Text())

		switch column {
		case colFirstName:
			input.FirstName = value
		case colLastName:
			input.LastName = value
		case colFullName:
			if input.FirstName == "" && input.LastName == "" {
				input.FirstName, input.LastName = splitFullName(value)
			}
		case colPosition:
			if value != "" {
				input.Position = &value
			}
		case colEmail:
			input.Email = value
		}
	})

	return input
}

// splitFullName treats the first word as the first name and the rest as the last name.
func splitFullName(fullName string) (string, string) {
	parts := strings.Fields(fullName)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
