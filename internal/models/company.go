package models

import "time"

// Company represents a company entity.
type Company struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CompanyDetails is a company together with all of its employees.
type CompanyDetails struct {
	Company

	Employees []Employee `json:"employees"`
}

// CompanyInput is the body accepted when creating or renaming a company.
type CompanyInput struct {
	Name string `json:"name" validate:"required,max=255"`
}
