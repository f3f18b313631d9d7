package models

import "time"

// Employee represents an employee entity. Every employee belongs to exactly one company.
type Employee struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Position    *string   `json:"position"`
	Email       string    `json:"email"`
	CompanyID   int64     `json:"companyId"`
	CompanyName string    `json:"companyName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// EmployeeInput is the body accepted when creating an employee.
type EmployeeInput struct {
	FirstName string  `json:"firstName" validate:"required,max=100"`
	LastName  string  `json:"lastName"  validate:"required,max=100"`
	Position  *string `json:"position"  validate:"omitempty,max=100"`
	Email     string  `json:"email"     validate:"required,email,max=255"`
	CompanyID int64   `json:"companyId" validate:"required,gt=0"`
}

// EmployeeUpdate is the body accepted when updating an employee.
// A nil Position keeps the stored value, an empty one clears it.
type EmployeeUpdate struct {
	FirstName string  `json:"firstName" validate:"required,max=100"`
	LastName  string  `json:"lastName"  validate:"required,max=100"`
	Position  *string `json:"position"  validate:"omitempty,max=100"`
	Email     string  `json:"email"     validate:"required,email,max=255"`
}
