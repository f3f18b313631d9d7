package models

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")

	ErrUnknownCompany      = fmt.Errorf("%w: company does not exist", ErrInvalidInput)
	ErrCompanyHasEmployees = fmt.Errorf("%w: company still has employees", ErrConflict)
)
