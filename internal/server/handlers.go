package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/gorilla/mux"
)

// CompanyService is implemented by companies.Service.
type CompanyService interface {
	List(ctx context.Context) ([]models.Company, error)
	Get(ctx context.Context, identifier int64) (models.CompanyDetails, error)
	Create(ctx context.Context, input models.CompanyInput) (models.Company, error)
	Update(ctx context.Context, identifier int64, input models.CompanyInput) (models.Company, error)
	Delete(ctx context.Context, identifier int64) error
}

// EmployeeService is implemented by employees.Staff.
type EmployeeService interface {
	List(ctx context.Context) ([]models.Employee, error)
	Get(ctx context.Context, identifier int64) (models.Employee, error)
	Create(ctx context.Context, input models.EmployeeInput) (models.Employee, error)
	Update(ctx context.Context, identifier int64, input models.EmployeeUpdate) (models.Employee, error)
	Delete(ctx context.Context, identifier int64) error
}

// parseID reads the {id} path variable. Identifiers are positive integers.
func parseID(req *http.Request, entity string) (int64, error) {
	identifier, err := strconv.ParseInt(mux.Vars(req)["id"], 10, 64)
	if err != nil || identifier <= 0 {
		return 0, fmt.Errorf("%w: invalid %s id", models.ErrInvalidInput, entity)
	}

	return identifier, nil
}

type companyHandler struct {
	log     *slog.Logger
	service CompanyService
}

func (h *companyHandler) list(writer http.ResponseWriter, req *http.Request) {
	companies, err := h.service.List(req.Context())
	if err != nil {
		writeError(h.log, writer, req, err)
		return
	}

	writeJSON(h.log, writer, req, http.StatusOK, companies)
}

func (h *companyHandler) get(writer http.ResponseWriter, req *http.Request) {
	identifier, err := parseID(req, "company")
	if err != nil {
		writeError(h.log, writer, req, err)
		return
	}

	details, err := h.service.Get(req.Context(), identifier)
	if err != nil {
		writeError(h.log, writer, req, err)
		return
	}

	writeJSON(h.log, writer, req, http.StatusOK, details)
}

func (h *companyHandler) create(writer http.ResponseWriter, req *http.Request) {
	var input models.CompanyInput
	if err := decodeStrict(writer, req, &input); err != nil {
		writeError(h.log, writer, req, err)
		return
	}

	company, err := h.service.Create(req.Context(), input)
	if err != nil {
		writeError(h.log, writer, req, err)
		return
	}

	writeJSON(h.log, writer, req, http.StatusCreated, company)
}

func (h *companyHandler) update(writer http.ResponseWriter, req *http.Request) {
	identifier, err := parseID(req, "company")
	if err != nil {
		writeError(h.log, writer, req, err)
		return
	}

	var input models.CompanyInput
	if err = decodeStrict(writer, req, &input); err != nil {
		writeError(h.log, writer, req, err)
		return
	}

	company, err := h.service.Update(req.Context(), identifier, input)
	if err != nil {
		writeError(h.log, writer, req, err)
		return
	}

	writeJSON(h.log, writer, req, http.StatusOK, company)
}

func (h *companyHandler) delete(writer http.ResponseWriter, req *http.Request) {
	identifier, err := parseID(req, "company")
	if err != nil {
		writeError(h.log, writer, req, err)
		return
	}

	if err = h.service.Delete(req.Context(), identifier); err != nil {
		writeError(h.log, writer, req, err)
		return
	}

	writer.WriteHeader(http.StatusNoContent)
}

type employeeHandler struct {
	log     *slog.Logger
	service EmployeeService
}

func (h *employeeHandler) list(writer http.ResponseWriter, req *http.Request) {
	employees, err := h.service.List(req.Context())
	if err != nil {
		writeError(h.log, writer, req, err)
		return
	}

	writeJSON(h.log, writer, req, http.StatusOK, employees)
}

func (h *employeeHandler) get(writer http.ResponseWriter, req *http.Request) {
	identifier, err := parseID(req, "employee")
	if err != nil {
		writeError(h.log, writer, req, err)
		return
	}

	employee, err := h.service.Get(req.Context(), identifier)
	if err != nil {
		writeError(h.log, writer, req, err)
		return
	}

	writeJSON(h.log, writer, req, http.StatusOK, employee)
}

func (h *employeeHandler) create(writer http.ResponseWriter, req *http.Request) {
	var input models.EmployeeInput
	if err := decodeStrict(writer, req, &input); err != nil {
		writeError(h.log, writer, req, err)
		return
	}

	employee, err := h.service.Create(req.Context(), input)
	if err != nil {
		writeError(h.log, writer, req, err)
		return
	}

	writeJSON(h.log, writer, req, http.StatusCreated, employee)
}

func (h *employeeHandler) update(writer http.ResponseWriter, req *http.Request) {
	identifier, err := parseID(req, "employee")
	if err != nil {
		writeError(h.log, writer, req, err)
		return
	}

	var input models.EmployeeUpdate
	if err = decodeStrict(writer, req, &input); err != nil {
		writeError(h.log, writer, req, err)
		return
	}

	employee, err := h.service.Update(req.Context(), identifier, input)
	if err != nil {
		writeError(h.log, writer, req, err)
		return
	}

	writeJSON(h.log, writer, req, http.StatusOK, employee)
}

func (h *employeeHandler) delete(writer http.ResponseWriter, req *http.Request) {
	identifier, err := parseID(req, "employee")
	if err != nil {
		writeError(h.log, writer, req, err)
		return
	}

	if err = h.service.Delete(req.Context(), identifier); err != nil {
		writeError(h.log, writer, req, err)
		return
	}

	writer.WriteHeader(http.StatusNoContent)
}
