//go:build integration

package server_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/UnknownOlympus/hestia/internal/broker"
	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/UnknownOlympus/hestia/internal/repository"
	"github.com/UnknownOlympus/hestia/internal/server"
	"github.com/UnknownOlympus/hestia/internal/services/companies"
	"github.com/UnknownOlympus/hestia/internal/services/employees"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

// Run with: go test -tags=integration ./internal/server -run TestAPI_Integration -count=1
func TestAPI_Integration(t *testing.T) {
	ctx := context.Background()

	pgC, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("hestia"),
		postgres.WithUsername("hestia"),
		postgres.WithPassword("hestia"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, pgC)
	require.NoError(t, err)

	dsn, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := repository.NewDatabaseFromURL(dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, goose.SetDialect("postgres"))
	sqlDB := stdlib.OpenDBFromPool(pool)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, goose.Up(sqlDB, "../../migrations"))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	appMetrics := metrics.NewMetrics(reg)
	emitter := broker.NewEmitter(broker.NoopPublisher{}, logger, appMetrics)

	ts := httptest.NewServer(server.NewRouter(server.Options{
		Log:            logger,
		Metrics:        appMetrics,
		Gatherer:       reg,
		Companies:      companies.NewService(logger, repository.NewCompanyRepository(pool, appMetrics), emitter),
		Employees:      employees.NewStaff(logger, repository.NewEmployeeRepository(pool, appMetrics), emitter),
		Health:         server.NewHealthChecker(map[string]server.Pinger{"database": pool}, logger),
		RequestTimeout: 5 * time.Second,
	}))
	t.Cleanup(ts.Close)

	call := func(method, path, body string, out any) int {
		t.Helper()

		var reader io.Reader
		if body != "" {
			reader = strings.NewReader(body)
		}
		req, reqErr := http.NewRequestWithContext(ctx, method, ts.URL+path, reader)
		require.NoError(t, reqErr)

		resp, doErr := ts.Client().Do(req)
		require.NoError(t, doErr)
		defer resp.Body.Close()

		if out != nil {
			require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
		}

		return resp.StatusCode
	}

	// company lifecycle
	var acme models.Company
	require.Equal(t, http.StatusCreated, call(http.MethodPost, "/companies", `{"name":"  Acme "}`, &acme))
	assert.Positive(t, acme.ID)
	assert.Equal(t, "Acme", acme.Name)

	var ann models.Employee
	require.Equal(t, http.StatusCreated, call(http.MethodPost, "/employees",
		fmt.Sprintf(`{"firstName":"Ann","lastName":"Lee","position":"Engineer","email":"ann@acme.io","companyId":%d}`, acme.ID),
		&ann))
	assert.Positive(t, ann.ID)
	assert.Equal(t, "Acme", ann.CompanyName)

	var fetched models.Employee
	require.Equal(t, http.StatusOK, call(http.MethodGet, fmt.Sprintf("/employees/%d", ann.ID), "", &fetched))
	assert.Equal(t, ann.ID, fetched.ID)
	assert.Equal(t, ann.FirstName, fetched.FirstName)
	assert.Equal(t, ann.Position, fetched.Position)
	assert.Equal(t, ann.CompanyName, fetched.CompanyName)
	assert.True(t, ann.CreatedAt.Equal(fetched.CreatedAt))

	var details models.CompanyDetails
	require.Equal(t, http.StatusOK, call(http.MethodGet, fmt.Sprintf("/companies/%d", acme.ID), "", &details))
	require.Len(t, details.Employees, 1)
	assert.Equal(t, ann.ID, details.Employees[0].ID)

	var list []models.Employee
	require.Equal(t, http.StatusOK, call(http.MethodGet, "/employees", "", &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Acme", list[0].CompanyName)

	// omitted position keeps the stored one, company never changes
	var updated models.Employee
	require.Equal(t, http.StatusOK, call(http.MethodPut, fmt.Sprintf("/employees/%d", ann.ID),
		`{"firstName":"Ann","lastName":"Kim","email":"ann@acme.io"}`, &updated))
	assert.Equal(t, "Kim", updated.LastName)
	require.NotNil(t, updated.Position)
	assert.Equal(t, "Engineer", *updated.Position)
	assert.Equal(t, acme.ID, updated.CompanyID)

	// empty position clears it
	require.Equal(t, http.StatusOK, call(http.MethodPut, fmt.Sprintf("/employees/%d", ann.ID),
		`{"firstName":"Ann","lastName":"Kim","position":"","email":"ann@acme.io"}`, &updated))
	assert.Nil(t, updated.Position)

	// rejections
	assert.Equal(t, http.StatusBadRequest, call(http.MethodPut, fmt.Sprintf("/companies/%d", acme.ID), `{"name":""}`, nil))
	assert.Equal(t, http.StatusBadRequest, call(http.MethodPost, "/employees",
		`{"firstName":"Bob","lastName":"Ray","email":"bob@acme.io","companyId":999999}`, nil))
	assert.Equal(t, http.StatusNotFound, call(http.MethodPut, "/companies/999999", `{"name":"Ghost"}`, nil))
	assert.Equal(t, http.StatusConflict, call(http.MethodDelete, fmt.Sprintf("/companies/%d", acme.ID), "", nil))

	// identifiers beyond the int4 range still resolve to missing rows
	const wide = "2147483648"
	assert.Equal(t, http.StatusNotFound, call(http.MethodGet, "/companies/"+wide, "", nil))
	assert.Equal(t, http.StatusNotFound, call(http.MethodPut, "/companies/"+wide, `{"name":"Ghost"}`, nil))
	assert.Equal(t, http.StatusNotFound, call(http.MethodDelete, "/companies/"+wide, "", nil))
	assert.Equal(t, http.StatusNotFound, call(http.MethodGet, "/employees/"+wide, "", nil))
	assert.Equal(t, http.StatusNotFound, call(http.MethodPut, "/employees/"+wide,
		`{"firstName":"Ann","lastName":"Lee","email":"ann@acme.io"}`, nil))
	assert.Equal(t, http.StatusNotFound, call(http.MethodDelete, "/employees/"+wide, "", nil))
	assert.Equal(t, http.StatusNotFound, call(http.MethodGet, "/companies/9223372036854775807", "", nil))
	assert.Equal(t, http.StatusBadRequest, call(http.MethodPost, "/employees",
		`{"firstName":"Bob","lastName":"Ray","email":"bob@acme.io","companyId":`+wide+`}`, nil))

	// teardown through the API
	assert.Equal(t, http.StatusNoContent, call(http.MethodDelete, fmt.Sprintf("/employees/%d", ann.ID), "", nil))
	assert.Equal(t, http.StatusNotFound, call(http.MethodGet, fmt.Sprintf("/employees/%d", ann.ID), "", nil))
	assert.Equal(t, http.StatusNotFound, call(http.MethodDelete, fmt.Sprintf("/employees/%d", ann.ID), "", nil))
	assert.Equal(t, http.StatusNoContent, call(http.MethodDelete, fmt.Sprintf("/companies/%d", acme.ID), "", nil))
	assert.Equal(t, http.StatusNotFound, call(http.MethodGet, fmt.Sprintf("/companies/%d", acme.ID), "", nil))

	var companiesLeft []models.Company
	require.Equal(t, http.StatusOK, call(http.MethodGet, "/companies", "", &companiesLeft))
	assert.Empty(t, companiesLeft)

	var health map[string]string
	require.Equal(t, http.StatusOK, call(http.MethodGet, "/healthz", "", &health))
	assert.Equal(t, map[string]string{"database": "ok"}, health)
}
