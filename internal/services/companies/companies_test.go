package companies_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/UnknownOlympus/hestia/internal/broker"
	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/UnknownOlympus/hestia/internal/services/companies"
	mocks "github.com/UnknownOlympus/hestia/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*companies.Service, *mocks.CompanyRepoIface, *mocks.EventEmitter) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	repo := mocks.NewCompanyRepoIface(t)
	events := mocks.NewEventEmitter(t)

	return companies.NewService(logger, repo, events), repo, events
}

func TestList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)
		expected := []models.Company{{ID: 1, Name: "Acme"}, {ID: 2, Name: "Globex"}}
		repo.On("ListCompanies", ctx).Return(expected, nil).Once()

		actual, err := svc.List(ctx)

		require.NoError(t, err)
		assert.Equal(t, expected, actual)
	})

	t.Run("repository error", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)
		repo.On("ListCompanies", ctx).Return(nil, assert.AnError).Once()

		_, err := svc.List(ctx)

		require.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, "failed to list companies: "+assert.AnError.Error(), err.Error())
	})
}

func TestGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("with employees", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)
		company := models.Company{ID: 1, Name: "Acme"}
		staff := []models.Employee{{ID: 5, FirstName: "Ann", LastName: "Lee", Email: "ann@acme.io", CompanyID: 1}}
		repo.On("GetCompanyByID", ctx, int64(1)).Return(company, nil).Once()
		repo.On("ListEmployeesByCompany", ctx, int64(1)).Return(staff, nil).Once()

		details, err := svc.Get(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, company, details.Company)
		assert.Equal(t, staff, details.Employees)
	})

	t.Run("without employees returns empty list", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)
		repo.On("GetCompanyByID", ctx, int64(2)).Return(models.Company{ID: 2, Name: "Globex"}, nil).Once()
		repo.On("ListEmployeesByCompany", ctx, int64(2)).Return(nil, nil).Once()

		details, err := svc.Get(ctx, 2)

		require.NoError(t, err)
		assert.NotNil(t, details.Employees)
		assert.Empty(t, details.Employees)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)
		repo.On("GetCompanyByID", ctx, int64(9)).Return(models.Company{}, models.ErrNotFound).Once()

		_, err := svc.Get(ctx, 9)

		require.ErrorIs(t, err, models.ErrNotFound)
		repo.AssertNotCalled(t, "ListEmployeesByCompany", mock.Anything, mock.Anything)
	})

	t.Run("employees error", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)
		repo.On("GetCompanyByID", ctx, int64(1)).Return(models.Company{ID: 1, Name: "Acme"}, nil).Once()
		repo.On("ListEmployeesByCompany", ctx, int64(1)).Return(nil, assert.AnError).Once()

		_, err := svc.Get(ctx, 1)

		require.ErrorIs(t, err, assert.AnError)
	})
}

func TestCreate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("trims name and publishes event", func(t *testing.T) {
		t.Parallel()
		svc, repo, events := newService(t)
		now := time.Now()
		created := models.Company{ID: 1, Name: "Acme", CreatedAt: now, UpdatedAt: now}
		repo.On("SaveCompany", ctx, "Acme").Return(created, nil).Once()
		events.On("Emit", ctx, broker.Event{
			Action: broker.ActionCreated, Entity: broker.EntityCompany, ID: 1, Name: "Acme",
		}).Once()

		actual, err := svc.Create(ctx, models.CompanyInput{Name: "  Acme  "})

		require.NoError(t, err)
		assert.Equal(t, created, actual)
	})

	t.Run("blank name", func(t *testing.T) {
		t.Parallel()
		svc, repo, events := newService(t)

		_, err := svc.Create(ctx, models.CompanyInput{Name: "   "})

		require.ErrorIs(t, err, models.ErrInvalidInput)
		assert.Equal(t, "invalid input: name is required", err.Error())
		repo.AssertNotCalled(t, "SaveCompany", mock.Anything, mock.Anything)
		events.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
	})

	t.Run("repository error", func(t *testing.T) {
		t.Parallel()
		svc, repo, events := newService(t)
		repo.On("SaveCompany", ctx, "Acme").Return(models.Company{}, assert.AnError).Once()

		_, err := svc.Create(ctx, models.CompanyInput{Name: "Acme"})

		require.ErrorIs(t, err, assert.AnError)
		events.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
	})
}

func TestUpdate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		svc, repo, events := newService(t)
		updated := models.Company{ID: 1, Name: "Acme Corp"}
		repo.On("UpdateCompany", ctx, int64(1), "Acme Corp").Return(updated, nil).Once()
		events.On("Emit", ctx, mock.MatchedBy(func(event broker.Event) bool {
			return event.Action == broker.ActionUpdated && event.ID == 1 && event.Name == "Acme Corp"
		})).Once()

		actual, err := svc.Update(ctx, 1, models.CompanyInput{Name: "Acme Corp"})

		require.NoError(t, err)
		assert.Equal(t, updated, actual)
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)

		_, err := svc.Update(ctx, 1, models.CompanyInput{Name: ""})

		require.ErrorIs(t, err, models.ErrInvalidInput)
		repo.AssertNotCalled(t, "UpdateCompany", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		svc, repo, events := newService(t)
		repo.On("UpdateCompany", ctx, int64(7), "Acme").Return(models.Company{}, models.ErrNotFound).Once()

		_, err := svc.Update(ctx, 7, models.CompanyInput{Name: "Acme"})

		require.ErrorIs(t, err, models.ErrNotFound)
		events.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
	})
}

func TestDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		svc, repo, events := newService(t)
		repo.On("GetCompanyByID", ctx, int64(1)).Return(models.Company{ID: 1, Name: "Acme"}, nil).Once()
		repo.On("DeleteCompany", ctx, int64(1)).Return(nil).Once()
		events.On("Emit", ctx, broker.Event{
			Action: broker.ActionDeleted, Entity: broker.EntityCompany, ID: 1, Name: "Acme",
		}).Once()

		require.NoError(t, svc.Delete(ctx, 1))
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)
		repo.On("GetCompanyByID", ctx, int64(9)).Return(models.Company{}, models.ErrNotFound).Once()

		err := svc.Delete(ctx, 9)

		require.ErrorIs(t, err, models.ErrNotFound)
		repo.AssertNotCalled(t, "DeleteCompany", mock.Anything, mock.Anything)
	})

	t.Run("has employees", func(t *testing.T) {
		t.Parallel()
		svc, repo, events := newService(t)
		repo.On("GetCompanyByID", ctx, int64(1)).Return(models.Company{ID: 1, Name: "Acme"}, nil).Once()
		repo.On("DeleteCompany", ctx, int64(1)).Return(models.ErrCompanyHasEmployees).Once()

		err := svc.Delete(ctx, 1)

		require.ErrorIs(t, err, models.ErrConflict)
		events.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
	})
}
