package salaryband_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"insuregate/internal/salaryband"
	salarybanderrors "insuregate/internal/salaryband/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

type fakeBandRepository struct {
	withTxFn           func(tx *sql.Tx) salaryband.Repository
	createFn           func(ctx context.Context, band *salaryband.SalaryBand) error
	findAllFn          func(ctx context.Context, organizationID string) ([]salaryband.SalaryBand, error)
	findByIDFn         func(ctx context.Context, organizationID, id string) (*salaryband.SalaryBand, error)
	updateFn           func(ctx context.Context, band *salaryband.SalaryBand) error
	deleteFn           func(ctx context.Context, organizationID, id string) (int64, error)
	countOverlappingFn func(ctx context.Context, organizationID string, min, max float64, excludeID string) (int64, error)
	hasMappingsFn      func(ctx context.Context, organizationID, bandID string) (bool, error)
}

func (f *fakeBandRepository) WithTx(tx *sql.Tx) salaryband.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeBandRepository) Create(ctx context.Context, band *salaryband.SalaryBand) error {
	if f.createFn != nil {
		return f.createFn(ctx, band)
	}
	return nil
}

func (f *fakeBandRepository) FindAll(ctx context.Context, organizationID string) ([]salaryband.SalaryBand, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, organizationID)
	}
	return nil, nil
}

func (f *fakeBandRepository) FindByID(ctx context.Context, organizationID, id string) (*salaryband.SalaryBand, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, organizationID, id)
	}
	return nil, nil
}

func (f *fakeBandRepository) Update(ctx context.Context, band *salaryband.SalaryBand) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, band)
	}
	return nil
}

func (f *fakeBandRepository) Delete(ctx context.Context, organizationID, id string) (int64, error) {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, organizationID, id)
	}
	return 1, nil
}

func (f *fakeBandRepository) CountOverlapping(ctx context.Context, organizationID string, min, max float64, excludeID string) (int64, error) {
	if f.countOverlappingFn != nil {
		return f.countOverlappingFn(ctx, organizationID, min, max, excludeID)
	}
	return 0, nil
}

func (f *fakeBandRepository) HasMappings(ctx context.Context, organizationID, bandID string) (bool, error) {
	if f.hasMappingsFn != nil {
		return f.hasMappingsFn(ctx, organizationID, bandID)
	}
	return false, nil
}

const testOrgID = "7b9f2a6e-1df2-4b3a-8f25-52a4d6c2ff01"

func setupBandServiceTest(t *testing.T, repo *fakeBandRepository) (salaryband.Service, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return salaryband.NewService(repo, db), mock
}

func TestSalaryBandCreate_RejectsInvertedRange(t *testing.T) {
	repo := &fakeBandRepository{}
	service, _ := setupBandServiceTest(t, repo)

	_, err := service.Create(context.Background(), testOrgID, salaryband.CreateSalaryBandRequest{
		Name:      "Band A",
		MinSalary: 5000,
		MaxSalary: 5000,
	})

	assert.ErrorIs(t, err, salarybanderrors.ErrInvalidSalaryRange)
}

func TestSalaryBandCreate_RejectsOverlap(t *testing.T) {
	repo := &fakeBandRepository{
		countOverlappingFn: func(ctx context.Context, organizationID string, min, max float64, excludeID string) (int64, error) {
			assert.Equal(t, "", excludeID)
			return 1, nil
		},
		createFn: func(ctx context.Context, band *salaryband.SalaryBand) error {
			t.Fatal("create must not run when an overlap exists")
			return nil
		},
	}
	service, mock := setupBandServiceTest(t, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := service.Create(context.Background(), testOrgID, salaryband.CreateSalaryBandRequest{
		Name:      "Band B",
		MinSalary: 1000,
		MaxSalary: 2000,
	})

	assert.ErrorIs(t, err, salarybanderrors.ErrOverlappingBand)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalaryBandCreate_Success(t *testing.T) {
	created := false
	repo := &fakeBandRepository{
		createFn: func(ctx context.Context, band *salaryband.SalaryBand) error {
			created = true
			assert.Equal(t, testOrgID, band.OrganizationID.String())
			assert.Equal(t, 1000.0, band.MinSalary)
			assert.Equal(t, 2000.0, band.MaxSalary)
			return nil
		},
	}
	service, mock := setupBandServiceTest(t, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := service.Create(context.Background(), testOrgID, salaryband.CreateSalaryBandRequest{
		Name:      "Band B",
		MinSalary: 1000,
		MaxSalary: 2000,
	})

	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Band B", resp.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalaryBandUpdate_ExcludesSelfFromOverlapCheck(t *testing.T) {
	bandID := "a3f1c8d0-9e21-47c1-90d4-1ab2cd34ef56"
	repo := &fakeBandRepository{
		findByIDFn: func(ctx context.Context, organizationID, id string) (*salaryband.SalaryBand, error) {
			band := &salaryband.SalaryBand{Name: "Old", MinSalary: 1000, MaxSalary: 2000}
			return band, nil
		},
		countOverlappingFn: func(ctx context.Context, organizationID string, min, max float64, excludeID string) (int64, error) {
			assert.Equal(t, bandID, excludeID)
			return 0, nil
		},
	}
	service, mock := setupBandServiceTest(t, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := service.Update(context.Background(), testOrgID, bandID, salaryband.UpdateSalaryBandRequest{
		Name:      "Band B wide",
		MinSalary: 900,
		MaxSalary: 2100,
	})

	assert.NoError(t, err)
	assert.Equal(t, 900.0, resp.MinSalary)
	assert.Equal(t, 2100.0, resp.MaxSalary)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalaryBandDelete_BlockedByMappings(t *testing.T) {
	repo := &fakeBandRepository{
		hasMappingsFn: func(ctx context.Context, organizationID, bandID string) (bool, error) {
			return true, nil
		},
		deleteFn: func(ctx context.Context, organizationID, id string) (int64, error) {
			t.Fatal("delete must not run when mappings exist")
			return 0, nil
		},
	}
	service, _ := setupBandServiceTest(t, repo)

	err := service.Delete(context.Background(), testOrgID, "band-1")
	assert.ErrorIs(t, err, salarybanderrors.ErrBandHasDependents)
}

func TestSalaryBandDelete_NotFound(t *testing.T) {
	repo := &fakeBandRepository{
		deleteFn: func(ctx context.Context, organizationID, id string) (int64, error) {
			return 0, nil
		},
	}
	service, _ := setupBandServiceTest(t, repo)

	err := service.Delete(context.Background(), testOrgID, "missing")
	assert.ErrorIs(t, err, salarybanderrors.ErrSalaryBandNotFound)
}

func TestSalaryBandCreate_RepoErrorRollsBack(t *testing.T) {
	boom := errors.New("insert failed")
	repo := &fakeBandRepository{
		createFn: func(ctx context.Context, band *salaryband.SalaryBand) error {
			return boom
		},
	}
	service, mock := setupBandServiceTest(t, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := service.Create(context.Background(), testOrgID, salaryband.CreateSalaryBandRequest{
		Name:      "Band C",
		MinSalary: 3000,
		MaxSalary: 4000,
	})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
