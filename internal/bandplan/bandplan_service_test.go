package bandplan_test

import (
	"context"
	"database/sql"
	"testing"

	"insuregate/internal/bandplan"
	bandplanerrors "insuregate/internal/bandplan/errors"
	"insuregate/internal/insurer"
	"insuregate/internal/salaryband"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeMappingRepository struct {
	upsertFn        func(ctx context.Context, mapping *bandplan.BandPlanMapping) error
	listWithNamesFn func(ctx context.Context, organizationID string) ([]bandplan.MappingRow, error)
	findByBandFn    func(ctx context.Context, organizationID, bandID string) (*bandplan.BandPlanMapping, error)
	deleteFn        func(ctx context.Context, organizationID, id string) (int64, error)
	resolveFn       func(ctx context.Context, organizationID string, salary float64) (*bandplan.ResolvedPlan, error)
}

func (f *fakeMappingRepository) Upsert(ctx context.Context, mapping *bandplan.BandPlanMapping) error {
	if f.upsertFn != nil {
		return f.upsertFn(ctx, mapping)
	}
	return nil
}

func (f *fakeMappingRepository) ListWithNames(ctx context.Context, organizationID string) ([]bandplan.MappingRow, error) {
	if f.listWithNamesFn != nil {
		return f.listWithNamesFn(ctx, organizationID)
	}
	return nil, nil
}

func (f *fakeMappingRepository) FindByBand(ctx context.Context, organizationID, bandID string) (*bandplan.BandPlanMapping, error) {
	if f.findByBandFn != nil {
		return f.findByBandFn(ctx, organizationID, bandID)
	}
	return &bandplan.BandPlanMapping{}, nil
}

func (f *fakeMappingRepository) Delete(ctx context.Context, organizationID, id string) (int64, error) {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, organizationID, id)
	}
	return 1, nil
}

func (f *fakeMappingRepository) ResolveForSalary(ctx context.Context, organizationID string, salary float64) (*bandplan.ResolvedPlan, error) {
	if f.resolveFn != nil {
		return f.resolveFn(ctx, organizationID, salary)
	}
	return nil, nil
}

type fakeBandRepository struct {
	findByIDFn func(ctx context.Context, organizationID, id string) (*salaryband.SalaryBand, error)
}

func (f *fakeBandRepository) WithTx(tx *sql.Tx) salaryband.Repository { return f }
func (f *fakeBandRepository) Create(ctx context.Context, band *salaryband.SalaryBand) error {
	return nil
}
func (f *fakeBandRepository) FindAll(ctx context.Context, organizationID string) ([]salaryband.SalaryBand, error) {
	return nil, nil
}
func (f *fakeBandRepository) FindByID(ctx context.Context, organizationID, id string) (*salaryband.SalaryBand, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, organizationID, id)
	}
	return &salaryband.SalaryBand{ID: uuid.New()}, nil
}
func (f *fakeBandRepository) Update(ctx context.Context, band *salaryband.SalaryBand) error {
	return nil
}
func (f *fakeBandRepository) Delete(ctx context.Context, organizationID, id string) (int64, error) {
	return 0, nil
}
func (f *fakeBandRepository) CountOverlapping(ctx context.Context, organizationID string, min, max float64, excludeID string) (int64, error) {
	return 0, nil
}
func (f *fakeBandRepository) HasMappings(ctx context.Context, organizationID, bandID string) (bool, error) {
	return false, nil
}

type fakeInsurerRepository struct {
	findPlanByIDFn func(ctx context.Context, id string) (*insurer.Plan, error)
}

func (f *fakeInsurerRepository) Create(ctx context.Context, ins *insurer.Insurer) error { return nil }
func (f *fakeInsurerRepository) FindAll(ctx context.Context) ([]insurer.Insurer, error) {
	return nil, nil
}
func (f *fakeInsurerRepository) FindByID(ctx context.Context, id string) (*insurer.Insurer, error) {
	return &insurer.Insurer{}, nil
}
func (f *fakeInsurerRepository) Update(ctx context.Context, ins *insurer.Insurer) error { return nil }
func (f *fakeInsurerRepository) CreatePlan(ctx context.Context, plan *insurer.Plan) error {
	return nil
}
func (f *fakeInsurerRepository) FindPlans(ctx context.Context, insurerID string, status string) ([]insurer.Plan, error) {
	return nil, nil
}
func (f *fakeInsurerRepository) FindAllPlans(ctx context.Context, status string) ([]insurer.Plan, error) {
	return nil, nil
}
func (f *fakeInsurerRepository) FindPlanByID(ctx context.Context, id string) (*insurer.Plan, error) {
	if f.findPlanByIDFn != nil {
		return f.findPlanByIDFn(ctx, id)
	}
	return &insurer.Plan{ID: uuid.New(), Status: insurer.StatusActive}, nil
}
func (f *fakeInsurerRepository) UpdatePlan(ctx context.Context, plan *insurer.Plan) error {
	return nil
}

const testOrgID = "7b9f2a6e-1df2-4b3a-8f25-52a4d6c2ff01"

func validAssignRequest() bandplan.AssignPlanRequest {
	return bandplan.AssignPlanRequest{
		SalaryBandID: uuid.NewString(),
		PlanID:       uuid.NewString(),
	}
}

func TestAssign_BandNotFound(t *testing.T) {
	bands := &fakeBandRepository{
		findByIDFn: func(ctx context.Context, organizationID, id string) (*salaryband.SalaryBand, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	service := bandplan.NewService(&fakeMappingRepository{}, bands, &fakeInsurerRepository{})

	_, err := service.Assign(context.Background(), testOrgID, validAssignRequest())
	assert.ErrorIs(t, err, bandplanerrors.ErrBandNotFound)
}

func TestAssign_InactivePlanRejected(t *testing.T) {
	insurers := &fakeInsurerRepository{
		findPlanByIDFn: func(ctx context.Context, id string) (*insurer.Plan, error) {
			return &insurer.Plan{ID: uuid.New(), Status: insurer.StatusInactive}, nil
		},
	}
	service := bandplan.NewService(&fakeMappingRepository{}, &fakeBandRepository{}, insurers)

	_, err := service.Assign(context.Background(), testOrgID, validAssignRequest())
	assert.ErrorIs(t, err, bandplanerrors.ErrPlanInactive)
}

func TestAssign_UpsertsDefaultMapping(t *testing.T) {
	bandID := uuid.New()
	planID := uuid.New()

	var upserted *bandplan.BandPlanMapping
	mappings := &fakeMappingRepository{
		upsertFn: func(ctx context.Context, mapping *bandplan.BandPlanMapping) error {
			upserted = mapping
			return nil
		},
		findByBandFn: func(ctx context.Context, organizationID, bid string) (*bandplan.BandPlanMapping, error) {
			return &bandplan.BandPlanMapping{
				ID:           uuid.New(),
				SalaryBandID: bandID,
				PlanID:       planID,
				IsDefault:    true,
			}, nil
		},
	}
	bands := &fakeBandRepository{
		findByIDFn: func(ctx context.Context, organizationID, id string) (*salaryband.SalaryBand, error) {
			return &salaryband.SalaryBand{ID: bandID, Name: "Band B"}, nil
		},
	}
	insurers := &fakeInsurerRepository{
		findPlanByIDFn: func(ctx context.Context, id string) (*insurer.Plan, error) {
			return &insurer.Plan{ID: planID, Name: "Silver", Status: insurer.StatusActive}, nil
		},
	}
	service := bandplan.NewService(mappings, bands, insurers)

	resp, err := service.Assign(context.Background(), testOrgID, validAssignRequest())

	assert.NoError(t, err)
	assert.NotNil(t, upserted)
	assert.True(t, upserted.IsDefault)
	assert.Equal(t, bandID, upserted.SalaryBandID)
	assert.Equal(t, planID, upserted.PlanID)
	assert.Equal(t, "Band B", resp.BandName)
	assert.Equal(t, "Silver", resp.PlanName)
}

func TestResolvePlan_UncoveredSalaryIsNotAnError(t *testing.T) {
	mappings := &fakeMappingRepository{
		resolveFn: func(ctx context.Context, organizationID string, salary float64) (*bandplan.ResolvedPlan, error) {
			return nil, nil
		},
	}
	service := bandplan.NewService(mappings, &fakeBandRepository{}, &fakeInsurerRepository{})

	resolved, err := service.ResolvePlan(context.Background(), testOrgID, 99999)

	assert.NoError(t, err)
	assert.Nil(t, resolved)
}

func TestUnassign_NotFound(t *testing.T) {
	mappings := &fakeMappingRepository{
		deleteFn: func(ctx context.Context, organizationID, id string) (int64, error) {
			return 0, nil
		},
	}
	service := bandplan.NewService(mappings, &fakeBandRepository{}, &fakeInsurerRepository{})

	err := service.Unassign(context.Background(), testOrgID, "missing")
	assert.ErrorIs(t, err, bandplanerrors.ErrMappingNotFound)
}
