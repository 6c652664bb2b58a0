package insurer_test

import (
	"context"
	"testing"

	"insuregate/internal/insurer"
	insurererrors "insuregate/internal/insurer/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeInsurerRepository struct {
	createFn       func(ctx context.Context, ins *insurer.Insurer) error
	findByIDFn     func(ctx context.Context, id string) (*insurer.Insurer, error)
	createPlanFn   func(ctx context.Context, plan *insurer.Plan) error
	findPlanByIDFn func(ctx context.Context, id string) (*insurer.Plan, error)
}

func (f *fakeInsurerRepository) Create(ctx context.Context, ins *insurer.Insurer) error {
	if f.createFn != nil {
		return f.createFn(ctx, ins)
	}
	return nil
}

func (f *fakeInsurerRepository) FindAll(ctx context.Context) ([]insurer.Insurer, error) {
	return nil, nil
}

func (f *fakeInsurerRepository) FindByID(ctx context.Context, id string) (*insurer.Insurer, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return &insurer.Insurer{ID: uuid.New(), Name: "Aegis Life"}, nil
}

func (f *fakeInsurerRepository) Update(ctx context.Context, ins *insurer.Insurer) error { return nil }

func (f *fakeInsurerRepository) CreatePlan(ctx context.Context, plan *insurer.Plan) error {
	if f.createPlanFn != nil {
		return f.createPlanFn(ctx, plan)
	}
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
	return &insurer.Plan{}, nil
}

func (f *fakeInsurerRepository) UpdatePlan(ctx context.Context, plan *insurer.Plan) error {
	return nil
}

func TestInsurerCreate_UppercasesCode(t *testing.T) {
	var created *insurer.Insurer
	repo := &fakeInsurerRepository{
		createFn: func(ctx context.Context, ins *insurer.Insurer) error {
			created = ins
			return nil
		},
	}
	service := insurer.NewService(repo)

	resp, err := service.Create(context.Background(), insurer.CreateInsurerRequest{
		Name: "Aegis Life",
		Code: "aegis",
	})

	assert.NoError(t, err)
	assert.Equal(t, "AEGIS", created.Code)
	assert.Equal(t, insurer.StatusActive, created.Status)
	assert.Equal(t, "AEGIS", resp.Code)
}

func TestCreatePlan_UnknownInsurer(t *testing.T) {
	repo := &fakeInsurerRepository{
		findByIDFn: func(ctx context.Context, id string) (*insurer.Insurer, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	service := insurer.NewService(repo)

	_, err := service.CreatePlan(context.Background(), "missing", insurer.CreatePlanRequest{
		Name:           "Silver",
		Code:           "slv",
		BasePremium:    500,
		CoverageAmount: 100000,
	})

	assert.ErrorIs(t, err, insurererrors.ErrInsurerNotFound)
}

func TestCreatePlan_CarriesInsurerName(t *testing.T) {
	insurerID := uuid.New()
	repo := &fakeInsurerRepository{
		findByIDFn: func(ctx context.Context, id string) (*insurer.Insurer, error) {
			return &insurer.Insurer{ID: insurerID, Name: "Aegis Life"}, nil
		},
	}
	service := insurer.NewService(repo)

	resp, err := service.CreatePlan(context.Background(), insurerID.String(), insurer.CreatePlanRequest{
		Name:           "Silver",
		Code:           "slv",
		BasePremium:    500,
		CoverageAmount: 100000,
	})

	assert.NoError(t, err)
	assert.Equal(t, "SLV", resp.Code)
	assert.Equal(t, "Aegis Life", resp.InsurerName)
	assert.Equal(t, insurerID.String(), resp.InsurerID)
}
