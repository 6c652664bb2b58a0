package insurer

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=insurer_repo.go -destination=mock/insurer_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, ins *Insurer) error
	FindAll(ctx context.Context) ([]Insurer, error)
	FindByID(ctx context.Context, id string) (*Insurer, error)
	Update(ctx context.Context, ins *Insurer) error

	CreatePlan(ctx context.Context, plan *Plan) error
	FindPlans(ctx context.Context, insurerID string, status string) ([]Plan, error)
	FindAllPlans(ctx context.Context, status string) ([]Plan, error)
	FindPlanByID(ctx context.Context, id string) (*Plan, error)
	UpdatePlan(ctx context.Context, plan *Plan) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, ins *Insurer) error {
	return r.db.WithContext(ctx).Create(ins).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Insurer, error) {
	var insurers []Insurer
	err := r.db.WithContext(ctx).Order("name ASC").Find(&insurers).Error
	return insurers, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Insurer, error) {
	var ins Insurer
	err := r.db.WithContext(ctx).First(&ins, "id = ?", id).Error
	return &ins, err
}

func (r *repository) Update(ctx context.Context, ins *Insurer) error {
	return r.db.WithContext(ctx).Save(ins).Error
}

func (r *repository) CreatePlan(ctx context.Context, plan *Plan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *repository) FindPlans(ctx context.Context, insurerID string, status string) ([]Plan, error) {
	var plans []Plan
	q := r.db.WithContext(ctx).Where("insurer_id = ?", insurerID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("name ASC").Find(&plans).Error
	return plans, err
}

func (r *repository) FindAllPlans(ctx context.Context, status string) ([]Plan, error) {
	var plans []Plan
	q := r.db.WithContext(ctx)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("name ASC").Find(&plans).Error
	return plans, err
}

func (r *repository) FindPlanByID(ctx context.Context, id string) (*Plan, error) {
	var plan Plan
	err := r.db.WithContext(ctx).First(&plan, "id = ?", id).Error
	return &plan, err
}

func (r *repository) UpdatePlan(ctx context.Context, plan *Plan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}
