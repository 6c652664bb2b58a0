package insurer

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, req CreateInsurerRequest) (*InsurerResponse, error)
	List(ctx context.Context) ([]InsurerResponse, error)
	Get(ctx context.Context, id string) (*InsurerResponse, error)
	Update(ctx context.Context, id string, req UpdateInsurerRequest) (*InsurerResponse, error)

	CreatePlan(ctx context.Context, insurerID string, req CreatePlanRequest) (*PlanResponse, error)
	ListPlans(ctx context.Context, insurerID string, status string) ([]PlanResponse, error)
	ListAllPlans(ctx context.Context, status string) ([]PlanResponse, error)
	GetPlan(ctx context.Context, id string) (*PlanResponse, error)
	UpdatePlan(ctx context.Context, id string, req UpdatePlanRequest) (*PlanResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository) Service {
	return &service{
		repo:   repo,
		logger: zap.L().Named("insurer_service"),
	}
}

func (s *service) Create(ctx context.Context, req CreateInsurerRequest) (*InsurerResponse, error) {
	ins := &Insurer{
		ID:         uuid.New(),
		Name:       req.Name,
		Code:       strings.ToUpper(req.Code),
		LogoURL:    req.LogoURL,
		APIBaseURL: req.APIBaseURL,
		Status:     StatusActive,
	}

	if err := s.repo.Create(ctx, ins); err != nil {
		return nil, mapInsurerError(err)
	}

	s.logger.Info("insurer created",
		zap.String("insurer_id", ins.ID.String()),
		zap.String("code", ins.Code),
	)

	return toInsurerResponse(ins), nil
}

func (s *service) List(ctx context.Context) ([]InsurerResponse, error) {
	insurers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapInsurerError(err)
	}

	resp := make([]InsurerResponse, 0, len(insurers))
	for i := range insurers {
		resp = append(resp, *toInsurerResponse(&insurers[i]))
	}
	return resp, nil
}

func (s *service) Get(ctx context.Context, id string) (*InsurerResponse, error) {
	ins, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapInsurerError(err)
	}
	return toInsurerResponse(ins), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateInsurerRequest) (*InsurerResponse, error) {
	ins, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapInsurerError(err)
	}

	ins.Name = req.Name
	ins.LogoURL = req.LogoURL
	ins.APIBaseURL = req.APIBaseURL
	ins.Status = req.Status

	if err := s.repo.Update(ctx, ins); err != nil {
		return nil, mapInsurerError(err)
	}

	return toInsurerResponse(ins), nil
}

func (s *service) CreatePlan(ctx context.Context, insurerID string, req CreatePlanRequest) (*PlanResponse, error) {
	ins, err := s.repo.FindByID(ctx, insurerID)
	if err != nil {
		return nil, mapInsurerError(err)
	}

	plan := &Plan{
		ID:             uuid.New(),
		InsurerID:      ins.ID,
		Name:           req.Name,
		Code:           strings.ToUpper(req.Code),
		Description:    req.Description,
		BasePremium:    req.BasePremium,
		CoverageAmount: req.CoverageAmount,
		Features:       req.Features,
		Status:         StatusActive,
	}

	if err := s.repo.CreatePlan(ctx, plan); err != nil {
		return nil, mapPlanError(err)
	}

	s.logger.Info("plan created",
		zap.String("insurer_id", insurerID),
		zap.String("plan_id", plan.ID.String()),
		zap.String("code", plan.Code),
	)

	return toPlanResponse(plan, ins.Name), nil
}

func (s *service) ListPlans(ctx context.Context, insurerID string, status string) ([]PlanResponse, error) {
	ins, err := s.repo.FindByID(ctx, insurerID)
	if err != nil {
		return nil, mapInsurerError(err)
	}

	plans, err := s.repo.FindPlans(ctx, insurerID, status)
	if err != nil {
		return nil, mapPlanError(err)
	}

	resp := make([]PlanResponse, 0, len(plans))
	for i := range plans {
		resp = append(resp, *toPlanResponse(&plans[i], ins.Name))
	}
	return resp, nil
}

func (s *service) ListAllPlans(ctx context.Context, status string) ([]PlanResponse, error) {
	plans, err := s.repo.FindAllPlans(ctx, status)
	if err != nil {
		return nil, mapPlanError(err)
	}

	resp := make([]PlanResponse, 0, len(plans))
	for i := range plans {
		resp = append(resp, *toPlanResponse(&plans[i], ""))
	}
	return resp, nil
}

func (s *service) GetPlan(ctx context.Context, id string) (*PlanResponse, error) {
	plan, err := s.repo.FindPlanByID(ctx, id)
	if err != nil {
		return nil, mapPlanError(err)
	}
	return toPlanResponse(plan, ""), nil
}

func (s *service) UpdatePlan(ctx context.Context, id string, req UpdatePlanRequest) (*PlanResponse, error) {
	plan, err := s.repo.FindPlanByID(ctx, id)
	if err != nil {
		return nil, mapPlanError(err)
	}

	plan.Name = req.Name
	plan.Description = req.Description
	plan.BasePremium = req.BasePremium
	plan.CoverageAmount = req.CoverageAmount
	plan.Features = req.Features
	plan.Status = req.Status

	if err := s.repo.UpdatePlan(ctx, plan); err != nil {
		return nil, mapPlanError(err)
	}

	return toPlanResponse(plan, ""), nil
}

func toInsurerResponse(ins *Insurer) *InsurerResponse {
	return &InsurerResponse{
		ID:         ins.ID.String(),
		Name:       ins.Name,
		Code:       ins.Code,
		LogoURL:    ins.LogoURL,
		APIBaseURL: ins.APIBaseURL,
		Status:     ins.Status,
	}
}

func toPlanResponse(plan *Plan, insurerName string) *PlanResponse {
	return &PlanResponse{
		ID:             plan.ID.String(),
		InsurerID:      plan.InsurerID.String(),
		InsurerName:    insurerName,
		Name:           plan.Name,
		Code:           plan.Code,
		Description:    plan.Description,
		BasePremium:    plan.BasePremium,
		CoverageAmount: plan.CoverageAmount,
		Features:       plan.Features,
		Status:         plan.Status,
	}
}
