package bandplan

import (
	"context"
	"errors"

	bandplanerrors "insuregate/internal/bandplan/errors"
	"insuregate/internal/insurer"
	"insuregate/internal/salaryband"
	"insuregate/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Assign(ctx context.Context, organizationID string, req AssignPlanRequest) (*MappingResponse, error)
	List(ctx context.Context, organizationID string) ([]MappingResponse, error)
	Unassign(ctx context.Context, organizationID, id string) error
	// ResolvePlan returns nil when no band covers the salary
	ResolvePlan(ctx context.Context, organizationID string, salary float64) (*ResolvedPlan, error)
}

type service struct {
	repo        Repository
	bandRepo    salaryband.Repository
	insurerRepo insurer.Repository
	logger      *zap.Logger
}

func NewService(repo Repository, bandRepo salaryband.Repository, insurerRepo insurer.Repository) Service {
	return &service{
		repo:        repo,
		bandRepo:    bandRepo,
		insurerRepo: insurerRepo,
		logger:      zap.L().Named("bandplan_service"),
	}
}

func (s *service) Assign(ctx context.Context, organizationID string, req AssignPlanRequest) (*MappingResponse, error) {
	band, err := s.bandRepo.FindByID(ctx, organizationID, req.SalaryBandID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bandplanerrors.ErrBandNotFound
		}
		return nil, mapRepoError(err)
	}

	plan, err := s.insurerRepo.FindPlanByID(ctx, req.PlanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bandplanerrors.ErrPlanNotFound
		}
		return nil, mapRepoError(err)
	}
	if plan.Status != insurer.StatusActive {
		return nil, bandplanerrors.ErrPlanInactive
	}

	mapping := &BandPlanMapping{
		ID:             uuid.New(),
		OrganizationID: band.OrganizationID,
		SalaryBandID:   band.ID,
		PlanID:         plan.ID,
		IsDefault:      true,
	}

	if err := s.repo.Upsert(ctx, mapping); err != nil {
		return nil, mapRepoError(err)
	}

	// The upsert may have kept the existing row's id; re-read for the truth
	stored, err := s.repo.FindByBand(ctx, organizationID, req.SalaryBandID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	s.logger.Info("plan assigned to band",
		zap.String("organization_id", organizationID),
		zap.String("band_id", band.ID.String()),
		zap.String("plan_id", plan.ID.String()),
	)

	return &MappingResponse{
		ID:           stored.ID.String(),
		SalaryBandID: stored.SalaryBandID.String(),
		BandName:     band.Name,
		PlanID:       stored.PlanID.String(),
		PlanName:     plan.Name,
		IsDefault:    stored.IsDefault,
	}, nil
}

func (s *service) List(ctx context.Context, organizationID string) ([]MappingResponse, error) {
	rows, err := s.repo.ListWithNames(ctx, organizationID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	resp := make([]MappingResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, MappingResponse{
			ID:           row.ID,
			SalaryBandID: row.SalaryBandID,
			BandName:     row.BandName,
			PlanID:       row.PlanID,
			PlanName:     row.PlanName,
			InsurerName:  row.InsurerName,
			IsDefault:    row.IsDefault,
		})
	}
	return resp, nil
}

func (s *service) Unassign(ctx context.Context, organizationID, id string) error {
	affected, err := s.repo.Delete(ctx, organizationID, id)
	if err != nil {
		return mapRepoError(err)
	}
	if affected == 0 {
		return bandplanerrors.ErrMappingNotFound
	}
	return nil
}

func (s *service) ResolvePlan(ctx context.Context, organizationID string, salary float64) (*ResolvedPlan, error) {
	resolved, err := s.repo.ResolveForSalary(ctx, organizationID, salary)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return resolved, nil
}

func mapRepoError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return bandplanerrors.ErrMappingNotFound
	}
	return apperror.Wrap(err, apperror.CodeInternalError, "Database operation failed", 500)
}
