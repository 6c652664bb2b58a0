package salaryband

import (
	"context"
	"database/sql"

	salarybanderrors "insuregate/internal/salaryband/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, organizationID string, req CreateSalaryBandRequest) (*SalaryBandResponse, error)
	List(ctx context.Context, organizationID string) ([]SalaryBandResponse, error)
	Get(ctx context.Context, organizationID, id string) (*SalaryBandResponse, error)
	Update(ctx context.Context, organizationID, id string, req UpdateSalaryBandRequest) (*SalaryBandResponse, error)
	Delete(ctx context.Context, organizationID, id string) error
}

type service struct {
	repo   Repository
	sqlDB  *sql.DB
	logger *zap.Logger
}

func NewService(repo Repository, sqlDB *sql.DB) Service {
	return &service{
		repo:   repo,
		sqlDB:  sqlDB,
		logger: zap.L().Named("salaryband_service"),
	}
}

func (s *service) Create(ctx context.Context, organizationID string, req CreateSalaryBandRequest) (*SalaryBandResponse, error) {
	if req.MinSalary >= req.MaxSalary {
		return nil, salarybanderrors.ErrInvalidSalaryRange
	}

	orgID, err := uuid.Parse(organizationID)
	if err != nil {
		return nil, salarybanderrors.ErrSalaryBandNotFound
	}

	band := &SalaryBand{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Name:           req.Name,
		MinSalary:      req.MinSalary,
		MaxSalary:      req.MaxSalary,
		Description:    req.Description,
	}

	// Serializable is the cheap way to make check-then-insert safe against a
	// concurrent band landing in the same range
	tx, err := s.sqlDB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, mapRepoError(err)
	}
	defer tx.Rollback()

	txRepo := s.repo.WithTx(tx)

	overlaps, err := txRepo.CountOverlapping(ctx, organizationID, req.MinSalary, req.MaxSalary, "")
	if err != nil {
		return nil, mapRepoError(err)
	}
	if overlaps > 0 {
		return nil, salarybanderrors.ErrOverlappingBand
	}

	if err := txRepo.Create(ctx, band); err != nil {
		return nil, mapRepoError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, mapRepoError(err)
	}

	s.logger.Info("salary band created",
		zap.String("organization_id", organizationID),
		zap.String("band_id", band.ID.String()),
		zap.Float64("min_salary", band.MinSalary),
		zap.Float64("max_salary", band.MaxSalary),
	)

	return toResponse(band), nil
}

func (s *service) List(ctx context.Context, organizationID string) ([]SalaryBandResponse, error) {
	bands, err := s.repo.FindAll(ctx, organizationID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	resp := make([]SalaryBandResponse, 0, len(bands))
	for i := range bands {
		resp = append(resp, *toResponse(&bands[i]))
	}
	return resp, nil
}

func (s *service) Get(ctx context.Context, organizationID, id string) (*SalaryBandResponse, error) {
	band, err := s.repo.FindByID(ctx, organizationID, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return toResponse(band), nil
}

func (s *service) Update(ctx context.Context, organizationID, id string, req UpdateSalaryBandRequest) (*SalaryBandResponse, error) {
	if req.MinSalary >= req.MaxSalary {
		return nil, salarybanderrors.ErrInvalidSalaryRange
	}

	band, err := s.repo.FindByID(ctx, organizationID, id)
	if err != nil {
		return nil, mapRepoError(err)
	}

	band.Name = req.Name
	band.MinSalary = req.MinSalary
	band.MaxSalary = req.MaxSalary
	band.Description = req.Description

	tx, err := s.sqlDB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, mapRepoError(err)
	}
	defer tx.Rollback()

	txRepo := s.repo.WithTx(tx)

	// The band under edit is excluded so shrinking or renaming never
	// conflicts with itself
	overlaps, err := txRepo.CountOverlapping(ctx, organizationID, req.MinSalary, req.MaxSalary, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	if overlaps > 0 {
		return nil, salarybanderrors.ErrOverlappingBand
	}

	if err := txRepo.Update(ctx, band); err != nil {
		return nil, mapRepoError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, mapRepoError(err)
	}

	return toResponse(band), nil
}

func (s *service) Delete(ctx context.Context, organizationID, id string) error {
	hasMappings, err := s.repo.HasMappings(ctx, organizationID, id)
	if err != nil {
		return mapRepoError(err)
	}
	if hasMappings {
		return salarybanderrors.ErrBandHasDependents
	}

	affected, err := s.repo.Delete(ctx, organizationID, id)
	if err != nil {
		return mapRepoError(err)
	}
	if affected == 0 {
		return salarybanderrors.ErrSalaryBandNotFound
	}

	s.logger.Info("salary band deleted",
		zap.String("organization_id", organizationID),
		zap.String("band_id", id),
	)
	return nil
}

func toResponse(band *SalaryBand) *SalaryBandResponse {
	return &SalaryBandResponse{
		ID:          band.ID.String(),
		Name:        band.Name,
		MinSalary:   band.MinSalary,
		MaxSalary:   band.MaxSalary,
		Description: band.Description,
	}
}
