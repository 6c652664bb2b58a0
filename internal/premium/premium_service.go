package premium

import (
	"context"
	"database/sql"
	"fmt"

	premiumerrors "insuregate/internal/premium/errors"
	"insuregate/internal/shared/counter"

	"go.uber.org/zap"
)

const policyNumberCounter = "policy_number"

type Service interface {
	// Calculate is idempotent per (organization, month, year): pending rows
	// are refreshed, paid and failed rows are never touched
	Calculate(ctx context.Context, organizationID string, req CalculateRequest) (*CalculateResult, error)
	List(ctx context.Context, organizationID, month string, year int, status string) ([]ScheduleResponse, error)
	Summary(ctx context.Context, organizationID, month string, year int) (*PeriodSummary, error)
	AssignPolicyNumbers(ctx context.Context, organizationID, sessionID string) (int, error)
}

type service struct {
	repo        Repository
	counterRepo counter.Repository
	sqlDB       *sql.DB
	logger      *zap.Logger
}

func NewService(repo Repository, counterRepo counter.Repository, sqlDB *sql.DB) Service {
	return &service{
		repo:        repo,
		counterRepo: counterRepo,
		sqlDB:       sqlDB,
		logger:      zap.L().Named("premium_service"),
	}
}

func (s *service) Calculate(ctx context.Context, organizationID string, req CalculateRequest) (*CalculateResult, error) {
	month, ok := NormalizePeriod(req.Month, req.Year)
	if !ok {
		return nil, premiumerrors.ErrInvalidPeriod
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, mapRepoError(err)
	}
	defer tx.Rollback()

	txRepo := s.repo.WithTx(tx)

	eligible, err := txRepo.FindEligible(ctx, organizationID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	// The purge runs even for an empty roster: when the last eligible
	// employee drops out, last run's unclaimed pending rows must go too.
	removed, err := txRepo.DeleteStalePending(ctx, organizationID, month, req.Year)
	if err != nil {
		return nil, mapRepoError(err)
	}

	result := &CalculateResult{Month: month, Year: req.Year}
	for _, row := range eligible {
		if err := txRepo.UpsertSchedule(ctx, organizationID, row.EmployeeID, row.PlanID, row.Amount, month, req.Year); err != nil {
			return nil, mapRepoError(err)
		}
		result.GeneratedCount++
		result.TotalAmount += row.Amount
	}

	if err := tx.Commit(); err != nil {
		return nil, mapRepoError(err)
	}

	s.logger.Info("premiums calculated",
		zap.String("organization_id", organizationID),
		zap.String("month", month),
		zap.Int("year", req.Year),
		zap.Int("generated", result.GeneratedCount),
		zap.Int64("stale_removed", removed),
		zap.Int64("total_amount", result.TotalAmount),
	)

	return result, nil
}

func (s *service) List(ctx context.Context, organizationID, month string, year int, status string) ([]ScheduleResponse, error) {
	normalized, ok := NormalizePeriod(month, year)
	if !ok {
		return nil, premiumerrors.ErrInvalidPeriod
	}

	rows, err := s.repo.ListForPeriod(ctx, organizationID, normalized, year, status)
	if err != nil {
		return nil, mapRepoError(err)
	}

	resp := make([]ScheduleResponse, 0, len(rows))
	for _, row := range rows {
		item := ScheduleResponse{
			ID:           row.ID,
			EmployeeID:   row.EmployeeID,
			EmployeeCode: row.EmployeeCode,
			EmployeeName: row.EmployeeName,
			PlanID:       row.PlanID,
			PlanName:     row.PlanName,
			Amount:       row.Amount,
			Month:        row.Month,
			Year:         row.Year,
			Status:       row.Status,
		}
		if row.PolicyNumber.Valid {
			item.PolicyNumber = row.PolicyNumber.String
		}
		if row.PaidAt.Valid {
			item.PaidAt = row.PaidAt.Time.Format("2006-01-02 15:04:05")
		}
		resp = append(resp, item)
	}
	return resp, nil
}

func (s *service) Summary(ctx context.Context, organizationID, month string, year int) (*PeriodSummary, error) {
	normalized, ok := NormalizePeriod(month, year)
	if !ok {
		return nil, premiumerrors.ErrInvalidPeriod
	}

	summary, err := s.repo.SummaryForPeriod(ctx, organizationID, normalized, year)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return summary, nil
}

// AssignPolicyNumbers stamps a policy number on every paid entry of a settled
// session that does not have one yet. Safe to replay: stamped rows are
// filtered out by the query and guarded again in the update.
func (s *service) AssignPolicyNumbers(ctx context.Context, organizationID, sessionID string) (int, error) {
	ids, err := s.repo.FindPaidWithoutPolicy(ctx, sessionID)
	if err != nil {
		return 0, mapRepoError(err)
	}

	assigned := 0
	for _, id := range ids {
		next, err := s.counterRepo.GetNextValue(ctx, organizationID, policyNumberCounter)
		if err != nil {
			return assigned, mapRepoError(err)
		}

		policy := fmt.Sprintf("POL-%08d", next)
		if err := s.repo.SetPolicyNumber(ctx, id, policy); err != nil {
			return assigned, mapRepoError(err)
		}
		assigned++
	}

	if assigned > 0 {
		s.logger.Info("policy numbers assigned",
			zap.String("organization_id", organizationID),
			zap.String("session_id", sessionID),
			zap.Int("count", assigned),
		)
	}

	return assigned, nil
}
