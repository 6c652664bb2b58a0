package bandplan

import (
	"context"
	"database/sql"
	"errors"

	"insuregate/internal/tenant"

	"gorm.io/gorm"
)

// MappingRow is a mapping joined with its band and plan names for listing
type MappingRow struct {
	ID           string
	SalaryBandID string
	BandName     string
	PlanID       string
	PlanName     string
	InsurerName  string
	IsDefault    bool
}

//go:generate mockgen -source=bandplan_repo.go -destination=mock/bandplan_repo_mock.go -package=mock
type Repository interface {
	Upsert(ctx context.Context, mapping *BandPlanMapping) error
	ListWithNames(ctx context.Context, organizationID string) ([]MappingRow, error)
	FindByBand(ctx context.Context, organizationID, bandID string) (*BandPlanMapping, error)
	Delete(ctx context.Context, organizationID, id string) (int64, error)
	ResolveForSalary(ctx context.Context, organizationID string, salary float64) (*ResolvedPlan, error)
}

type repository struct {
	db    *gorm.DB
	sqlDB *sql.DB
}

func NewRepository(db *gorm.DB, sqlDB *sql.DB) Repository {
	return &repository{db: db, sqlDB: sqlDB}
}

// Upsert makes plan assignment idempotent: re-mapping a band replaces its
// plan instead of raising a conflict.
func (r *repository) Upsert(ctx context.Context, mapping *BandPlanMapping) error {
	query := `
        INSERT INTO band_plan_mappings (
            id, organization_id, salary_band_id, plan_id, is_default
        ) VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (salary_band_id) DO UPDATE
        SET plan_id = EXCLUDED.plan_id, is_default = EXCLUDED.is_default, updated_at = NOW()
    `

	_, err := r.sqlDB.ExecContext(
		ctx, query,
		mapping.ID, mapping.OrganizationID, mapping.SalaryBandID,
		mapping.PlanID, mapping.IsDefault,
	)
	return err
}

func (r *repository) ListWithNames(ctx context.Context, organizationID string) ([]MappingRow, error) {
	query := `
        SELECT
            m.id::text,
            m.salary_band_id::text,
            b.name,
            m.plan_id::text,
            p.name,
            i.name,
            m.is_default
        FROM band_plan_mappings m
        JOIN salary_bands b ON b.id = m.salary_band_id
        JOIN plans p ON p.id = m.plan_id
        JOIN insurers i ON i.id = p.insurer_id
        WHERE m.organization_id = $1
        ORDER BY b.min_salary ASC
    `

	rows, err := r.sqlDB.QueryContext(ctx, query, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []MappingRow
	for rows.Next() {
		var row MappingRow
		if err := rows.Scan(
			&row.ID, &row.SalaryBandID, &row.BandName,
			&row.PlanID, &row.PlanName, &row.InsurerName, &row.IsDefault,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

func (r *repository) FindByBand(ctx context.Context, organizationID, bandID string) (*BandPlanMapping, error) {
	var mapping BandPlanMapping
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		First(&mapping, "salary_band_id = ?", bandID).Error
	return &mapping, err
}

func (r *repository) Delete(ctx context.Context, organizationID, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Delete(&BandPlanMapping{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

// ResolveForSalary walks salary -> band -> default mapping -> active plan in
// one round trip. A salary outside every band resolves to nil, not an error.
func (r *repository) ResolveForSalary(ctx context.Context, organizationID string, salary float64) (*ResolvedPlan, error) {
	query := `
        SELECT
            p.id::text,
            p.name,
            p.base_premium,
            b.id::text,
            b.name
        FROM salary_bands b
        JOIN band_plan_mappings m ON m.salary_band_id = b.id AND m.is_default = true
        JOIN plans p ON p.id = m.plan_id AND p.status = 'active'
        WHERE b.organization_id = $1
          AND $2 BETWEEN b.min_salary AND b.max_salary
        LIMIT 1
    `

	var resolved ResolvedPlan
	err := r.sqlDB.QueryRowContext(ctx, query, organizationID, salary).Scan(
		&resolved.PlanID, &resolved.PlanName, &resolved.BasePremium,
		&resolved.BandID, &resolved.BandName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &resolved, nil
}
