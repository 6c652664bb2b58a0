package salaryband

import (
	"context"
	"database/sql"

	"insuregate/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=salaryband_repo.go -destination=mock/salaryband_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, band *SalaryBand) error
	FindAll(ctx context.Context, organizationID string) ([]SalaryBand, error)
	FindByID(ctx context.Context, organizationID, id string) (*SalaryBand, error)
	Update(ctx context.Context, band *SalaryBand) error
	Delete(ctx context.Context, organizationID, id string) (int64, error)
	CountOverlapping(ctx context.Context, organizationID string, min, max float64, excludeID string) (int64, error)
	HasMappings(ctx context.Context, organizationID, bandID string) (bool, error)
}

type repository struct {
	db    *gorm.DB
	sqlDB *sql.DB
	tx    *sql.Tx
}

func NewRepository(db *gorm.DB, sqlDB *sql.DB) Repository {
	return &repository{db: db, sqlDB: sqlDB}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, sqlDB: r.sqlDB, tx: tx}
}

func (r *repository) Create(ctx context.Context, band *SalaryBand) error {
	query := `
        INSERT INTO salary_bands (
            id, organization_id, name, min_salary, max_salary, description
        ) VALUES ($1, $2, $3, $4, $5, $6)
    `

	exec := r.execer()
	_, err := exec.ExecContext(
		ctx, query,
		band.ID, band.OrganizationID, band.Name,
		band.MinSalary, band.MaxSalary, band.Description,
	)
	return err
}

func (r *repository) FindAll(ctx context.Context, organizationID string) ([]SalaryBand, error) {
	var bands []SalaryBand
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Order("min_salary ASC").
		Find(&bands).Error
	return bands, err
}

func (r *repository) FindByID(ctx context.Context, organizationID, id string) (*SalaryBand, error) {
	var band SalaryBand
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		First(&band, "id = ?", id).Error
	return &band, err
}

func (r *repository) Update(ctx context.Context, band *SalaryBand) error {
	query := `
        UPDATE salary_bands
        SET name = $3, min_salary = $4, max_salary = $5, description = $6, updated_at = NOW()
        WHERE organization_id = $1 AND id = $2
    `

	exec := r.execer()
	_, err := exec.ExecContext(
		ctx, query,
		band.OrganizationID, band.ID, band.Name,
		band.MinSalary, band.MaxSalary, band.Description,
	)
	return err
}

func (r *repository) Delete(ctx context.Context, organizationID, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Delete(&SalaryBand{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

// CountOverlapping runs inside the write transaction so a concurrent insert
// cannot slip a conflicting band between check and write. Boundaries are
// inclusive: [0, 1000] and [1000, 2000] overlap.
func (r *repository) CountOverlapping(ctx context.Context, organizationID string, min, max float64, excludeID string) (int64, error) {
	query := `
        SELECT COUNT(*)
        FROM salary_bands
        WHERE organization_id = $1
          AND min_salary <= $3
          AND max_salary >= $2
          AND ($4 = '' OR id::text <> $4)
    `

	var count int64
	q := r.queryer()
	err := q.QueryRowContext(ctx, query, organizationID, min, max, excludeID).Scan(&count)
	return count, err
}

func (r *repository) HasMappings(ctx context.Context, organizationID, bandID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("band_plan_mappings").
		Where("organization_id = ? AND salary_band_id = ?", organizationID, bandID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.sqlDB
}

func (r *repository) queryer() interface {
	QueryRowContext(context.Context, string, ...any) *sql.Row
} {
	if r.tx != nil {
		return r.tx
	}
	return r.sqlDB
}
