package employee

import (
	"context"
	"database/sql"

	"insuregate/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, emp *Employee) error
	CreateIgnoreDuplicate(ctx context.Context, emp *Employee) (bool, error)
	FindAll(ctx context.Context, organizationID string, status string) ([]Employee, error)
	FindByID(ctx context.Context, organizationID, id string) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	Update(ctx context.Context, emp *Employee) error
	UpdateStatus(ctx context.Context, organizationID, id, status string) (int64, error)
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

func (r *repository) Create(ctx context.Context, emp *Employee) error {
	query := `
        INSERT INTO employees (
            id, organization_id, employee_code, name, email, phone, salary,
            department, designation, date_of_joining, date_of_birth, status
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    `

	exec := r.execer()
	_, err := exec.ExecContext(
		ctx, query,
		emp.ID, emp.OrganizationID, emp.EmployeeCode, emp.Name, emp.Email,
		emp.Phone, emp.Salary, emp.Department, emp.Designation,
		emp.DateOfJoining, emp.DateOfBirth, emp.Status,
	)
	return err
}

// CreateIgnoreDuplicate inserts one roster row and reports whether it landed.
// ON CONFLICT DO NOTHING keeps a duplicate email from aborting the whole
// import transaction.
func (r *repository) CreateIgnoreDuplicate(ctx context.Context, emp *Employee) (bool, error) {
	query := `
        INSERT INTO employees (
            id, organization_id, employee_code, name, email, phone, salary,
            department, designation, date_of_joining, date_of_birth, status
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        ON CONFLICT (email) DO NOTHING
    `

	exec := r.execer()
	res, err := exec.ExecContext(
		ctx, query,
		emp.ID, emp.OrganizationID, emp.EmployeeCode, emp.Name, emp.Email,
		emp.Phone, emp.Salary, emp.Department, emp.Designation,
		emp.DateOfJoining, emp.DateOfBirth, emp.Status,
	)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *repository) FindAll(ctx context.Context, organizationID string, status string) ([]Employee, error) {
	var emps []Employee
	q := r.db.WithContext(ctx).Scopes(tenant.Scope(organizationID))
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("employee_code ASC").Find(&emps).Error
	return emps, err
}

func (r *repository) FindByID(ctx context.Context, organizationID, id string) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		First(&emp, "id = ?", id).Error
	return &emp, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).First(&emp, "email = ?", email).Error
	return &emp, err
}

func (r *repository) Update(ctx context.Context, emp *Employee) error {
	return r.db.WithContext(ctx).Save(emp).Error
}

func (r *repository) UpdateStatus(ctx context.Context, organizationID, id, status string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(tenant.Scope(organizationID)).
		Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.sqlDB
}
