package premium

import (
	"context"
	"database/sql"
)

// EligibleRow pairs one active employee with the plan their salary band
// resolves to
type EligibleRow struct {
	EmployeeID string
	PlanID     string
	Amount     int64
}

// ScheduleRow is a schedule joined with employee and plan names for listing
type ScheduleRow struct {
	ID           string
	EmployeeID   string
	EmployeeCode string
	EmployeeName string
	PlanID       string
	PlanName     string
	Amount       int64
	Month        string
	Year         int
	Status       string
	PolicyNumber sql.NullString
	PaidAt       sql.NullTime
}

//go:generate mockgen -source=premium_repo.go -destination=mock/premium_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindEligible(ctx context.Context, organizationID string) ([]EligibleRow, error)
	DeleteStalePending(ctx context.Context, organizationID, month string, year int) (int64, error)
	UpsertSchedule(ctx context.Context, organizationID, employeeID, planID string, amount int64, month string, year int) error
	ListForPeriod(ctx context.Context, organizationID, month string, year int, status string) ([]ScheduleRow, error)
	SummaryForPeriod(ctx context.Context, organizationID, month string, year int) (*PeriodSummary, error)
	FindPaidWithoutPolicy(ctx context.Context, sessionID string) ([]string, error)
	SetPolicyNumber(ctx context.Context, scheduleID, policyNumber string) error
}

type repository struct {
	sqlDB *sql.DB
	tx    *sql.Tx
}

func NewRepository(sqlDB *sql.DB) Repository {
	return &repository{sqlDB: sqlDB}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{sqlDB: r.sqlDB, tx: tx}
}

// FindEligible resolves the whole roster in one query: active employees whose
// salary falls inside a band that has a default mapping to an active plan.
func (r *repository) FindEligible(ctx context.Context, organizationID string) ([]EligibleRow, error) {
	query := `
        SELECT
            e.id::text,
            p.id::text,
            p.base_premium
        FROM employees e
        JOIN salary_bands b
            ON b.organization_id = e.organization_id
            AND e.salary BETWEEN b.min_salary AND b.max_salary
        JOIN band_plan_mappings m
            ON m.salary_band_id = b.id AND m.is_default = true
        JOIN plans p
            ON p.id = m.plan_id AND p.status = 'active'
        WHERE e.organization_id = $1
          AND e.status = 'active'
        ORDER BY e.employee_code ASC
    `

	rows, err := r.queryer().QueryContext(ctx, query, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []EligibleRow
	for rows.Next() {
		var row EligibleRow
		if err := rows.Scan(&row.EmployeeID, &row.PlanID, &row.Amount); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

// DeleteStalePending drops unclaimed pending rows whose employee no longer
// resolves to a plan, so a re-run after roster or band edits converges.
// Claimed or settled rows are never touched.
func (r *repository) DeleteStalePending(ctx context.Context, organizationID, month string, year int) (int64, error) {
	query := `
        DELETE FROM premium_schedules s
        WHERE s.organization_id = $1
          AND s.month = $2
          AND s.year = $3
          AND s.status = 'pending'
          AND s.payment_session_id IS NULL
          AND NOT EXISTS (
              SELECT 1
              FROM employees e
              JOIN salary_bands b
                  ON b.organization_id = e.organization_id
                  AND e.salary BETWEEN b.min_salary AND b.max_salary
              JOIN band_plan_mappings m
                  ON m.salary_band_id = b.id AND m.is_default = true
              JOIN plans p
                  ON p.id = m.plan_id AND p.status = 'active'
              WHERE e.id = s.employee_id
                AND e.status = 'active'
          )
    `

	res, err := r.execer().ExecContext(ctx, query, organizationID, month, year)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// UpsertSchedule refreshes an unclaimed pending row in place. Rows claimed by
// a payment session keep their amount and session id until the session
// resolves; paid and failed rows are never touched.
func (r *repository) UpsertSchedule(ctx context.Context, organizationID, employeeID, planID string, amount int64, month string, year int) error {
	query := `
        INSERT INTO premium_schedules (
            id, organization_id, employee_id, plan_id, amount, month, year, status
        ) VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, 'pending')
        ON CONFLICT (organization_id, employee_id, month, year) DO UPDATE
        SET plan_id = EXCLUDED.plan_id,
            amount = EXCLUDED.amount,
            updated_at = NOW()
        WHERE premium_schedules.status = 'pending'
          AND premium_schedules.payment_session_id IS NULL
    `

	_, err := r.execer().ExecContext(ctx, query, organizationID, employeeID, planID, amount, month, year)
	return err
}

func (r *repository) ListForPeriod(ctx context.Context, organizationID, month string, year int, status string) ([]ScheduleRow, error) {
	query := `
        SELECT
            s.id::text,
            s.employee_id::text,
            e.employee_code,
            e.name,
            s.plan_id::text,
            p.name,
            s.amount,
            s.month,
            s.year,
            s.status,
            s.policy_number,
            s.paid_at
        FROM premium_schedules s
        JOIN employees e ON e.id = s.employee_id
        JOIN plans p ON p.id = s.plan_id
        WHERE s.organization_id = $1
          AND s.month = $2
          AND s.year = $3
          AND ($4 = '' OR s.status = $4)
        ORDER BY e.employee_code ASC
    `

	rows, err := r.sqlDB.QueryContext(ctx, query, organizationID, month, year, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ScheduleRow
	for rows.Next() {
		var row ScheduleRow
		if err := rows.Scan(
			&row.ID, &row.EmployeeID, &row.EmployeeCode, &row.EmployeeName,
			&row.PlanID, &row.PlanName, &row.Amount, &row.Month, &row.Year,
			&row.Status, &row.PolicyNumber, &row.PaidAt,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

func (r *repository) SummaryForPeriod(ctx context.Context, organizationID, month string, year int) (*PeriodSummary, error) {
	query := `
        SELECT
            COUNT(*) FILTER (WHERE status = 'pending'),
            COUNT(*) FILTER (WHERE status = 'paid'),
            COUNT(*) FILTER (WHERE status = 'failed'),
            COALESCE(SUM(amount) FILTER (WHERE status = 'pending'), 0),
            COALESCE(SUM(amount) FILTER (WHERE status = 'paid'), 0)
        FROM premium_schedules
        WHERE organization_id = $1 AND month = $2 AND year = $3
    `

	summary := &PeriodSummary{Month: month, Year: year}
	err := r.sqlDB.QueryRowContext(ctx, query, organizationID, month, year).Scan(
		&summary.PendingCount, &summary.PaidCount, &summary.FailedCount,
		&summary.PendingAmount, &summary.PaidAmount,
	)
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func (r *repository) FindPaidWithoutPolicy(ctx context.Context, sessionID string) ([]string, error) {
	query := `
        SELECT id::text
        FROM premium_schedules
        WHERE payment_session_id = $1
          AND status = 'paid'
          AND policy_number IS NULL
        ORDER BY created_at ASC
    `

	rows, err := r.sqlDB.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *repository) SetPolicyNumber(ctx context.Context, scheduleID, policyNumber string) error {
	query := `
        UPDATE premium_schedules
        SET policy_number = $2, updated_at = NOW()
        WHERE id = $1 AND policy_number IS NULL
    `

	_, err := r.execer().ExecContext(ctx, query, scheduleID, policyNumber)
	return err
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
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.sqlDB
}
