package payment

import (
	"context"
	"database/sql"

	"insuregate/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payment_repo.go -destination=mock/payment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateSession(ctx context.Context, session *PaymentSession) error
	ClaimPending(ctx context.Context, sessionID, organizationID, month string, year int) (total int64, count int, err error)
	SetTotals(ctx context.Context, sessionID string, total int64, count int, paymentURL string) error
	FindByID(ctx context.Context, organizationID, id string) (*PaymentSession, error)
	FindByIDAny(ctx context.Context, id string) (*PaymentSession, error)
	List(ctx context.Context, organizationID string) ([]PaymentSession, error)
	MarkInitiated(ctx context.Context, organizationID, id string) (int64, error)
	ResolveSession(ctx context.Context, id, status string) (int64, error)
	SettleEntries(ctx context.Context, sessionID, entryStatus string) (int64, error)
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

func (r *repository) CreateSession(ctx context.Context, session *PaymentSession) error {
	query := `
        INSERT INTO payment_sessions (
            id, organization_id, month, year, total_amount, employee_count, status
        ) VALUES ($1, $2, $3, $4, 0, 0, $5)
    `

	_, err := r.execer().ExecContext(
		ctx, query,
		session.ID, session.OrganizationID, session.Month, session.Year, StatusCreated,
	)
	return err
}

// ClaimPending stamps this session's id onto every unclaimed pending premium
// of the period and sums what it grabbed. Zero rows claimed means there is
// nothing to pay.
func (r *repository) ClaimPending(ctx context.Context, sessionID, organizationID, month string, year int) (int64, int, error) {
	query := `
        UPDATE premium_schedules
        SET payment_session_id = $1, updated_at = NOW()
        WHERE organization_id = $2
          AND month = $3
          AND year = $4
          AND status = 'pending'
          AND payment_session_id IS NULL
        RETURNING amount
    `

	rows, err := r.queryer().QueryContext(ctx, query, sessionID, organizationID, month, year)
	if err != nil {
		return 0, 0, err
	}
	defer rows.Close()

	var total int64
	count := 0
	for rows.Next() {
		var amount int64
		if err := rows.Scan(&amount); err != nil {
			return 0, 0, err
		}
		total += amount
		count++
	}

	return total, count, rows.Err()
}

func (r *repository) SetTotals(ctx context.Context, sessionID string, total int64, count int, paymentURL string) error {
	query := `
        UPDATE payment_sessions
        SET total_amount = $2, employee_count = $3, payment_url = $4, updated_at = NOW()
        WHERE id = $1
    `

	_, err := r.execer().ExecContext(ctx, query, sessionID, total, count, paymentURL)
	return err
}

func (r *repository) FindByID(ctx context.Context, organizationID, id string) (*PaymentSession, error) {
	var session PaymentSession
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		First(&session, "id = ?", id).Error
	return &session, err
}

// FindByIDAny skips the tenant scope; the gateway webhook carries no tenant
// context of its own.
func (r *repository) FindByIDAny(ctx context.Context, id string) (*PaymentSession, error) {
	var session PaymentSession
	err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error
	return &session, err
}

func (r *repository) List(ctx context.Context, organizationID string) ([]PaymentSession, error) {
	var sessions []PaymentSession
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Order("created_at DESC").
		Find(&sessions).Error
	return sessions, err
}

func (r *repository) MarkInitiated(ctx context.Context, organizationID, id string) (int64, error) {
	query := `
        UPDATE payment_sessions
        SET status = $3, updated_at = NOW()
        WHERE organization_id = $1 AND id = $2 AND status = $4
    `

	res, err := r.execer().ExecContext(ctx, query, organizationID, id, StatusPending, StatusCreated)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ResolveSession only moves live sessions; replayed webhooks hit zero rows
func (r *repository) ResolveSession(ctx context.Context, id, status string) (int64, error) {
	query := `
        UPDATE payment_sessions
        SET status = $2, resolved_at = NOW(), updated_at = NOW()
        WHERE id = $1 AND status IN ($3, $4)
    `

	res, err := r.execer().ExecContext(ctx, query, id, status, StatusCreated, StatusPending)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repository) SettleEntries(ctx context.Context, sessionID, entryStatus string) (int64, error) {
	var query string
	if entryStatus == "paid" {
		query = `
            UPDATE premium_schedules
            SET status = 'paid', paid_at = NOW(), updated_at = NOW()
            WHERE payment_session_id = $1 AND status = 'pending'
        `
	} else {
		query = `
            UPDATE premium_schedules
            SET status = 'failed', updated_at = NOW()
            WHERE payment_session_id = $1 AND status = 'pending'
        `
	}

	res, err := r.execer().ExecContext(ctx, query, sessionID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
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
