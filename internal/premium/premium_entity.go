package premium

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending = "pending"
	StatusPaid    = "paid"
	StatusFailed  = "failed"
)

// PremiumSchedule is one employee's premium for one month. The unique index
// over (organization_id, employee_id, month, year) is what makes calculation
// idempotent.
type PremiumSchedule struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_premium_period"`
	EmployeeID       uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_premium_period"`
	PlanID           uuid.UUID `gorm:"type:uuid"`
	Amount           int64
	Month            string `gorm:"uniqueIndex:idx_premium_period"`
	Year             int    `gorm:"uniqueIndex:idx_premium_period"`
	Status           string `gorm:"default:pending"`
	PaymentSessionID *uuid.UUID `gorm:"type:uuid"`
	PolicyNumber     *string
	PaidAt           *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
