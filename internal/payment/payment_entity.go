package payment

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusCreated   = "created"
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// PaymentSession batches one period's pending premiums into a single
// gateway checkout
type PaymentSession struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid;index"`
	Month          string
	Year           int
	TotalAmount    int64
	EmployeeCount  int
	Status         string `gorm:"default:created"`
	PaymentURL     string
	ResolvedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
