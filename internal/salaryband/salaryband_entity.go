package salaryband

import (
	"time"

	"github.com/google/uuid"
)

// SalaryBand boundaries are inclusive on both ends
type SalaryBand struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid;index"`
	Name           string
	MinSalary      float64
	MaxSalary      float64
	Description    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
