package insurer

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Insurer is a global carrier, shared across all tenants
type Insurer struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	Code       string `gorm:"uniqueIndex"`
	LogoURL    string
	APIBaseURL string
	Status     string `gorm:"default:active"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Plan amounts are whole currency units per month
type Plan struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	InsurerID      uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_plans_insurer_code"`
	Name           string
	Code           string `gorm:"uniqueIndex:idx_plans_insurer_code"`
	Description    string
	BasePremium    int64
	CoverageAmount int64
	Features       string `gorm:"type:text"`
	Status         string `gorm:"default:active"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
