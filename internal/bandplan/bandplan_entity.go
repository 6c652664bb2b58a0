package bandplan

import (
	"time"

	"github.com/google/uuid"
)

// BandPlanMapping holds at most one default plan per band. The unique index
// on salary_band_id is what makes the assignment an upsert.
type BandPlanMapping struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid;index"`
	SalaryBandID   uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	PlanID         uuid.UUID `gorm:"type:uuid"`
	IsDefault      bool      `gorm:"default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
