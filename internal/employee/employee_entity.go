package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Employee struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_employees_org_code"`
	EmployeeCode   string    `gorm:"uniqueIndex:idx_employees_org_code"`
	Name           string
	Email          string `gorm:"uniqueIndex"`
	Phone          string
	Salary         float64
	Department     string
	Designation    string
	DateOfJoining  *time.Time
	DateOfBirth    *time.Time
	Status         string `gorm:"default:active"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
