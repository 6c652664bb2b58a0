package auth

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrganizationID *uuid.UUID `gorm:"type:uuid;index"`
	EmployeeID     *uuid.UUID `gorm:"type:uuid"`
	Email          string     `gorm:"uniqueIndex"`
	Name           string
	Password       string
	Role           string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
