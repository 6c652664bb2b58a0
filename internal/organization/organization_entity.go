package organization

import (
	"time"

	"github.com/google/uuid"
)

type Organization struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Email     string `gorm:"uniqueIndex"`
	Phone     string
	Address   string
	LogoURL   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
