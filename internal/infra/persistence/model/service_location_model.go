package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceLocationModel is the GORM-specific struct for the 'service_locations' table.
type ServiceLocationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name      string    `gorm:"type:varchar(255);not null;index:idx_service_locations_on_name"`
	Category  string    `gorm:"type:varchar(32);not null;index:idx_service_locations_on_category"`
	Latitude  float64   `gorm:"type:decimal(10,8);not null;default:0"`
	Longitude float64   `gorm:"type:decimal(11,8);not null;default:0"`
	SortOrder int       `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ServiceLocationModel) TableName() string {
	return "service_locations"
}
