package model

import (
	"time"

	"github.com/google/uuid"
)

// CompanyModel is the GORM-specific struct for the 'companies' table.
// Companies are owned by the surrounding platform; this service reads them
// for quoting and authorization scoping.
type CompanyModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PlaceID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Latitude  *float64  `gorm:"type:decimal(10,8)"`
	Longitude *float64  `gorm:"type:decimal(11,8)"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CompanyModel) TableName() string {
	return "companies"
}

// PlaceModel is the GORM-specific struct for the 'places' table.
type PlaceModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(255);not null"`
	IsActive       bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlaceModel) TableName() string {
	return "places"
}
