package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DeliveryConfigModel is the GORM-specific struct for the 'company_delivery_configs' table.
// The unique index on CompanyID enforces the one-config-per-company invariant
// at the database level.
type DeliveryConfigModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CompanyID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	IsEnabled            bool      `gorm:"not null;default:false"`
	AvailableTypes       string    `gorm:"type:varchar(255);not null;default:''"`
	FeeCalculationType   string    `gorm:"type:varchar(50);not null"`
	BaseFee              float64   `gorm:"type:decimal(10,2);not null;default:0"`
	FeePerKm             *float64  `gorm:"type:decimal(10,2)"`
	FreeDeliveryMinValue *float64  `gorm:"type:decimal(10,2)"`
	EstimatedTimeMinutes int       `gorm:"not null"`
	PickupTimeMinutes    int       `gorm:"not null"`
	MinimumOrderValue    *float64  `gorm:"type:decimal(10,2)"`
	MaximumOrderValue    *float64  `gorm:"type:decimal(10,2)"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryConfigModel) TableName() string {
	return "company_delivery_configs"
}

// DeliveryZoneModel is the GORM-specific struct for the 'company_delivery_zones' table.
// Polygon stores the ring vertices as a JSONB array of [lon, lat] positions.
type DeliveryZoneModel struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CompanyID            uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name                 string         `gorm:"type:varchar(100);not null"`
	ZoneType             string         `gorm:"type:varchar(50);not null"`
	RadiusKm             *float64       `gorm:"type:decimal(10,3)"`
	Polygon              datatypes.JSON `gorm:"type:jsonb"`
	Neighborhoods        string         `gorm:"type:text;not null;default:''"`
	PostalCodes          string         `gorm:"type:text;not null;default:''"`
	DeliveryFee          float64        `gorm:"type:decimal(10,2);not null;default:0"`
	EstimatedTimeMinutes int            `gorm:"not null;default:0"`
	MinimumOrderValue    *float64       `gorm:"type:decimal(10,2)"`
	IsEnabled            bool           `gorm:"not null;default:true"`
	Priority             int            `gorm:"not null;default:0;index"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryZoneModel) TableName() string {
	return "company_delivery_zones"
}
