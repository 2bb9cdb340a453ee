package model

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleConfigModel is the GORM-specific struct for the 'company_schedule_configs' table.
// The unique index on CompanyID enforces the one-config-per-company invariant
// at the database level.
type ScheduleConfigModel struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CompanyID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	IsEnabled             bool      `gorm:"not null;default:false"`
	Timezone              string    `gorm:"type:varchar(64);not null;default:''"`
	AllowOnlineScheduling bool      `gorm:"not null;default:false"`
	SlotDurationMinutes   int       `gorm:"not null;default:30"`
	AdvanceBookingDays    int       `gorm:"not null;default:7"`
	HolidayMessage        string    `gorm:"type:text;not null;default:''"`
	ClosedMessage         string    `gorm:"type:text;not null;default:''"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (ScheduleConfigModel) TableName() string {
	return "company_schedule_configs"
}

// ScheduleHourModel is the GORM-specific struct for the 'company_schedule_hours' table.
// Time-of-day columns hold zero-padded "HH:MM" strings validated at write time.
type ScheduleHourModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CompanyID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	DayOfWeek      string     `gorm:"type:varchar(10);not null"`
	ScheduleType   string     `gorm:"type:varchar(30);not null"`
	OpenTime       string     `gorm:"type:varchar(5);not null;default:''"`
	CloseTime      string     `gorm:"type:varchar(5);not null;default:''"`
	IsClosed       bool       `gorm:"not null;default:false"`
	Is24Hours      bool       `gorm:"not null;default:false"`
	BreakStartTime string     `gorm:"type:varchar(5);not null;default:''"`
	BreakEndTime   string     `gorm:"type:varchar(5);not null;default:''"`
	SpecificDate   *time.Time `gorm:"type:date"`
	ValidFrom      *time.Time `gorm:"type:date"`
	ValidUntil     *time.Time `gorm:"type:date"`
	Priority       int        `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ScheduleHourModel) TableName() string {
	return "company_schedule_hours"
}
