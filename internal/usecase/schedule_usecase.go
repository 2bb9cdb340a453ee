package usecase

import (
	"context"
	"time"

	"mercado/internal/domain/entity"
	"mercado/internal/domain/resolution"

	"github.com/google/uuid"
)

// ScheduleConfigInput represents the input for creating or updating a
// company's schedule configuration.
type ScheduleConfigInput struct {
	IsEnabled             bool   `json:"is_enabled"`
	Timezone              string `json:"timezone,omitempty"`
	AllowOnlineScheduling bool   `json:"allow_online_scheduling"`
	SlotDurationMinutes   int    `json:"slot_duration_minutes"`
	AdvanceBookingDays    int    `json:"advance_booking_days"`
	HolidayMessage        string `json:"holiday_message,omitempty"`
	ClosedMessage         string `json:"closed_message,omitempty"`
}

// ScheduleHourInput represents the input for one hour entry.
type ScheduleHourInput struct {
	DayOfWeek      entity.Weekday      `json:"day_of_week"`
	ScheduleType   entity.ScheduleType `json:"schedule_type"`
	OpenTime       string              `json:"open_time,omitempty"`
	CloseTime      string              `json:"close_time,omitempty"`
	IsClosed       bool                `json:"is_closed"`
	Is24Hours      bool                `json:"is_24_hours"`
	BreakStartTime string              `json:"break_start_time,omitempty"`
	BreakEndTime   string              `json:"break_end_time,omitempty"`
	SpecificDate   *time.Time          `json:"specific_date,omitempty"`
	ValidFrom      *time.Time          `json:"valid_from,omitempty"`
	ValidUntil     *time.Time          `json:"valid_until,omitempty"`
	Priority       int                 `json:"priority"`
}

// ScheduleUsecase defines the schedule configuration and open-status use cases.
// Mutations are gated behind the authorizer; reads are public.
type ScheduleUsecase interface {
	// GetConfig returns a company's schedule configuration.
	GetConfig(ctx context.Context, companyID uuid.UUID) (*entity.ScheduleConfig, error)

	// ListHours returns a company's hour entries.
	ListHours(ctx context.Context, companyID uuid.UUID) ([]*entity.ScheduleHourEntry, error)

	// EnsureConfig creates the company's schedule configuration or updates the
	// existing one (upsert semantics).
	EnsureConfig(ctx context.Context, principal entity.Principal, companyID uuid.UUID, input *ScheduleConfigInput) (*entity.ScheduleConfig, error)

	// ReplaceHours atomically swaps the company's full hour-entry list.
	ReplaceHours(ctx context.Context, principal entity.Principal, companyID uuid.UUID, inputs []*ScheduleHourInput) ([]*entity.ScheduleHourEntry, error)

	// AddHour appends a single hour entry.
	AddHour(ctx context.Context, principal entity.Principal, companyID uuid.UUID, input *ScheduleHourInput) (*entity.ScheduleHourEntry, error)

	// UpdateHour rewrites a single hour entry.
	UpdateHour(ctx context.Context, principal entity.Principal, companyID, entryID uuid.UUID, input *ScheduleHourInput) (*entity.ScheduleHourEntry, error)

	// RemoveHour deletes a single hour entry.
	RemoveHour(ctx context.Context, principal entity.Principal, companyID, entryID uuid.UUID) error

	// OpenStatus resolves whether the company is open right now. Resolution
	// faults degrade to a closed status, never an error.
	OpenStatus(ctx context.Context, companyID uuid.UUID) (resolution.OpenStatus, error)
}
