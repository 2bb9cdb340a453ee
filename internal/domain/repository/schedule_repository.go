package repository

import (
	"context"

	"mercado/internal/domain/entity"
	"mercado/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for schedule persistence.
var (
	// ErrScheduleConfigNotFound is returned when a company has no schedule configuration.
	ErrScheduleConfigNotFound = errors.New("schedule config not found")
	// ErrHourEntryNotFound is returned when an hour-entry lookup has no match.
	ErrHourEntryNotFound = errors.New("schedule hour entry not found")
	// ErrDuplicateScheduleConfig is returned when a second configuration is created for the same company.
	ErrDuplicateScheduleConfig = errors.New("company already has a schedule config")
)

// ScheduleRepository defines the interface for schedule-configuration persistence.
// The config and its hour entries form one aggregate keyed by company.
type ScheduleRepository interface {
	// FindConfigByCompany retrieves the schedule configuration for a company.
	// Returns ErrScheduleConfigNotFound when none exists.
	FindConfigByCompany(ctx context.Context, companyID uuid.UUID) (*entity.ScheduleConfig, error)

	// CreateConfig persists a new schedule configuration.
	// Returns ErrDuplicateScheduleConfig when the company already has one.
	CreateConfig(ctx context.Context, cfg *entity.ScheduleConfig) error

	// UpdateConfig updates an existing schedule configuration.
	UpdateConfig(ctx context.Context, cfg *entity.ScheduleConfig) error

	// FindHoursByCompany retrieves all hour entries for a company.
	FindHoursByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.ScheduleHourEntry, error)

	// FindHourByID retrieves an hour entry by its unique ID.
	// Returns ErrHourEntryNotFound if no entry exists.
	FindHourByID(ctx context.Context, id uuid.UUID) (*entity.ScheduleHourEntry, error)

	// CreateHour persists a new hour entry for a company.
	CreateHour(ctx context.Context, entry *entity.ScheduleHourEntry) error

	// UpdateHour updates an existing hour entry.
	UpdateHour(ctx context.Context, entry *entity.ScheduleHourEntry) error

	// DeleteHour removes an hour entry by its ID.
	DeleteHour(ctx context.Context, id uuid.UUID) error

	// DeleteHoursByCompany removes every hour entry of a company. Used by the
	// replace-all operation inside a transaction.
	DeleteHoursByCompany(ctx context.Context, companyID uuid.UUID) error
}
