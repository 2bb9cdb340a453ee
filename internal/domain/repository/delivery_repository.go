package repository

import (
	"context"

	"mercado/internal/domain/entity"
	"mercado/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for delivery persistence.
var (
	// ErrDeliveryConfigNotFound is returned when a company has no delivery configuration.
	ErrDeliveryConfigNotFound = errors.New("delivery config not found")
	// ErrDeliveryZoneNotFound is returned when a zone lookup has no match.
	ErrDeliveryZoneNotFound = errors.New("delivery zone not found")
	// ErrDuplicateDeliveryConfig is returned when a second configuration is created for the same company.
	ErrDuplicateDeliveryConfig = errors.New("company already has a delivery config")
)

// DeliveryRepository defines the interface for delivery-configuration persistence.
// The config and its zones form one aggregate keyed by company.
type DeliveryRepository interface {
	// FindConfigByCompany retrieves the delivery configuration for a company.
	// Returns ErrDeliveryConfigNotFound when none exists.
	FindConfigByCompany(ctx context.Context, companyID uuid.UUID) (*entity.DeliveryConfig, error)

	// CreateConfig persists a new delivery configuration.
	// Returns ErrDuplicateDeliveryConfig when the company already has one.
	CreateConfig(ctx context.Context, cfg *entity.DeliveryConfig) error

	// UpdateConfig updates an existing delivery configuration.
	UpdateConfig(ctx context.Context, cfg *entity.DeliveryConfig) error

	// FindZonesByCompany retrieves all zones for a company, highest priority first.
	FindZonesByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.DeliveryZone, error)

	// FindZoneByID retrieves a zone by its unique ID.
	// Returns ErrDeliveryZoneNotFound if no zone exists.
	FindZoneByID(ctx context.Context, id uuid.UUID) (*entity.DeliveryZone, error)

	// CreateZone persists a new zone for a company.
	CreateZone(ctx context.Context, zone *entity.DeliveryZone) error

	// UpdateZone updates an existing zone record.
	UpdateZone(ctx context.Context, zone *entity.DeliveryZone) error

	// DeleteZone removes a zone by its ID.
	DeleteZone(ctx context.Context, id uuid.UUID) error

	// DeleteZonesByCompany removes every zone of a company. Used by the
	// replace-all operation inside a transaction.
	DeleteZonesByCompany(ctx context.Context, companyID uuid.UUID) error
}
