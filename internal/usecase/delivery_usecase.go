// Package usecase defines the application-facing interfaces and their
// input shapes.
package usecase

import (
	"context"

	"mercado/internal/domain/entity"
	"mercado/internal/domain/resolution"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// DeliveryConfigInput represents the input for creating or updating a
// company's delivery configuration.
type DeliveryConfigInput struct {
	IsEnabled            bool                      `json:"is_enabled"`
	AvailableTypes       []entity.DeliveryType     `json:"available_types"`
	FeeCalculationType   entity.FeeCalculationType `json:"fee_calculation_type"`
	BaseFee              float64                   `json:"base_fee"`
	FeePerKm             *float64                  `json:"fee_per_km,omitempty"`
	FreeDeliveryMinValue *float64                  `json:"free_delivery_min_value,omitempty"`
	EstimatedTimeMinutes int                       `json:"estimated_time_minutes"`
	PickupTimeMinutes    int                       `json:"pickup_time_minutes"`
	MinimumOrderValue    *float64                  `json:"minimum_order_value,omitempty"`
	MaximumOrderValue    *float64                  `json:"maximum_order_value,omitempty"`
}

// DeliveryZoneInput represents the input for one delivery zone. Exactly one
// geometry field must be populated for the declared zone type.
type DeliveryZoneInput struct {
	Name                 string          `json:"name"`
	ZoneType             entity.ZoneType `json:"zone_type"`
	RadiusKm             *float64        `json:"radius_km,omitempty"`
	Polygon              orb.Ring        `json:"polygon,omitempty"`
	Neighborhoods        string          `json:"neighborhoods,omitempty"`
	PostalCodes          string          `json:"postal_codes,omitempty"`
	DeliveryFee          float64         `json:"delivery_fee"`
	EstimatedTimeMinutes int             `json:"estimated_time_minutes"`
	MinimumOrderValue    *float64        `json:"minimum_order_value,omitempty"`
	IsEnabled            bool            `json:"is_enabled"`
	Priority             int             `json:"priority"`
}

// QuoteInput represents a public delivery-quote request.
type QuoteInput struct {
	Address    resolution.CustomerAddress
	OrderValue *float64
}

// DeliveryUsecase defines the delivery configuration and quoting use cases.
// Mutations are gated behind the authorizer; reads are public.
type DeliveryUsecase interface {
	// GetConfig returns a company's delivery configuration.
	GetConfig(ctx context.Context, companyID uuid.UUID) (*entity.DeliveryConfig, error)

	// ListZones returns a company's zones, highest priority first.
	ListZones(ctx context.Context, companyID uuid.UUID) ([]*entity.DeliveryZone, error)

	// EnsureConfig creates the company's delivery configuration or updates the
	// existing one (upsert semantics).
	EnsureConfig(ctx context.Context, principal entity.Principal, companyID uuid.UUID, input *DeliveryConfigInput) (*entity.DeliveryConfig, error)

	// ReplaceZones atomically swaps the company's full zone list.
	ReplaceZones(ctx context.Context, principal entity.Principal, companyID uuid.UUID, inputs []*DeliveryZoneInput) ([]*entity.DeliveryZone, error)

	// AddZone appends a single zone.
	AddZone(ctx context.Context, principal entity.Principal, companyID uuid.UUID, input *DeliveryZoneInput) (*entity.DeliveryZone, error)

	// UpdateZone rewrites a single zone.
	UpdateZone(ctx context.Context, principal entity.Principal, companyID, zoneID uuid.UUID, input *DeliveryZoneInput) (*entity.DeliveryZone, error)

	// RemoveZone deletes a single zone.
	RemoveZone(ctx context.Context, principal entity.Principal, companyID, zoneID uuid.UUID) error

	// Quote resolves whether the company can deliver to the given address and
	// at what fee. Resolution faults degrade to a negative quote, never an error.
	Quote(ctx context.Context, companyID uuid.UUID, input *QuoteInput) (resolution.DeliveryQuote, error)
}
