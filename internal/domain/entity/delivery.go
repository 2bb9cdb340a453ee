// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// DeliveryType enumerates the fulfilment channels a company can enable.
type DeliveryType string

const (
	DeliveryTypeDelivery  DeliveryType = "DELIVERY"
	DeliveryTypePickup    DeliveryType = "PICKUP"
	DeliveryTypeDineIn    DeliveryType = "DINE_IN"
	DeliveryTypeDriveThru DeliveryType = "DRIVE_THRU"
)

// IsValid checks if the DeliveryType is a valid value.
func (t DeliveryType) IsValid() bool {
	switch t {
	case DeliveryTypeDelivery, DeliveryTypePickup, DeliveryTypeDineIn, DeliveryTypeDriveThru:
		return true
	default:
		return false
	}
}

// FeeCalculationType enumerates the policies for deriving a delivery fee.
type FeeCalculationType string

const (
	FeeCalculationFixed        FeeCalculationType = "FIXED"
	FeeCalculationByDistance   FeeCalculationType = "BY_DISTANCE"
	FeeCalculationByZone       FeeCalculationType = "BY_ZONE"
	FeeCalculationByOrderValue FeeCalculationType = "BY_ORDER_VALUE"
	FeeCalculationFree         FeeCalculationType = "FREE"
)

// IsValid checks if the FeeCalculationType is a valid value.
func (t FeeCalculationType) IsValid() bool {
	switch t {
	case FeeCalculationFixed, FeeCalculationByDistance, FeeCalculationByZone,
		FeeCalculationByOrderValue, FeeCalculationFree:
		return true
	default:
		return false
	}
}

// ZoneType enumerates the geometry kinds a delivery zone can use.
type ZoneType string

const (
	ZoneTypeRadius       ZoneType = "RADIUS"
	ZoneTypePolygon      ZoneType = "POLYGON"
	ZoneTypeNeighborhood ZoneType = "NEIGHBORHOOD"
	ZoneTypePostalCode   ZoneType = "POSTAL_CODE"
)

// IsValid checks if the ZoneType is a valid value.
func (t ZoneType) IsValid() bool {
	switch t {
	case ZoneTypeRadius, ZoneTypePolygon, ZoneTypeNeighborhood, ZoneTypePostalCode:
		return true
	default:
		return false
	}
}

// DeliveryConfig is a company's delivery settings. Each company owns at most one.
type DeliveryConfig struct {
	ID                   uuid.UUID
	CompanyID            uuid.UUID
	IsEnabled            bool
	AvailableTypes       []DeliveryType
	FeeCalculationType   FeeCalculationType
	BaseFee              float64
	FeePerKm             *float64
	FreeDeliveryMinValue *float64
	EstimatedTimeMinutes int
	PickupTimeMinutes    int
	MinimumOrderValue    *float64
	MaximumOrderValue    *float64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Allows reports whether the given fulfilment channel is enabled.
func (c *DeliveryConfig) Allows(t DeliveryType) bool {
	return c != nil && slices.Contains(c.AvailableTypes, t)
}

// DeliveryZone is one named sub-region of a company's delivery area.
// Exactly one geometry field is populated depending on ZoneType; this is
// enforced at write time, not by the struct.
type DeliveryZone struct {
	ID                   uuid.UUID
	CompanyID            uuid.UUID
	Name                 string
	ZoneType             ZoneType
	RadiusKm             *float64 // RADIUS
	Polygon              orb.Ring // POLYGON, ring of (lon, lat) vertices
	Neighborhoods        string   // NEIGHBORHOOD, comma-separated names
	PostalCodes          string   // POSTAL_CODE, comma-separated prefixes
	DeliveryFee          float64
	EstimatedTimeMinutes int
	MinimumOrderValue    *float64
	IsEnabled            bool
	Priority             int // higher is evaluated first
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NeighborhoodList splits the comma-separated neighborhood names, trimmed,
// dropping empty items.
func (z *DeliveryZone) NeighborhoodList() []string {
	return splitCommaList(z.Neighborhoods)
}

// PostalCodeList splits the comma-separated postal prefixes, trimmed,
// dropping empty items.
func (z *DeliveryZone) PostalCodeList() []string {
	return splitCommaList(z.PostalCodes)
}

func splitCommaList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
