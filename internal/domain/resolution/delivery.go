// Package resolution implements the two pure marketplace engines: delivery
// quote resolution and operating-hours resolution. Both operate on fully
// loaded aggregates and perform no I/O, which keeps them deterministic and
// trivially parallel across requests.
package resolution

import (
	"fmt"
	"slices"
	"strings"

	"mercado/internal/domain/entity"
	"mercado/internal/domain/geo"

	"github.com/paulmach/orb"
)

// CustomerAddress is the candidate drop-off location for a quote.
type CustomerAddress struct {
	Latitude     float64
	Longitude    float64
	PostalCode   string
	Neighborhood string
}

// Point returns the address as an orb point (lon, lat).
func (a CustomerAddress) Point() orb.Point {
	return orb.Point{a.Longitude, a.Latitude}
}

// DeliveryQuote is the outcome of resolving a delivery request.
type DeliveryQuote struct {
	CanDeliver    bool                 `json:"canDeliver"`
	Fee           float64              `json:"fee"`
	EstimatedTime int                  `json:"estimatedTime"`
	Zone          *entity.DeliveryZone `json:"zone,omitempty"`
	Reason        string               `json:"reason,omitempty"`
}

func declined(reason string) DeliveryQuote {
	return DeliveryQuote{CanDeliver: false, Reason: reason}
}

// ResolveDelivery decides whether a company can deliver to the customer
// address and, if so, at what fee and ETA. Zones may arrive in any order.
// orderValue is optional; absent means zero.
func ResolveDelivery(
	cfg *entity.DeliveryConfig,
	zones []*entity.DeliveryZone,
	company *entity.Company,
	address CustomerAddress,
	orderValue *float64,
) DeliveryQuote {
	if cfg == nil || !cfg.IsEnabled {
		return declined("delivery is not configured or enabled")
	}
	if !cfg.Allows(entity.DeliveryTypeDelivery) {
		return declined("home delivery is not available")
	}

	value := 0.0
	if orderValue != nil {
		value = *orderValue
	}

	if cfg.MinimumOrderValue != nil && value < *cfg.MinimumOrderValue {
		return declined(fmt.Sprintf("minimum order value for delivery is %.2f", *cfg.MinimumOrderValue))
	}
	if cfg.MaximumOrderValue != nil && value > *cfg.MaximumOrderValue {
		return declined(fmt.Sprintf("maximum order value for delivery is %.2f", *cfg.MaximumOrderValue))
	}

	zone := FindApplicableZone(zones, company, address)
	if zone == nil {
		return declined("address is outside the delivery area")
	}

	if zone.MinimumOrderValue != nil && value < *zone.MinimumOrderValue {
		return declined(fmt.Sprintf("minimum order value for this zone is %.2f", *zone.MinimumOrderValue))
	}

	fee := computeFee(cfg, zone, company, address)

	// An order above the free-delivery threshold wins over every fee policy.
	if cfg.FreeDeliveryMinValue != nil && value >= *cfg.FreeDeliveryMinValue {
		fee = 0
	}
	if fee < 0 {
		fee = 0
	}

	return DeliveryQuote{
		CanDeliver:    true,
		Fee:           fee,
		EstimatedTime: zone.EstimatedTimeMinutes,
		Zone:          zone,
	}
}

func computeFee(cfg *entity.DeliveryConfig, zone *entity.DeliveryZone, company *entity.Company, address CustomerAddress) float64 {
	switch cfg.FeeCalculationType {
	case entity.FeeCalculationFree:
		return 0
	case entity.FeeCalculationByZone:
		return zone.DeliveryFee
	case entity.FeeCalculationByDistance:
		perKm := 0.0
		if cfg.FeePerKm != nil {
			perKm = *cfg.FeePerKm
		}
		distance := 0.0
		if company.HasCoordinates() {
			distance = geo.DistanceKm(company.Location(), address.Point())
		}

		return cfg.BaseFee + distance*perKm
	case entity.FeeCalculationByOrderValue:
		// No tiering table exists yet; the policy falls back to the base fee.
		return cfg.BaseFee
	case entity.FeeCalculationFixed:
		return cfg.BaseFee
	default:
		return cfg.BaseFee
	}
}

// FindApplicableZone returns the highest-priority enabled zone whose geometry
// contains the customer address, or nil when no zone matches.
func FindApplicableZone(zones []*entity.DeliveryZone, company *entity.Company, address CustomerAddress) *entity.DeliveryZone {
	candidates := make([]*entity.DeliveryZone, 0, len(zones))
	for _, z := range zones {
		if z != nil && z.IsEnabled {
			candidates = append(candidates, z)
		}
	}
	slices.SortStableFunc(candidates, func(a, b *entity.DeliveryZone) int {
		return b.Priority - a.Priority
	})

	for _, z := range candidates {
		if zoneContains(z, company, address) {
			return z
		}
	}

	return nil
}

func zoneContains(zone *entity.DeliveryZone, company *entity.Company, address CustomerAddress) bool {
	switch zone.ZoneType {
	case entity.ZoneTypeRadius:
		// Fails closed when the company has never been geocoded.
		if zone.RadiusKm == nil || !company.HasCoordinates() {
			return false
		}

		return geo.DistanceKm(company.Location(), address.Point()) <= *zone.RadiusKm
	case entity.ZoneTypePolygon:
		return geo.PointInRing(address.Point(), zone.Polygon)
	case entity.ZoneTypeNeighborhood:
		return matchNeighborhood(zone.NeighborhoodList(), address.Neighborhood)
	case entity.ZoneTypePostalCode:
		return matchPostalCode(zone.PostalCodeList(), address.PostalCode)
	default:
		return false
	}
}

func matchNeighborhood(neighborhoods []string, candidate string) bool {
	candidate = strings.ToLower(strings.TrimSpace(candidate))
	if candidate == "" {
		return false
	}
	for _, n := range neighborhoods {
		if strings.ToLower(n) == candidate {
			return true
		}
	}

	return false
}

func matchPostalCode(prefixes []string, candidate string) bool {
	candidateDigits := digitsOnly(candidate)
	if candidateDigits == "" {
		return false
	}
	for _, p := range prefixes {
		prefixDigits := digitsOnly(p)
		if prefixDigits != "" && strings.HasPrefix(candidateDigits, prefixDigits) {
			return true
		}
	}

	return false
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
