package resolution

import (
	"testing"

	"mercado/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func testCompany(lat, lng float64) *entity.Company {
	return &entity.Company{
		ID:        uuid.New(),
		PlaceID:   uuid.New(),
		Name:      "Padaria Central",
		Latitude:  &lat,
		Longitude: &lng,
		IsActive:  true,
	}
}

func enabledConfig() *entity.DeliveryConfig {
	return &entity.DeliveryConfig{
		ID:                   uuid.New(),
		IsEnabled:            true,
		AvailableTypes:       []entity.DeliveryType{entity.DeliveryTypeDelivery, entity.DeliveryTypePickup},
		FeeCalculationType:   entity.FeeCalculationFixed,
		BaseFee:              10,
		EstimatedTimeMinutes: 45,
		PickupTimeMinutes:    15,
	}
}

func radiusZone(radiusKm float64, priority int) *entity.DeliveryZone {
	return &entity.DeliveryZone{
		ID:                   uuid.New(),
		Name:                 "Raio",
		ZoneType:             entity.ZoneTypeRadius,
		RadiusKm:             &radiusKm,
		DeliveryFee:          8,
		EstimatedTimeMinutes: 30,
		IsEnabled:            true,
		Priority:             priority,
	}
}

func TestResolveDelivery_ConfigMissingOrDisabled(t *testing.T) {
	company := testCompany(0, 0)
	addr := CustomerAddress{Latitude: 0, Longitude: 0}

	quote := ResolveDelivery(nil, nil, company, addr, nil)
	assert.False(t, quote.CanDeliver)
	assert.Equal(t, "delivery is not configured or enabled", quote.Reason)

	cfg := enabledConfig()
	cfg.IsEnabled = false
	quote = ResolveDelivery(cfg, nil, company, addr, nil)
	assert.False(t, quote.CanDeliver)
	assert.Equal(t, "delivery is not configured or enabled", quote.Reason)
}

func TestResolveDelivery_HomeDeliveryUnavailable(t *testing.T) {
	cfg := enabledConfig()
	cfg.AvailableTypes = []entity.DeliveryType{entity.DeliveryTypePickup, entity.DeliveryTypeDineIn}

	quote := ResolveDelivery(cfg, nil, testCompany(0, 0), CustomerAddress{}, nil)
	assert.False(t, quote.CanDeliver)
	assert.Equal(t, "home delivery is not available", quote.Reason)
}

func TestResolveDelivery_OrderValueBounds(t *testing.T) {
	cfg := enabledConfig()
	cfg.MinimumOrderValue = floatPtr(20)
	cfg.MaximumOrderValue = floatPtr(200)
	zones := []*entity.DeliveryZone{radiusZone(5, 0)}
	company := testCompany(0, 0)
	addr := CustomerAddress{Latitude: 0, Longitude: 0.01}

	below := ResolveDelivery(cfg, zones, company, addr, floatPtr(15))
	assert.False(t, below.CanDeliver)
	assert.Contains(t, below.Reason, "minimum order value")
	assert.Contains(t, below.Reason, "20.00")

	above := ResolveDelivery(cfg, zones, company, addr, floatPtr(250))
	assert.False(t, above.CanDeliver)
	assert.Contains(t, above.Reason, "maximum order value")

	// Absent order value counts as zero and fails a configured minimum.
	missing := ResolveDelivery(cfg, zones, company, addr, nil)
	assert.False(t, missing.CanDeliver)

	ok := ResolveDelivery(cfg, zones, company, addr, floatPtr(50))
	assert.True(t, ok.CanDeliver)
}

func TestResolveDelivery_AreaNotServed(t *testing.T) {
	cfg := enabledConfig()
	zones := []*entity.DeliveryZone{radiusZone(5, 0)}
	// ~111 km away, outside the 5 km radius.
	addr := CustomerAddress{Latitude: 1, Longitude: 0}

	quote := ResolveDelivery(cfg, zones, testCompany(0, 0), addr, nil)
	assert.False(t, quote.CanDeliver)
	assert.Equal(t, "address is outside the delivery area", quote.Reason)
}

func TestResolveDelivery_ZoneMinimumOrderValue(t *testing.T) {
	cfg := enabledConfig()
	zone := radiusZone(5, 0)
	zone.MinimumOrderValue = floatPtr(30)
	addr := CustomerAddress{Latitude: 0, Longitude: 0.01}

	quote := ResolveDelivery(cfg, []*entity.DeliveryZone{zone}, testCompany(0, 0), addr, floatPtr(10))
	assert.False(t, quote.CanDeliver)
	assert.Contains(t, quote.Reason, "minimum order value for this zone")
}

func TestResolveDelivery_RadiusScenario(t *testing.T) {
	// Company at (0,0), 5 km radius, customer ~1.1 km east.
	cfg := enabledConfig()
	zone := radiusZone(5, 0)
	addr := CustomerAddress{Latitude: 0, Longitude: 0.01}

	quote := ResolveDelivery(cfg, []*entity.DeliveryZone{zone}, testCompany(0, 0), addr, nil)
	require.True(t, quote.CanDeliver)
	assert.Equal(t, 10.0, quote.Fee)
	assert.Equal(t, 30, quote.EstimatedTime)
	require.NotNil(t, quote.Zone)
	assert.Equal(t, zone.ID, quote.Zone.ID)
}

func TestResolveDelivery_FeeStrategies(t *testing.T) {
	company := testCompany(0, 0)
	addr := CustomerAddress{Latitude: 0, Longitude: 0.01}
	zone := radiusZone(5, 0)
	zone.DeliveryFee = 7.5

	tests := []struct {
		name     string
		mutate   func(cfg *entity.DeliveryConfig)
		expected float64
		delta    float64
	}{
		{
			name:     "free",
			mutate:   func(cfg *entity.DeliveryConfig) { cfg.FeeCalculationType = entity.FeeCalculationFree },
			expected: 0,
		},
		{
			name:     "fixed",
			mutate:   func(cfg *entity.DeliveryConfig) { cfg.FeeCalculationType = entity.FeeCalculationFixed },
			expected: 10,
		},
		{
			name:     "by zone",
			mutate:   func(cfg *entity.DeliveryConfig) { cfg.FeeCalculationType = entity.FeeCalculationByZone },
			expected: 7.5,
		},
		{
			name: "by distance",
			mutate: func(cfg *entity.DeliveryConfig) {
				cfg.FeeCalculationType = entity.FeeCalculationByDistance
				cfg.BaseFee = 5
				cfg.FeePerKm = floatPtr(2)
			},
			// base 5 + ~1.11 km * 2
			expected: 7.22,
			delta:    0.05,
		},
		{
			name: "by distance without fee per km",
			mutate: func(cfg *entity.DeliveryConfig) {
				cfg.FeeCalculationType = entity.FeeCalculationByDistance
				cfg.BaseFee = 5
			},
			expected: 5,
		},
		{
			name: "by order value falls back to base fee",
			mutate: func(cfg *entity.DeliveryConfig) {
				cfg.FeeCalculationType = entity.FeeCalculationByOrderValue
			},
			expected: 10,
		},
		{
			name:     "unknown type falls back to base fee",
			mutate:   func(cfg *entity.DeliveryConfig) { cfg.FeeCalculationType = entity.FeeCalculationType("WEIRD") },
			expected: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := enabledConfig()
			tt.mutate(cfg)

			quote := ResolveDelivery(cfg, []*entity.DeliveryZone{zone}, company, addr, nil)
			require.True(t, quote.CanDeliver)
			if tt.delta > 0 {
				assert.InDelta(t, tt.expected, quote.Fee, tt.delta)
			} else {
				assert.Equal(t, tt.expected, quote.Fee)
			}
		})
	}
}

func TestResolveDelivery_FreeDeliveryOverridesFeeType(t *testing.T) {
	// Spec scenario: FIXED base fee 10, free above 50, order of 60 -> fee 0.
	cfg := enabledConfig()
	cfg.FreeDeliveryMinValue = floatPtr(50)
	zone := radiusZone(5, 0)
	addr := CustomerAddress{Latitude: 0, Longitude: 0.01}

	quote := ResolveDelivery(cfg, []*entity.DeliveryZone{zone}, testCompany(0, 0), addr, floatPtr(60))
	require.True(t, quote.CanDeliver)
	assert.Zero(t, quote.Fee)

	// Below the threshold the normal policy applies.
	quote = ResolveDelivery(cfg, []*entity.DeliveryZone{zone}, testCompany(0, 0), addr, floatPtr(40))
	require.True(t, quote.CanDeliver)
	assert.Equal(t, 10.0, quote.Fee)
}

func TestResolveDelivery_FeeNeverNegative(t *testing.T) {
	cfg := enabledConfig()
	cfg.BaseFee = -12
	zone := radiusZone(5, 0)
	addr := CustomerAddress{Latitude: 0, Longitude: 0.01}

	quote := ResolveDelivery(cfg, []*entity.DeliveryZone{zone}, testCompany(0, 0), addr, nil)
	require.True(t, quote.CanDeliver)
	assert.GreaterOrEqual(t, quote.Fee, 0.0)
}

func TestResolveDelivery_Idempotent(t *testing.T) {
	cfg := enabledConfig()
	zones := []*entity.DeliveryZone{radiusZone(5, 0)}
	addr := CustomerAddress{Latitude: 0, Longitude: 0.01}
	company := testCompany(0, 0)

	first := ResolveDelivery(cfg, zones, company, addr, floatPtr(25))
	second := ResolveDelivery(cfg, zones, company, addr, floatPtr(25))
	assert.Equal(t, first, second)
}

func TestFindApplicableZone_PriorityOrder(t *testing.T) {
	company := testCompany(0, 0)
	addr := CustomerAddress{Latitude: 0, Longitude: 0.01}

	low := radiusZone(5, 1)
	low.Name = "low"
	high := radiusZone(5, 10)
	high.Name = "high"
	disabled := radiusZone(5, 100)
	disabled.Name = "disabled"
	disabled.IsEnabled = false

	// Input order must not matter; only priority does.
	zone := FindApplicableZone([]*entity.DeliveryZone{low, disabled, high}, company, addr)
	require.NotNil(t, zone)
	assert.Equal(t, "high", zone.Name)

	zone = FindApplicableZone([]*entity.DeliveryZone{high, low}, company, addr)
	require.NotNil(t, zone)
	assert.Equal(t, "high", zone.Name)
}

func TestFindApplicableZone_CompanyCenterAlwaysInRadius(t *testing.T) {
	company := testCompany(-23.5505, -46.6333)
	addr := CustomerAddress{Latitude: -23.5505, Longitude: -46.6333}

	for _, radius := range []float64{0, 0.1, 5, 100} {
		zone := radiusZone(radius, 0)
		got := FindApplicableZone([]*entity.DeliveryZone{zone}, company, addr)
		require.NotNil(t, got, "radius %v", radius)
	}
}

func TestFindApplicableZone_RadiusFailsClosedWithoutCoordinates(t *testing.T) {
	company := &entity.Company{ID: uuid.New(), Name: "sem geo"}
	addr := CustomerAddress{Latitude: 0, Longitude: 0}

	zone := FindApplicableZone([]*entity.DeliveryZone{radiusZone(5, 0)}, company, addr)
	assert.Nil(t, zone)
}

func TestFindApplicableZone_Polygon(t *testing.T) {
	zone := &entity.DeliveryZone{
		ID:       uuid.New(),
		ZoneType: entity.ZoneTypePolygon,
		Polygon: orb.Ring{
			{-46.65, -23.56}, {-46.62, -23.56}, {-46.62, -23.54}, {-46.65, -23.54},
		},
		IsEnabled: true,
	}
	company := testCompany(-23.55, -46.63)

	inside := CustomerAddress{Latitude: -23.55, Longitude: -46.63}
	outside := CustomerAddress{Latitude: -23.50, Longitude: -46.63}

	assert.NotNil(t, FindApplicableZone([]*entity.DeliveryZone{zone}, company, inside))
	assert.Nil(t, FindApplicableZone([]*entity.DeliveryZone{zone}, company, outside))
}

func TestFindApplicableZone_MalformedPolygonNeverMatches(t *testing.T) {
	zone := &entity.DeliveryZone{
		ID:        uuid.New(),
		ZoneType:  entity.ZoneTypePolygon,
		Polygon:   orb.Ring{{0, 0}, {1, 1}},
		IsEnabled: true,
	}

	got := FindApplicableZone([]*entity.DeliveryZone{zone}, testCompany(0, 0), CustomerAddress{})
	assert.Nil(t, got)
}

func TestFindApplicableZone_Neighborhood(t *testing.T) {
	zone := &entity.DeliveryZone{
		ID:            uuid.New(),
		ZoneType:      entity.ZoneTypeNeighborhood,
		Neighborhoods: "Centro, Bairro Novo",
		IsEnabled:     true,
	}
	company := testCompany(0, 0)

	// Case and surrounding whitespace must not matter.
	match := CustomerAddress{Neighborhood: "centro "}
	assert.NotNil(t, FindApplicableZone([]*entity.DeliveryZone{zone}, company, match))

	miss := CustomerAddress{Neighborhood: "Jardins"}
	assert.Nil(t, FindApplicableZone([]*entity.DeliveryZone{zone}, company, miss))

	empty := CustomerAddress{}
	assert.Nil(t, FindApplicableZone([]*entity.DeliveryZone{zone}, company, empty))
}

func TestFindApplicableZone_PostalCodePrefix(t *testing.T) {
	zone := &entity.DeliveryZone{
		ID:          uuid.New(),
		ZoneType:    entity.ZoneTypePostalCode,
		PostalCodes: "01310, 04538",
		IsEnabled:   true,
	}
	company := testCompany(0, 0)

	tests := []struct {
		postalCode string
		matches    bool
	}{
		{"01310-100", true}, // punctuation stripped before prefix match
		{"04538000", true},
		{"99999-000", false},
		{"", false},
	}

	for _, tt := range tests {
		got := FindApplicableZone([]*entity.DeliveryZone{zone}, company, CustomerAddress{PostalCode: tt.postalCode})
		if tt.matches {
			assert.NotNil(t, got, "postal code %q", tt.postalCode)
		} else {
			assert.Nil(t, got, "postal code %q", tt.postalCode)
		}
	}
}
