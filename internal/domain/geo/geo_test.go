package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_ZeroForSamePoint(t *testing.T) {
	p := orb.Point{121.5654, 25.033}
	assert.Zero(t, DistanceKm(p, p))
}

func TestDistanceKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name     string
		a, b     orb.Point
		expected float64
		delta    float64
	}{
		{
			name:     "one degree of longitude at the equator",
			a:        orb.Point{0, 0},
			b:        orb.Point{1, 0},
			expected: 111.19,
			delta:    0.5,
		},
		{
			name:     "one degree of latitude",
			a:        orb.Point{0, 0},
			b:        orb.Point{0, 1},
			expected: 111.19,
			delta:    0.5,
		},
		{
			name:     "paris to london",
			a:        orb.Point{2.3522, 48.8566},
			b:        orb.Point{-0.1278, 51.5074},
			expected: 343.5,
			delta:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, DistanceKm(tt.a, tt.b), tt.delta)
			// Distance is symmetric.
			assert.InDelta(t, DistanceKm(tt.a, tt.b), DistanceKm(tt.b, tt.a), 1e-9)
		})
	}
}

func TestPointInRing(t *testing.T) {
	square := orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}}

	tests := []struct {
		name   string
		point  orb.Point
		inside bool
	}{
		{"center", orb.Point{5, 5}, true},
		{"near edge inside", orb.Point{9.99, 9.99}, true},
		{"outside right", orb.Point{10.01, 5}, false},
		{"outside above", orb.Point{5, 10.01}, false},
		{"far away", orb.Point{-100, 40}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.inside, PointInRing(tt.point, square))
		})
	}
}

func TestPointInRing_ClosedRing(t *testing.T) {
	// A ring whose last vertex repeats the first must behave like the open form.
	closed := orb.Ring{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}}
	assert.True(t, PointInRing(orb.Point{2, 2}, closed))
	assert.False(t, PointInRing(orb.Point{5, 2}, closed))
}

func TestPointInRing_Concave(t *testing.T) {
	// L-shaped polygon: the notch at the top right is outside.
	l := orb.Ring{{0, 0}, {10, 0}, {10, 5}, {5, 5}, {5, 10}, {0, 10}}
	assert.True(t, PointInRing(orb.Point{2, 8}, l))
	assert.True(t, PointInRing(orb.Point{8, 2}, l))
	assert.False(t, PointInRing(orb.Point{8, 8}, l))
}

func TestPointInRing_Degenerate(t *testing.T) {
	assert.False(t, PointInRing(orb.Point{0, 0}, nil))
	assert.False(t, PointInRing(orb.Point{0, 0}, orb.Ring{{0, 0}}))
	assert.False(t, PointInRing(orb.Point{0, 0}, orb.Ring{{0, 0}, {1, 1}}))
}
