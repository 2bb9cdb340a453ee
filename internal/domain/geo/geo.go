// Package geo provides the small amount of pure geometry the delivery engine
// needs: great-circle distance and a point-in-ring test over orb types.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// earthRadiusKm is the mean Earth radius used for haversine distances.
const earthRadiusKm = 6371.0

// DistanceKm returns the haversine great-circle distance in kilometers
// between two (lon, lat) points given in decimal degrees.
func DistanceKm(a, b orb.Point) float64 {
	lat1 := degToRad(a.Lat())
	lat2 := degToRad(b.Lat())
	dLat := degToRad(b.Lat() - a.Lat())
	dLon := degToRad(b.Lon() - a.Lon())

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// PointInRing reports whether the point lies inside the ring using the
// even-odd ray-casting rule. The ring does not need to be closed; rings with
// fewer than three vertices never contain anything.
func PointInRing(p orb.Point, ring orb.Ring) bool {
	n := len(ring)
	if n > 1 && ring[0] == ring[n-1] {
		ring = ring[:n-1]
		n--
	}
	if n < 3 {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := ring[i].X(), ring[i].Y()
		xj, yj := ring[j].X(), ring[j].Y()

		intersects := (yi > p.Y()) != (yj > p.Y()) &&
			p.X() < (xj-xi)*(p.Y()-yi)/(yj-yi)+xi
		if intersects {
			inside = !inside
		}
	}

	return inside
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
