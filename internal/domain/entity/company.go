// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Company is the marketplace tenant that owns delivery and schedule configuration.
// Companies belong to a place; the geocoordinate is optional because not every
// company has been geocoded.
type Company struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the company.
	PlaceID   uuid.UUID // The place (city/region) this company belongs to.
	Name      string    // Display name.
	Latitude  *float64  // Geographic latitude, nil when the company has no coordinates.
	Longitude *float64  // Geographic longitude, nil when the company has no coordinates.
	IsActive  bool      // Indicates if the company is visible to the public surface.
	CreatedAt time.Time // Timestamp of when this company was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// HasCoordinates reports whether the company has a usable geocoordinate.
func (c *Company) HasCoordinates() bool {
	return c != nil && c.Latitude != nil && c.Longitude != nil
}

// Location returns the company coordinate as an orb point (lon, lat).
// Only valid when HasCoordinates is true.
func (c *Company) Location() orb.Point {
	if !c.HasCoordinates() {
		return orb.Point{}
	}

	return orb.Point{*c.Longitude, *c.Latitude}
}
