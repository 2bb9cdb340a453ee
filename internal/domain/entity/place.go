// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Place is a geographic/administrative region (e.g. a city) owned by an
// organization and containing companies.
type Place struct {
	ID             uuid.UUID // The Global Unique Identifier (GUID) for the place.
	OrganizationID uuid.UUID // The organization that owns this place.
	Name           string    // Display name.
	IsActive       bool      // Indicates if the place is visible to the public surface.
	CreatedAt      time.Time // Timestamp of when this place was created.
	UpdatedAt      time.Time // Timestamp of the last modification.
}
