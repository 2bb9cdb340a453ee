package repository

import (
	"context"

	"mercado/internal/domain/entity"
	"mercado/internal/errors"

	"github.com/google/uuid"
)

// ErrPlaceNotFound is returned when a place lookup has no match.
var ErrPlaceNotFound = errors.New("place not found")

// PlaceRepository defines read access to place records, used to resolve a
// company's place up to its owning organization for authorization scoping.
type PlaceRepository interface {
	// FindPlaceByID retrieves a place by its unique ID.
	// Returns ErrPlaceNotFound if no active place exists.
	FindPlaceByID(ctx context.Context, id uuid.UUID) (*entity.Place, error)
}
