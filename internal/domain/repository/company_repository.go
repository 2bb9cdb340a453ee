// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"mercado/internal/domain/entity"
	"mercado/internal/errors"

	"github.com/google/uuid"
)

// ErrCompanyNotFound is returned when a company lookup has no match.
var ErrCompanyNotFound = errors.New("company not found")

// CompanyRepository defines read access to company records. Companies are
// owned by the surrounding platform; this service only needs lookups for
// quoting and authorization scoping.
type CompanyRepository interface {
	// FindCompanyByID retrieves a company by its unique ID.
	// Returns ErrCompanyNotFound if no active company exists.
	FindCompanyByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)
}
