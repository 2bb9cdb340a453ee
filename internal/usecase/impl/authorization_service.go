// Package impl contains the concrete use-case services.
package impl

import (
	"context"

	"mercado/internal/domain/entity"
	"mercado/internal/domain/repository"
	"mercado/internal/domain/service"
	"mercado/internal/errors"

	"github.com/google/uuid"
)

type authorizationService struct {
	companyRepo repository.CompanyRepository
	placeRepo   repository.PlaceRepository
}

// NewAuthorizationService is the constructor for the shared authorization capability.
// Every mutation entry point consults this instead of re-deriving role scope.
func NewAuthorizationService(companyRepo repository.CompanyRepository, placeRepo repository.PlaceRepository) service.Authorizer {
	return &authorizationService{
		companyRepo: companyRepo,
		placeRepo:   placeRepo,
	}
}

// CanManageCompany reports whether the principal's role and scope cover the company.
func (s *authorizationService) CanManageCompany(ctx context.Context, principal entity.Principal, companyID uuid.UUID) (bool, error) {
	if principal.Roles.Contains(entity.RoleSuperAdmin) {
		return true, nil
	}

	if principal.Roles.Contains(entity.RoleCompanyAdmin) &&
		principal.CompanyID != nil && *principal.CompanyID == companyID {
		return true, nil
	}

	needsPlace := principal.Roles.Contains(entity.RolePlaceAdmin)
	needsOrganization := principal.Roles.Contains(entity.RoleOrganizationAdmin)
	if !needsPlace && !needsOrganization {
		return false, nil
	}

	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return false, errors.Wrap(err, "failed to find company for authorization")
	}

	if needsPlace && principal.PlaceID != nil && *principal.PlaceID == company.PlaceID {
		return true, nil
	}

	if needsOrganization && principal.OrganizationID != nil {
		place, err := s.placeRepo.FindPlaceByID(ctx, company.PlaceID)
		if err != nil {
			return false, errors.Wrap(err, "failed to find place for authorization")
		}
		if place.OrganizationID == *principal.OrganizationID {
			return true, nil
		}
	}

	return false, nil
}
