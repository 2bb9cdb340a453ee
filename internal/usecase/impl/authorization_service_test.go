package impl

import (
	"context"
	"testing"

	"mercado/internal/domain/entity"
	"mercado/internal/domain/repository"
	mockRepo "mercado/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizationService_SuperAdmin(t *testing.T) {
	service := NewAuthorizationService(nil, nil)

	ctx := context.Background()
	principal := entity.Principal{UserID: uuid.New(), Roles: entity.Roles{entity.RoleSuperAdmin}}

	ok, err := service.CanManageCompany(ctx, principal, uuid.New())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAuthorizationService_CompanyAdmin_OwnCompany(t *testing.T) {
	service := NewAuthorizationService(nil, nil)

	ctx := context.Background()
	companyID := uuid.New()
	principal := entity.Principal{
		UserID:    uuid.New(),
		Roles:     entity.Roles{entity.RoleCompanyAdmin},
		CompanyID: &companyID,
	}

	ok, err := service.CanManageCompany(ctx, principal, companyID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAuthorizationService_CompanyAdmin_OtherCompany(t *testing.T) {
	service := NewAuthorizationService(nil, nil)

	ctx := context.Background()
	ownCompanyID := uuid.New()
	principal := entity.Principal{
		UserID:    uuid.New(),
		Roles:     entity.Roles{entity.RoleCompanyAdmin},
		CompanyID: &ownCompanyID,
	}

	ok, err := service.CanManageCompany(ctx, principal, uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthorizationService_PlaceAdmin_MatchingPlace(t *testing.T) {
	mockCompanyRepo := mockRepo.NewMockCompanyRepository(t)
	service := NewAuthorizationService(mockCompanyRepo, nil)

	ctx := context.Background()
	companyID := uuid.New()
	placeID := uuid.New()
	principal := entity.Principal{
		UserID:  uuid.New(),
		Roles:   entity.Roles{entity.RolePlaceAdmin},
		PlaceID: &placeID,
	}

	mockCompanyRepo.EXPECT().
		FindCompanyByID(ctx, companyID).
		Return(&entity.Company{ID: companyID, PlaceID: placeID}, nil)

	ok, err := service.CanManageCompany(ctx, principal, companyID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAuthorizationService_PlaceAdmin_OtherPlace(t *testing.T) {
	mockCompanyRepo := mockRepo.NewMockCompanyRepository(t)
	service := NewAuthorizationService(mockCompanyRepo, nil)

	ctx := context.Background()
	companyID := uuid.New()
	placeID := uuid.New()
	principal := entity.Principal{
		UserID:  uuid.New(),
		Roles:   entity.Roles{entity.RolePlaceAdmin},
		PlaceID: &placeID,
	}

	mockCompanyRepo.EXPECT().
		FindCompanyByID(ctx, companyID).
		Return(&entity.Company{ID: companyID, PlaceID: uuid.New()}, nil)

	ok, err := service.CanManageCompany(ctx, principal, companyID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthorizationService_OrganizationAdmin_MatchingOrganization(t *testing.T) {
	mockCompanyRepo := mockRepo.NewMockCompanyRepository(t)
	mockPlaceRepo := mockRepo.NewMockPlaceRepository(t)
	service := NewAuthorizationService(mockCompanyRepo, mockPlaceRepo)

	ctx := context.Background()
	companyID := uuid.New()
	placeID := uuid.New()
	organizationID := uuid.New()
	principal := entity.Principal{
		UserID:         uuid.New(),
		Roles:          entity.Roles{entity.RoleOrganizationAdmin},
		OrganizationID: &organizationID,
	}

	mockCompanyRepo.EXPECT().
		FindCompanyByID(ctx, companyID).
		Return(&entity.Company{ID: companyID, PlaceID: placeID}, nil)

	mockPlaceRepo.EXPECT().
		FindPlaceByID(ctx, placeID).
		Return(&entity.Place{ID: placeID, OrganizationID: organizationID}, nil)

	ok, err := service.CanManageCompany(ctx, principal, companyID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAuthorizationService_OrganizationAdmin_OtherOrganization(t *testing.T) {
	mockCompanyRepo := mockRepo.NewMockCompanyRepository(t)
	mockPlaceRepo := mockRepo.NewMockPlaceRepository(t)
	service := NewAuthorizationService(mockCompanyRepo, mockPlaceRepo)

	ctx := context.Background()
	companyID := uuid.New()
	placeID := uuid.New()
	organizationID := uuid.New()
	principal := entity.Principal{
		UserID:         uuid.New(),
		Roles:          entity.Roles{entity.RoleOrganizationAdmin},
		OrganizationID: &organizationID,
	}

	mockCompanyRepo.EXPECT().
		FindCompanyByID(ctx, companyID).
		Return(&entity.Company{ID: companyID, PlaceID: placeID}, nil)

	mockPlaceRepo.EXPECT().
		FindPlaceByID(ctx, placeID).
		Return(&entity.Place{ID: placeID, OrganizationID: uuid.New()}, nil)

	ok, err := service.CanManageCompany(ctx, principal, companyID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthorizationService_PublicUser(t *testing.T) {
	service := NewAuthorizationService(nil, nil)

	ctx := context.Background()
	principal := entity.Principal{UserID: uuid.New(), Roles: entity.Roles{entity.RolePublicUser}}

	ok, err := service.CanManageCompany(ctx, principal, uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthorizationService_CompanyMissing(t *testing.T) {
	mockCompanyRepo := mockRepo.NewMockCompanyRepository(t)
	service := NewAuthorizationService(mockCompanyRepo, nil)

	ctx := context.Background()
	companyID := uuid.New()
	placeID := uuid.New()
	principal := entity.Principal{
		UserID:  uuid.New(),
		Roles:   entity.Roles{entity.RolePlaceAdmin},
		PlaceID: &placeID,
	}

	mockCompanyRepo.EXPECT().
		FindCompanyByID(ctx, companyID).
		Return(nil, repository.ErrCompanyNotFound)

	ok, err := service.CanManageCompany(ctx, principal, companyID)
	assert.False(t, ok)
	assert.ErrorIs(t, err, repository.ErrCompanyNotFound)
}
