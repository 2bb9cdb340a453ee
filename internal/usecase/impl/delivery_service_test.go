package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"mercado/internal/domain/entity"
	domainerrors "mercado/internal/domain/errors"
	"mercado/internal/domain/repository"
	"mercado/internal/domain/resolution"
	mockRepo "mercado/internal/mocks/repository"
	mockService "mercado/internal/mocks/service"
	"mercado/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testPrincipal(companyID uuid.UUID) entity.Principal {
	return entity.Principal{
		UserID:    uuid.New(),
		Roles:     entity.Roles{entity.RoleCompanyAdmin},
		CompanyID: &companyID,
	}
}

func validConfigInput() *usecase.DeliveryConfigInput {
	return &usecase.DeliveryConfigInput{
		IsEnabled:            true,
		AvailableTypes:       []entity.DeliveryType{entity.DeliveryTypeDelivery},
		FeeCalculationType:   entity.FeeCalculationFixed,
		BaseFee:              8,
		EstimatedTimeMinutes: 40,
		PickupTimeMinutes:    20,
	}
}

func validRadiusZoneInput() *usecase.DeliveryZoneInput {
	radius := 5.0
	return &usecase.DeliveryZoneInput{
		Name:                 "Centro",
		ZoneType:             entity.ZoneTypeRadius,
		RadiusKm:             &radius,
		DeliveryFee:          6,
		EstimatedTimeMinutes: 30,
		IsEnabled:            true,
		Priority:             1,
	}
}

func TestDeliveryService_GetConfig(t *testing.T) {
	mockDeliveryRepo := mockRepo.NewMockDeliveryRepository(t)
	service := NewDeliveryService(nil, mockDeliveryRepo, nil, nil, discardLogger())

	ctx := context.Background()
	companyID := uuid.New()
	expected := &entity.DeliveryConfig{ID: uuid.New(), CompanyID: companyID, IsEnabled: true}

	mockDeliveryRepo.EXPECT().
		FindConfigByCompany(ctx, companyID).
		Return(expected, nil)

	cfg, err := service.GetConfig(ctx, companyID)
	require.NoError(t, err)
	assert.Equal(t, expected, cfg)
}

func TestDeliveryService_GetConfig_NotFound(t *testing.T) {
	mockDeliveryRepo := mockRepo.NewMockDeliveryRepository(t)
	service := NewDeliveryService(nil, mockDeliveryRepo, nil, nil, discardLogger())

	ctx := context.Background()
	companyID := uuid.New()

	mockDeliveryRepo.EXPECT().
		FindConfigByCompany(ctx, companyID).
		Return(nil, repository.ErrDeliveryConfigNotFound)

	cfg, err := service.GetConfig(ctx, companyID)
	assert.Nil(t, cfg)
	assert.Equal(t, domainerrors.ErrDeliveryConfigNotFound, err)
}

func TestDeliveryService_EnsureConfig_Creates(t *testing.T) {
	mockDeliveryRepo := mockRepo.NewMockDeliveryRepository(t)
	mockAuthorizer := mockService.NewMockAuthorizer(t)
	service := NewDeliveryService(nil, mockDeliveryRepo, nil, mockAuthorizer, discardLogger())

	ctx := context.Background()
	companyID := uuid.New()
	principal := testPrincipal(companyID)

	mockAuthorizer.EXPECT().
		CanManageCompany(ctx, principal, companyID).
		Return(true, nil)

	mockDeliveryRepo.EXPECT().
		FindConfigByCompany(ctx, companyID).
		Return(nil, repository.ErrDeliveryConfigNotFound)

	mockDeliveryRepo.EXPECT().
		CreateConfig(ctx, mock.AnythingOfType("*entity.DeliveryConfig")).
		Return(nil)

	cfg, err := service.EnsureConfig(ctx, principal, companyID, validConfigInput())
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, companyID, cfg.CompanyID)
	assert.NotEqual(t, uuid.Nil, cfg.ID)
	assert.True(t, cfg.IsEnabled)
	assert.Equal(t, entity.FeeCalculationFixed, cfg.FeeCalculationType)
}

func TestDeliveryService_EnsureConfig_Updates(t *testing.T) {
	mockDeliveryRepo := mockRepo.NewMockDeliveryRepository(t)
	mockAuthorizer := mockService.NewMockAuthorizer(t)
	service := NewDeliveryService(nil, mockDeliveryRepo, nil, mockAuthorizer, discardLogger())

	ctx := context.Background()
	companyID := uuid.New()
	principal := testPrincipal(companyID)
	existing := &entity.DeliveryConfig{ID: uuid.New(), CompanyID: companyID, BaseFee: 3}

	mockAuthorizer.EXPECT().
		CanManageCompany(ctx, principal, companyID).
		Return(true, nil)

	mockDeliveryRepo.EXPECT().
		FindConfigByCompany(ctx, companyID).
		Return(existing, nil)

	mockDeliveryRepo.EXPECT().
		UpdateConfig(ctx, existing).
		Return(nil)

	input := validConfigInput()
	input.BaseFee = 9.5

	cfg, err := service.EnsureConfig(ctx, principal, companyID, input)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, cfg.ID)
	assert.InDelta(t, 9.5, cfg.BaseFee, 0.001)
}

func TestDeliveryService_EnsureConfig_Forbidden(t *testing.T) {
	mockDeliveryRepo := mockRepo.NewMockDeliveryRepository(t)
	mockAuthorizer := mockService.NewMockAuthorizer(t)
	service := NewDeliveryService(nil, mockDeliveryRepo, nil, mockAuthorizer, discardLogger())

	ctx := context.Background()
	companyID := uuid.New()
	principal := entity.Principal{UserID: uuid.New(), Roles: entity.Roles{entity.RolePublicUser}}

	mockAuthorizer.EXPECT().
		CanManageCompany(ctx, principal, companyID).
		Return(false, nil)

	cfg, err := service.EnsureConfig(ctx, principal, companyID, validConfigInput())
	assert.Nil(t, cfg)
	assert.Equal(t, domainerrors.ErrForbidden, err)
}

func TestDeliveryService_EnsureConfig_InvalidInput(t *testing.T) {
	service := NewDeliveryService(nil, nil, nil, nil, discardLogger())

	ctx := context.Background()
	companyID := uuid.New()
	input := validConfigInput()
	input.EstimatedTimeMinutes = 0

	cfg, err := service.EnsureConfig(ctx, testPrincipal(companyID), companyID, input)
	assert.Nil(t, cfg)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestDeliveryService_ReplaceZones(t *testing.T) {
	mockAuthorizer := mockService.NewMockAuthorizer(t)
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockTxRepo := mockRepo.NewMockDeliveryRepository(t)
	service := NewDeliveryService(nil, nil, mockTxManager, mockAuthorizer, discardLogger())

	ctx := context.Background()
	companyID := uuid.New()
	principal := testPrincipal(companyID)

	mockAuthorizer.EXPECT().
		CanManageCompany(ctx, principal, companyID).
		Return(true, nil)

	mockTxManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	mockFactory.EXPECT().NewDeliveryRepository().Return(mockTxRepo)

	mockTxRepo.EXPECT().
		DeleteZonesByCompany(ctx, companyID).
		Return(nil)

	mockTxRepo.EXPECT().
		CreateZone(ctx, mock.AnythingOfType("*entity.DeliveryZone")).
		Return(nil).
		Times(2)

	second := validRadiusZoneInput()
	second.Name = "Zona Sul"
	second.Priority = 5

	zones, err := service.ReplaceZones(ctx, principal, companyID, []*usecase.DeliveryZoneInput{
		validRadiusZoneInput(),
		second,
	})
	require.NoError(t, err)
	require.Len(t, zones, 2)
	assert.Equal(t, companyID, zones[0].CompanyID)
	assert.Equal(t, "Zona Sul", zones[1].Name)
}

func TestDeliveryService_ReplaceZones_InvalidZoneAborts(t *testing.T) {
	service := NewDeliveryService(nil, nil, nil, nil, discardLogger())

	ctx := context.Background()
	companyID := uuid.New()
	bad := validRadiusZoneInput()
	bad.RadiusKm = nil

	zones, err := service.ReplaceZones(ctx, testPrincipal(companyID), companyID, []*usecase.DeliveryZoneInput{bad})
	assert.Nil(t, zones)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestDeliveryService_UpdateZone_WrongCompany(t *testing.T) {
	mockDeliveryRepo := mockRepo.NewMockDeliveryRepository(t)
	mockAuthorizer := mockService.NewMockAuthorizer(t)
	service := NewDeliveryService(nil, mockDeliveryRepo, nil, mockAuthorizer, discardLogger())

	ctx := context.Background()
	companyID := uuid.New()
	zoneID := uuid.New()
	principal := testPrincipal(companyID)

	mockAuthorizer.EXPECT().
		CanManageCompany(ctx, principal, companyID).
		Return(true, nil)

	mockDeliveryRepo.EXPECT().
		FindZoneByID(ctx, zoneID).
		Return(&entity.DeliveryZone{ID: zoneID, CompanyID: uuid.New()}, nil)

	zone, err := service.UpdateZone(ctx, principal, companyID, zoneID, validRadiusZoneInput())
	assert.Nil(t, zone)
	assert.Equal(t, domainerrors.ErrZoneNotFound, err)
}

func TestDeliveryService_RemoveZone(t *testing.T) {
	mockDeliveryRepo := mockRepo.NewMockDeliveryRepository(t)
	mockAuthorizer := mockService.NewMockAuthorizer(t)
	service := NewDeliveryService(nil, mockDeliveryRepo, nil, mockAuthorizer, discardLogger())

	ctx := context.Background()
	companyID := uuid.New()
	zoneID := uuid.New()
	principal := testPrincipal(companyID)

	mockAuthorizer.EXPECT().
		CanManageCompany(ctx, principal, companyID).
		Return(true, nil)

	mockDeliveryRepo.EXPECT().
		FindZoneByID(ctx, zoneID).
		Return(&entity.DeliveryZone{ID: zoneID, CompanyID: companyID}, nil)

	mockDeliveryRepo.EXPECT().
		DeleteZone(ctx, zoneID).
		Return(nil)

	err := service.RemoveZone(ctx, principal, companyID, zoneID)
	require.NoError(t, err)
}

func TestDeliveryService_Quote_CompanyNotFound(t *testing.T) {
	mockCompanyRepo := mockRepo.NewMockCompanyRepository(t)
	service := NewDeliveryService(mockCompanyRepo, nil, nil, nil, discardLogger())

	ctx := context.Background()
	companyID := uuid.New()

	mockCompanyRepo.EXPECT().
		FindCompanyByID(ctx, companyID).
		Return(nil, repository.ErrCompanyNotFound)

	_, err := service.Quote(ctx, companyID, &usecase.QuoteInput{})
	assert.Equal(t, domainerrors.ErrCompanyNotFound, err)
}

func TestDeliveryService_Quote_Delivers(t *testing.T) {
	mockCompanyRepo := mockRepo.NewMockCompanyRepository(t)
	mockDeliveryRepo := mockRepo.NewMockDeliveryRepository(t)
	service := NewDeliveryService(mockCompanyRepo, mockDeliveryRepo, nil, nil, discardLogger())

	ctx := context.Background()
	companyID := uuid.New()
	lat, lon := -23.5505, -46.6333
	company := &entity.Company{ID: companyID, Latitude: &lat, Longitude: &lon, IsActive: true}

	radius := 5.0
	cfg := &entity.DeliveryConfig{
		CompanyID:            companyID,
		IsEnabled:            true,
		AvailableTypes:       []entity.DeliveryType{entity.DeliveryTypeDelivery},
		FeeCalculationType:   entity.FeeCalculationByZone,
		EstimatedTimeMinutes: 45,
	}
	zones := []*entity.DeliveryZone{{
		ID:          uuid.New(),
		CompanyID:   companyID,
		Name:        "Centro",
		ZoneType:    entity.ZoneTypeRadius,
		RadiusKm:    &radius,
		DeliveryFee: 7.5,
		IsEnabled:   true,
	}}

	mockCompanyRepo.EXPECT().FindCompanyByID(ctx, companyID).Return(company, nil)
	mockDeliveryRepo.EXPECT().FindConfigByCompany(ctx, companyID).Return(cfg, nil)
	mockDeliveryRepo.EXPECT().FindZonesByCompany(ctx, companyID).Return(zones, nil)

	quote, err := service.Quote(ctx, companyID, &usecase.QuoteInput{
		Address: resolution.CustomerAddress{Latitude: -23.5510, Longitude: -46.6340},
	})
	require.NoError(t, err)
	assert.True(t, quote.CanDeliver)
	assert.InDelta(t, 7.5, quote.Fee, 0.001)
}

func TestDeliveryService_Quote_RepositoryFailureDegrades(t *testing.T) {
	mockCompanyRepo := mockRepo.NewMockCompanyRepository(t)
	mockDeliveryRepo := mockRepo.NewMockDeliveryRepository(t)
	service := NewDeliveryService(mockCompanyRepo, mockDeliveryRepo, nil, nil, discardLogger())

	ctx := context.Background()
	companyID := uuid.New()

	mockCompanyRepo.EXPECT().
		FindCompanyByID(ctx, companyID).
		Return(&entity.Company{ID: companyID, IsActive: true}, nil)

	mockDeliveryRepo.EXPECT().
		FindConfigByCompany(ctx, companyID).
		Return(nil, assert.AnError)

	quote, err := service.Quote(ctx, companyID, &usecase.QuoteInput{})
	require.NoError(t, err)
	assert.False(t, quote.CanDeliver)
	assert.Equal(t, "error calculating delivery fee", quote.Reason)
}
