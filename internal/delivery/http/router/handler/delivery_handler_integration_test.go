package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"mercado/internal/domain/entity"
	mockRepo "mercado/internal/mocks/repository"
	"mercado/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDeliveryHandler_Quote_Integration(t *testing.T) {
	mockCompanyRepo := mockRepo.NewMockCompanyRepository(t)
	mockDeliveryRepo := mockRepo.NewMockDeliveryRepository(t)
	deliveryUC := impl.NewDeliveryService(mockCompanyRepo, mockDeliveryRepo, nil, nil, discardLogger())

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

	mockCompanyRepo.EXPECT().FindCompanyByID(mock.Anything, companyID).Return(company, nil)
	mockDeliveryRepo.EXPECT().FindConfigByCompany(mock.Anything, companyID).Return(cfg, nil)
	mockDeliveryRepo.EXPECT().FindZonesByCompany(mock.Anything, companyID).Return(zones, nil)

	handler := &DeliveryHandler{
		deliveryUC: deliveryUC,
		logger:     discardLogger(),
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/companies/"+companyID.String()+"/delivery/quote?latitude=-23.5510&longitude=-46.6340&order_value=42.50", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("companyID")
	c.SetParamValues(companyID.String())

	err := handler.Quote(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, `"canDeliver":true`)
	assert.Contains(t, responseBody, `"fee":7.5`)
	assert.Contains(t, responseBody, `"success":true`)
}

func TestDeliveryHandler_Quote_InvalidCoordinates(t *testing.T) {
	handler := &DeliveryHandler{
		deliveryUC: impl.NewDeliveryService(nil, nil, nil, nil, discardLogger()),
		logger:     discardLogger(),
	}

	companyID := uuid.New()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/companies/"+companyID.String()+"/delivery/quote?latitude=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("companyID")
	c.SetParamValues(companyID.String())

	err := handler.Quote(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_COORDINATES")
}
