package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"mercado/internal/delivery/http/middleware"
	"mercado/internal/delivery/http/response"
	"mercado/internal/domain/entity"
	domainerrors "mercado/internal/domain/errors"
	"mercado/internal/domain/resolution"
	"mercado/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DeliveryHandlerParams holds dependencies for DeliveryHandler, injected by Fx.
type DeliveryHandlerParams struct {
	fx.In

	DeliveryUC usecase.DeliveryUsecase
	Logger     *slog.Logger
}

// DeliveryHandler holds dependencies for delivery-configuration handlers.
type DeliveryHandler struct {
	deliveryUC usecase.DeliveryUsecase
	logger     *slog.Logger
}

// NewDeliveryHandler is the constructor for DeliveryHandler.
func NewDeliveryHandler(params DeliveryHandlerParams) *DeliveryHandler {
	return &DeliveryHandler{
		deliveryUC: params.DeliveryUC,
		logger:     params.Logger,
	}
}

// UpsertDeliveryConfigRequest represents the request body for creating or
// updating a company's delivery configuration.
type UpsertDeliveryConfigRequest struct {
	IsEnabled            bool     `json:"is_enabled"`
	AvailableTypes       []string `json:"available_types" validate:"required,min=1"`
	FeeCalculationType   string   `json:"fee_calculation_type" validate:"required"`
	BaseFee              float64  `json:"base_fee" validate:"min=0"`
	FeePerKm             *float64 `json:"fee_per_km,omitempty" validate:"omitempty,min=0"`
	FreeDeliveryMinValue *float64 `json:"free_delivery_min_value,omitempty" validate:"omitempty,min=0"`
	EstimatedTimeMinutes int      `json:"estimated_time_minutes" validate:"min=0"`
	PickupTimeMinutes    int      `json:"pickup_time_minutes" validate:"min=0"`
	MinimumOrderValue    *float64 `json:"minimum_order_value,omitempty" validate:"omitempty,min=0"`
	MaximumOrderValue    *float64 `json:"maximum_order_value,omitempty" validate:"omitempty,min=0"`
}

// DeliveryZoneRequest represents the request body for one delivery zone.
type DeliveryZoneRequest struct {
	Name                 string   `json:"name" validate:"required"`
	ZoneType             string   `json:"zone_type" validate:"required"`
	RadiusKm             *float64 `json:"radius_km,omitempty" validate:"omitempty,gt=0"`
	Polygon              orb.Ring `json:"polygon,omitempty"`
	Neighborhoods        string   `json:"neighborhoods,omitempty"`
	PostalCodes          string   `json:"postal_codes,omitempty"`
	DeliveryFee          float64  `json:"delivery_fee" validate:"min=0"`
	EstimatedTimeMinutes int      `json:"estimated_time_minutes" validate:"min=0"`
	MinimumOrderValue    *float64 `json:"minimum_order_value,omitempty" validate:"omitempty,min=0"`
	IsEnabled            bool     `json:"is_enabled"`
	Priority             int      `json:"priority"`
}

// ReplaceDeliveryZonesRequest carries the full replacement zone list.
type ReplaceDeliveryZonesRequest struct {
	Zones []DeliveryZoneRequest `json:"zones" validate:"dive"`
}

// GetConfig handles the public delivery-configuration read.
func (h *DeliveryHandler) GetConfig(c echo.Context) error {
	companyID, err := parseCompanyID(c)
	if err != nil {
		return err
	}

	cfg, err := h.deliveryUC.GetConfig(c.Request().Context(), companyID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cfg, "Delivery configuration retrieved successfully")
}

// ListZones handles the public zone-list read.
func (h *DeliveryHandler) ListZones(c echo.Context) error {
	companyID, err := parseCompanyID(c)
	if err != nil {
		return err
	}

	zones, err := h.deliveryUC.ListZones(c.Request().Context(), companyID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, zones, "Delivery zones retrieved successfully")
}

// UpsertConfig handles creating or updating a company's delivery configuration.
func (h *DeliveryHandler) UpsertConfig(c echo.Context) error {
	principal, err := getPrincipal(c)
	if err != nil {
		return err
	}

	companyID, err := parseCompanyID(c)
	if err != nil {
		return err
	}

	var req UpsertDeliveryConfigRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery configuration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	cfg, err := h.deliveryUC.EnsureConfig(c.Request().Context(), principal, companyID, deliveryConfigInput(&req))
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cfg, "Delivery configuration saved successfully")
}

// ReplaceZones handles the atomic replacement of a company's zone list.
func (h *DeliveryHandler) ReplaceZones(c echo.Context) error {
	principal, err := getPrincipal(c)
	if err != nil {
		return err
	}

	companyID, err := parseCompanyID(c)
	if err != nil {
		return err
	}

	var req ReplaceDeliveryZonesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery zone input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	inputs := make([]*usecase.DeliveryZoneInput, 0, len(req.Zones))
	for i := range req.Zones {
		inputs = append(inputs, deliveryZoneInput(&req.Zones[i]))
	}

	zones, err := h.deliveryUC.ReplaceZones(c.Request().Context(), principal, companyID, inputs)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, zones, "Delivery zones replaced successfully")
}

// AddZone handles appending a single zone.
func (h *DeliveryHandler) AddZone(c echo.Context) error {
	principal, err := getPrincipal(c)
	if err != nil {
		return err
	}

	companyID, err := parseCompanyID(c)
	if err != nil {
		return err
	}

	var req DeliveryZoneRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery zone input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	zone, err := h.deliveryUC.AddZone(c.Request().Context(), principal, companyID, deliveryZoneInput(&req))
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, zone, "Delivery zone created successfully")
}

// UpdateZone handles rewriting a single zone.
func (h *DeliveryHandler) UpdateZone(c echo.Context) error {
	principal, err := getPrincipal(c)
	if err != nil {
		return err
	}

	companyID, err := parseCompanyID(c)
	if err != nil {
		return err
	}

	zoneID, err := uuid.Parse(c.Param("zoneID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid zone ID")
	}

	var req DeliveryZoneRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery zone input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	zone, err := h.deliveryUC.UpdateZone(c.Request().Context(), principal, companyID, zoneID, deliveryZoneInput(&req))
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, zone, "Delivery zone updated successfully")
}

// RemoveZone handles deleting a single zone.
func (h *DeliveryHandler) RemoveZone(c echo.Context) error {
	principal, err := getPrincipal(c)
	if err != nil {
		return err
	}

	companyID, err := parseCompanyID(c)
	if err != nil {
		return err
	}

	zoneID, err := uuid.Parse(c.Param("zoneID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid zone ID")
	}

	if err := h.deliveryUC.RemoveZone(c.Request().Context(), principal, companyID, zoneID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Zone deleted successfully"}, "Delivery zone deleted successfully")
}

// Quote handles the public delivery-quote read.
func (h *DeliveryHandler) Quote(c echo.Context) error {
	companyID, err := parseCompanyID(c)
	if err != nil {
		return err
	}

	latitude, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATES", "Invalid or missing latitude")
	}

	longitude, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATES", "Invalid or missing longitude")
	}

	input := &usecase.QuoteInput{
		Address: resolution.CustomerAddress{
			Latitude:     latitude,
			Longitude:    longitude,
			PostalCode:   c.QueryParam("postal_code"),
			Neighborhood: c.QueryParam("neighborhood"),
		},
	}

	if raw := c.QueryParam("order_value"); raw != "" {
		orderValue, err := strconv.ParseFloat(raw, 64)
		if err != nil || orderValue < 0 {
			return response.BadRequest(c, "INVALID_ORDER_VALUE", "Invalid order value")
		}
		input.OrderValue = &orderValue
	}

	quote, err := h.deliveryUC.Quote(c.Request().Context(), companyID, input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote, "Delivery quote calculated successfully")
}

func (h *DeliveryHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

func deliveryConfigInput(req *UpsertDeliveryConfigRequest) *usecase.DeliveryConfigInput {
	types := make([]entity.DeliveryType, 0, len(req.AvailableTypes))
	for _, t := range req.AvailableTypes {
		types = append(types, entity.DeliveryType(t))
	}

	return &usecase.DeliveryConfigInput{
		IsEnabled:            req.IsEnabled,
		AvailableTypes:       types,
		FeeCalculationType:   entity.FeeCalculationType(req.FeeCalculationType),
		BaseFee:              req.BaseFee,
		FeePerKm:             req.FeePerKm,
		FreeDeliveryMinValue: req.FreeDeliveryMinValue,
		EstimatedTimeMinutes: req.EstimatedTimeMinutes,
		PickupTimeMinutes:    req.PickupTimeMinutes,
		MinimumOrderValue:    req.MinimumOrderValue,
		MaximumOrderValue:    req.MaximumOrderValue,
	}
}

func deliveryZoneInput(req *DeliveryZoneRequest) *usecase.DeliveryZoneInput {
	return &usecase.DeliveryZoneInput{
		Name:                 req.Name,
		ZoneType:             entity.ZoneType(req.ZoneType),
		RadiusKm:             req.RadiusKm,
		Polygon:              req.Polygon,
		Neighborhoods:        req.Neighborhoods,
		PostalCodes:          req.PostalCodes,
		DeliveryFee:          req.DeliveryFee,
		EstimatedTimeMinutes: req.EstimatedTimeMinutes,
		MinimumOrderValue:    req.MinimumOrderValue,
		IsEnabled:            req.IsEnabled,
		Priority:             req.Priority,
	}
}

// parseCompanyID extracts and validates the company ID path parameter.
func parseCompanyID(c echo.Context) (uuid.UUID, error) {
	companyID, err := uuid.Parse(c.Param("companyID"))
	if err != nil {
		return uuid.Nil, response.BadRequest(c, "INVALID_ID", "Invalid company ID")
	}

	return companyID, nil
}

// getPrincipal retrieves the authenticated principal stored by the auth middleware.
func getPrincipal(c echo.Context) (entity.Principal, error) {
	principal, ok := c.Get(middleware.ContextKeyPrincipal).(entity.Principal)
	if !ok {
		return entity.Principal{}, response.Unauthorized(c, "MISSING_PRINCIPAL", "Identity information missing from request")
	}

	return principal, nil
}
