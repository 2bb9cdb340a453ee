package handler

import (
	"log/slog"
	"net/http"
	"time"

	"mercado/internal/delivery/http/response"
	"mercado/internal/domain/entity"
	domainerrors "mercado/internal/domain/errors"
	"mercado/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const dateLayout = "2006-01-02"

// ScheduleHandlerParams holds dependencies for ScheduleHandler, injected by Fx.
type ScheduleHandlerParams struct {
	fx.In

	ScheduleUC usecase.ScheduleUsecase
	Logger     *slog.Logger
}

// ScheduleHandler holds dependencies for schedule-configuration handlers.
type ScheduleHandler struct {
	scheduleUC usecase.ScheduleUsecase
	logger     *slog.Logger
}

// NewScheduleHandler is the constructor for ScheduleHandler.
func NewScheduleHandler(params ScheduleHandlerParams) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUC: params.ScheduleUC,
		logger:     params.Logger,
	}
}

// UpsertScheduleConfigRequest represents the request body for creating or
// updating a company's schedule configuration.
type UpsertScheduleConfigRequest struct {
	IsEnabled             bool   `json:"is_enabled"`
	Timezone              string `json:"timezone,omitempty"`
	AllowOnlineScheduling bool   `json:"allow_online_scheduling"`
	SlotDurationMinutes   int    `json:"slot_duration_minutes" validate:"min=0"`
	AdvanceBookingDays    int    `json:"advance_booking_days" validate:"min=0"`
	HolidayMessage        string `json:"holiday_message,omitempty"`
	ClosedMessage         string `json:"closed_message,omitempty"`
}

// ScheduleHourRequest represents the request body for one hour entry.
// Date fields use the YYYY-MM-DD layout.
type ScheduleHourRequest struct {
	DayOfWeek      string `json:"day_of_week" validate:"required"`
	ScheduleType   string `json:"schedule_type" validate:"required"`
	OpenTime       string `json:"open_time,omitempty"`
	CloseTime      string `json:"close_time,omitempty"`
	IsClosed       bool   `json:"is_closed"`
	Is24Hours      bool   `json:"is_24_hours"`
	BreakStartTime string `json:"break_start_time,omitempty"`
	BreakEndTime   string `json:"break_end_time,omitempty"`
	SpecificDate   string `json:"specific_date,omitempty"`
	ValidFrom      string `json:"valid_from,omitempty"`
	ValidUntil     string `json:"valid_until,omitempty"`
	Priority       int    `json:"priority"`
}

// ReplaceScheduleHoursRequest carries the full replacement hour-entry list.
type ReplaceScheduleHoursRequest struct {
	Hours []ScheduleHourRequest `json:"hours" validate:"dive"`
}

// GetConfig handles the public schedule-configuration read.
func (h *ScheduleHandler) GetConfig(c echo.Context) error {
	companyID, err := parseCompanyID(c)
	if err != nil {
		return err
	}

	cfg, err := h.scheduleUC.GetConfig(c.Request().Context(), companyID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cfg, "Schedule configuration retrieved successfully")
}

// ListHours handles the public hour-entry read.
func (h *ScheduleHandler) ListHours(c echo.Context) error {
	companyID, err := parseCompanyID(c)
	if err != nil {
		return err
	}

	hours, err := h.scheduleUC.ListHours(c.Request().Context(), companyID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, hours, "Business hours retrieved successfully")
}

// UpsertConfig handles creating or updating a company's schedule configuration.
func (h *ScheduleHandler) UpsertConfig(c echo.Context) error {
	principal, err := getPrincipal(c)
	if err != nil {
		return err
	}

	companyID, err := parseCompanyID(c)
	if err != nil {
		return err
	}

	var req UpsertScheduleConfigRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid schedule configuration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	cfg, err := h.scheduleUC.EnsureConfig(c.Request().Context(), principal, companyID, scheduleConfigInput(&req))
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cfg, "Schedule configuration saved successfully")
}

// ReplaceHours handles the atomic replacement of a company's hour entries.
func (h *ScheduleHandler) ReplaceHours(c echo.Context) error {
	principal, err := getPrincipal(c)
	if err != nil {
		return err
	}

	companyID, err := parseCompanyID(c)
	if err != nil {
		return err
	}

	var req ReplaceScheduleHoursRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business hours input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	inputs := make([]*usecase.ScheduleHourInput, 0, len(req.Hours))
	for i := range req.Hours {
		input, err := scheduleHourInput(&req.Hours[i])
		if err != nil {
			return response.BadRequest(c, "INVALID_DATE", err.Error())
		}
		inputs = append(inputs, input)
	}

	hours, err := h.scheduleUC.ReplaceHours(c.Request().Context(), principal, companyID, inputs)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, hours, "Business hours replaced successfully")
}

// AddHour handles appending a single hour entry.
func (h *ScheduleHandler) AddHour(c echo.Context) error {
	principal, err := getPrincipal(c)
	if err != nil {
		return err
	}

	companyID, err := parseCompanyID(c)
	if err != nil {
		return err
	}

	var req ScheduleHourRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business hours input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input, err := scheduleHourInput(&req)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", err.Error())
	}

	entry, err := h.scheduleUC.AddHour(c.Request().Context(), principal, companyID, input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, entry, "Business hours entry created successfully")
}

// UpdateHour handles rewriting a single hour entry.
func (h *ScheduleHandler) UpdateHour(c echo.Context) error {
	principal, err := getPrincipal(c)
	if err != nil {
		return err
	}

	companyID, err := parseCompanyID(c)
	if err != nil {
		return err
	}

	entryID, err := uuid.Parse(c.Param("entryID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid hour entry ID")
	}

	var req ScheduleHourRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business hours input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input, err := scheduleHourInput(&req)
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", err.Error())
	}

	entry, err := h.scheduleUC.UpdateHour(c.Request().Context(), principal, companyID, entryID, input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entry, "Business hours entry updated successfully")
}

// RemoveHour handles deleting a single hour entry.
func (h *ScheduleHandler) RemoveHour(c echo.Context) error {
	principal, err := getPrincipal(c)
	if err != nil {
		return err
	}

	companyID, err := parseCompanyID(c)
	if err != nil {
		return err
	}

	entryID, err := uuid.Parse(c.Param("entryID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid hour entry ID")
	}

	if err := h.scheduleUC.RemoveHour(c.Request().Context(), principal, companyID, entryID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Hour entry deleted successfully"}, "Business hours entry deleted successfully")
}

// OpenStatus handles the public is-open-now read.
func (h *ScheduleHandler) OpenStatus(c echo.Context) error {
	companyID, err := parseCompanyID(c)
	if err != nil {
		return err
	}

	status, err := h.scheduleUC.OpenStatus(c.Request().Context(), companyID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status, "Business status retrieved successfully")
}

func (h *ScheduleHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

func scheduleConfigInput(req *UpsertScheduleConfigRequest) *usecase.ScheduleConfigInput {
	return &usecase.ScheduleConfigInput{
		IsEnabled:             req.IsEnabled,
		Timezone:              req.Timezone,
		AllowOnlineScheduling: req.AllowOnlineScheduling,
		SlotDurationMinutes:   req.SlotDurationMinutes,
		AdvanceBookingDays:    req.AdvanceBookingDays,
		HolidayMessage:        req.HolidayMessage,
		ClosedMessage:         req.ClosedMessage,
	}
}

func scheduleHourInput(req *ScheduleHourRequest) (*usecase.ScheduleHourInput, error) {
	specificDate, err := parseOptionalDate(req.SpecificDate)
	if err != nil {
		return nil, errors.New("invalid specific_date, expected YYYY-MM-DD")
	}

	validFrom, err := parseOptionalDate(req.ValidFrom)
	if err != nil {
		return nil, errors.New("invalid valid_from, expected YYYY-MM-DD")
	}

	validUntil, err := parseOptionalDate(req.ValidUntil)
	if err != nil {
		return nil, errors.New("invalid valid_until, expected YYYY-MM-DD")
	}

	return &usecase.ScheduleHourInput{
		DayOfWeek:      entity.Weekday(req.DayOfWeek),
		ScheduleType:   entity.ScheduleType(req.ScheduleType),
		OpenTime:       req.OpenTime,
		CloseTime:      req.CloseTime,
		IsClosed:       req.IsClosed,
		Is24Hours:      req.Is24Hours,
		BreakStartTime: req.BreakStartTime,
		BreakEndTime:   req.BreakEndTime,
		SpecificDate:   specificDate,
		ValidFrom:      validFrom,
		ValidUntil:     validUntil,
		Priority:       req.Priority,
	}, nil
}

func parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
