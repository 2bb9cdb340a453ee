package impl

import (
	"fmt"
	"regexp"
	"time"

	"mercado/internal/domain/entity"
	domainerrors "mercado/internal/domain/errors"
	"mercado/internal/usecase"
)

// timePattern matches zero-padded 24h "HH:MM" strings. Times are validated
// here, at write time; the resolution engines trust the stored format.
var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

const (
	minSlotDurationMinutes = 15
	maxSlotDurationMinutes = 480
	maxAdvanceBookingDays  = 365
)

func validateDeliveryConfigInput(input *usecase.DeliveryConfigInput) error {
	if input == nil {
		return domainerrors.Validation("delivery configuration input is required")
	}
	for _, t := range input.AvailableTypes {
		if !t.IsValid() {
			return domainerrors.Validation(fmt.Sprintf("unknown delivery type %q", t))
		}
	}
	if input.FeeCalculationType != "" && !input.FeeCalculationType.IsValid() {
		return domainerrors.Validation(fmt.Sprintf("unknown fee calculation type %q", input.FeeCalculationType))
	}
	if input.EstimatedTimeMinutes <= 0 {
		return domainerrors.Validation("estimated time must be a positive number of minutes")
	}
	if input.PickupTimeMinutes <= 0 {
		return domainerrors.Validation("pickup time must be a positive number of minutes")
	}
	if input.MinimumOrderValue != nil && input.MaximumOrderValue != nil &&
		*input.MinimumOrderValue >= *input.MaximumOrderValue {
		return domainerrors.Validation("minimum order value must be below maximum order value")
	}

	return nil
}

func validateZoneInput(input *usecase.DeliveryZoneInput) error {
	if input == nil {
		return domainerrors.Validation("zone input is required")
	}
	if input.Name == "" {
		return domainerrors.Validation("zone name is required")
	}
	if !input.ZoneType.IsValid() {
		return domainerrors.Validation(fmt.Sprintf("unknown zone type %q", input.ZoneType))
	}

	hasRadius := input.RadiusKm != nil
	hasPolygon := len(input.Polygon) > 0
	hasNeighborhoods := input.Neighborhoods != ""
	hasPostalCodes := input.PostalCodes != ""

	switch input.ZoneType {
	case entity.ZoneTypeRadius:
		if !hasRadius || hasPolygon || hasNeighborhoods || hasPostalCodes {
			return domainerrors.Validation("a RADIUS zone must set radius_km and nothing else")
		}
		if *input.RadiusKm <= 0 {
			return domainerrors.Validation("radius_km must be positive")
		}
	case entity.ZoneTypePolygon:
		if !hasPolygon || hasRadius || hasNeighborhoods || hasPostalCodes {
			return domainerrors.Validation("a POLYGON zone must set polygon and nothing else")
		}
		if len(input.Polygon) < 3 {
			return domainerrors.Validation("polygon requires at least three vertices")
		}
	case entity.ZoneTypeNeighborhood:
		if !hasNeighborhoods || hasRadius || hasPolygon || hasPostalCodes {
			return domainerrors.Validation("a NEIGHBORHOOD zone must set neighborhoods and nothing else")
		}
	case entity.ZoneTypePostalCode:
		if !hasPostalCodes || hasRadius || hasPolygon || hasNeighborhoods {
			return domainerrors.Validation("a POSTAL_CODE zone must set postal_codes and nothing else")
		}
	}

	return nil
}

func validateScheduleConfigInput(input *usecase.ScheduleConfigInput) error {
	if input == nil {
		return domainerrors.Validation("schedule configuration input is required")
	}
	if input.Timezone != "" {
		if _, err := time.LoadLocation(input.Timezone); err != nil {
			return domainerrors.Validation(fmt.Sprintf("unknown IANA timezone %q", input.Timezone))
		}
	}
	if input.SlotDurationMinutes < minSlotDurationMinutes || input.SlotDurationMinutes > maxSlotDurationMinutes {
		return domainerrors.Validation(fmt.Sprintf(
			"slot duration must be between %d and %d minutes", minSlotDurationMinutes, maxSlotDurationMinutes))
	}
	if input.AdvanceBookingDays < 0 || input.AdvanceBookingDays > maxAdvanceBookingDays {
		return domainerrors.Validation(fmt.Sprintf(
			"advance booking days must be between 0 and %d", maxAdvanceBookingDays))
	}

	return nil
}

func validateHourInput(input *usecase.ScheduleHourInput) error {
	if input == nil {
		return domainerrors.Validation("hour entry input is required")
	}
	if !input.DayOfWeek.IsValid() {
		return domainerrors.Validation(fmt.Sprintf("unknown day of week %q", input.DayOfWeek))
	}
	if !input.ScheduleType.IsValid() {
		return domainerrors.Validation(fmt.Sprintf("unknown schedule type %q", input.ScheduleType))
	}
	if input.ScheduleType != entity.ScheduleTypeRegular && input.SpecificDate == nil {
		return domainerrors.Validation("a date-specific entry requires specific_date")
	}

	if input.IsClosed || input.Is24Hours {
		return validateBreakWindow(input)
	}

	if !timePattern.MatchString(input.OpenTime) {
		return domainerrors.Validation("open_time must be a zero-padded 24h HH:MM string")
	}
	if !timePattern.MatchString(input.CloseTime) {
		return domainerrors.Validation("close_time must be a zero-padded 24h HH:MM string")
	}
	if input.OpenTime >= input.CloseTime {
		return domainerrors.Validation("open_time must be before close_time")
	}

	return validateBreakWindow(input)
}

func validateBreakWindow(input *usecase.ScheduleHourInput) error {
	hasStart := input.BreakStartTime != ""
	hasEnd := input.BreakEndTime != ""
	if !hasStart && !hasEnd {
		return nil
	}
	if hasStart != hasEnd {
		return domainerrors.Validation("break start and end must both be set or both be empty")
	}
	if !timePattern.MatchString(input.BreakStartTime) || !timePattern.MatchString(input.BreakEndTime) {
		return domainerrors.Validation("break times must be zero-padded 24h HH:MM strings")
	}
	if input.BreakStartTime >= input.BreakEndTime {
		return domainerrors.Validation("break_start_time must be before break_end_time")
	}
	// A break only makes sense inside regular operating hours.
	if input.OpenTime != "" && input.CloseTime != "" {
		if input.BreakStartTime < input.OpenTime || input.BreakEndTime > input.CloseTime {
			return domainerrors.Validation("break window must lie within the operating hours")
		}
	}

	return nil
}
