// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Weekday enumerates the seven days using the marketplace's canonical
// Portuguese day names, which is how they are stored and exchanged.
type Weekday string

const (
	WeekdayMonday    Weekday = "SEGUNDA"
	WeekdayTuesday   Weekday = "TERCA"
	WeekdayWednesday Weekday = "QUARTA"
	WeekdayThursday  Weekday = "QUINTA"
	WeekdayFriday    Weekday = "SEXTA"
	WeekdaySaturday  Weekday = "SABADO"
	WeekdaySunday    Weekday = "DOMINGO"
)

// weekdayFromTime maps Go's Sunday-indexed weekday onto the domain enum.
var weekdayFromTime = map[time.Weekday]Weekday{
	time.Sunday:    WeekdaySunday,
	time.Monday:    WeekdayMonday,
	time.Tuesday:   WeekdayTuesday,
	time.Wednesday: WeekdayWednesday,
	time.Thursday:  WeekdayThursday,
	time.Friday:    WeekdayFriday,
	time.Saturday:  WeekdaySaturday,
}

var weekdayDisplayNames = map[Weekday]string{
	WeekdayMonday:    "Monday",
	WeekdayTuesday:   "Tuesday",
	WeekdayWednesday: "Wednesday",
	WeekdayThursday:  "Thursday",
	WeekdayFriday:    "Friday",
	WeekdaySaturday:  "Saturday",
	WeekdaySunday:    "Sunday",
}

// WeekdayOf converts a point in time into the domain weekday.
func WeekdayOf(t time.Time) Weekday {
	return weekdayFromTime[t.Weekday()]
}

// String returns the canonical stored value.
func (d Weekday) String() string {
	return string(d)
}

// IsValid checks if the Weekday is a valid value.
func (d Weekday) IsValid() bool {
	_, ok := weekdayDisplayNames[d]

	return ok
}

// DisplayName returns the human-readable English day name.
func (d Weekday) DisplayName() string {
	return weekdayDisplayNames[d]
}

// ScheduleType distinguishes regular weekly hours from one-off overlays.
type ScheduleType string

const (
	ScheduleTypeRegular          ScheduleType = "REGULAR"
	ScheduleTypeSpecial          ScheduleType = "SPECIAL"
	ScheduleTypeHoliday          ScheduleType = "HOLIDAY"
	ScheduleTypeVacation         ScheduleType = "VACATION"
	ScheduleTypeTemporaryClosure ScheduleType = "TEMPORARY_CLOSURE"
)

// IsValid checks if the ScheduleType is a valid value.
func (t ScheduleType) IsValid() bool {
	switch t {
	case ScheduleTypeRegular, ScheduleTypeSpecial, ScheduleTypeHoliday,
		ScheduleTypeVacation, ScheduleTypeTemporaryClosure:
		return true
	default:
		return false
	}
}

// ScheduleConfig is a company's operating-hours settings. Each company owns at most one.
type ScheduleConfig struct {
	ID                    uuid.UUID
	CompanyID             uuid.UUID
	IsEnabled             bool
	Timezone              string // IANA name; empty falls back to the service default
	AllowOnlineScheduling bool
	SlotDurationMinutes   int // 15..480
	AdvanceBookingDays    int // 0..365
	HolidayMessage        string
	ClosedMessage         string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// ScheduleHourEntry is one row of operating hours for a weekday or a specific date.
type ScheduleHourEntry struct {
	ID             uuid.UUID
	CompanyID      uuid.UUID
	DayOfWeek      Weekday
	ScheduleType   ScheduleType
	OpenTime       string // "HH:MM", empty when IsClosed or Is24Hours
	CloseTime      string // "HH:MM"
	IsClosed       bool
	Is24Hours      bool
	BreakStartTime string // both break fields set or both empty
	BreakEndTime   string
	SpecificDate   *time.Time // calendar date; set for non-REGULAR overlays
	ValidFrom      *time.Time // optional applicability window for REGULAR entries
	ValidUntil     *time.Time
	Priority       int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasBreak reports whether the entry defines a break window.
func (e *ScheduleHourEntry) HasBreak() bool {
	return e.BreakStartTime != "" && e.BreakEndTime != ""
}

// AppliesOn reports whether a REGULAR entry's validity window contains the date.
// Entries without a window always apply. Comparison is by calendar date,
// ignoring the time of day and timezone offsets of the bounds.
func (e *ScheduleHourEntry) AppliesOn(date time.Time) bool {
	day := dateOnly(date)
	if e.ValidFrom != nil && day.Before(dateOnly(*e.ValidFrom)) {
		return false
	}
	if e.ValidUntil != nil && day.After(dateOnly(*e.ValidUntil)) {
		return false
	}

	return true
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MatchesDate reports whether the entry's specific date equals the given calendar date.
func (e *ScheduleHourEntry) MatchesDate(date time.Time) bool {
	if e.SpecificDate == nil {
		return false
	}
	y1, m1, d1 := e.SpecificDate.Date()
	y2, m2, d2 := date.Date()

	return y1 == y2 && m1 == m2 && d1 == d2
}
