package resolution

import (
	"fmt"
	"time"

	"mercado/internal/domain/entity"
)

// nextOpenLookaheadDays bounds the forward scan for the next opening.
const nextOpenLookaheadDays = 7

// OpenStatus is the outcome of resolving a company's operating hours at a
// point in time.
type OpenStatus struct {
	IsOpen        bool                      `json:"isOpen"`
	CurrentStatus string                    `json:"currentStatus"`
	NextOpenTime  string                    `json:"nextOpenTime,omitempty"`
	TodayEntry    *entity.ScheduleHourEntry `json:"todayEntry,omitempty"`
}

func closedStatus(status string) OpenStatus {
	return OpenStatus{IsOpen: false, CurrentStatus: status}
}

// ResolveOpenStatus decides whether the company is open at the given instant.
// The instant is shifted into the schedule's configured timezone before any
// calendar math, so a company in Manaus resolves against Manaus' weekday even
// when the server runs in UTC.
func ResolveOpenStatus(cfg *entity.ScheduleConfig, hours []*entity.ScheduleHourEntry, now time.Time) OpenStatus {
	if cfg == nil || !cfg.IsEnabled {
		return closedStatus("hours not configured")
	}

	now = inScheduleZone(cfg, now)

	entry := findEntryForDate(hours, now)
	if entry == nil {
		return closedStatus(closedMessage(cfg, "closed today"))
	}

	if entry.IsClosed {
		status := closedEntryMessage(cfg, entry)
		st := closedStatus(status)
		st.TodayEntry = entry
		st.NextOpenTime = NextOpenTime(cfg, hours, now)

		return st
	}

	if entry.Is24Hours {
		return OpenStatus{IsOpen: true, CurrentStatus: "open 24 hours", TodayEntry: entry}
	}

	if entry.OpenTime == "" || entry.CloseTime == "" {
		st := closedStatus("hours not defined")
		st.TodayEntry = entry

		return st
	}

	// Fixed-width zero-padded "HH:MM" makes lexical comparison valid.
	currentTime := now.Format("15:04")
	isAfterOpen := currentTime >= entry.OpenTime
	isBeforeClose := currentTime < entry.CloseTime

	isInBreak := false
	if entry.HasBreak() {
		isInBreak = entry.BreakStartTime <= currentTime && currentTime < entry.BreakEndTime
	}

	switch {
	case isAfterOpen && isBeforeClose && !isInBreak:
		return OpenStatus{
			IsOpen:        true,
			CurrentStatus: fmt.Sprintf("open until %s", entry.CloseTime),
			TodayEntry:    entry,
		}
	case isInBreak:
		return OpenStatus{
			IsOpen:        false,
			CurrentStatus: fmt.Sprintf("closed for lunch - reopens at %s", entry.BreakEndTime),
			NextOpenTime:  entry.BreakEndTime,
			TodayEntry:    entry,
		}
	case !isAfterOpen:
		return OpenStatus{
			IsOpen:        false,
			CurrentStatus: fmt.Sprintf("closed - opens at %s", entry.OpenTime),
			NextOpenTime:  entry.OpenTime,
			TodayEntry:    entry,
		}
	default:
		return OpenStatus{
			IsOpen:        false,
			CurrentStatus: closedMessage(cfg, "closed"),
			NextOpenTime:  NextOpenTime(cfg, hours, now),
			TodayEntry:    entry,
		}
	}
}

// NextOpenTime scans the next seven calendar days starting tomorrow and
// returns the first opening formatted as "{Weekday} at {HH:MM}", or the empty
// string when nothing opens within the window.
func NextOpenTime(cfg *entity.ScheduleConfig, hours []*entity.ScheduleHourEntry, now time.Time) string {
	if cfg == nil || !cfg.IsEnabled {
		return ""
	}

	now = inScheduleZone(cfg, now)

	for i := 1; i <= nextOpenLookaheadDays; i++ {
		date := now.AddDate(0, 0, i)
		entry := findEntryForDate(hours, date)
		if entry == nil || entry.IsClosed || entry.OpenTime == "" {
			continue
		}

		// Label with the scanned date's weekday: a date-specific overlay may
		// carry a stale or unset DayOfWeek.
		return fmt.Sprintf("%s at %s", entity.WeekdayOf(date).DisplayName(), entry.OpenTime)
	}

	return ""
}

// findEntryForDate resolves the hour entry governing the given date: a
// date-specific overlay always beats the REGULAR weekday entry, and colliding
// overlays are settled by priority.
func findEntryForDate(hours []*entity.ScheduleHourEntry, date time.Time) *entity.ScheduleHourEntry {
	var override *entity.ScheduleHourEntry
	for _, e := range hours {
		if e == nil || e.ScheduleType == entity.ScheduleTypeRegular || !e.MatchesDate(date) {
			continue
		}
		if override == nil || e.Priority > override.Priority {
			override = e
		}
	}
	if override != nil {
		return override
	}

	weekday := entity.WeekdayOf(date)
	for _, e := range hours {
		if e == nil || e.ScheduleType != entity.ScheduleTypeRegular {
			continue
		}
		if e.DayOfWeek == weekday && e.AppliesOn(date) {
			// Write-time validation guarantees at most one REGULAR entry per
			// weekday, so the first match is the match.
			return e
		}
	}

	return nil
}

func closedEntryMessage(cfg *entity.ScheduleConfig, entry *entity.ScheduleHourEntry) string {
	switch entry.ScheduleType {
	case entity.ScheduleTypeHoliday:
		if cfg.HolidayMessage != "" {
			return cfg.HolidayMessage
		}

		return "closed - holiday"
	case entity.ScheduleTypeVacation:
		return "closed - vacation"
	case entity.ScheduleTypeTemporaryClosure:
		return "temporarily closed"
	default:
		return closedMessage(cfg, "closed")
	}
}

func closedMessage(cfg *entity.ScheduleConfig, fallback string) string {
	if cfg.ClosedMessage != "" {
		return cfg.ClosedMessage
	}

	return fallback
}

// inScheduleZone converts the instant into the schedule's IANA timezone.
// Unknown or empty timezones leave the instant untouched.
func inScheduleZone(cfg *entity.ScheduleConfig, now time.Time) time.Time {
	if cfg.Timezone == "" {
		return now
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return now
	}

	return now.In(loc)
}
