package resolution

import (
	"testing"
	"time"

	"mercado/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enabledSchedule() *entity.ScheduleConfig {
	return &entity.ScheduleConfig{
		ID:                  uuid.New(),
		IsEnabled:           true,
		SlotDurationMinutes: 30,
	}
}

func regularEntry(day entity.Weekday, open, close string) *entity.ScheduleHourEntry {
	return &entity.ScheduleHourEntry{
		ID:           uuid.New(),
		DayOfWeek:    day,
		ScheduleType: entity.ScheduleTypeRegular,
		OpenTime:     open,
		CloseTime:    close,
	}
}

// mustTime builds an instant in UTC; tests that need timezone behavior set
// Timezone on the config instead.
func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", value)
	require.NoError(t, err)

	return parsed
}

func TestResolveOpenStatus_NotConfigured(t *testing.T) {
	now := mustTime(t, "2026-03-02 10:00")

	st := ResolveOpenStatus(nil, nil, now)
	assert.False(t, st.IsOpen)
	assert.Equal(t, "hours not configured", st.CurrentStatus)

	cfg := enabledSchedule()
	cfg.IsEnabled = false
	st = ResolveOpenStatus(cfg, nil, now)
	assert.False(t, st.IsOpen)
	assert.Equal(t, "hours not configured", st.CurrentStatus)
}

func TestResolveOpenStatus_NoEntryForToday(t *testing.T) {
	cfg := enabledSchedule()
	// 2026-03-02 is a Monday; only Tuesday is configured.
	hours := []*entity.ScheduleHourEntry{regularEntry(entity.WeekdayTuesday, "09:00", "18:00")}

	st := ResolveOpenStatus(cfg, hours, mustTime(t, "2026-03-02 10:00"))
	assert.False(t, st.IsOpen)
	assert.Equal(t, "closed today", st.CurrentStatus)
}

func TestResolveOpenStatus_OpenWithinWindow(t *testing.T) {
	cfg := enabledSchedule()
	hours := []*entity.ScheduleHourEntry{regularEntry(entity.WeekdayMonday, "09:00", "18:00")}

	st := ResolveOpenStatus(cfg, hours, mustTime(t, "2026-03-02 10:30"))
	assert.True(t, st.IsOpen)
	assert.Equal(t, "open until 18:00", st.CurrentStatus)
	require.NotNil(t, st.TodayEntry)
	assert.Equal(t, entity.WeekdayMonday, st.TodayEntry.DayOfWeek)
}

func TestResolveOpenStatus_BeforeOpening(t *testing.T) {
	cfg := enabledSchedule()
	hours := []*entity.ScheduleHourEntry{regularEntry(entity.WeekdayMonday, "09:00", "18:00")}

	st := ResolveOpenStatus(cfg, hours, mustTime(t, "2026-03-02 07:15"))
	assert.False(t, st.IsOpen)
	assert.Equal(t, "closed - opens at 09:00", st.CurrentStatus)
	assert.Equal(t, "09:00", st.NextOpenTime)
}

func TestResolveOpenStatus_AfterClosingScansForward(t *testing.T) {
	// Spec scenario: Monday 09:00-18:00, now Monday 19:30.
	cfg := enabledSchedule()
	hours := []*entity.ScheduleHourEntry{
		regularEntry(entity.WeekdayMonday, "09:00", "18:00"),
		regularEntry(entity.WeekdayTuesday, "10:00", "17:00"),
	}

	st := ResolveOpenStatus(cfg, hours, mustTime(t, "2026-03-02 19:30"))
	assert.False(t, st.IsOpen)
	assert.Equal(t, "closed", st.CurrentStatus)
	assert.Equal(t, "Tuesday at 10:00", st.NextOpenTime)
}

func TestResolveOpenStatus_BreakWindow(t *testing.T) {
	// Spec scenario: Tuesday with a 12:00-13:00 lunch break, now 12:30.
	cfg := enabledSchedule()
	entry := regularEntry(entity.WeekdayTuesday, "09:00", "18:00")
	entry.BreakStartTime = "12:00"
	entry.BreakEndTime = "13:00"
	hours := []*entity.ScheduleHourEntry{entry}

	st := ResolveOpenStatus(cfg, hours, mustTime(t, "2026-03-03 12:30"))
	assert.False(t, st.IsOpen)
	assert.Equal(t, "closed for lunch - reopens at 13:00", st.CurrentStatus)
	assert.Equal(t, "13:00", st.NextOpenTime)

	// Break boundaries: start is in the break, end is not.
	st = ResolveOpenStatus(cfg, hours, mustTime(t, "2026-03-03 12:00"))
	assert.False(t, st.IsOpen)

	st = ResolveOpenStatus(cfg, hours, mustTime(t, "2026-03-03 13:00"))
	assert.True(t, st.IsOpen)
}

func TestResolveOpenStatus_24HoursIgnoresTimes(t *testing.T) {
	cfg := enabledSchedule()
	entry := regularEntry(entity.WeekdayMonday, "", "")
	entry.Is24Hours = true
	hours := []*entity.ScheduleHourEntry{entry}

	for _, at := range []string{"2026-03-02 00:00", "2026-03-02 03:12", "2026-03-02 23:59"} {
		st := ResolveOpenStatus(cfg, hours, mustTime(t, at))
		assert.True(t, st.IsOpen, "at %s", at)
		assert.Equal(t, "open 24 hours", st.CurrentStatus)
	}
}

func TestResolveOpenStatus_MissingTimes(t *testing.T) {
	cfg := enabledSchedule()
	hours := []*entity.ScheduleHourEntry{regularEntry(entity.WeekdayMonday, "09:00", "")}

	st := ResolveOpenStatus(cfg, hours, mustTime(t, "2026-03-02 10:00"))
	assert.False(t, st.IsOpen)
	assert.Equal(t, "hours not defined", st.CurrentStatus)
}

func TestResolveOpenStatus_HolidayOverridesRegular(t *testing.T) {
	cfg := enabledSchedule()
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	holiday := &entity.ScheduleHourEntry{
		ID:           uuid.New(),
		DayOfWeek:    entity.WeekdayMonday,
		ScheduleType: entity.ScheduleTypeHoliday,
		IsClosed:     true,
		SpecificDate: &date,
	}
	hours := []*entity.ScheduleHourEntry{
		regularEntry(entity.WeekdayMonday, "09:00", "18:00"),
		holiday,
	}

	st := ResolveOpenStatus(cfg, hours, mustTime(t, "2026-03-02 10:00"))
	assert.False(t, st.IsOpen)
	assert.Equal(t, "closed - holiday", st.CurrentStatus)
	require.NotNil(t, st.TodayEntry)
	assert.Equal(t, holiday.ID, st.TodayEntry.ID)
}

func TestResolveOpenStatus_ClosedEntryMessages(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	now := mustTime(t, "2026-03-02 10:00")

	closedEntry := func(st entity.ScheduleType) *entity.ScheduleHourEntry {
		return &entity.ScheduleHourEntry{
			ID:           uuid.New(),
			DayOfWeek:    entity.WeekdayMonday,
			ScheduleType: st,
			IsClosed:     true,
			SpecificDate: &date,
		}
	}

	tests := []struct {
		name     string
		cfg      func() *entity.ScheduleConfig
		entry    *entity.ScheduleHourEntry
		expected string
	}{
		{
			name:     "holiday default message",
			cfg:      enabledSchedule,
			entry:    closedEntry(entity.ScheduleTypeHoliday),
			expected: "closed - holiday",
		},
		{
			name: "holiday configured message",
			cfg: func() *entity.ScheduleConfig {
				cfg := enabledSchedule()
				cfg.HolidayMessage = "fechado pelo feriado"

				return cfg
			},
			entry:    closedEntry(entity.ScheduleTypeHoliday),
			expected: "fechado pelo feriado",
		},
		{
			name:     "vacation",
			cfg:      enabledSchedule,
			entry:    closedEntry(entity.ScheduleTypeVacation),
			expected: "closed - vacation",
		},
		{
			name:     "temporary closure",
			cfg:      enabledSchedule,
			entry:    closedEntry(entity.ScheduleTypeTemporaryClosure),
			expected: "temporarily closed",
		},
		{
			name:     "special closed day",
			cfg:      enabledSchedule,
			entry:    closedEntry(entity.ScheduleTypeSpecial),
			expected: "closed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := ResolveOpenStatus(tt.cfg(), []*entity.ScheduleHourEntry{tt.entry}, now)
			assert.False(t, st.IsOpen)
			assert.Equal(t, tt.expected, st.CurrentStatus)
		})
	}
}

func TestResolveOpenStatus_RegularValidityWindow(t *testing.T) {
	cfg := enabledSchedule()
	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	summer := regularEntry(entity.WeekdayMonday, "08:00", "14:00")
	summer.ValidFrom = &from
	summer.ValidUntil = &until
	hours := []*entity.ScheduleHourEntry{summer}

	// Monday inside the window.
	st := ResolveOpenStatus(cfg, hours, mustTime(t, "2026-06-08 09:00"))
	assert.True(t, st.IsOpen)

	// Monday outside the window.
	st = ResolveOpenStatus(cfg, hours, mustTime(t, "2026-03-02 09:00"))
	assert.False(t, st.IsOpen)
	assert.Equal(t, "closed today", st.CurrentStatus)
}

func TestResolveOpenStatus_TimezoneAwareWeekday(t *testing.T) {
	cfg := enabledSchedule()
	cfg.Timezone = "America/Sao_Paulo"
	hours := []*entity.ScheduleHourEntry{regularEntry(entity.WeekdayMonday, "20:00", "23:00")}

	// Tuesday 01:00 UTC is still Monday 22:00 in Sao Paulo (UTC-3).
	st := ResolveOpenStatus(cfg, hours, mustTime(t, "2026-03-03 01:00"))
	assert.True(t, st.IsOpen)
	assert.Equal(t, "open until 23:00", st.CurrentStatus)
}

func TestNextOpenTime_PrefersDateSpecificEntry(t *testing.T) {
	cfg := enabledSchedule()
	date := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC) // tomorrow
	special := &entity.ScheduleHourEntry{
		ID:           uuid.New(),
		DayOfWeek:    entity.WeekdayTuesday,
		ScheduleType: entity.ScheduleTypeSpecial,
		OpenTime:     "14:00",
		CloseTime:    "20:00",
		SpecificDate: &date,
	}
	hours := []*entity.ScheduleHourEntry{
		regularEntry(entity.WeekdayTuesday, "09:00", "18:00"),
		special,
	}

	got := NextOpenTime(cfg, hours, mustTime(t, "2026-03-02 19:00"))
	assert.Equal(t, "Tuesday at 14:00", got)
}

func TestNextOpenTime_LabelsOverlayWithCalendarWeekday(t *testing.T) {
	cfg := enabledSchedule()
	date := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC) // a Tuesday
	special := &entity.ScheduleHourEntry{
		ID:           uuid.New(),
		ScheduleType: entity.ScheduleTypeSpecial,
		OpenTime:     "14:00",
		CloseTime:    "20:00",
		SpecificDate: &date,
	}
	// DayOfWeek left unset: the label must come from the scanned date.
	hours := []*entity.ScheduleHourEntry{special}

	got := NextOpenTime(cfg, hours, mustTime(t, "2026-03-02 19:00"))
	assert.Equal(t, "Tuesday at 14:00", got)

	// And a stale DayOfWeek on the overlay must not leak into the label.
	special.DayOfWeek = entity.WeekdaySunday
	got = NextOpenTime(cfg, hours, mustTime(t, "2026-03-02 19:00"))
	assert.Equal(t, "Tuesday at 14:00", got)
}

func TestNextOpenTime_SkipsClosedDays(t *testing.T) {
	cfg := enabledSchedule()
	date := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	holiday := &entity.ScheduleHourEntry{
		ID:           uuid.New(),
		DayOfWeek:    entity.WeekdayTuesday,
		ScheduleType: entity.ScheduleTypeHoliday,
		IsClosed:     true,
		SpecificDate: &date,
	}
	hours := []*entity.ScheduleHourEntry{
		regularEntry(entity.WeekdayTuesday, "09:00", "18:00"),
		regularEntry(entity.WeekdayWednesday, "10:00", "18:00"),
		holiday,
	}

	got := NextOpenTime(cfg, hours, mustTime(t, "2026-03-02 19:00"))
	assert.Equal(t, "Wednesday at 10:00", got)
}

func TestNextOpenTime_NothingWithinLookahead(t *testing.T) {
	cfg := enabledSchedule()

	got := NextOpenTime(cfg, nil, mustTime(t, "2026-03-02 19:00"))
	assert.Empty(t, got)
}

func TestResolveOpenStatus_Idempotent(t *testing.T) {
	cfg := enabledSchedule()
	hours := []*entity.ScheduleHourEntry{regularEntry(entity.WeekdayMonday, "09:00", "18:00")}
	now := mustTime(t, "2026-03-02 10:30")

	first := ResolveOpenStatus(cfg, hours, now)
	second := ResolveOpenStatus(cfg, hours, now)
	assert.Equal(t, first, second)
}
