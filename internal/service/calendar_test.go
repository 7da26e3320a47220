package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gds-saude/gds-api/internal/models"
	"github.com/gds-saude/gds-api/pkg/config"
)

func testCalendar(t *testing.T) *FacilityCalendar {
	cal, err := NewFacilityCalendar(config.CalendarConfig{
		Timezone:       "America/Recife",
		MorningStart:   6,
		AfternoonStart: 13,
		NightStart:     18,
		NightEnd:       23,
	})
	require.NoError(t, err)
	return cal
}

func TestSlotAtShiftWindows(t *testing.T) {
	cal := testCalendar(t)
	loc, err := time.LoadLocation("America/Recife")
	require.NoError(t, err)

	// 2026-08-24 is a Monday.
	at := func(hour int) time.Time {
		return time.Date(2026, 8, 24, hour, 30, 0, 0, loc)
	}

	cases := []struct {
		hour  int
		shift models.Shift
	}{
		{6, models.ShiftMorning},
		{12, models.ShiftMorning},
		{13, models.ShiftAfternoon},
		{17, models.ShiftAfternoon},
		{18, models.ShiftNight},
		{22, models.ShiftNight},
	}
	for _, tc := range cases {
		slot := cal.SlotAt(at(tc.hour))
		require.NotNil(t, slot, "hour %d", tc.hour)
		assert.Equal(t, models.Monday, slot.Day)
		assert.Equal(t, tc.shift, slot.Shift, "hour %d", tc.hour)
	}
}

func TestSlotAtOutsideWindows(t *testing.T) {
	cal := testCalendar(t)
	loc, err := time.LoadLocation("America/Recife")
	require.NoError(t, err)

	assert.Nil(t, cal.SlotAt(time.Date(2026, 8, 24, 5, 59, 0, 0, loc)))
	assert.Nil(t, cal.SlotAt(time.Date(2026, 8, 24, 23, 0, 0, 0, loc)))
	assert.Nil(t, cal.SlotAt(time.Date(2026, 8, 24, 2, 0, 0, 0, loc)))
}

func TestSlotAtConvertsForeignTimezone(t *testing.T) {
	cal := testCalendar(t)

	// 15:00 UTC is 12:00 in Recife (UTC-3), still morning.
	slot := cal.SlotAt(time.Date(2026, 8, 24, 15, 0, 0, 0, time.UTC))
	require.NotNil(t, slot)
	assert.Equal(t, models.ShiftMorning, slot.Shift)
}

func TestNewFacilityCalendarRejectsUnknownTimezone(t *testing.T) {
	_, err := NewFacilityCalendar(config.CalendarConfig{Timezone: "Mars/Olympus"})
	assert.Error(t, err)
}
