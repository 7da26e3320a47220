package service

import (
	"fmt"
	"time"

	"github.com/gds-saude/gds-api/internal/models"
	"github.com/gds-saude/gds-api/pkg/config"
)

// FacilityCalendar maps wall-clock time at the facility onto the weekly
// (day, shift) grid.
type FacilityCalendar struct {
	cfg config.CalendarConfig
	loc *time.Location
}

// NewFacilityCalendar loads the facility timezone.
func NewFacilityCalendar(cfg config.CalendarConfig) (*FacilityCalendar, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load facility timezone %q: %w", cfg.Timezone, err)
	}
	return &FacilityCalendar{cfg: cfg, loc: loc}, nil
}

// Now returns the current facility wall-clock time.
func (c *FacilityCalendar) Now() time.Time {
	return time.Now().In(c.loc)
}

// SlotAt maps an instant onto the live slot. Outside every shift window
// (before the morning start or past the night end) it returns nil.
func (c *FacilityCalendar) SlotAt(t time.Time) *models.Slot {
	t = t.In(c.loc)
	hour := t.Hour()

	var shift models.Shift
	switch {
	case hour >= c.cfg.MorningStart && hour < c.cfg.AfternoonStart:
		shift = models.ShiftMorning
	case hour >= c.cfg.AfternoonStart && hour < c.cfg.NightStart:
		shift = models.ShiftAfternoon
	case hour >= c.cfg.NightStart && hour < c.cfg.NightEnd:
		shift = models.ShiftNight
	default:
		return nil
	}

	return &models.Slot{Day: dayToken(t.Weekday()), Shift: shift}
}

func dayToken(weekday time.Weekday) models.DayOfWeek {
	switch weekday {
	case time.Monday:
		return models.Monday
	case time.Tuesday:
		return models.Tuesday
	case time.Wednesday:
		return models.Wednesday
	case time.Thursday:
		return models.Thursday
	case time.Friday:
		return models.Friday
	case time.Saturday:
		return models.Saturday
	default:
		return models.Sunday
	}
}
