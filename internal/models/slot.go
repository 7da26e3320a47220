package models

// DayOfWeek identifies the weekday of a recurring slot.
type DayOfWeek string

const (
	Monday    DayOfWeek = "MON"
	Tuesday   DayOfWeek = "TUE"
	Wednesday DayOfWeek = "WED"
	Thursday  DayOfWeek = "THU"
	Friday    DayOfWeek = "FRI"
	Saturday  DayOfWeek = "SAT"
	Sunday    DayOfWeek = "SUN"
)

// Shift identifies the period of the day within a slot.
type Shift string

const (
	ShiftMorning   Shift = "MORNING"
	ShiftAfternoon Shift = "AFTERNOON"
	ShiftNight     Shift = "NIGHT"
)

// WeekDays enumerates every valid day in calendar order.
var WeekDays = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Shifts enumerates every valid shift in chronological order.
var Shifts = []Shift{ShiftMorning, ShiftAfternoon, ShiftNight}

// Slot is the (day, shift) cell that bounds occupancy exclusivity.
type Slot struct {
	Day   DayOfWeek `json:"day"`
	Shift Shift     `json:"shift"`
}

// ValidDay reports whether the value is a known weekday token.
func ValidDay(d DayOfWeek) bool {
	for _, day := range WeekDays {
		if day == d {
			return true
		}
	}
	return false
}

// ValidShift reports whether the value is a known shift token.
func ValidShift(s Shift) bool {
	for _, shift := range Shifts {
		if shift == s {
			return true
		}
	}
	return false
}
