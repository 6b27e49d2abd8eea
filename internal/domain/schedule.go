package domain

import "time"

// ScheduleConfig describes the working grid shared by all masters.
// WorkHoursStart < WorkHoursEnd is expected; SlotDuration should divide an hour evenly
type ScheduleConfig struct {
	WorkDays             []int  `json:"workDays" yaml:"workDays"` // 0=Sunday ... 6=Saturday
	WorkHoursStart       int    `json:"workHoursStart" yaml:"workHoursStart"`
	WorkHoursEnd         int    `json:"workHoursEnd" yaml:"workHoursEnd"`
	SlotDuration         int    `json:"slotDuration" yaml:"slotDuration"` // minutes
	BookingDaysAhead     int    `json:"bookingDaysAhead" yaml:"bookingDaysAhead"`
	MinBookingHoursAhead int    `json:"minBookingHoursAhead" yaml:"minBookingHoursAhead"`
	Timezone             string `json:"timezone" yaml:"timezone"`
}

// IsWorkDay returns true if the weekday is in the work-day set
func (s ScheduleConfig) IsWorkDay(day time.Weekday) bool {
	for _, d := range s.WorkDays {
		if time.Weekday(d) == day {
			return true
		}
	}
	return false
}

// LeadTime returns the minimum distance between "now" and a bookable instant
func (s ScheduleConfig) LeadTime() time.Duration {
	return time.Duration(s.MinBookingHoursAhead) * time.Hour
}

// Location loads the schedule time zone; empty means DefaultTimezone
func (s ScheduleConfig) Location() (*time.Location, error) {
	tz := s.Timezone
	if tz == "" {
		tz = DefaultTimezone
	}
	return time.LoadLocation(tz)
}

// SeedReservation is a pre-existing occupied elementary slot.
// It is not cancellable and occupies exactly one slot
type SeedReservation struct {
	MasterID string `json:"masterId"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

// DateInfo describes one day of the look-ahead window
type DateInfo struct {
	Date      string `json:"date"` // YYYY-MM-DD
	DayName   string `json:"dayName"`
	DayNumber int    `json:"dayNumber"`
	Month     string `json:"month"`
	IsToday   bool   `json:"isToday"`
	IsWorkDay bool   `json:"isWorkDay"`
}
