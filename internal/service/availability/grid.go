// Package availability сетка элементарных слотов и расчёт свободного времени мастеров
package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// GenerateDaySlots возвращает метки "HH:MM" рабочего дня по порядку.
// Для каждого часа из [start, end) перебираются минуты [0, 60) с шагом slotDuration,
// поэтому сетка одинакова для всех рабочих дней
func GenerateDaySlots(schedule domain.ScheduleConfig) []string {
	if schedule.SlotDuration <= 0 || schedule.WorkHoursStart >= schedule.WorkHoursEnd {
		return []string{}
	}

	slots := make([]string, 0, (schedule.WorkHoursEnd-schedule.WorkHoursStart)*60/schedule.SlotDuration)
	for hour := schedule.WorkHoursStart; hour < schedule.WorkHoursEnd; hour++ {
		for minute := 0; minute < 60; minute += schedule.SlotDuration {
			slots = append(slots, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return slots
}

// DaySlotsFor сетка на конкретную дату: пустая для нерабочих дней
func DaySlotsFor(schedule domain.ScheduleConfig, date time.Time) []string {
	if !schedule.IsWorkDay(date.Weekday()) {
		return []string{}
	}
	return GenerateDaySlots(schedule)
}

// GenerateBookableDates возвращает bookingDaysAhead дней начиная с today.
// today приводится к календарному дню в часовом поясе расписания
func GenerateBookableDates(schedule domain.ScheduleConfig, today time.Time) []domain.DateInfo {
	loc, err := schedule.Location()
	if err != nil {
		loc = today.Location()
	}

	local := today.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	days := schedule.BookingDaysAhead
	if days < 0 {
		days = 0
	}

	dates := make([]domain.DateInfo, 0, days)
	for i := 0; i < days; i++ {
		d := start.AddDate(0, 0, i)
		dates = append(dates, domain.DateInfo{
			Date:      d.Format(domain.DateFormat),
			DayName:   domain.DayNames[d.Weekday()],
			DayNumber: d.Day(),
			Month:     domain.MonthNames[d.Month()-1],
			IsToday:   i == 0,
			IsWorkDay: schedule.IsWorkDay(d.Weekday()),
		})
	}
	return dates
}
