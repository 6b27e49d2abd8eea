package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

// Engine считает занятость мастеров на сетке дня.
// Сам не хранит записи: коллекция передаётся в каждый вызов только для чтения
type Engine struct {
	schedule domain.ScheduleConfig
	seeds    []domain.SeedReservation
	loc      *time.Location

	grid  []string
	index map[string]int
}

// NewEngine создает движок для расписания и демо-записей
func NewEngine(schedule domain.ScheduleConfig, seeds []domain.SeedReservation) (*Engine, error) {
	loc, err := schedule.Location()
	if err != nil {
		return nil, fmt.Errorf("availability: load timezone %q: %w", schedule.Timezone, err)
	}

	grid := GenerateDaySlots(schedule)
	index := make(map[string]int, len(grid))
	for i, label := range grid {
		index[label] = i
	}

	return &Engine{
		schedule: schedule,
		seeds:    append([]domain.SeedReservation(nil), seeds...),
		loc:      loc,
		grid:     grid,
		index:    index,
	}, nil
}

func (e *Engine) Schedule() domain.ScheduleConfig {
	return e.schedule
}

// Location часовой пояс, в котором интерпретируются дата и время записей
func (e *Engine) Location() *time.Location {
	return e.loc
}

// SlotsNeeded сколько элементарных слотов занимает услуга (округление вверх, минимум один)
func (e *Engine) SlotsNeeded(duration int) int {
	if duration <= 0 {
		return 1
	}
	return (duration + e.schedule.SlotDuration - 1) / e.schedule.SlotDuration
}

// OccupiedSlots множество занятых меток мастера на дату: демо-записи плюс
// неотменённые записи. Хвост записи за пределами сетки отбрасывается
func (e *Engine) OccupiedSlots(masterID, date string, bookings []domain.Booking) map[string]struct{} {
	occupied := make(map[string]struct{})

	for _, seed := range e.seeds {
		if seed.MasterID == masterID && seed.Date == date {
			occupied[seed.Time] = struct{}{}
		}
	}

	for i := range bookings {
		b := &bookings[i]
		if !b.IsActive() || b.MasterID != masterID || b.Date != date {
			continue
		}

		start, ok := e.index[b.Time]
		if !ok {
			continue
		}

		end := start + e.SlotsNeeded(b.DurationMinutes())
		if end > len(e.grid) {
			end = len(e.grid)
		}
		for _, label := range e.grid[start:end] {
			occupied[label] = struct{}{}
		}
	}

	return occupied
}

// IsSlotAvailable проверяет, что услугу длительностью duration можно начать в slot:
// метка есть на сетке, все нужные слоты подряд помещаются в день и свободны,
// и до начала осталось не меньше минимального времени записи относительно now
func (e *Engine) IsSlotAvailable(masterID, date, slot string, duration int, bookings []domain.Booking, now time.Time) bool {
	start, ok := e.index[slot]
	if !ok {
		return false
	}

	needed := e.SlotsNeeded(duration)
	if start+needed > len(e.grid) {
		return false
	}

	occupied := e.OccupiedSlots(masterID, date, bookings)
	for _, label := range e.grid[start : start+needed] {
		if _, busy := occupied[label]; busy {
			return false
		}
	}

	return e.meetsLeadTime(date, slot, now)
}

// AvailableSlots метки, с которых можно начать услугу, в порядке сетки.
// Для нерабочего дня и некорректной даты список пустой
func (e *Engine) AvailableSlots(masterID, date string, duration int, bookings []domain.Booking, now time.Time) []string {
	day, err := time.ParseInLocation(domain.DateFormat, date, e.loc)
	if err != nil || !e.schedule.IsWorkDay(day.Weekday()) {
		return []string{}
	}

	result := make([]string, 0, len(e.grid))
	for _, slot := range e.grid {
		if e.IsSlotAvailable(masterID, date, slot, duration, bookings, now) {
			result = append(result, slot)
		}
	}
	return result
}

func (e *Engine) meetsLeadTime(date, slot string, now time.Time) bool {
	day, err := time.ParseInLocation(domain.DateFormat, date, e.loc)
	if err != nil {
		return false
	}

	instant, err := types.TimeString(slot).On(day, e.loc)
	if err != nil {
		return false
	}

	return instant.Sub(now) >= e.schedule.LeadTime()
}
