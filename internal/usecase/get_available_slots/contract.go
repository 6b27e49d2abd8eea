package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// Catalog справочник услуг, мастеров и расписания
type Catalog interface {
	ServiceByID(id string) *domain.Service
	MasterByID(id string) *domain.Master
	Schedule() domain.ScheduleConfig
}

// BookingManager расчёт свободных слотов с учётом подтверждённых записей
type BookingManager interface {
	AvailableSlots(masterID, date string, duration int, now time.Time) []string
	OccupiedSlots(masterID, date string) map[string]struct{}
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
