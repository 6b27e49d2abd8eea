package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// BookingStore хранилище коллекции подтверждённых записей
type BookingStore interface {
	Save(ctx context.Context, bookings []domain.Booking) error
	Load(ctx context.Context) ([]domain.Booking, error)
}

// Catalog справочник услуг и мастеров
type Catalog interface {
	ServiceByID(id string) *domain.Service
	MasterByID(id string) *domain.Master
	IsMasterEligible(masterID, serviceID string) bool
	Schedule() domain.ScheduleConfig
}

// AvailabilityEngine расчёт занятости по сетке слотов
type AvailabilityEngine interface {
	OccupiedSlots(masterID, date string, bookings []domain.Booking) map[string]struct{}
	IsSlotAvailable(masterID, date, slot string, duration int, bookings []domain.Booking, now time.Time) bool
	AvailableSlots(masterID, date string, duration int, bookings []domain.Booking, now time.Time) []string
	Location() *time.Location
}

// Metrics счётчики переходов и ошибок хранилища
type Metrics interface {
	BookingTransition(status string)
	StorageFailure(operation string)
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

type nopMetrics struct{}

func (nopMetrics) BookingTransition(string) {}
func (nopMetrics) StorageFailure(string)    {}
