package submit_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// BookingManager интерфейс менеджера жизненного цикла записи
type BookingManager interface {
	SetCustomerInfo(name, phone, comment string) (*domain.Booking, error)
	ConfirmBooking(ctx context.Context) (*domain.Booking, error)
	UpcomingCount(now time.Time) int
}

// DeliverySink получатель подтверждённых записей (CRM webhook, очередь)
type DeliverySink interface {
	Name() string
	SendBooking(ctx context.Context, payload *domain.DeliveryPayload) error
}

// HapticNotifier подтверждение успешной записи пользователю
type HapticNotifier interface {
	NotifySuccess(ctx context.Context, user *domain.TelegramUser, booking *domain.Booking) error
}

// Metrics учёт результатов доставки
type Metrics interface {
	Delivery(sink string, ok bool)
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

func (nopMetrics) Delivery(string, bool) {}
