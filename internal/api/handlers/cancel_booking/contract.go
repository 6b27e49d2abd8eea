package cancel_booking

import (
	"context"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

type BookingManager interface {
	CancelBooking(ctx context.Context, bookingID string) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
