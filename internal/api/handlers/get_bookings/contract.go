package get_bookings

import (
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

type BookingManager interface {
	AllBookings() []domain.Booking
	UpcomingBookings(now time.Time) []domain.Booking
	PastBookings(now time.Time) []domain.Booking
	UpcomingCount(now time.Time) int
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now() }
