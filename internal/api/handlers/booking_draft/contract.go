package booking_draft

import "github.com/m04kA/SMC-BeautyBooking/internal/domain"

type BookingManager interface {
	StartBooking(serviceID string) (*domain.Booking, error)
	SelectMaster(masterID string) (*domain.Booking, error)
	SelectDate(date string) (*domain.Booking, error)
	SelectTime(slot string) (*domain.Booking, error)
	CurrentBooking() *domain.Booking
	ResetCurrentBooking()
	IsBookingReady() bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
