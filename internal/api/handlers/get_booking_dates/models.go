package get_booking_dates

import "github.com/m04kA/SMC-BeautyBooking/internal/domain"

// BookingDatesResponse HTTP response model
type BookingDatesResponse struct {
	Dates []domain.DateInfo `json:"dates"`
}
