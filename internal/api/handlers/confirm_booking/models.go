package confirm_booking

import (
	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/bookings/models"
	submitBooking "github.com/m04kA/SMC-BeautyBooking/internal/usecase/submit_booking"
)

// ConfirmBookingRequest HTTP request model
type ConfirmBookingRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Comment string `json:"comment"`
}

// ConfirmBookingResponse HTTP response model
type ConfirmBookingResponse struct {
	Booking       *models.BookingResponse `json:"booking"`
	UpcomingCount int                     `json:"upcomingCount"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *ConfirmBookingRequest) ToUseCaseRequest(user *domain.TelegramUser) *submitBooking.Request {
	return &submitBooking.Request{
		Name:    r.Name,
		Phone:   r.Phone,
		Comment: r.Comment,
		User:    user,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *ConfirmBookingResponse {
	return &ConfirmBookingResponse{
		Booking:       models.FromDomainBooking(resp.Booking),
		UpcomingCount: resp.UpcomingCount,
	}
}
