package submit_booking

import "github.com/m04kA/SMC-BeautyBooking/internal/domain"

// Request модель запроса на подтверждение текущей записи
type Request struct {
	Name    string
	Phone   string
	Comment string
	User    *domain.TelegramUser // nil - пользователь не определён
}

// Response модель ответа с подтверждённой записью
type Response struct {
	Booking       *domain.Booking
	UpcomingCount int // для бейджа "Мои записи"
}
