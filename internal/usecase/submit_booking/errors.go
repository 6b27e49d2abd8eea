package submit_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidContact возвращается при некорректных контактных данных
	ErrInvalidContact = errors.New("submit_booking: invalid contact info")

	// ErrNoDraft возвращается, когда нет записи в процессе оформления
	ErrNoDraft = errors.New("submit_booking: no booking in progress")

	// ErrNotReady возвращается, когда в черновике не выбраны мастер, дата или время
	ErrNotReady = errors.New("submit_booking: booking is not ready")

	// ErrSlotNotAvailable возвращается, когда выбранное время уже занято
	ErrSlotNotAvailable = errors.New("submit_booking: slot is not available")

	// ErrMasterNotEligible возвращается, когда мастер в черновике не выполняет выбранную услугу
	ErrMasterNotEligible = errors.New("submit_booking: master does not perform this service")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)

// ValidationError ошибка валидации поля формы с сообщением для пользователя
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrInvalidContact, e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidContact
}
