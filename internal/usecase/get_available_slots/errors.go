package get_available_slots

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrMasterNotFound возвращается, когда мастер не найден
	ErrMasterNotFound = errors.New("get_available_slots: master not found")

	// ErrMasterNotEligible возвращается, когда мастер не выполняет услуги этой категории
	ErrMasterNotEligible = errors.New("get_available_slots: master does not perform this service")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrDateOutOfWindow возвращается, когда дата в прошлом или дальше окна записи
	ErrDateOutOfWindow = errors.New("get_available_slots: date is outside the booking window")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")
)
