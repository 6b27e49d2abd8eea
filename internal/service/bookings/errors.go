package bookings

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("bookings: service not found")

	// ErrMasterNotFound возвращается, когда мастер не найден в каталоге
	ErrMasterNotFound = errors.New("bookings: master not found")

	// ErrMasterNotEligible возвращается, когда мастер не выполняет услуги этой категории
	ErrMasterNotEligible = errors.New("bookings: master does not perform this service")

	// ErrNoDraft возвращается, когда нет начатой записи
	ErrNoDraft = errors.New("bookings: no booking in progress")

	// ErrNotReady возвращается, когда в черновике не выбраны мастер, дата или время
	ErrNotReady = errors.New("bookings: booking is not ready")

	// ErrSlotNotAvailable возвращается, когда выбранное время уже занято,
	// до него осталось меньше минимального времени записи
	// или дата нерабочая либо вне окна записи
	ErrSlotNotAvailable = errors.New("bookings: slot is not available")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")
)
