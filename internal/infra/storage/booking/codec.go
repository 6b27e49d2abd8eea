package booking

import (
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

func encodeBookings(bookings []domain.Booking) ([]byte, error) {
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	data, err := json.Marshal(bookings)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return data, nil
}

func decodeBookings(data []byte) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptedData, err)
	}
	if bookings == nil {
		return []domain.Booking{}, nil
	}
	for i := range bookings {
		if err := validateStored(&bookings[i]); err != nil {
			return nil, err
		}
	}
	return bookings, nil
}

// validateStored отсекает записи, которые не могли быть сохранены менеджером
func validateStored(b *domain.Booking) error {
	if b.ID == "" {
		return fmt.Errorf("%w: booking without id", ErrCorruptedData)
	}
	switch b.Status {
	case domain.StatusConfirmed, domain.StatusCancelled:
	default:
		return fmt.Errorf("%w: booking id=%s has status %q", ErrCorruptedData, b.ID, b.Status)
	}
	if b.Date == "" || b.Time == "" {
		return fmt.Errorf("%w: booking id=%s has no date or time", ErrCorruptedData, b.ID)
	}
	return nil
}
