package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/availability"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	if req.MasterID == "" {
		return fmt.Errorf("%w: masterId is required", ErrInvalidInput)
	}

	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	return nil
}

// findBookableDate ищет дату в окне записи, которое начинается сегодня
func findBookableDate(schedule domain.ScheduleConfig, date string, now time.Time) (*domain.DateInfo, error) {
	for _, d := range availability.GenerateBookableDates(schedule, now) {
		if d.Date == date {
			info := d
			return &info, nil
		}
	}
	return nil, fmt.Errorf("%w: can only book %d days ahead", ErrDateOutOfWindow, schedule.BookingDaysAhead)
}
