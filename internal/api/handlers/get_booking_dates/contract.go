package get_booking_dates

import (
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

type Catalog interface {
	Schedule() domain.ScheduleConfig
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
