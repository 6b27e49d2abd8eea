package middleware

import (
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// HTTPMetrics учёт HTTP запросов
type HTTPMetrics interface {
	ObserveHTTP(route, method string, status int, elapsed time.Duration)
}

// UserIdentitySource определяет пользователя по init data Mini App
type UserIdentitySource interface {
	Resolve(initData string) (*domain.TelegramUser, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
