package get_service_masters

import "github.com/m04kA/SMC-BeautyBooking/internal/domain"

type Catalog interface {
	ServiceByID(id string) *domain.Service
	MastersForService(serviceID string) []domain.Master
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
