package get_catalog

import "github.com/m04kA/SMC-BeautyBooking/internal/domain"

type Catalog interface {
	Studio() domain.Studio
	Schedule() domain.ScheduleConfig
	Categories() []domain.Category
	ServicesByCategory(categoryID string) []domain.Service
	MastersByCategory(categoryID string) []domain.Master
	FormatPrice(price int) string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
