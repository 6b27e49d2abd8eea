package get_catalog

import (
	"github.com/m04kA/SMC-BeautyBooking/internal/catalog"
	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// CatalogResponse HTTP response model
type CatalogResponse struct {
	Studio     domain.Studio         `json:"studio"`
	Schedule   domain.ScheduleConfig `json:"schedule"`
	Category   string                `json:"category"`
	Categories []domain.Category     `json:"categories"`
	Services   []ServiceResponse     `json:"services"`
	Masters    []domain.Master       `json:"masters"`
}

// ServiceResponse услуга с готовыми для отображения ценой и длительностью
type ServiceResponse struct {
	domain.Service
	PriceFormatted    string `json:"priceFormatted"`
	DurationFormatted string `json:"durationFormatted"`
}

// FromCatalog собирает ответ для выбранной категории
func FromCatalog(c Catalog, category string) *CatalogResponse {
	services := c.ServicesByCategory(category)
	items := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		items = append(items, ServiceResponse{
			Service:           s,
			PriceFormatted:    c.FormatPrice(s.Price),
			DurationFormatted: catalog.FormatDuration(s.Duration),
		})
	}

	return &CatalogResponse{
		Studio:     c.Studio(),
		Schedule:   c.Schedule(),
		Category:   category,
		Categories: c.Categories(),
		Services:   items,
		Masters:    c.MastersByCategory(category),
	}
}
