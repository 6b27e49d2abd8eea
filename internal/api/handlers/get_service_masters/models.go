package get_service_masters

import "github.com/m04kA/SMC-BeautyBooking/internal/domain"

// ServiceMastersResponse HTTP response model
type ServiceMastersResponse struct {
	ServiceID string          `json:"serviceId"`
	Masters   []domain.Master `json:"masters"`
}
