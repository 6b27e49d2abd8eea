package booking_draft

import (
	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/bookings/models"
)

// StartDraftRequest POST /draft
type StartDraftRequest struct {
	ServiceID string `json:"serviceId"`
}

// SelectMasterRequest PATCH /draft/master
type SelectMasterRequest struct {
	MasterID string `json:"masterId"`
}

// SelectDateRequest PATCH /draft/date
type SelectDateRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
}

// SelectTimeRequest PATCH /draft/time
type SelectTimeRequest struct {
	Time string `json:"time"` // HH:MM
}

func toDraftResponse(b *domain.Booking, ready bool) *models.DraftResponse {
	return &models.DraftResponse{
		Booking: models.FromDomainBooking(b),
		Ready:   ready,
	}
}
