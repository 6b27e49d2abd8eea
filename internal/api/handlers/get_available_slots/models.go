package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-BeautyBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string   `json:"date"`
	MasterID        string   `json:"masterId"`
	ServiceID       string   `json:"serviceId"`
	DurationMinutes int      `json:"durationMinutes"`
	IsWorkDay       bool     `json:"isWorkDay"`
	Slots           []string `json:"slots"`
	BusySlots       []string `json:"busySlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := resp.Slots
	if slots == nil {
		slots = []string{}
	}

	busy := resp.BusySlots
	if busy == nil {
		busy = []string{}
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date,
		MasterID:        resp.MasterID,
		ServiceID:       resp.ServiceID,
		DurationMinutes: resp.DurationMinutes,
		IsWorkDay:       resp.IsWorkDay,
		Slots:           slots,
		BusySlots:       busy,
	}
}

// ToUseCaseRequest создает запрос use case из параметров пути и query
func ToUseCaseRequest(masterID, serviceID, date string) *getAvailableSlots.Request {
	return &getAvailableSlots.Request{
		ServiceID: serviceID,
		MasterID:  masterID,
		Date:      date,
	}
}
