package models

import (
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`

	ServiceID       string `json:"serviceId"`
	ServiceName     string `json:"serviceName,omitempty"`
	ServicePrice    int    `json:"servicePrice,omitempty"`
	DurationMinutes int    `json:"durationMinutes,omitempty"`

	MasterID   string `json:"masterId,omitempty"`
	MasterName string `json:"masterName,omitempty"`

	Date *string `json:"date"` // "2025-10-15", null пока не выбрана
	Time *string `json:"time"` // "10:00", null пока не выбрано

	CustomerName    string `json:"customerName,omitempty"`
	CustomerPhone   string `json:"customerPhone,omitempty"`
	CustomerComment string `json:"customerComment,omitempty"`

	CreatedAt   time.Time  `json:"createdAt"`
	ConfirmedAt *time.Time `json:"confirmedAt,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// DraftResponse текущий черновик и признак готовности к подтверждению
type DraftResponse struct {
	Booking *BookingResponse `json:"booking"`
	Ready   bool             `json:"ready"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              b.ID,
		Status:          string(b.Status),
		ServiceID:       b.ServiceID,
		MasterID:        b.MasterID,
		CustomerName:    b.CustomerName,
		CustomerPhone:   b.CustomerPhone,
		CustomerComment: b.CustomerComment,
		CreatedAt:       b.CreatedAt,
		ConfirmedAt:     b.ConfirmedAt,
		CancelledAt:     b.CancelledAt,
	}

	if b.Service != nil {
		resp.ServiceName = b.Service.Name
		resp.ServicePrice = b.Service.Price
		resp.DurationMinutes = b.Service.Duration
	}
	if b.Master != nil {
		resp.MasterName = b.Master.Name
	}
	if b.Date != "" {
		date := b.Date
		resp.Date = &date
	}
	if b.Time != "" {
		t := b.Time
		resp.Time = &t
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for i := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(&bookings[i]))
	}

	return resp
}
