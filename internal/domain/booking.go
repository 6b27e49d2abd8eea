package domain

import (
	"time"

	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"   // draft, not persisted yet
	StatusConfirmed BookingStatus = "confirmed" // persisted, active
	StatusCancelled BookingStatus = "cancelled" // persisted, terminal
)

// Booking represents a client booking. Empty MasterID, Date and Time mean "not chosen yet"
type Booking struct {
	ID        string   `json:"id"`
	ServiceID string   `json:"serviceId"`
	Service   *Service `json:"service,omitempty"` // snapshot
	MasterID  string   `json:"masterId"`
	Master    *Master  `json:"master,omitempty"` // snapshot

	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // HH:MM, label on the day grid

	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerComment string `json:"customerComment"`

	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	ConfirmedAt *time.Time    `json:"confirmedAt,omitempty"`
	CancelledAt *time.Time    `json:"cancelledAt,omitempty"`
}

// IsActive returns true if the booking still occupies its slots
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsReady returns true if service, master, date and time are chosen.
// Contact info is not checked
func (b *Booking) IsReady() bool {
	return b.ServiceID != "" && b.MasterID != "" && b.Date != "" && b.Time != ""
}

// DurationMinutes returns the duration of the booked service snapshot
func (b *Booking) DurationMinutes() int {
	if b.Service == nil {
		return 0
	}
	return b.Service.Duration
}

// Instant returns the start of the booking in loc.
// Bookings without date or time return an error
func (b *Booking) Instant(loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(DateFormat, b.Date, loc)
	if err != nil {
		return time.Time{}, err
	}
	return types.TimeString(b.Time).On(day, loc)
}

// Clone returns a deep copy so snapshots never share mutable state
func (b *Booking) Clone() *Booking {
	if b == nil {
		return nil
	}
	c := *b
	if b.Service != nil {
		s := *b.Service
		c.Service = &s
	}
	if b.Master != nil {
		m := b.Master.Clone()
		c.Master = m
	}
	if b.ConfirmedAt != nil {
		t := *b.ConfirmedAt
		c.ConfirmedAt = &t
	}
	if b.CancelledAt != nil {
		t := *b.CancelledAt
		c.CancelledAt = &t
	}
	return &c
}
