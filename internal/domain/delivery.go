package domain

import "time"

// DeliveryTypeBooking type of the payload sent to external sinks
const DeliveryTypeBooking = "booking"

// TelegramUser identity of the Mini App user as reported by the host
type TelegramUser struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name,omitempty"`
	Username     string `json:"username,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`
}

// DeliveryPayload finalized booking record handed to the CRM and other sinks
type DeliveryPayload struct {
	Type     string            `json:"type"`
	Booking  DeliveryBooking   `json:"booking"`
	Telegram *DeliveryIdentity `json:"telegram"`
}

type DeliveryBooking struct {
	ID              string    `json:"id"`
	Service         string    `json:"service"`
	ServiceID       string    `json:"serviceId"`
	Master          string    `json:"master"`
	MasterID        string    `json:"masterId"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	Duration        int       `json:"duration"`
	Price           int       `json:"price"`
	CustomerName    string    `json:"customerName"`
	CustomerPhone   string    `json:"customerPhone"`
	CustomerComment string    `json:"customerComment"`
	CreatedAt       time.Time `json:"createdAt"`
}

// DeliveryIdentity optional external user of the booking
type DeliveryIdentity struct {
	UserID int64         `json:"userId"`
	User   *TelegramUser `json:"user"`
}

// NewDeliveryPayload builds the sink payload from a confirmed booking; user may be nil
func NewDeliveryPayload(b *Booking, user *TelegramUser) *DeliveryPayload {
	p := &DeliveryPayload{
		Type: DeliveryTypeBooking,
		Booking: DeliveryBooking{
			ID:              b.ID,
			ServiceID:       b.ServiceID,
			MasterID:        b.MasterID,
			Date:            b.Date,
			Time:            b.Time,
			CustomerName:    b.CustomerName,
			CustomerPhone:   b.CustomerPhone,
			CustomerComment: b.CustomerComment,
			CreatedAt:       b.CreatedAt,
		},
	}

	if b.Service != nil {
		p.Booking.Service = b.Service.Name
		p.Booking.Duration = b.Service.Duration
		p.Booking.Price = b.Service.Price
	}
	if b.Master != nil {
		p.Booking.Master = b.Master.Name
	}
	if user != nil {
		u := *user
		p.Telegram = &DeliveryIdentity{UserID: u.ID, User: &u}
	}

	return p
}
