package booking

import (
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

func sampleBookings() []domain.Booking {
	created := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	confirmed := created.Add(time.Minute)
	cancelled := created.Add(time.Hour)

	return []domain.Booking{
		{
			ID:            "b-1",
			ServiceID:     "haircut-women",
			Service:       &domain.Service{ID: "haircut-women", Name: "Женская стрижка", Price: 1500, Duration: 60, Category: "hair"},
			MasterID:      "master-1",
			Master:        &domain.Master{ID: "master-1", Name: "Анна Иванова", Specialization: []string{"hair", "stylist"}},
			Date:          "2025-03-04",
			Time:          "10:00",
			CustomerName:  "Ирина",
			CustomerPhone: "+7 999 123-45-67",
			Status:        domain.StatusConfirmed,
			CreatedAt:     created,
			ConfirmedAt:   &confirmed,
		},
		{
			ID:          "b-2",
			ServiceID:   "massage-back",
			MasterID:    "master-3",
			Date:        "2025-03-05",
			Time:        "15:00",
			Status:      domain.StatusCancelled,
			CreatedAt:   created,
			ConfirmedAt: &confirmed,
			CancelledAt: &cancelled,
		},
	}
}
