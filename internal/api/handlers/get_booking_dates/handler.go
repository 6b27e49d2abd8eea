package get_booking_dates

import (
	"net/http"

	"github.com/m04kA/SMC-BeautyBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/availability"
)

type Handler struct {
	catalog      Catalog
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(catalog Catalog, logger Logger) *Handler {
	return &Handler{
		catalog:      catalog,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// Handle GET /api/v1/dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dates := availability.GenerateBookableDates(h.catalog.Schedule(), h.timeProvider.Now())

	h.logger.Info("GET /dates - Booking window retrieved: days=%d", len(dates))
	handlers.RespondJSON(w, http.StatusOK, &BookingDatesResponse{Dates: dates})
}
