package get_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-BeautyBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/bookings/models"
)

const msgInvalidScope = "некорректный раздел, ожидается upcoming, past или all"

type Handler struct {
	manager      BookingManager
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(manager BookingManager, logger Logger) *Handler {
	return &Handler{
		manager:      manager,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// Handle GET /api/v1/bookings
// Query params: scope (optional: upcoming, past, all)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scope, ok := ParseScope(r.URL.Query().Get("scope"))
	if !ok {
		h.logger.Warn("GET /bookings - Invalid scope: %q", r.URL.Query().Get("scope"))
		handlers.RespondBadRequest(w, msgInvalidScope)
		return
	}

	now := h.timeProvider.Now()

	var list []domain.Booking
	switch scope {
	case ScopeUpcoming:
		list = h.manager.UpcomingBookings(now)
	case ScopePast:
		list = h.manager.PastBookings(now)
	default:
		list = h.manager.AllBookings()
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: scope=%s, count=%d", scope, len(list))
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainBookingList(list))
}

// Count GET /api/v1/bookings/upcoming-count
func (h *Handler) Count(w http.ResponseWriter, r *http.Request) {
	count := h.manager.UpcomingCount(h.timeProvider.Now())
	handlers.RespondJSON(w, http.StatusOK, &UpcomingCountResponse{Count: count})
}
