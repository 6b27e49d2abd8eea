package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BeautyBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BeautyBooking/internal/api/middleware"
	submitBooking "github.com/m04kA/SMC-BeautyBooking/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNoDraft            = "нет записи в процессе оформления"
	msgNotReady           = "выберите мастера, дату и время"
	msgSlotNotAvailable   = "это время недоступно, выберите другое"
	msgMasterNotEligible  = "мастер не выполняет эту услугу"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/draft/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ConfirmBookingRequest
	if err := handlers.DecodeJSON(w, r, &req); err != nil {
		h.logger.Warn("POST /draft/confirm - Invalid request body: %v", err)
		handlers.RespondDecodeError(w, err, msgInvalidRequestBody)
		return
	}

	// Пользователь необязателен
	user, _ := middleware.UserFromContext(r.Context())

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(user))
	if err != nil {
		var verr *submitBooking.ValidationError
		switch {
		case errors.As(err, &verr):
			h.logger.Warn("POST /draft/confirm - Invalid contact info: field=%s", verr.Field)
			handlers.RespondBadRequest(w, verr.Message)

		case errors.Is(err, submitBooking.ErrNoDraft):
			h.logger.Warn("POST /draft/confirm - No draft in progress")
			handlers.RespondConflict(w, msgNoDraft)

		case errors.Is(err, submitBooking.ErrNotReady):
			h.logger.Warn("POST /draft/confirm - Draft is not ready")
			handlers.RespondConflict(w, msgNotReady)

		case errors.Is(err, submitBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /draft/confirm - Slot is not available")
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, submitBooking.ErrMasterNotEligible):
			h.logger.Warn("POST /draft/confirm - Master is not eligible")
			handlers.RespondConflict(w, msgMasterNotEligible)

		default:
			h.logger.Error("POST /draft/confirm - Failed to confirm booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /draft/confirm - Booking confirmed successfully: booking_id=%s, upcoming=%d",
		result.Booking.ID, result.UpcomingCount)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
