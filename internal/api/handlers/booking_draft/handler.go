package booking_draft

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/bookings"
	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingServiceID   = "ID услуги обязателен"
	msgMissingMasterID    = "ID мастера обязателен"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgServiceNotFound    = "услуга не найдена"
	msgMasterNotFound     = "мастер не найден"
	msgNoDraft            = "нет записи в процессе оформления"
)

// Handler черновик записи: выбор услуги, мастера, даты и времени
type Handler struct {
	manager BookingManager
	logger  Logger
}

func NewHandler(manager BookingManager, logger Logger) *Handler {
	return &Handler{
		manager: manager,
		logger:  logger,
	}
}

// Start POST /api/v1/draft
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	var req StartDraftRequest
	if err := handlers.DecodeJSON(w, r, &req); err != nil {
		h.logger.Warn("POST /draft - Invalid request body: %v", err)
		handlers.RespondDecodeError(w, err, msgInvalidRequestBody)
		return
	}
	if req.ServiceID == "" {
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	draft, err := h.manager.StartBooking(req.ServiceID)
	if err != nil {
		h.respondError(w, "POST /draft", err)
		return
	}

	h.logger.Info("POST /draft - Draft started: draft_id=%s, service_id=%s", draft.ID, draft.ServiceID)
	handlers.RespondJSON(w, http.StatusCreated, toDraftResponse(draft, draft.IsReady()))
}

// Get GET /api/v1/draft
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	draft := h.manager.CurrentBooking()
	if draft == nil {
		handlers.RespondNotFound(w, msgNoDraft)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, toDraftResponse(draft, h.manager.IsBookingReady()))
}

// Reset DELETE /api/v1/draft
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	h.manager.ResetCurrentBooking()
	h.logger.Info("DELETE /draft - Draft reset")
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// SelectMaster PATCH /api/v1/draft/master
func (h *Handler) SelectMaster(w http.ResponseWriter, r *http.Request) {
	var req SelectMasterRequest
	if err := handlers.DecodeJSON(w, r, &req); err != nil {
		h.logger.Warn("PATCH /draft/master - Invalid request body: %v", err)
		handlers.RespondDecodeError(w, err, msgInvalidRequestBody)
		return
	}
	if req.MasterID == "" {
		handlers.RespondBadRequest(w, msgMissingMasterID)
		return
	}

	draft, err := h.manager.SelectMaster(req.MasterID)
	if err != nil {
		h.respondError(w, "PATCH /draft/master", err)
		return
	}

	h.logger.Info("PATCH /draft/master - Master selected: draft_id=%s, master_id=%s", draft.ID, draft.MasterID)
	handlers.RespondJSON(w, http.StatusOK, toDraftResponse(draft, draft.IsReady()))
}

// SelectDate PATCH /api/v1/draft/date
func (h *Handler) SelectDate(w http.ResponseWriter, r *http.Request) {
	var req SelectDateRequest
	if err := handlers.DecodeJSON(w, r, &req); err != nil {
		h.logger.Warn("PATCH /draft/date - Invalid request body: %v", err)
		handlers.RespondDecodeError(w, err, msgInvalidRequestBody)
		return
	}
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		h.logger.Warn("PATCH /draft/date - Invalid date: %q", req.Date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	draft, err := h.manager.SelectDate(req.Date)
	if err != nil {
		h.respondError(w, "PATCH /draft/date", err)
		return
	}

	h.logger.Info("PATCH /draft/date - Date selected: draft_id=%s, date=%s", draft.ID, draft.Date)
	handlers.RespondJSON(w, http.StatusOK, toDraftResponse(draft, draft.IsReady()))
}

// SelectTime PATCH /api/v1/draft/time
func (h *Handler) SelectTime(w http.ResponseWriter, r *http.Request) {
	var req SelectTimeRequest
	if err := handlers.DecodeJSON(w, r, &req); err != nil {
		h.logger.Warn("PATCH /draft/time - Invalid request body: %v", err)
		handlers.RespondDecodeError(w, err, msgInvalidRequestBody)
		return
	}
	if err := types.TimeString(req.Time).Validate(); err != nil {
		h.logger.Warn("PATCH /draft/time - Invalid time: %q", req.Time)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	draft, err := h.manager.SelectTime(req.Time)
	if err != nil {
		h.respondError(w, "PATCH /draft/time", err)
		return
	}

	h.logger.Info("PATCH /draft/time - Time selected: draft_id=%s, time=%s, ready=%t",
		draft.ID, draft.Time, draft.IsReady())
	handlers.RespondJSON(w, http.StatusOK, toDraftResponse(draft, draft.IsReady()))
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, bookings.ErrServiceNotFound):
		h.logger.Warn("%s - Service not found", route)
		handlers.RespondNotFound(w, msgServiceNotFound)

	case errors.Is(err, bookings.ErrMasterNotFound):
		h.logger.Warn("%s - Master not found", route)
		handlers.RespondNotFound(w, msgMasterNotFound)

	case errors.Is(err, bookings.ErrNoDraft):
		h.logger.Warn("%s - No draft in progress", route)
		handlers.RespondConflict(w, msgNoDraft)

	default:
		h.logger.Error("%s - Failed to update draft: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
