package webhook_proxy

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BeautyBooking/internal/api/handlers"
)

const (
	msgMethodNotAllowed = "Method not allowed"
	msgUpstreamFailed   = "Failed to send request to LEADTEX"
	msgInvalidBody      = "Failed to read request body"
	msgBodyTooLarge     = "Request body too large"
)

// Handler прокси к CRM для клиента, которому CORS не даёт обратиться напрямую.
// CORS заголовки добавляет middleware.CORS
type Handler struct {
	forwarder Forwarder
	logger    Logger
}

func NewHandler(forwarder Forwarder, logger Logger) *Handler {
	return &Handler{
		forwarder: forwarder,
		logger:    logger,
	}
}

// Handle OPTIONS|POST /api/webhook
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.logger.Info("Webhook received: method=%s, url=%s, content_length=%d", r.Method, r.URL.String(), r.ContentLength)

	if r.Method != http.MethodPost {
		handlers.RespondError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
		return
	}

	body, err := handlers.ReadBody(w, r)
	if err != nil {
		h.logger.Warn("Webhook: failed to read body: %v", err)
		if errors.Is(err, handlers.ErrBodyTooLarge) {
			handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.forwarder.Forward(r.Context(), body)
	if err != nil {
		h.logger.Error("Webhook: proxy error: %v", err)
		handlers.RespondJSON(w, http.StatusInternalServerError, &ProxyErrorResponse{
			Error:   msgUpstreamFailed,
			Message: err.Error(),
		})
		return
	}

	h.logger.Info("Webhook: response from CRM: status=%d, ok=%t", result.StatusCode, result.OK())
	handlers.RespondJSON(w, result.StatusCode, &ProxyResponse{
		Success: result.OK(),
		Status:  result.StatusCode,
		Data:    result.Body,
	})
}
