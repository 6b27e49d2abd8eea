package get_service_masters

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BeautyBooking/internal/api/handlers"
)

const msgServiceNotFound = "услуга не найдена"

type Handler struct {
	catalog Catalog
	logger  Logger
}

func NewHandler(catalog Catalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceId}/masters
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["serviceId"]

	if h.catalog.ServiceByID(serviceID) == nil {
		h.logger.Warn("GET /services/{id}/masters - Service not found: service_id=%s", serviceID)
		handlers.RespondNotFound(w, msgServiceNotFound)
		return
	}

	masters := h.catalog.MastersForService(serviceID)

	h.logger.Info("GET /services/{id}/masters - Masters retrieved: service_id=%s, count=%d", serviceID, len(masters))
	handlers.RespondJSON(w, http.StatusOK, &ServiceMastersResponse{
		ServiceID: serviceID,
		Masters:   masters,
	})
}
