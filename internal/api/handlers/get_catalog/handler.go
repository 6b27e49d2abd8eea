package get_catalog

import (
	"net/http"

	"github.com/m04kA/SMC-BeautyBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

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

// Handle GET /api/v1/catalog
// Query params: category (optional, по умолчанию "all")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = domain.CategoryAll
	}

	response := FromCatalog(h.catalog, category)

	h.logger.Info("GET /catalog - Catalog retrieved: category=%s, services=%d, masters=%d",
		category, len(response.Services), len(response.Masters))
	handlers.RespondJSON(w, http.StatusOK, response)
}
