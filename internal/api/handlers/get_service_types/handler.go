package get_service_types

import (
	"net/http"

	"github.com/petmarket/PSM-BookingGateway/internal/api/handlers"
)

// Handler обработчик получения справочника категорий услуг
type Handler struct {
	service CatalogService
	log     Logger
}

// NewHandler создает новый обработчик справочника категорий
func NewHandler(service CatalogService, log Logger) *Handler {
	return &Handler{
		service: service,
		log:     log,
	}
}

// Handle обрабатывает GET /api/v1/service-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	types, err := h.service.ListServiceTypes(r.Context())
	if err != nil {
		h.log.Error("[GetServiceTypes.Handle] Failed to list service types: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromServiceModels(types))
}
