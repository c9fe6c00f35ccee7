package get_services

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/petmarket/PSM-BookingGateway/internal/api/handlers"
	"github.com/petmarket/PSM-BookingGateway/internal/service/catalog"
)

const (
	msgMissingShopID = "не указан ID магазина"
	msgShopNotFound  = "магазин не найден"
)

// Handler обработчик получения услуг магазина
type Handler struct {
	service CatalogService
	log     Logger
}

// NewHandler создает новый обработчик получения услуг
func NewHandler(service CatalogService, log Logger) *Handler {
	return &Handler{
		service: service,
		log:     log,
	}
}

// Handle обрабатывает GET /api/v1/shops/{shopId}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopID := mux.Vars(r)["shopId"]
	if shopID == "" {
		handlers.RespondBadRequest(w, msgMissingShopID)
		return
	}

	services, err := h.service.ListServices(r.Context(), shopID)
	if err != nil {
		if errors.Is(err, catalog.ErrShopNotFound) {
			h.log.Warn("[GetServices.Handle] Shop %s not found", shopID)
			handlers.RespondNotFound(w, msgShopNotFound)
			return
		}
		h.log.Error("[GetServices.Handle] Failed to list services for shop %s: %v", shopID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromServiceModels(services))
}
