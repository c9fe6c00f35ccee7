package get_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/petmarket/PSM-BookingGateway/internal/api/handlers"
	"github.com/petmarket/PSM-BookingGateway/internal/service/appointments"
)

const (
	msgMissingAppointmentID = "не указан ID записи"
	msgAppointmentNotFound  = "запись не найдена"
)

// Handler обработчик получения записи по ID
type Handler struct {
	service AppointmentsService
	log     Logger
}

// NewHandler создает новый обработчик получения записи
func NewHandler(service AppointmentsService, log Logger) *Handler {
	return &Handler{
		service: service,
		log:     log,
	}
}

// Handle обрабатывает GET /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]
	if appointmentID == "" {
		handlers.RespondBadRequest(w, msgMissingAppointmentID)
		return
	}

	appointment, err := h.service.GetByID(r.Context(), appointmentID)
	if err != nil {
		if errors.Is(err, appointments.ErrAppointmentNotFound) {
			h.log.Warn("[GetAppointment.Handle] Appointment %s not found", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)
			return
		}
		h.log.Error("[GetAppointment.Handle] Failed to get appointment %s: %v", appointmentID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromServiceModel(appointment))
}
