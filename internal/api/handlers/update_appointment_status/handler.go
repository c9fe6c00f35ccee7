package update_appointment_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/petmarket/PSM-BookingGateway/internal/api/handlers"
	"github.com/petmarket/PSM-BookingGateway/internal/service/appointments"
	"github.com/petmarket/PSM-BookingGateway/internal/service/appointments/models"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingAppointmentID = "не указан ID записи"
	msgAppointmentNotFound  = "запись не найдена"
	msgInvalidStatus        = "неизвестный статус записи"
	msgInvalidTransition    = "недопустимый переход статуса"
)

// Handler обработчик перехода статуса записи
type Handler struct {
	service AppointmentsService
	log     Logger
}

// NewHandler создает новый обработчик перехода статуса
func NewHandler(service AppointmentsService, log Logger) *Handler {
	return &Handler{
		service: service,
		log:     log,
	}
}

// Handle обрабатывает PATCH /api/v1/appointments/{appointmentId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]
	if appointmentID == "" {
		handlers.RespondBadRequest(w, msgMissingAppointmentID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.log.Warn("[UpdateAppointmentStatus.Handle] Failed to decode request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	appointment, err := h.service.UpdateStatus(r.Context(), appointmentID, &models.UpdateStatusRequest{
		Status: req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.log.Warn("[UpdateAppointmentStatus.Handle] Appointment %s not found", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)
		case errors.Is(err, appointments.ErrInvalidStatus):
			h.log.Warn("[UpdateAppointmentStatus.Handle] Invalid status %q for appointment %s", req.Status, appointmentID)
			handlers.RespondBadRequest(w, msgInvalidStatus)
		case errors.Is(err, appointments.ErrInvalidTransition):
			h.log.Warn("[UpdateAppointmentStatus.Handle] Invalid transition for appointment %s: %v", appointmentID, err)
			handlers.RespondConflict(w, msgInvalidTransition)
		default:
			h.log.Error("[UpdateAppointmentStatus.Handle] Failed to update appointment %s: %v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.log.Info("[UpdateAppointmentStatus.Handle] Appointment %s moved to status %s", appointmentID, appointment.Status)

	handlers.RespondJSON(w, http.StatusOK, fromServiceModel(appointment))
}
