package create_appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/petmarket/PSM-BookingGateway/internal/api/handlers"
	"github.com/petmarket/PSM-BookingGateway/internal/integrations/petcare"
	"github.com/petmarket/PSM-BookingGateway/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidStartTime     = "некорректный формат времени начала"
	msgValidationFailed     = "форма заполнена с ошибками"
	msgServiceNotFound      = "услуга не найдена"
	msgServiceInactive      = "услуга недоступна для записи"
	msgDuplicateSubmission  = "запрос уже обрабатывается, повторная отправка не требуется"
	msgAppointmentFailed    = "не удалось создать запись"
	msgServiceLinkFailed    = "запись создана, но не удалось привязать услугу, обратитесь в поддержку"
	msgBackendUnavailable   = "сервис записи временно недоступен"
	msgBackendUnauthorized  = "требуется авторизация"
	msgBackendConflict      = "конфликт при создании записи, попробуйте ещё раз"
	msgBackendNotFound      = "ресурс записи не найден"
)

// Handler обработчик создания записи на услугу
type Handler struct {
	useCase CreateAppointmentUseCase
	log     Logger
}

// NewHandler создает новый обработчик создания записи
func NewHandler(useCase CreateAppointmentUseCase, log Logger) *Handler {
	return &Handler{
		useCase: useCase,
		log:     log,
	}
}

// Handle обрабатывает POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.log.Warn("[CreateAppointment.Handle] Failed to decode request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		h.log.Warn("[CreateAppointment.Handle] Invalid startTime %q: %v", req.StartTime, err)
		handlers.RespondValidationErrors(w, msgValidationFailed, map[string]string{
			"start_time": msgInvalidStartTime,
		})
		return
	}

	ucReq := &create_appointment.Request{
		CustomerID:     r.Header.Get("X-User-ID"),
		ServiceID:      req.ServiceID,
		Notes:          req.Notes,
		StartTime:      startTime,
		IdempotencyKey: r.Header.Get("Idempotency-Key"),
	}

	result, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		h.respondUseCaseError(w, err)
		return
	}

	h.log.Info("[CreateAppointment.Handle] Appointment %s created for customer %s", result.AppointmentID, result.CustomerID)

	handlers.RespondJSON(w, http.StatusCreated, CreateAppointmentResponse{
		AppointmentID:  result.AppointmentID,
		CustomerID:     result.CustomerID,
		Status:         string(result.Status),
		StatusLabel:    result.StatusBadge.Label,
		StatusSeverity: string(result.StatusBadge.Severity),
		Notes:          result.Notes,
		StartTime:      result.StartTime.UTC().Format(time.RFC3339),
		ServiceLinkID:  result.ServiceLinkID,
		ServiceID:      result.ServiceID,
		ServiceName:    result.ServiceName,
		ServicePrice:   result.ServicePrice,
	})
}

// respondUseCaseError отображает ошибки workflow на HTTP статусы
// Закрытый набор исходов: любая незнакомая ошибка трактуется как внутренняя
func (h *Handler) respondUseCaseError(w http.ResponseWriter, err error) {
	var validationErr *create_appointment.ValidationError
	if errors.As(err, &validationErr) {
		h.log.Warn("[CreateAppointment.Handle] Validation failed: %v", err)
		handlers.RespondValidationErrors(w, msgValidationFailed, validationErr.Fields)
		return
	}

	switch {
	case errors.Is(err, create_appointment.ErrServiceNotFound):
		h.log.Warn("[CreateAppointment.Handle] Service not found: %v", err)
		handlers.RespondNotFound(w, msgServiceNotFound)
	case errors.Is(err, create_appointment.ErrServiceInactive):
		h.log.Warn("[CreateAppointment.Handle] Service inactive: %v", err)
		handlers.RespondBadRequest(w, msgServiceInactive)
	case errors.Is(err, create_appointment.ErrDuplicateSubmission):
		h.log.Warn("[CreateAppointment.Handle] Duplicate submission: %v", err)
		handlers.RespondConflict(w, msgDuplicateSubmission)
	case errors.Is(err, create_appointment.ErrServiceLinkCreate):
		// Частичный результат: запись в backend уже существует
		h.log.Error("[CreateAppointment.Handle] Service link failed after appointment created: %v", err)
		handlers.RespondBadGateway(w, msgServiceLinkFailed)
	case errors.Is(err, create_appointment.ErrAppointmentCreate):
		h.respondBackendError(w, err, msgAppointmentFailed)
	default:
		h.log.Error("[CreateAppointment.Handle] Unexpected error: %v", err)
		handlers.RespondInternalError(w)
	}
}

// respondBackendError уточняет статус по таксономии ошибок backend
func (h *Handler) respondBackendError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, petcare.ErrUnauthorized):
		h.log.Warn("[CreateAppointment.Handle] Backend unauthorized: %v", err)
		handlers.RespondUnauthorized(w, msgBackendUnauthorized)
	case errors.Is(err, petcare.ErrBadRequest):
		// Сообщение backend передается клиенту дословно
		h.log.Warn("[CreateAppointment.Handle] Backend rejected request: %v", err)
		msg := petcare.BadRequestMessage(err)
		if msg == "" {
			msg = fallback
		}
		handlers.RespondBadRequest(w, msg)
	case errors.Is(err, petcare.ErrNotFound):
		h.log.Warn("[CreateAppointment.Handle] Backend resource not found: %v", err)
		handlers.RespondNotFound(w, msgBackendNotFound)
	case errors.Is(err, petcare.ErrConflict):
		h.log.Warn("[CreateAppointment.Handle] Backend conflict: %v", err)
		handlers.RespondConflict(w, msgBackendConflict)
	case errors.Is(err, petcare.ErrTransport):
		h.log.Error("[CreateAppointment.Handle] Backend unreachable: %v", err)
		handlers.RespondBadGateway(w, msgBackendUnavailable)
	default:
		h.log.Error("[CreateAppointment.Handle] Backend error: %v, fallback: %s", err, fallback)
		handlers.RespondError(w, http.StatusBadGateway, fallback)
	}
}
