package book_room

import (
	"errors"
	"net/http"
	"time"

	"github.com/petmarket/PSM-BookingGateway/internal/api/handlers"
	"github.com/petmarket/PSM-BookingGateway/internal/integrations/petcare"
	"github.com/petmarket/PSM-BookingGateway/internal/usecase/book_room"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidCheckInDate  = "некорректный формат даты заезда"
	msgInvalidCheckOutDate = "некорректный формат даты выезда"
	msgValidationFailed    = "форма заполнена с ошибками"
	msgRoomNotFound        = "номер не найден"
	msgRoomUnavailable     = "номер недоступен для бронирования"
	msgBookingFailed       = "не удалось забронировать номер"
	msgBackendUnavailable  = "сервис бронирования временно недоступен"
	msgBackendUnauthorized = "требуется авторизация"
	msgBackendConflict     = "номер уже занят на выбранные даты"
)

// Handler обработчик бронирования номера пет-отеля
type Handler struct {
	useCase BookRoomUseCase
	log     Logger
}

// NewHandler создает новый обработчик бронирования номера
func NewHandler(useCase BookRoomUseCase, log Logger) *Handler {
	return &Handler{
		useCase: useCase,
		log:     log,
	}
}

// Handle обрабатывает POST /api/v1/room-bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.log.Warn("[BookRoom.Handle] Failed to decode request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	fieldErrors := make(map[string]string)

	checkIn, err := time.Parse(time.RFC3339, req.CheckInDate)
	if err != nil {
		fieldErrors["check_in_date"] = msgInvalidCheckInDate
	}

	checkOut, err := time.Parse(time.RFC3339, req.CheckOutDate)
	if err != nil {
		fieldErrors["check_out_date"] = msgInvalidCheckOutDate
	}

	if len(fieldErrors) > 0 {
		h.log.Warn("[BookRoom.Handle] Invalid date fields: %v", fieldErrors)
		handlers.RespondValidationErrors(w, msgValidationFailed, fieldErrors)
		return
	}

	ucReq := &book_room.Request{
		CustomerID:         r.Header.Get("X-User-ID"),
		RoomDetailID:       req.RoomDetailID,
		CheckInDate:        checkIn,
		CheckOutDate:       checkOut,
		FeedingSchedule:    req.FeedingSchedule,
		MedicationSchedule: req.MedicationSchedule,
	}

	result, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		h.respondUseCaseError(w, err)
		return
	}

	h.log.Info("[BookRoom.Handle] Room booking %s created for customer %s, %d nights", result.BookingID, result.CustomerID, result.TotalNights)

	handlers.RespondJSON(w, http.StatusCreated, BookRoomResponse{
		BookingID:          result.BookingID,
		CustomerID:         result.CustomerID,
		RoomDetailID:       result.RoomDetailID,
		RoomName:           result.RoomName,
		CheckInDate:        result.CheckInDate.UTC().Format(time.RFC3339),
		CheckOutDate:       result.CheckOutDate.UTC().Format(time.RFC3339),
		TotalNights:        result.TotalNights,
		TotalAmount:        result.TotalAmount,
		FeedingSchedule:    result.FeedingSchedule,
		MedicationSchedule: result.MedicationSchedule,
		Status:             string(result.Status),
	})
}

// respondUseCaseError отображает ошибки бронирования на HTTP статусы
func (h *Handler) respondUseCaseError(w http.ResponseWriter, err error) {
	var validationErr *book_room.ValidationError
	if errors.As(err, &validationErr) {
		h.log.Warn("[BookRoom.Handle] Validation failed: %v", err)
		handlers.RespondValidationErrors(w, msgValidationFailed, validationErr.Fields)
		return
	}

	switch {
	case errors.Is(err, book_room.ErrRoomNotFound):
		h.log.Warn("[BookRoom.Handle] Room not found: %v", err)
		handlers.RespondNotFound(w, msgRoomNotFound)
	case errors.Is(err, book_room.ErrRoomUnavailable):
		h.log.Warn("[BookRoom.Handle] Room unavailable: %v", err)
		handlers.RespondBadRequest(w, msgRoomUnavailable)
	case errors.Is(err, petcare.ErrUnauthorized):
		h.log.Warn("[BookRoom.Handle] Backend unauthorized: %v", err)
		handlers.RespondUnauthorized(w, msgBackendUnauthorized)
	case errors.Is(err, petcare.ErrBadRequest):
		// Сообщение backend передается клиенту дословно
		h.log.Warn("[BookRoom.Handle] Backend rejected request: %v", err)
		msg := petcare.BadRequestMessage(err)
		if msg == "" {
			msg = msgBookingFailed
		}
		handlers.RespondBadRequest(w, msg)
	case errors.Is(err, petcare.ErrConflict):
		h.log.Warn("[BookRoom.Handle] Backend conflict: %v", err)
		handlers.RespondConflict(w, msgBackendConflict)
	case errors.Is(err, petcare.ErrTransport):
		h.log.Error("[BookRoom.Handle] Backend unreachable: %v", err)
		handlers.RespondBadGateway(w, msgBackendUnavailable)
	case errors.Is(err, book_room.ErrBookingCreate):
		h.log.Error("[BookRoom.Handle] Booking failed: %v", err)
		handlers.RespondBadGateway(w, msgBookingFailed)
	default:
		h.log.Error("[BookRoom.Handle] Unexpected error: %v", err)
		handlers.RespondInternalError(w)
	}
}
