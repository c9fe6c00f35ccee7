package petcare

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/petmarket/PSM-BookingGateway/internal/domain"
)

// Client клиент для работы с PetCare backend API
// Каждый вызов — ровно один сетевой запрос, без автоматических ретраев
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    MetricsObserver
}

// NewClient создает новый экземпляр клиента PetCare backend
// metrics может быть nil, если сбор метрик выключен
func NewClient(baseURL string, timeout time.Duration, log Logger, metrics MetricsObserver) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

// CreateAppointment создает запись на услугу
// Возвращает запись с каноническими полями, присвоенными сервером
func (c *Client) CreateAppointment(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	payload := appointmentPayload{
		ID:         appointment.ID,
		CustomerID: appointment.CustomerID,
		Status:     string(appointment.Status),
		Notes:      appointment.Notes,
		StartTime:  formatAPITime(appointment.StartTime),
	}

	var echo appointmentPayload
	if err := c.do(ctx, "create_appointment", http.MethodPost, "/Appointments", payload, &echo); err != nil {
		return nil, err
	}

	created, err := echo.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse appointment response: %v", ErrUnexpected, err)
	}

	return created, nil
}

// CreateServiceLink создает связь услуга-запись
// appointmentID должен быть идентификатором, который вернул сервер при создании записи
func (c *Client) CreateServiceLink(ctx context.Context, link *domain.ServiceAppointmentLink) (*domain.ServiceAppointmentLink, error) {
	payload := serviceLinkPayload{
		ID:            link.ID,
		ServiceID:     link.ServiceID,
		AppointmentID: link.AppointmentID,
	}

	var echo serviceLinkPayload
	if err := c.do(ctx, "create_service_link", http.MethodPost, "/Service_Appointment", payload, &echo); err != nil {
		return nil, err
	}

	return echo.toDomain(), nil
}

// GetAppointment получает запись по ID
func (c *Client) GetAppointment(ctx context.Context, id string) (*domain.Appointment, error) {
	var payload appointmentPayload
	if err := c.do(ctx, "get_appointment", http.MethodGet, "/Appointments/"+id, nil, &payload); err != nil {
		return nil, err
	}

	appointment, err := payload.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse appointment response: %v", ErrUnexpected, err)
	}

	return appointment, nil
}

// ReplaceAppointment полностью заменяет запись (PUT)
// Используется для переходов статуса записи персоналом магазина
func (c *Client) ReplaceAppointment(ctx context.Context, appointment *domain.Appointment) error {
	payload := appointmentPayload{
		ID:         appointment.ID,
		CustomerID: appointment.CustomerID,
		Status:     string(appointment.Status),
		Notes:      appointment.Notes,
		StartTime:  formatAPITime(appointment.StartTime),
	}
	if appointment.EndTime != nil {
		endTime := formatAPITime(*appointment.EndTime)
		payload.EndTime = &endTime
	}

	return c.do(ctx, "replace_appointment", http.MethodPut, "/Appointments", payload, nil)
}

// GetService получает услугу по ID
func (c *Client) GetService(ctx context.Context, id string) (*domain.Service, error) {
	var payload servicePayload
	if err := c.do(ctx, "get_service", http.MethodGet, "/Service/"+id, nil, &payload); err != nil {
		return nil, err
	}
	return payload.toDomain(), nil
}

// GetServicesByShop получает услуги магазина
func (c *Client) GetServicesByShop(ctx context.Context, shopID string) ([]*domain.Service, error) {
	var payloads []servicePayload
	if err := c.do(ctx, "get_services_by_shop", http.MethodGet, "/Service/shop/"+shopID, nil, &payloads); err != nil {
		return nil, err
	}

	services := make([]*domain.Service, 0, len(payloads))
	for i := range payloads {
		services = append(services, payloads[i].toDomain())
	}
	return services, nil
}

// GetServiceTypes получает справочник категорий услуг
func (c *Client) GetServiceTypes(ctx context.Context) ([]*domain.ServiceType, error) {
	var payloads []serviceTypePayload
	if err := c.do(ctx, "get_service_types", http.MethodGet, "/Service_Type", nil, &payloads); err != nil {
		return nil, err
	}

	types := make([]*domain.ServiceType, 0, len(payloads))
	for _, p := range payloads {
		types = append(types, &domain.ServiceType{ID: p.ID, Name: p.Name})
	}
	return types, nil
}

// GetShop получает магазин по ID
func (c *Client) GetShop(ctx context.Context, id string) (*domain.Shop, error) {
	var payload shopPayload
	if err := c.do(ctx, "get_shop", http.MethodGet, "/Shop/"+id, nil, &payload); err != nil {
		return nil, err
	}
	return payload.toDomain(), nil
}

// GetRoomDetail получает номер пет-отеля по ID
func (c *Client) GetRoomDetail(ctx context.Context, id string) (*domain.RoomDetail, error) {
	var payload roomDetailPayload
	if err := c.do(ctx, "get_room_detail", http.MethodGet, "/Room_Detail/"+id, nil, &payload); err != nil {
		return nil, err
	}
	return payload.toDomain(), nil
}

// CreateRoomBooking создает бронирование номера пет-отеля
// Производные поля (total_night, total_amount) должны быть вычислены до вызова
func (c *Client) CreateRoomBooking(ctx context.Context, booking *domain.RoomBooking) (*domain.RoomBooking, error) {
	payload := roomBookingPayload{
		RoomDetailID:       booking.RoomDetailID,
		CustomerID:         booking.CustomerID,
		CheckInDate:        formatAPITime(booking.CheckInDate),
		CheckOutDate:       formatAPITime(booking.CheckOutDate),
		FeedingSchedule:    booking.FeedingSchedule,
		MedicationSchedule: booking.MedicationSchedule,
		TotalNight:         booking.TotalNights,
		TotalAmount:        booking.TotalAmount,
		Status:             string(booking.Status),
	}

	var echo roomBookingPayload
	if err := c.do(ctx, "create_room_booking", http.MethodPost, "/Room_Bookings", payload, &echo); err != nil {
		return nil, err
	}

	created, err := echo.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse room booking response: %v", ErrUnexpected, err)
	}

	return created, nil
}

// do выполняет один HTTP запрос к backend и мапит ответ на закрытую таксономию ошибок
// out может быть nil, если тело успешного ответа не нужно
func (c *Client) do(ctx context.Context, operation, method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request body: %v", ErrUnexpected, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrUnexpected, err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(operation, "transport_error", start)
		c.log.Error("PetCare %s %s failed: %v", method, path, err)
		return fmt.Errorf("%w: %s %s: %v", ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	c.observe(operation, fmt.Sprintf("http_%d", resp.StatusCode), start)

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: failed to decode response body: %v", ErrUnexpected, err)
		}
		return nil

	case http.StatusBadRequest:
		// Сообщение серверной валидации сохраняется дословно
		return &BadRequestError{Message: c.readErrorMessage(resp.Body)}

	case http.StatusUnauthorized:
		return ErrUnauthorized

	case http.StatusNotFound:
		return ErrNotFound

	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, c.readErrorMessage(resp.Body))

	default:
		body, _ := io.ReadAll(resp.Body)
		c.log.Error("PetCare %s %s returned unexpected status %d: %s", method, path, resp.StatusCode, string(body))
		return fmt.Errorf("%w: status %d", ErrUnexpected, resp.StatusCode)
	}
}

// readErrorMessage извлекает сообщение об ошибке из тела ответа
// Понимает как структурированную ошибку {code, message}, так и сырой текст
func (c *Client) readErrorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(raw) == 0 {
		return "no error details"
	}

	var payload errorPayload
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}

	return string(raw)
}

func (c *Client) observe(operation, outcome string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveBackendRequest(operation, outcome, time.Since(start).Seconds())
}
