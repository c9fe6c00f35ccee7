package create_appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petmarket/PSM-BookingGateway/internal/api/handlers"
	"github.com/petmarket/PSM-BookingGateway/internal/domain"
	"github.com/petmarket/PSM-BookingGateway/internal/integrations/petcare"
	"github.com/petmarket/PSM-BookingGateway/internal/usecase/create_appointment"
)

type fakeUseCase struct {
	gotRequest *create_appointment.Request
	response   *create_appointment.Response
	err        error
}

func (f *fakeUseCase) Execute(_ context.Context, req *create_appointment.Request) (*create_appointment.Response, error) {
	f.gotRequest = req
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, useCase CreateAppointmentUseCase, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(raw))
	req.Header.Set("X-User-ID", "customer-1")
	req.Header.Set("Idempotency-Key", "key-1")

	rec := httptest.NewRecorder()
	NewHandler(useCase, noopLogger{}).Handle(rec, req)
	return rec
}

func TestHandleSuccess(t *testing.T) {
	startTime := time.Date(2025, 7, 1, 9, 30, 0, 0, time.UTC)
	useCase := &fakeUseCase{
		response: &create_appointment.Response{
			AppointmentID: "srv-appt-1",
			CustomerID:    "customer-1",
			Status:        domain.StatusNoProgress,
			StatusBadge:   domain.StatusBadge(domain.StatusNoProgress),
			Notes:         "стрижка когтей",
			StartTime:     startTime,
			ServiceLinkID: "link-1",
			ServiceID:     "service-1",
			ServiceName:   "Груминг",
			ServicePrice:  1500,
		},
	}

	rec := doRequest(t, useCase, CreateAppointmentRequest{
		ServiceID: "service-1",
		Notes:     "стрижка когтей",
		StartTime: "2025-07-01T09:30:00Z",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateAppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "srv-appt-1", resp.AppointmentID)
	assert.Equal(t, "NoProgress", resp.Status)
	assert.Equal(t, "Ожидает подтверждения", resp.StatusLabel)
	assert.Equal(t, "neutral", resp.StatusSeverity)
	assert.Equal(t, "link-1", resp.ServiceLinkID)
	assert.InDelta(t, 1500, resp.ServicePrice, 0.0001)

	// Идентификатор клиента и ключ берутся из заголовков, не из тела
	require.NotNil(t, useCase.gotRequest)
	assert.Equal(t, "customer-1", useCase.gotRequest.CustomerID)
	assert.Equal(t, "key-1", useCase.gotRequest.IdempotencyKey)
	assert.True(t, useCase.gotRequest.StartTime.Equal(startTime))
}

func TestHandleMalformedBody(t *testing.T) {
	useCase := &fakeUseCase{}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader([]byte(`{broken`)))
	req.Header.Set("X-User-ID", "customer-1")
	rec := httptest.NewRecorder()

	NewHandler(useCase, noopLogger{}).Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, useCase.gotRequest)
}

func TestHandleInvalidStartTime(t *testing.T) {
	useCase := &fakeUseCase{}

	rec := doRequest(t, useCase, CreateAppointmentRequest{
		ServiceID: "service-1",
		Notes:     "n",
		StartTime: "01.07.2025 09:30",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "start_time")
	assert.Nil(t, useCase.gotRequest)
}

func TestHandleValidationErrorsRenderFields(t *testing.T) {
	useCase := &fakeUseCase{
		err: &create_appointment.ValidationError{Fields: map[string]string{
			"notes":      "обязательное поле",
			"service_id": "обязательное поле",
		}},
	}

	rec := doRequest(t, useCase, CreateAppointmentRequest{StartTime: "2025-07-01T09:30:00Z"})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Fields, 2)
	assert.Equal(t, "обязательное поле", resp.Fields["notes"])
}

func TestHandleErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"service not found", create_appointment.ErrServiceNotFound, http.StatusNotFound},
		{"service inactive", create_appointment.ErrServiceInactive, http.StatusBadRequest},
		{"duplicate submission", create_appointment.ErrDuplicateSubmission, http.StatusConflict},
		{
			"link failed after appointment created",
			fmt.Errorf("%w: %w", create_appointment.ErrServiceLinkCreate, petcare.ErrTransport),
			http.StatusBadGateway,
		},
		{
			"appointment step unauthorized",
			fmt.Errorf("%w: %w", create_appointment.ErrAppointmentCreate, petcare.ErrUnauthorized),
			http.StatusUnauthorized,
		},
		{
			"appointment step conflict",
			fmt.Errorf("%w: %w", create_appointment.ErrAppointmentCreate, petcare.ErrConflict),
			http.StatusConflict,
		},
		{
			"appointment step transport failure",
			fmt.Errorf("%w: %w", create_appointment.ErrAppointmentCreate, petcare.ErrTransport),
			http.StatusBadGateway,
		},
		{"internal error", create_appointment.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, CreateAppointmentRequest{
				ServiceID: "service-1",
				Notes:     "n",
				StartTime: "2025-07-01T09:30:00Z",
			})
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandleBackendBadRequestKeepsMessage(t *testing.T) {
	useCase := &fakeUseCase{
		err: fmt.Errorf("%w: %w",
			create_appointment.ErrAppointmentCreate,
			&petcare.BadRequestError{Message: "start_time is in the past"}),
	}

	rec := doRequest(t, useCase, CreateAppointmentRequest{
		ServiceID: "service-1",
		Notes:     "n",
		StartTime: "2025-07-01T09:30:00Z",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "start_time is in the past", resp.Message)
}
