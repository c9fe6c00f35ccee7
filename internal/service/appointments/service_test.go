package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petmarket/PSM-BookingGateway/internal/domain"
	"github.com/petmarket/PSM-BookingGateway/internal/integrations/petcare"
	"github.com/petmarket/PSM-BookingGateway/internal/service/appointments/models"
)

type testLogger struct{}

func (testLogger) Info(format string, v ...interface{})  {}
func (testLogger) Warn(format string, v ...interface{})  {}
func (testLogger) Error(format string, v ...interface{}) {}

type fakePetCareClient struct {
	appointment *domain.Appointment
	getErr      error

	replaceErr   error
	replaceCalls []*domain.Appointment
}

func (f *fakePetCareClient) GetAppointment(ctx context.Context, id string) (*domain.Appointment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	clone := *f.appointment
	return &clone, nil
}

func (f *fakePetCareClient) ReplaceAppointment(ctx context.Context, appointment *domain.Appointment) error {
	f.replaceCalls = append(f.replaceCalls, appointment)
	return f.replaceErr
}

func pendingAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:         "appt-1",
		CustomerID: "cust-1",
		Status:     domain.StatusNoProgress,
		Notes:      "стрижка",
		StartTime:  time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestGetByIDIncludesStatusBadge(t *testing.T) {
	svc := NewService(&fakePetCareClient{appointment: pendingAppointment()}, testLogger{})

	resp, err := svc.GetByID(context.Background(), "appt-1")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusNoProgress, resp.Status)
	assert.Equal(t, domain.SeverityNeutral, resp.StatusSeverity)
	assert.NotEmpty(t, resp.StatusLabel)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewService(&fakePetCareClient{getErr: petcare.ErrNotFound}, testLogger{})

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateStatusValidTransitionReplacesAppointment(t *testing.T) {
	client := &fakePetCareClient{appointment: pendingAppointment()}
	svc := NewService(client, testLogger{})

	resp, err := svc.UpdateStatus(context.Background(), "appt-1",
		&models.UpdateStatusRequest{Status: "InProgress"})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusInProgress, resp.Status)

	// Переход выполняется полной заменой записи
	require.Len(t, client.replaceCalls, 1)
	sent := client.replaceCalls[0]
	assert.Equal(t, domain.StatusInProgress, sent.Status)
	assert.Equal(t, "стрижка", sent.Notes, "full replace must keep remaining fields")
}

func TestUpdateStatusInvalidTransitionSkipsWrite(t *testing.T) {
	client := &fakePetCareClient{appointment: pendingAppointment()}
	svc := NewService(client, testLogger{})

	// NoProgress -> Finish запрещён, запись должна сначала попасть в работу
	_, err := svc.UpdateStatus(context.Background(), "appt-1",
		&models.UpdateStatusRequest{Status: "Finish"})

	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, client.replaceCalls)
}

func TestUpdateStatusUnknownStatusRejected(t *testing.T) {
	client := &fakePetCareClient{appointment: pendingAppointment()}
	svc := NewService(client, testLogger{})

	_, err := svc.UpdateStatus(context.Background(), "appt-1",
		&models.UpdateStatusRequest{Status: "Done"})

	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Empty(t, client.replaceCalls)
}

func TestUpdateStatusTerminalStatusFrozen(t *testing.T) {
	appointment := pendingAppointment()
	appointment.Status = domain.StatusCancel
	client := &fakePetCareClient{appointment: appointment}
	svc := NewService(client, testLogger{})

	_, err := svc.UpdateStatus(context.Background(), "appt-1",
		&models.UpdateStatusRequest{Status: "InProgress"})

	assert.ErrorIs(t, err, ErrInvalidTransition)
}
