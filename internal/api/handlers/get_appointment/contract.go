package get_appointment

import (
	"context"

	"github.com/petmarket/PSM-BookingGateway/internal/service/appointments/models"
)

// AppointmentsService контракт сервиса записей
type AppointmentsService interface {
	GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
