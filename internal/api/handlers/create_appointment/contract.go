package create_appointment

import (
	"context"

	"github.com/petmarket/PSM-BookingGateway/internal/usecase/create_appointment"
)

// CreateAppointmentUseCase контракт use case создания записи на услугу
type CreateAppointmentUseCase interface {
	Execute(ctx context.Context, req *create_appointment.Request) (*create_appointment.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
