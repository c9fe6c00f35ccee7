package appointments

import (
	"context"

	"github.com/petmarket/PSM-BookingGateway/internal/domain"
)

// PetCareClient интерфейс клиента PetCare backend API
type PetCareClient interface {
	GetAppointment(ctx context.Context, id string) (*domain.Appointment, error)
	ReplaceAppointment(ctx context.Context, appointment *domain.Appointment) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
