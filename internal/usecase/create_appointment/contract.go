package create_appointment

import (
	"context"
	"time"

	"github.com/petmarket/PSM-BookingGateway/internal/domain"
)

// PetCareClient интерфейс клиента PetCare backend API
type PetCareClient interface {
	GetService(ctx context.Context, id string) (*domain.Service, error)
	CreateAppointment(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	CreateServiceLink(ctx context.Context, link *domain.ServiceAppointmentLink) (*domain.ServiceAppointmentLink, error)
}

// RequestRegistry интерфейс реестра заявок для дедупликации двойной отправки
type RequestRegistry interface {
	Reserve(ctx context.Context, key string, customerID string) (*domain.BookingRequest, error)
	Complete(ctx context.Context, key string, appointmentID, serviceLinkID string) error
	Release(ctx context.Context, key string) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
