package catalog

import (
	"context"

	"github.com/petmarket/PSM-BookingGateway/internal/domain"
)

// PetCareClient интерфейс клиента PetCare backend API
type PetCareClient interface {
	GetShop(ctx context.Context, id string) (*domain.Shop, error)
	GetServicesByShop(ctx context.Context, shopID string) ([]*domain.Service, error)
	GetServiceTypes(ctx context.Context) ([]*domain.ServiceType, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
