package get_services

import (
	"context"

	"github.com/petmarket/PSM-BookingGateway/internal/service/catalog/models"
)

// CatalogService контракт сервиса справочных данных
type CatalogService interface {
	ListServices(ctx context.Context, shopID string) ([]*models.ServiceResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
