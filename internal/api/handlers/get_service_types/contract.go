package get_service_types

import (
	"context"

	"github.com/petmarket/PSM-BookingGateway/internal/service/catalog/models"
)

// CatalogService контракт сервиса справочных данных
type CatalogService interface {
	ListServiceTypes(ctx context.Context) ([]*models.ServiceTypeResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
