package get_shop

import (
	"context"

	"github.com/petmarket/PSM-BookingGateway/internal/service/catalog/models"
)

// CatalogService контракт сервиса справочных данных
type CatalogService interface {
	GetShop(ctx context.Context, id string) (*models.ShopResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
