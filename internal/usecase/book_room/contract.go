package book_room

import (
	"context"

	"github.com/petmarket/PSM-BookingGateway/internal/domain"
)

// PetCareClient интерфейс клиента PetCare backend API
type PetCareClient interface {
	GetRoomDetail(ctx context.Context, id string) (*domain.RoomDetail, error)
	CreateRoomBooking(ctx context.Context, booking *domain.RoomBooking) (*domain.RoomBooking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
