package book_room

import (
	"context"

	"github.com/petmarket/PSM-BookingGateway/internal/usecase/book_room"
)

// BookRoomUseCase контракт use case бронирования номера пет-отеля
type BookRoomUseCase interface {
	Execute(ctx context.Context, req *book_room.Request) (*book_room.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
