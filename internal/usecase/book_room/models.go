package book_room

import (
	"time"

	"github.com/petmarket/PSM-BookingGateway/internal/domain"
)

// Request модель запроса на бронирование номера пет-отеля
type Request struct {
	CustomerID         string
	RoomDetailID       string
	CheckInDate        time.Time
	CheckOutDate       time.Time
	FeedingSchedule    string
	MedicationSchedule string
}

// Response модель результата бронирования номера
// TotalNights и TotalAmount вычислены гейтвеем до отправки в backend
type Response struct {
	BookingID          string
	CustomerID         string
	RoomDetailID       string
	RoomName           string
	CheckInDate        time.Time
	CheckOutDate       time.Time
	TotalNights        int
	TotalAmount        float64
	FeedingSchedule    string
	MedicationSchedule string
	Status             domain.RoomBookingStatus
}
