package domain

import "time"

// RoomBookingStatus represents the status of a pet-hotel room booking
type RoomBookingStatus string

const (
	RoomBookingPending   RoomBookingStatus = "Pending"
	RoomBookingConfirmed RoomBookingStatus = "Confirmed"
	RoomBookingCancelled RoomBookingStatus = "Cancelled"
)

// RoomBooking represents a pet-hotel room booking
// TotalNights и TotalAmount — производные поля, вычисляются до отправки в backend
type RoomBooking struct {
	ID                 string
	RoomDetailID       string
	CustomerID         string
	CheckInDate        time.Time
	CheckOutDate       time.Time
	TotalNights        int
	TotalAmount        float64
	FeedingSchedule    string
	MedicationSchedule string
	Status             RoomBookingStatus
}

// NightCount возвращает количество ночей между датами заезда и выезда
//
// Обе даты приводятся к UTC и обнуляются до начала суток перед вычитанием,
// чтобы разница часовых поясов не давала ошибку на одну ночь.
// Эта нормализация обязательна везде, где из двух дат считается число ночей.
func NightCount(checkIn, checkOut time.Time) int {
	in := truncateToUTCDay(checkIn)
	out := truncateToUTCDay(checkOut)
	return int(out.Sub(in).Hours() / 24)
}

func truncateToUTCDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
