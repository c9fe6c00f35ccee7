package book_room

// BookRoomRequest тело запроса на бронирование номера
type BookRoomRequest struct {
	RoomDetailID       string `json:"roomDetailId"`
	CheckInDate        string `json:"checkInDate"`
	CheckOutDate       string `json:"checkOutDate"`
	FeedingSchedule    string `json:"feedingSchedule"`
	MedicationSchedule string `json:"medicationSchedule"`
}

// BookRoomResponse ответ на успешное бронирование номера
type BookRoomResponse struct {
	BookingID          string  `json:"bookingId"`
	CustomerID         string  `json:"customerId"`
	RoomDetailID       string  `json:"roomDetailId"`
	RoomName           string  `json:"roomName"`
	CheckInDate        string  `json:"checkInDate"`
	CheckOutDate       string  `json:"checkOutDate"`
	TotalNights        int     `json:"totalNights"`
	TotalAmount        float64 `json:"totalAmount"`
	FeedingSchedule    string  `json:"feedingSchedule"`
	MedicationSchedule string  `json:"medicationSchedule"`
	Status             string  `json:"status"`
}
