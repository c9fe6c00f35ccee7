package domain

import "time"

// BookingRequestStatus статус заявки на бронирование в реестре дедупликации
type BookingRequestStatus string

const (
	// RequestReserved ключ зарезервирован, workflow выполняется
	RequestReserved BookingRequestStatus = "reserved"
	// RequestCompleted workflow завершился успешно, ключ привязан к результату
	RequestCompleted BookingRequestStatus = "completed"
)

// BookingRequest запись реестра заявок на бронирование
// Служит гейтвей-стороной защитой от двойной отправки формы: ключ резервируется
// до первой записи в backend и либо привязывается к результату, либо освобождается
type BookingRequest struct {
	ID            int64
	Key           string
	CustomerID    string
	Status        BookingRequestStatus
	AppointmentID *string
	ServiceLinkID *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
