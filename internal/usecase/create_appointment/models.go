package create_appointment

import (
	"time"

	"github.com/petmarket/PSM-BookingGateway/internal/domain"
)

// Request модель запроса на создание записи на услугу
type Request struct {
	CustomerID     string    // ID клиента
	ServiceID      string    // ID услуги
	Notes          string    // Пожелания клиента (обязательное поле)
	StartTime      time.Time // Желаемое время начала
	IdempotencyKey string    // Клиентский ключ дедупликации отправки формы
}

// Response модель результата успешно завершённого workflow бронирования
// Поля записи — серверные (эхо backend), не клиентские значения
type Response struct {
	AppointmentID string
	CustomerID    string
	Status        domain.AppointmentStatus
	StatusBadge   domain.Badge
	Notes         string
	StartTime     time.Time

	ServiceLinkID string

	// Справочные данные для отображения
	ServiceID    string
	ServiceName  string
	ServicePrice float64 // Итоговая цена с учётом скидки
}
