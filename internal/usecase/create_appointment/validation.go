package create_appointment

import (
	"strings"
	"time"

	"github.com/petmarket/PSM-BookingGateway/internal/domain"
)

// validateRequest валидирует форму записи на услугу
// Возвращает отображение имя-поля -> сообщение; пустое отображение означает валидную форму.
// Функция чистая: единственная зависимость от времени — явный параметр now
func validateRequest(req *Request, now time.Time) map[string]string {
	fields := make(map[string]string)

	if strings.TrimSpace(req.CustomerID) == "" {
		fields["customer_id"] = "идентификатор клиента обязателен"
	}

	if strings.TrimSpace(req.ServiceID) == "" {
		fields["service_id"] = "идентификатор услуги обязателен"
	}

	if strings.TrimSpace(req.Notes) == "" {
		fields["notes"] = "заполните пожелания к записи"
	} else if len([]rune(req.Notes)) > domain.MaxNotesLength {
		fields["notes"] = "пожелания слишком длинные"
	}

	if req.StartTime.IsZero() {
		fields["start_time"] = "укажите время начала"
	} else if !req.StartTime.After(now) {
		fields["start_time"] = "время начала должно быть в будущем"
	}

	if strings.TrimSpace(req.IdempotencyKey) == "" {
		fields["idempotency_key"] = "ключ запроса обязателен"
	}

	return fields
}
