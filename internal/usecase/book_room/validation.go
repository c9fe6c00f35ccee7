package book_room

import (
	"strings"

	"github.com/petmarket/PSM-BookingGateway/internal/domain"
)

// validateRequest валидирует форму бронирования номера
// Возвращает отображение имя-поля -> сообщение; пустое отображение означает валидную форму
func validateRequest(req *Request) map[string]string {
	fields := make(map[string]string)

	if strings.TrimSpace(req.CustomerID) == "" {
		fields["customer_id"] = "идентификатор клиента обязателен"
	}

	if strings.TrimSpace(req.RoomDetailID) == "" {
		fields["room_detail_id"] = "выберите номер"
	}

	if req.CheckInDate.IsZero() {
		fields["check_in_date"] = "укажите дату заезда"
	}

	if req.CheckOutDate.IsZero() {
		fields["check_out_date"] = "укажите дату выезда"
	}

	// Совпадающие даты — это ошибка, а не бронирование на ноль ночей
	if !req.CheckInDate.IsZero() && !req.CheckOutDate.IsZero() {
		if domain.NightCount(req.CheckInDate, req.CheckOutDate) < domain.MinTotalNights {
			fields["check_out_date"] = "дата выезда должна быть позже даты заезда"
		}
	}

	if len([]rune(req.FeedingSchedule)) > domain.MaxScheduleLength {
		fields["feeding_schedule"] = "расписание кормления слишком длинное"
	}

	if len([]rune(req.MedicationSchedule)) > domain.MaxScheduleLength {
		fields["medication_schedule"] = "расписание приёма лекарств слишком длинное"
	}

	return fields
}
