package petcare

import (
	"time"

	"github.com/petmarket/PSM-BookingGateway/internal/domain"
)

// Wire-модели PetCare backend API (snake_case, даты — UTC ISO-8601 с миллисекундами).
// Формы ответов валидируются один раз на этой границе и конвертируются
// в типизированные доменные модели.

// appointmentPayload wire-модель записи на услугу
type appointmentPayload struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customer_id"`
	Status     string  `json:"status"`
	Notes      string  `json:"notes"`
	StartTime  string  `json:"start_time"`
	EndTime    *string `json:"end_time,omitempty"`
}

// serviceLinkPayload wire-модель связи услуга-запись
type serviceLinkPayload struct {
	ID            string  `json:"id"`
	ServiceID     string  `json:"service_id"`
	AppointmentID string  `json:"appointment_id"`
	RatingID      *string `json:"rating_id,omitempty"`
}

// servicePayload wire-модель услуги
type servicePayload struct {
	ID              string   `json:"id"`
	ShopID          string   `json:"shop_id"`
	ServiceTypeID   string   `json:"service_type_id"`
	Name            string   `json:"name"`
	Price           *float64 `json:"price"`
	DiscountPercent float64  `json:"discount_percent"`
	IsActive        bool     `json:"is_active"`
	DurationMinutes int      `json:"duration_minutes"`
	LimitPerHour    int      `json:"limit_per_hour"`
}

// serviceTypePayload wire-модель категории услуг
type serviceTypePayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// shopPayload wire-модель магазина
type shopPayload struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	IsActive    bool   `json:"is_active"`
}

// roomDetailPayload wire-модель номера пет-отеля
type roomDetailPayload struct {
	ID              string   `json:"id"`
	ShopID          string   `json:"shop_id"`
	Name            string   `json:"name"`
	DailyPrice      *float64 `json:"daily_price"`
	DiscountPercent float64  `json:"discount_percent"`
	IsAvailable     bool     `json:"is_available"`
}

// roomBookingPayload wire-модель бронирования номера
type roomBookingPayload struct {
	ID                 string  `json:"id,omitempty"`
	RoomDetailID       string  `json:"room_detail_id"`
	CustomerID         string  `json:"customer_id"`
	CheckInDate        string  `json:"check_in_date"`
	CheckOutDate       string  `json:"check_out_date"`
	FeedingSchedule    string  `json:"feeding_schedule"`
	MedicationSchedule string  `json:"medication_schedule"`
	TotalNight         int     `json:"total_night"`
	TotalAmount        float64 `json:"total_amount"`
	Status             string  `json:"status"`
}

// errorPayload wire-модель ошибки от backend
type errorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// formatAPITime сериализует метку времени в формат backend API
// Всегда приводит к UTC перед форматированием
func formatAPITime(t time.Time) string {
	return t.UTC().Format(domain.APITimeFormat)
}

// parseAPITime парсит метку времени из ответа backend
func parseAPITime(s string) (time.Time, error) {
	t, err := time.Parse(domain.APITimeFormat, s)
	if err != nil {
		// Backend исторически отдаёт и метки без миллисекунд
		return time.Parse(time.RFC3339, s)
	}
	return t, nil
}

func (p *appointmentPayload) toDomain() (*domain.Appointment, error) {
	startTime, err := parseAPITime(p.StartTime)
	if err != nil {
		return nil, err
	}

	appointment := &domain.Appointment{
		ID:         p.ID,
		CustomerID: p.CustomerID,
		Status:     domain.AppointmentStatus(p.Status),
		Notes:      p.Notes,
		StartTime:  startTime,
	}

	if p.EndTime != nil {
		endTime, err := parseAPITime(*p.EndTime)
		if err != nil {
			return nil, err
		}
		appointment.EndTime = &endTime
	}

	return appointment, nil
}

func (p *serviceLinkPayload) toDomain() *domain.ServiceAppointmentLink {
	return &domain.ServiceAppointmentLink{
		ID:            p.ID,
		ServiceID:     p.ServiceID,
		AppointmentID: p.AppointmentID,
		RatingID:      p.RatingID,
	}
}

func (p *servicePayload) toDomain() *domain.Service {
	return &domain.Service{
		ID:              p.ID,
		ShopID:          p.ShopID,
		ServiceTypeID:   p.ServiceTypeID,
		Name:            p.Name,
		Price:           p.Price,
		DiscountPercent: p.DiscountPercent,
		IsActive:        p.IsActive,
		DurationMinutes: p.DurationMinutes,
		LimitPerHour:    p.LimitPerHour,
	}
}

func (p *shopPayload) toDomain() *domain.Shop {
	return &domain.Shop{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Address:     p.Address,
		Phone:       p.Phone,
		IsActive:    p.IsActive,
	}
}

func (p *roomDetailPayload) toDomain() *domain.RoomDetail {
	return &domain.RoomDetail{
		ID:              p.ID,
		ShopID:          p.ShopID,
		Name:            p.Name,
		DailyPrice:      p.DailyPrice,
		DiscountPercent: p.DiscountPercent,
		IsAvailable:     p.IsAvailable,
	}
}

func (p *roomBookingPayload) toDomain() (*domain.RoomBooking, error) {
	checkIn, err := parseAPITime(p.CheckInDate)
	if err != nil {
		return nil, err
	}
	checkOut, err := parseAPITime(p.CheckOutDate)
	if err != nil {
		return nil, err
	}

	return &domain.RoomBooking{
		ID:                 p.ID,
		RoomDetailID:       p.RoomDetailID,
		CustomerID:         p.CustomerID,
		CheckInDate:        checkIn,
		CheckOutDate:       checkOut,
		TotalNights:        p.TotalNight,
		TotalAmount:        p.TotalAmount,
		FeedingSchedule:    p.FeedingSchedule,
		MedicationSchedule: p.MedicationSchedule,
		Status:             domain.RoomBookingStatus(p.Status),
	}, nil
}
