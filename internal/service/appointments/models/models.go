package models

import (
	"time"

	"github.com/petmarket/PSM-BookingGateway/internal/domain"
)

// AppointmentResponse модель записи для выдачи наружу
// Включает отображаемую метку статуса, чтобы дашборды не дублировали маппинг
type AppointmentResponse struct {
	ID             string
	CustomerID     string
	Status         domain.AppointmentStatus
	StatusLabel    string
	StatusSeverity domain.BadgeSeverity
	Notes          string
	StartTime      time.Time
	EndTime        *time.Time
}

// UpdateStatusRequest модель запроса на переход статуса записи
type UpdateStatusRequest struct {
	Status string
}

// FromDomainAppointment конвертирует доменную запись в response-модель
func FromDomainAppointment(appointment *domain.Appointment) *AppointmentResponse {
	badge := domain.StatusBadge(appointment.Status)

	return &AppointmentResponse{
		ID:             appointment.ID,
		CustomerID:     appointment.CustomerID,
		Status:         appointment.Status,
		StatusLabel:    badge.Label,
		StatusSeverity: badge.Severity,
		Notes:          appointment.Notes,
		StartTime:      appointment.StartTime,
		EndTime:        appointment.EndTime,
	}
}
