package get_appointment

import (
	"time"

	"github.com/petmarket/PSM-BookingGateway/internal/service/appointments/models"
)

// AppointmentResponse модель записи в HTTP ответе
type AppointmentResponse struct {
	ID             string  `json:"id"`
	CustomerID     string  `json:"customerId"`
	Status         string  `json:"status"`
	StatusLabel    string  `json:"statusLabel"`
	StatusSeverity string  `json:"statusSeverity"`
	Notes          string  `json:"notes"`
	StartTime      string  `json:"startTime"`
	EndTime        *string `json:"endTime,omitempty"`
}

func fromServiceModel(appointment *models.AppointmentResponse) AppointmentResponse {
	resp := AppointmentResponse{
		ID:             appointment.ID,
		CustomerID:     appointment.CustomerID,
		Status:         string(appointment.Status),
		StatusLabel:    appointment.StatusLabel,
		StatusSeverity: string(appointment.StatusSeverity),
		Notes:          appointment.Notes,
		StartTime:      appointment.StartTime.UTC().Format(time.RFC3339),
	}

	if appointment.EndTime != nil {
		endTime := appointment.EndTime.UTC().Format(time.RFC3339)
		resp.EndTime = &endTime
	}

	return resp
}
