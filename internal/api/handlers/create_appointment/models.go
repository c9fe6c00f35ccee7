package create_appointment

// CreateAppointmentRequest тело запроса на создание записи на услугу
type CreateAppointmentRequest struct {
	ServiceID string `json:"serviceId"`
	Notes     string `json:"notes"`
	StartTime string `json:"startTime"`
}

// CreateAppointmentResponse ответ на успешное создание записи
type CreateAppointmentResponse struct {
	AppointmentID  string  `json:"appointmentId"`
	CustomerID     string  `json:"customerId"`
	Status         string  `json:"status"`
	StatusLabel    string  `json:"statusLabel"`
	StatusSeverity string  `json:"statusSeverity"`
	Notes          string  `json:"notes"`
	StartTime      string  `json:"startTime"`
	ServiceLinkID  string  `json:"serviceLinkId"`
	ServiceID      string  `json:"serviceId"`
	ServiceName    string  `json:"serviceName"`
	ServicePrice   float64 `json:"servicePrice"`
}
