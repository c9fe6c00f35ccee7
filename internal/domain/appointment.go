package domain

import "time"

// AppointmentStatus represents the status of a service appointment
type AppointmentStatus string

const (
	StatusNoProgress AppointmentStatus = "NoProgress"
	StatusInProgress AppointmentStatus = "InProgress"
	StatusFinish     AppointmentStatus = "Finish"
	StatusCancel     AppointmentStatus = "Cancel"
)

// Appointment represents a service appointment in the marketplace
// Создаётся клиентским флоу бронирования, статус меняется персоналом магазина
type Appointment struct {
	ID         string
	CustomerID string
	Status     AppointmentStatus
	Notes      string
	StartTime  time.Time
	EndTime    *time.Time
}

// ServiceAppointmentLink represents the join entity between a service and an appointment
// RatingID всегда nil на момент создания, заполняется после оценки клиентом
type ServiceAppointmentLink struct {
	ID            string
	ServiceID     string
	AppointmentID string
	RatingID      *string
}

// IsValid returns true if the status is one of the known appointment statuses
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusNoProgress, StatusInProgress, StatusFinish, StatusCancel:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if no further status transitions are allowed
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusFinish || s == StatusCancel
}

// CanTransitionTo returns true if the transition from s to next is allowed
// Разрешённые переходы:
//   - NoProgress -> InProgress | Cancel
//   - InProgress -> Finish | Cancel
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	switch s {
	case StatusNoProgress:
		return next == StatusInProgress || next == StatusCancel
	case StatusInProgress:
		return next == StatusFinish || next == StatusCancel
	default:
		return false
	}
}

// IsActive returns true if the appointment is not finished or cancelled
func (a *Appointment) IsActive() bool {
	return !a.Status.IsTerminal()
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusNoProgress || a.Status == StatusInProgress
}
