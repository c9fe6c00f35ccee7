package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/petmarket/PSM-BookingGateway/internal/domain"
	"github.com/petmarket/PSM-BookingGateway/internal/integrations/petcare"
	"github.com/petmarket/PSM-BookingGateway/internal/service/appointments/models"
)

// Service сервис для работы с записями со стороны дашбордов магазина
type Service struct {
	petcareClient PetCareClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(petcareClient PetCareClient, logger Logger) *Service {
	return &Service{
		petcareClient: petcareClient,
		logger:        logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s", id)

	appointment, err := s.petcareClient.GetAppointment(ctx, id)
	if err != nil {
		if errors.Is(err, petcare.ErrNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: backend error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - backend error: %w", ErrInternal, err)
	}

	return models.FromDomainAppointment(appointment), nil
}

// UpdateStatus выполняет переход статуса записи
// Недопустимый переход отклоняется без сетевой записи; сам переход —
// полная замена записи через PUT, как того требует backend API
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: appointment id=%s -> status=%s", id, req.Status)

	newStatus := domain.AppointmentStatus(req.Status)
	if !newStatus.IsValid() {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%s", req.Status, id)
		return nil, ErrInvalidStatus
	}

	appointment, err := s.petcareClient.GetAppointment(ctx, id)
	if err != nil {
		if errors.Is(err, petcare.ErrNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: backend error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - backend error: %w", ErrInternal, err)
	}

	if !appointment.Status.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for appointment id=%s",
			appointment.Status, newStatus, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appointment.Status, newStatus)
	}

	appointment.Status = newStatus

	if err := s.petcareClient.ReplaceAppointment(ctx, appointment); err != nil {
		if errors.Is(err, petcare.ErrNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%s disappeared during update", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: failed to replace appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - backend error: %w", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: appointment id=%s moved to status=%s", id, newStatus)
	return models.FromDomainAppointment(appointment), nil
}
