package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/petmarket/PSM-BookingGateway/internal/domain"
	"github.com/petmarket/PSM-BookingGateway/internal/infra/storage/bookingrequest"
	"github.com/petmarket/PSM-BookingGateway/internal/integrations/petcare"
)

// UseCase use case создания записи на услугу
//
// Workflow строго последовательный: валидация формы -> проверка услуги ->
// резервирование ключа -> создание записи -> создание связи услуга-запись.
// Каждый следующий сетевой вызов выполняется только после ответа предыдущего.
// Ретраев и компенсаций нет: неуспех связи услуга-запись оставляет созданную
// запись в backend и возвращается отдельной ошибкой
type UseCase struct {
	petcareClient PetCareClient
	registry      RequestRegistry
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	petcareClient PetCareClient,
	registry RequestRegistry,
	logger Logger,
) *UseCase {
	return &UseCase{
		petcareClient: petcareClient,
		registry:      registry,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет workflow создания записи на услугу
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: customer=%s, service=%s, start_time=%s",
		req.CustomerID, req.ServiceID, req.StartTime.Format(domain.APITimeFormat))

	// 1. Валидация формы
	now := uc.timeProvider.Now()
	if fields := validateRequest(req, now); len(fields) > 0 {
		uc.logger.Warn("CreateAppointment: validation failed for customer=%s: %d field error(s)",
			req.CustomerID, len(fields))
		return nil, &ValidationError{Fields: fields}
	}

	// 2. Получаем услугу и проверяем её активность
	service, err := uc.petcareClient.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, petcare.ErrNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %w", ErrInternal, err)
	}

	if !service.IsActive {
		uc.logger.Warn("CreateAppointment: service id=%s is not active", req.ServiceID)
		return nil, ErrServiceInactive
	}

	// 3. Резервируем ключ заявки до первой записи в backend
	// Двойной клик по кнопке отправки упирается сюда, а не в backend
	if _, err := uc.registry.Reserve(ctx, req.IdempotencyKey, req.CustomerID); err != nil {
		if errors.Is(err, bookingrequest.ErrDuplicateKey) {
			uc.logger.Warn("CreateAppointment: duplicate submission, key=%s, customer=%s",
				req.IdempotencyKey, req.CustomerID)
			return nil, ErrDuplicateSubmission
		}
		uc.logger.Error("CreateAppointment: failed to reserve request key=%s: %v", req.IdempotencyKey, err)
		return nil, fmt.Errorf("%w: failed to reserve request: %w", ErrInternal, err)
	}

	// 4. Создаем запись с клиентским UUID и фиксированным статусом NoProgress
	appointment := &domain.Appointment{
		ID:         uuid.NewString(),
		CustomerID: req.CustomerID,
		Status:     domain.StatusNoProgress,
		Notes:      req.Notes,
		StartTime:  req.StartTime,
	}

	created, err := uc.petcareClient.CreateAppointment(ctx, appointment)
	if err != nil {
		// Связь услуга-запись не создаётся, ключ освобождается для повторной отправки
		uc.releaseKey(ctx, req.IdempotencyKey)
		uc.logger.Error("CreateAppointment: failed to create appointment for customer=%s: %v",
			req.CustomerID, err)
		return nil, fmt.Errorf("%w: %w", ErrAppointmentCreate, err)
	}

	// 5. Создаем связь услуга-запись
	// appointment_id — идентификатор из ответа сервера, не клиентский UUID
	link := &domain.ServiceAppointmentLink{
		ID:            uuid.NewString(),
		ServiceID:     req.ServiceID,
		AppointmentID: created.ID,
	}

	createdLink, err := uc.petcareClient.CreateServiceLink(ctx, link)
	if err != nil {
		// Частичный результат: запись уже существует, откат не выполняется.
		// Идентификатор осиротевшей записи логируется для ручной сверки
		uc.releaseKey(ctx, req.IdempotencyKey)
		uc.logger.Error("CreateAppointment: appointment id=%s created but service link failed: %v",
			created.ID, err)
		return nil, fmt.Errorf("%w: appointment_id=%s: %w", ErrServiceLinkCreate, created.ID, err)
	}

	// 6. Привязываем ключ к результату
	// Неуспех здесь не отменяет бронирование: ключ остаётся занятым, повтор будет отклонён
	if err := uc.registry.Complete(ctx, req.IdempotencyKey, created.ID, createdLink.ID); err != nil {
		uc.logger.Warn("CreateAppointment: failed to complete request key=%s: %v", req.IdempotencyKey, err)
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s, link id=%s, customer=%s",
		created.ID, createdLink.ID, req.CustomerID)

	// 7. Собираем результат: серверные поля записи + вычисленная итоговая цена
	return &Response{
		AppointmentID: created.ID,
		CustomerID:    created.CustomerID,
		Status:        created.Status,
		StatusBadge:   domain.StatusBadge(created.Status),
		Notes:         created.Notes,
		StartTime:     created.StartTime,
		ServiceLinkID: createdLink.ID,
		ServiceID:     service.ID,
		ServiceName:   service.Name,
		ServicePrice:  domain.FinalPrice(service.Price, service.DiscountPercent),
	}, nil
}

// releaseKey освобождает ключ заявки после неуспешного workflow
func (uc *UseCase) releaseKey(ctx context.Context, key string) {
	if err := uc.registry.Release(ctx, key); err != nil {
		uc.logger.Error("CreateAppointment: failed to release request key=%s: %v", key, err)
	}
}
