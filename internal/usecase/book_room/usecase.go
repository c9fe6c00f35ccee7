package book_room

import (
	"context"
	"errors"
	"fmt"

	"github.com/petmarket/PSM-BookingGateway/internal/domain"
	"github.com/petmarket/PSM-BookingGateway/internal/integrations/petcare"
)

// UseCase use case бронирования номера пет-отеля
//
// Производные поля (число ночей, итоговая сумма) вычисляются до отправки;
// запись в backend — один сетевой вызов, частичных результатов нет
type UseCase struct {
	petcareClient PetCareClient
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(petcareClient PetCareClient, logger Logger) *UseCase {
	return &UseCase{
		petcareClient: petcareClient,
		logger:        logger,
	}
}

// Execute выполняет workflow бронирования номера
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookRoom: customer=%s, room=%s, check_in=%s, check_out=%s",
		req.CustomerID, req.RoomDetailID,
		req.CheckInDate.Format(domain.DateFormat), req.CheckOutDate.Format(domain.DateFormat))

	// 1. Валидация формы
	if fields := validateRequest(req); len(fields) > 0 {
		uc.logger.Warn("BookRoom: validation failed for customer=%s: %d field error(s)",
			req.CustomerID, len(fields))
		return nil, &ValidationError{Fields: fields}
	}

	// 2. Получаем номер и проверяем его доступность
	room, err := uc.petcareClient.GetRoomDetail(ctx, req.RoomDetailID)
	if err != nil {
		if errors.Is(err, petcare.ErrNotFound) {
			uc.logger.Warn("BookRoom: room id=%s not found", req.RoomDetailID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("BookRoom: failed to get room id=%s: %v", req.RoomDetailID, err)
		return nil, fmt.Errorf("%w: failed to get room: %w", ErrInternal, err)
	}

	if !room.IsAvailable {
		uc.logger.Warn("BookRoom: room id=%s is not available", req.RoomDetailID)
		return nil, ErrRoomUnavailable
	}

	// 3. Вычисляем производные поля до отправки
	totalNights := domain.NightCount(req.CheckInDate, req.CheckOutDate)
	nightPrice := domain.FinalPrice(room.DailyPrice, room.DiscountPercent)
	totalAmount := float64(totalNights) * nightPrice

	uc.logger.Info("BookRoom: computed %d night(s), amount=%.2f for room id=%s",
		totalNights, totalAmount, req.RoomDetailID)

	// 4. Создаем бронирование одним вызовом backend
	booking := &domain.RoomBooking{
		RoomDetailID:       req.RoomDetailID,
		CustomerID:         req.CustomerID,
		CheckInDate:        req.CheckInDate,
		CheckOutDate:       req.CheckOutDate,
		TotalNights:        totalNights,
		TotalAmount:        totalAmount,
		FeedingSchedule:    req.FeedingSchedule,
		MedicationSchedule: req.MedicationSchedule,
		Status:             domain.RoomBookingPending,
	}

	created, err := uc.petcareClient.CreateRoomBooking(ctx, booking)
	if err != nil {
		uc.logger.Error("BookRoom: failed to create booking for customer=%s, room=%s: %v",
			req.CustomerID, req.RoomDetailID, err)
		return nil, fmt.Errorf("%w: %w", ErrBookingCreate, err)
	}

	uc.logger.Info("BookRoom: successfully created booking id=%s, customer=%s", created.ID, req.CustomerID)

	return &Response{
		BookingID:          created.ID,
		CustomerID:         created.CustomerID,
		RoomDetailID:       created.RoomDetailID,
		RoomName:           room.Name,
		CheckInDate:        created.CheckInDate,
		CheckOutDate:       created.CheckOutDate,
		TotalNights:        created.TotalNights,
		TotalAmount:        created.TotalAmount,
		FeedingSchedule:    created.FeedingSchedule,
		MedicationSchedule: created.MedicationSchedule,
		Status:             created.Status,
	}, nil
}
