package book_room

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petmarket/PSM-BookingGateway/internal/domain"
	"github.com/petmarket/PSM-BookingGateway/internal/integrations/petcare"
	"github.com/petmarket/PSM-BookingGateway/pkg/ptr"
)

type testLogger struct{}

func (testLogger) Info(format string, v ...interface{})  {}
func (testLogger) Warn(format string, v ...interface{})  {}
func (testLogger) Error(format string, v ...interface{}) {}

type fakePetCareClient struct {
	room    *domain.RoomDetail
	roomErr error

	createErr    error
	bookingID    string
	bookingCalls []*domain.RoomBooking
}

func (f *fakePetCareClient) GetRoomDetail(ctx context.Context, id string) (*domain.RoomDetail, error) {
	if f.roomErr != nil {
		return nil, f.roomErr
	}
	return f.room, nil
}

func (f *fakePetCareClient) CreateRoomBooking(ctx context.Context, booking *domain.RoomBooking) (*domain.RoomBooking, error) {
	f.bookingCalls = append(f.bookingCalls, booking)
	if f.createErr != nil {
		return nil, f.createErr
	}
	echo := *booking
	echo.ID = f.bookingID
	return &echo, nil
}

func availableRoom() *domain.RoomDetail {
	return &domain.RoomDetail{
		ID:          "room-1",
		Name:        "Стандарт для кошек",
		DailyPrice:  ptr.Ptr(1500.0),
		IsAvailable: true,
	}
}

func validRequest() *Request {
	return &Request{
		CustomerID:         "cust-1",
		RoomDetailID:       "room-1",
		CheckInDate:        time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		CheckOutDate:       time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC),
		FeedingSchedule:    "2 раза в день",
		MedicationSchedule: "нет",
	}
}

func TestExecuteSuccessComputesDerivedFields(t *testing.T) {
	client := &fakePetCareClient{room: availableRoom(), bookingID: "rb-1"}
	uc := NewUseCase(client, testLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "rb-1", resp.BookingID)
	assert.Equal(t, 3, resp.TotalNights)
	assert.Equal(t, 4500.0, resp.TotalAmount) // 3 ночи по 1500
	assert.Equal(t, domain.RoomBookingPending, resp.Status)
	assert.Equal(t, "Стандарт для кошек", resp.RoomName)

	require.Len(t, client.bookingCalls, 1)
	sent := client.bookingCalls[0]
	assert.Equal(t, 3, sent.TotalNights)
	assert.Equal(t, 4500.0, sent.TotalAmount)
}

func TestExecuteDiscountAppliedToNightPrice(t *testing.T) {
	room := availableRoom()
	room.DiscountPercent = 20
	client := &fakePetCareClient{room: room, bookingID: "rb-1"}
	uc := NewUseCase(client, testLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 3600.0, resp.TotalAmount) // 3 ночи по 1200 (1500 со скидкой 20%)
}

// Даты в разных часовых поясах нормализуются в UTC до вычитания
func TestExecuteTimezonesDoNotSkewNightCount(t *testing.T) {
	client := &fakePetCareClient{room: availableRoom(), bookingID: "rb-1"}
	uc := NewUseCase(client, testLogger{})

	req := validRequest()
	req.CheckInDate = time.Date(2025, 6, 15, 23, 0, 0, 0, time.FixedZone("UTC+7", 7*3600))
	req.CheckOutDate = time.Date(2025, 6, 18, 2, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalNights)
}

// Совпадающие даты — ошибка поля check_out_date, backend не вызывается
func TestExecuteEqualDatesRejectedBeforeAnyCall(t *testing.T) {
	client := &fakePetCareClient{room: availableRoom()}
	uc := NewUseCase(client, testLogger{})

	req := validRequest()
	req.CheckOutDate = req.CheckInDate

	_, err := uc.Execute(context.Background(), req)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "check_out_date")
	assert.Empty(t, client.bookingCalls)
}

func TestExecuteCheckOutBeforeCheckInRejected(t *testing.T) {
	client := &fakePetCareClient{room: availableRoom()}
	uc := NewUseCase(client, testLogger{})

	req := validRequest()
	req.CheckOutDate = req.CheckInDate.AddDate(0, 0, -2)

	_, err := uc.Execute(context.Background(), req)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "check_out_date")
}

func TestExecuteMissingFieldsCollected(t *testing.T) {
	client := &fakePetCareClient{room: availableRoom()}
	uc := NewUseCase(client, testLogger{})

	_, err := uc.Execute(context.Background(), &Request{})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "customer_id")
	assert.Contains(t, validationErr.Fields, "room_detail_id")
	assert.Contains(t, validationErr.Fields, "check_in_date")
	assert.Contains(t, validationErr.Fields, "check_out_date")
}

func TestExecuteRoomNotFound(t *testing.T) {
	client := &fakePetCareClient{roomErr: petcare.ErrNotFound}
	uc := NewUseCase(client, testLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecuteUnavailableRoomRejected(t *testing.T) {
	room := availableRoom()
	room.IsAvailable = false
	client := &fakePetCareClient{room: room}
	uc := NewUseCase(client, testLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrRoomUnavailable)
	assert.Empty(t, client.bookingCalls)
}

func TestExecuteBackendConflictSurfaced(t *testing.T) {
	client := &fakePetCareClient{room: availableRoom(), createErr: petcare.ErrConflict}
	uc := NewUseCase(client, testLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrBookingCreate)
	assert.ErrorIs(t, err, petcare.ErrConflict)
}
