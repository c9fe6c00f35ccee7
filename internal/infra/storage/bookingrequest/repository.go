package bookingrequest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/petmarket/PSM-BookingGateway/internal/domain"
	"github.com/petmarket/PSM-BookingGateway/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникального ограничения
const uniqueViolation = "23505"

// Repository репозиторий реестра заявок на бронирование
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Reserve резервирует идемпотентный ключ заявки до первой записи в backend
// Повторная или конкурентная отправка с тем же ключом упирается в уникальное
// ограничение и возвращает ErrDuplicateKey
func (r *Repository) Reserve(ctx context.Context, key string, customerID string) (*domain.BookingRequest, error) {
	query, args, err := psqlbuilder.Insert("booking_requests").
		Columns("idempotency_key", "customer_id", "status").
		Values(key, customerID, domain.RequestReserved).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Reserve - build insert query: %v", ErrBuildQuery, err)
	}

	request := &domain.BookingRequest{
		Key:        key,
		CustomerID: customerID,
		Status:     domain.RequestReserved,
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&request.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("%w: Reserve - execute insert: %v", ErrExecQuery, err)
	}

	request.CreatedAt = createdAt.Time
	request.UpdatedAt = updatedAt.Time

	return request, nil
}

// Complete привязывает ключ к результату успешно завершённого workflow
func (r *Repository) Complete(ctx context.Context, key string, appointmentID, serviceLinkID string) error {
	query, args, err := psqlbuilder.Update("booking_requests").
		Set("status", domain.RequestCompleted).
		Set("appointment_id", appointmentID).
		Set("service_link_id", serviceLinkID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"idempotency_key": key}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Complete - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Complete - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Complete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRequestNotFound
	}

	return nil
}

// Release освобождает ключ после неуспешного workflow
// Позволяет пользователю безопасно отправить форму повторно
func (r *Repository) Release(ctx context.Context, key string) error {
	query, args, err := psqlbuilder.Delete("booking_requests").
		Where(squirrel.Eq{"idempotency_key": key}).
		Where(squirrel.Eq{"status": domain.RequestReserved}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Release - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Release - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByKey получает заявку по идемпотентному ключу
func (r *Repository) GetByKey(ctx context.Context, key string) (*domain.BookingRequest, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"idempotency_key",
		"customer_id",
		"status",
		"appointment_id",
		"service_link_id",
		"created_at",
		"updated_at",
	).
		From("booking_requests").
		Where(squirrel.Eq{"idempotency_key": key}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - build select query: %v", ErrBuildQuery, err)
	}

	var request domain.BookingRequest
	var createdAt, updatedAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&request.ID,
		&request.Key,
		&request.CustomerID,
		&request.Status,
		&request.AppointmentID,
		&request.ServiceLinkID,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - scan request: %v", ErrScanRow, err)
	}

	request.CreatedAt = createdAt.Time
	request.UpdatedAt = updatedAt.Time

	return &request, nil
}
