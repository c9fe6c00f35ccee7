package book_room

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных формы
	ErrInvalidInput = errors.New("book_room: invalid input data")

	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("book_room: room not found")

	// ErrRoomUnavailable возвращается при попытке забронировать недоступный номер
	ErrRoomUnavailable = errors.New("book_room: room is not available")

	// ErrBookingCreate возвращается, когда не удалось создать бронирование
	ErrBookingCreate = errors.New("book_room: failed to create room booking")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_room: internal error")
)

// ValidationError ошибка валидации формы: отображение имя-поля -> сообщение
type ValidationError struct {
	Fields map[string]string
}

// Error возвращает детерминированное текстовое представление ошибок полей
func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}

	return fmt.Sprintf("%v: %s", ErrInvalidInput, strings.Join(parts, "; "))
}

// Unwrap позволяет сопоставлять ошибку через errors.Is(err, ErrInvalidInput)
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
