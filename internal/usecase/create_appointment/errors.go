package create_appointment

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных формы
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrServiceInactive возвращается при попытке записи на неактивную услугу
	ErrServiceInactive = errors.New("create_appointment: service is not active")

	// ErrDuplicateSubmission возвращается при повторной отправке формы с тем же ключом
	ErrDuplicateSubmission = errors.New("create_appointment: duplicate submission")

	// ErrAppointmentCreate возвращается, когда не удалось создать запись
	// Связь услуга-запись при этом не создаётся
	ErrAppointmentCreate = errors.New("create_appointment: failed to create appointment")

	// ErrServiceLinkCreate возвращается, когда запись создана, а связь услуга-запись — нет
	// Частичный результат: запись существует в backend без привязанной услуги,
	// автоматическая компенсация не выполняется
	ErrServiceLinkCreate = errors.New("create_appointment: appointment created but service link failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)

// ValidationError ошибка валидации формы: отображение имя-поля -> сообщение
// Пустое отображение означает валидную форму и никогда не попадает в ошибку
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
