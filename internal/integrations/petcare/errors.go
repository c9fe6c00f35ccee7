package petcare

import (
	"errors"
	"fmt"
)

// Закрытая таксономия ошибок клиента PetCare backend API
// Клиент никогда не ретраит запросы самостоятельно
var (
	// ErrUnauthorized возвращается при HTTP 401: сессия недействительна
	ErrUnauthorized = errors.New("petcare client: unauthorized")

	// ErrBadRequest возвращается при HTTP 400: payload не прошёл серверную валидацию,
	// сообщение сервера сохраняется дословно
	ErrBadRequest = errors.New("petcare client: bad request")

	// ErrNotFound возвращается при HTTP 404: сущность не найдена
	ErrNotFound = errors.New("petcare client: not found")

	// ErrConflict возвращается при HTTP 409: доменный конфликт (например, пересечение броней)
	ErrConflict = errors.New("petcare client: conflict")

	// ErrTransport возвращается, когда HTTP ответ не получен (сетевая ошибка, timeout)
	ErrTransport = errors.New("petcare client: cannot reach server")

	// ErrUnexpected возвращается при любом другом статусе или некорректном теле ответа
	ErrUnexpected = errors.New("petcare client: unexpected response")
)

// BadRequestError сохраняет дословное сообщение серверной валидации
// Сопоставляется через errors.Is(err, ErrBadRequest)
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("%v: %s", ErrBadRequest, e.Message)
}

func (e *BadRequestError) Unwrap() error {
	return ErrBadRequest
}

// BadRequestMessage извлекает дословное сообщение backend из цепочки ошибок
// Возвращает пустую строку, если в цепочке нет ошибки серверной валидации
func BadRequestMessage(err error) string {
	var badReq *BadRequestError
	if errors.As(err, &badReq) {
		return badReq.Message
	}

	return ""
}
