package bookingrequest

import "errors"

var (
	// ErrDuplicateKey возвращается при попытке зарезервировать уже занятый ключ
	ErrDuplicateKey = errors.New("bookingrequest.repository: idempotency key already reserved")

	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = errors.New("bookingrequest.repository: request not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("bookingrequest.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("bookingrequest.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("bookingrequest.repository: failed to scan row")
)
