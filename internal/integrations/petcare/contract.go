package petcare

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsObserver интерфейс для записи метрик исходящих запросов
// Позволяет подключать сбор метрик опционально (nil — метрики выключены)
type MetricsObserver interface {
	ObserveBackendRequest(operation, outcome string, seconds float64)
}
