package domain

// BadgeSeverity closed set of visual severity tiers for status display
type BadgeSeverity string

const (
	SeverityNeutral BadgeSeverity = "neutral"
	SeverityInfo    BadgeSeverity = "info"
	SeveritySuccess BadgeSeverity = "success"
	SeverityDanger  BadgeSeverity = "danger"
)

// Badge user-facing representation of an appointment status
type Badge struct {
	Label    string
	Severity BadgeSeverity
}

// StatusBadge возвращает отображаемую метку и уровень важности для статуса записи
// Тотальная функция: для неизвестного статуса возвращает нейтральный fallback,
// никогда не паникует
func StatusBadge(status AppointmentStatus) Badge {
	switch status {
	case StatusNoProgress:
		return Badge{Label: "Ожидает подтверждения", Severity: SeverityNeutral}
	case StatusInProgress:
		return Badge{Label: "Выполняется", Severity: SeverityInfo}
	case StatusFinish:
		return Badge{Label: "Завершена", Severity: SeveritySuccess}
	case StatusCancel:
		return Badge{Label: "Отменена", Severity: SeverityDanger}
	default:
		return Badge{Label: "Неизвестный статус", Severity: SeverityNeutral}
	}
}
