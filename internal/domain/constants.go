package domain

// Business validation constants
const (
	MaxNotesLength     = 500
	MaxScheduleLength  = 1000
	MinTotalNights     = 1
	MaxDiscountPercent = 100
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// APITimeFormat формат дат в PetCare backend API: UTC ISO-8601 с миллисекундами
	APITimeFormat = "2006-01-02T15:04:05.000Z"
)
