package domain

// Service read-only справочные данные об услуге из PetCare backend
type Service struct {
	ID              string
	ShopID          string
	ServiceTypeID   string
	Name            string
	Price           *float64
	DiscountPercent float64
	IsActive        bool
	DurationMinutes int
	LimitPerHour    int
}

// ServiceType категория услуг (груминг, передержка, ветеринария и т.д.)
type ServiceType struct {
	ID   string
	Name string
}

// Shop магазин/салон на маркетплейсе
type Shop struct {
	ID          string
	Name        string
	Description string
	Address     string
	Phone       string
	IsActive    bool
}

// RoomDetail номер пет-отеля c дневной ценой
type RoomDetail struct {
	ID              string
	ShopID          string
	Name            string
	DailyPrice      *float64
	DiscountPercent float64
	IsAvailable     bool
}
