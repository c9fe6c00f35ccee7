package get_services

import "github.com/petmarket/PSM-BookingGateway/internal/service/catalog/models"

// ServiceResponse модель услуги в HTTP ответе
// FinalPrice вычислена на сервере, клиент не повторяет расчёт скидки
type ServiceResponse struct {
	ID              string   `json:"id"`
	ServiceTypeID   string   `json:"serviceTypeId"`
	Name            string   `json:"name"`
	Price           *float64 `json:"price"`
	DiscountPercent float64  `json:"discountPercent"`
	FinalPrice      float64  `json:"finalPrice"`
	IsActive        bool     `json:"isActive"`
	DurationMinutes int      `json:"durationMinutes"`
	LimitPerHour    int      `json:"limitPerHour"`
}

// ServicesResponse список услуг магазина
type ServicesResponse struct {
	Services []ServiceResponse `json:"services"`
}

func fromServiceModels(services []*models.ServiceResponse) ServicesResponse {
	result := ServicesResponse{Services: make([]ServiceResponse, 0, len(services))}
	for _, service := range services {
		result.Services = append(result.Services, ServiceResponse{
			ID:              service.ID,
			ServiceTypeID:   service.ServiceTypeID,
			Name:            service.Name,
			Price:           service.Price,
			DiscountPercent: service.DiscountPercent,
			FinalPrice:      service.FinalPrice,
			IsActive:        service.IsActive,
			DurationMinutes: service.DurationMinutes,
			LimitPerHour:    service.LimitPerHour,
		})
	}
	return result
}
