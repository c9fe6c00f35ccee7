package models

import "github.com/petmarket/PSM-BookingGateway/internal/domain"

// ShopResponse модель магазина для выдачи наружу
type ShopResponse struct {
	ID          string
	Name        string
	Description string
	Address     string
	Phone       string
	IsActive    bool
}

// ServiceResponse модель услуги с предвычисленной итоговой ценой
type ServiceResponse struct {
	ID              string
	ServiceTypeID   string
	Name            string
	Price           *float64
	DiscountPercent float64
	FinalPrice      float64
	IsActive        bool
	DurationMinutes int
	LimitPerHour    int
}

// ServiceTypeResponse модель категории услуг
type ServiceTypeResponse struct {
	ID   string
	Name string
}

// FromDomainShop конвертирует доменный магазин в response-модель
func FromDomainShop(shop *domain.Shop) *ShopResponse {
	return &ShopResponse{
		ID:          shop.ID,
		Name:        shop.Name,
		Description: shop.Description,
		Address:     shop.Address,
		Phone:       shop.Phone,
		IsActive:    shop.IsActive,
	}
}

// FromDomainService конвертирует доменную услугу в response-модель
// Итоговая цена вычисляется здесь один раз, чтобы клиенты не повторяли расчёт
func FromDomainService(service *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              service.ID,
		ServiceTypeID:   service.ServiceTypeID,
		Name:            service.Name,
		Price:           service.Price,
		DiscountPercent: service.DiscountPercent,
		FinalPrice:      domain.FinalPrice(service.Price, service.DiscountPercent),
		IsActive:        service.IsActive,
		DurationMinutes: service.DurationMinutes,
		LimitPerHour:    service.LimitPerHour,
	}
}

// FromDomainServiceList конвертирует список услуг
func FromDomainServiceList(services []*domain.Service) []*ServiceResponse {
	result := make([]*ServiceResponse, 0, len(services))
	for _, service := range services {
		result = append(result, FromDomainService(service))
	}
	return result
}
