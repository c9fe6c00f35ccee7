package get_service_types

import "github.com/petmarket/PSM-BookingGateway/internal/service/catalog/models"

// ServiceTypeResponse модель категории услуг в HTTP ответе
type ServiceTypeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ServiceTypesResponse справочник категорий услуг
type ServiceTypesResponse struct {
	ServiceTypes []ServiceTypeResponse `json:"serviceTypes"`
}

func fromServiceModels(types []*models.ServiceTypeResponse) ServiceTypesResponse {
	result := ServiceTypesResponse{ServiceTypes: make([]ServiceTypeResponse, 0, len(types))}
	for _, t := range types {
		result.ServiceTypes = append(result.ServiceTypes, ServiceTypeResponse{ID: t.ID, Name: t.Name})
	}
	return result
}
