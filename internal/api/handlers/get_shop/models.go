package get_shop

import "github.com/petmarket/PSM-BookingGateway/internal/service/catalog/models"

// ShopResponse модель магазина в HTTP ответе
type ShopResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	IsActive    bool   `json:"isActive"`
}

func fromServiceModel(shop *models.ShopResponse) ShopResponse {
	return ShopResponse{
		ID:          shop.ID,
		Name:        shop.Name,
		Description: shop.Description,
		Address:     shop.Address,
		Phone:       shop.Phone,
		IsActive:    shop.IsActive,
	}
}
