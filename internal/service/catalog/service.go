package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/petmarket/PSM-BookingGateway/internal/integrations/petcare"
	"github.com/petmarket/PSM-BookingGateway/internal/service/catalog/models"
)

// Service сервис справочных данных маркетплейса
// Read-only: все данные принадлежат backend, гейтвей только типизирует
// их и дополняет вычисленными ценами
type Service struct {
	petcareClient PetCareClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса справочных данных
func NewService(petcareClient PetCareClient, logger Logger) *Service {
	return &Service{
		petcareClient: petcareClient,
		logger:        logger,
	}
}

// GetShop получает магазин по ID
func (s *Service) GetShop(ctx context.Context, id string) (*models.ShopResponse, error) {
	shop, err := s.petcareClient.GetShop(ctx, id)
	if err != nil {
		if errors.Is(err, petcare.ErrNotFound) {
			s.logger.Warn("GetShop: shop id=%s not found", id)
			return nil, ErrShopNotFound
		}
		s.logger.Error("GetShop: backend error for shop id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetShop - backend error: %w", ErrInternal, err)
	}

	return models.FromDomainShop(shop), nil
}

// ListServices получает услуги магазина с предвычисленными итоговыми ценами
func (s *Service) ListServices(ctx context.Context, shopID string) ([]*models.ServiceResponse, error) {
	services, err := s.petcareClient.GetServicesByShop(ctx, shopID)
	if err != nil {
		if errors.Is(err, petcare.ErrNotFound) {
			s.logger.Warn("ListServices: shop id=%s not found", shopID)
			return nil, ErrShopNotFound
		}
		s.logger.Error("ListServices: backend error for shop id=%s: %v", shopID, err)
		return nil, fmt.Errorf("%w: ListServices - backend error: %w", ErrInternal, err)
	}

	s.logger.Info("ListServices: fetched %d service(s) for shop id=%s", len(services), shopID)
	return models.FromDomainServiceList(services), nil
}

// ListServiceTypes получает справочник категорий услуг
func (s *Service) ListServiceTypes(ctx context.Context) ([]*models.ServiceTypeResponse, error) {
	types, err := s.petcareClient.GetServiceTypes(ctx)
	if err != nil {
		s.logger.Error("ListServiceTypes: backend error: %v", err)
		return nil, fmt.Errorf("%w: ListServiceTypes - backend error: %w", ErrInternal, err)
	}

	result := make([]*models.ServiceTypeResponse, 0, len(types))
	for _, t := range types {
		result = append(result, &models.ServiceTypeResponse{ID: t.ID, Name: t.Name})
	}
	return result, nil
}
