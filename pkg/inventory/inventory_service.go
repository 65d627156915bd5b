package inventory

import (
	"FoodBridge/domain"
	"FoodBridge/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	InventoryService interface {
		Accrue(ctx context.Context, req domain.AccrueRequest) (*domain.InventoryItem, error)
		Decrement(ctx context.Context, itemID string, quantity float64, callerID, role string) error
		AdjustQuantity(ctx context.Context, itemID string, quantity float64, callerID, role string) error
		GetItem(ctx context.Context, itemID string) (*domain.InventoryItem, error)
		ListByReceptor(ctx context.Context, receptorID string) ([]*domain.InventoryItem, error)
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
	}
)

func NewInventoryService(inventoryRepository InventoryRepository) InventoryService {
	return &inventoryService{inventoryRepository: inventoryRepository}
}

// Accrue increments the matching (receptor, item, unit) row or creates it.
// A single logical stock never produces duplicate rows.
func (s *inventoryService) Accrue(ctx context.Context, req domain.AccrueRequest) (*domain.InventoryItem, error) {
	if req.Quantity <= 0 {
		return nil, domain.ErrInvalidAccrualAmount
	}

	receptorUUID, err := uuid.Parse(req.ReceptorID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	existing, err := s.inventoryRepository.FindByStock(ctx, req.ReceptorID, req.Item, req.Unit)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if existing != nil {
		if err := s.inventoryRepository.IncrementQuantity(ctx, existing.ID.String(), req.Quantity); err != nil {
			return nil, err
		}
		existing.Quantity += req.Quantity
		return toInventoryItem(existing), nil
	}

	item := &entities.InventoryItem{
		ID:         uuid.New(),
		ReceptorID: receptorUUID,
		Item:       req.Item,
		Unit:       req.Unit,
		Quantity:   req.Quantity,
		Location:   req.Location,
	}

	if err := s.inventoryRepository.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	return toInventoryItem(item), nil
}

func (s *inventoryService) Decrement(ctx context.Context, itemID string, quantity float64, callerID, role string) error {
	if quantity <= 0 {
		return domain.ErrInvalidAccrualAmount
	}

	item, err := s.inventoryRepository.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInventoryItemNotFound
		}
		return err
	}

	if role != domain.RoleAdmin && item.ReceptorID.String() != callerID {
		return domain.ErrInventoryForbidden
	}

	ok, err := s.inventoryRepository.DecrementQuantity(ctx, itemID, quantity)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrInsufficientStock
	}
	return nil
}

func (s *inventoryService) AdjustQuantity(ctx context.Context, itemID string, quantity float64, callerID, role string) error {
	if quantity < 0 {
		return domain.ErrNegativeQuantity
	}

	item, err := s.inventoryRepository.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInventoryItemNotFound
		}
		return err
	}

	if role != domain.RoleAdmin && item.ReceptorID.String() != callerID {
		return domain.ErrInventoryForbidden
	}

	if err := s.inventoryRepository.SetQuantity(ctx, itemID, quantity); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInventoryItemNotFound
		}
		return err
	}
	return nil
}

func (s *inventoryService) GetItem(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	item, err := s.inventoryRepository.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInventoryItemNotFound
		}
		return nil, err
	}
	return toInventoryItem(item), nil
}

func (s *inventoryService) ListByReceptor(ctx context.Context, receptorID string) ([]*domain.InventoryItem, error) {
	items, err := s.inventoryRepository.ListByReceptor(ctx, receptorID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.InventoryItem, 0, len(items))
	for _, item := range items {
		result = append(result, toInventoryItem(item))
	}
	return result, nil
}

func toInventoryItem(item *entities.InventoryItem) *domain.InventoryItem {
	return &domain.InventoryItem{
		ID:         item.ID.String(),
		ReceptorID: item.ReceptorID.String(),
		Item:       item.Item,
		Quantity:   item.Quantity,
		Unit:       item.Unit,
		Location:   item.Location,
		UpdatedAt:  item.UpdatedAt,
	}
}
