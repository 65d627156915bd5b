package inventory

import (
	"FoodBridge/entities"
	"context"

	"gorm.io/gorm"
)

type (
	InventoryRepository interface {
		CreateItem(ctx context.Context, item *entities.InventoryItem) error
		GetItemByID(ctx context.Context, id string) (*entities.InventoryItem, error)
		FindByStock(ctx context.Context, receptorID, item, unit string) (*entities.InventoryItem, error)
		IncrementQuantity(ctx context.Context, id string, amount float64) error
		DecrementQuantity(ctx context.Context, id string, amount float64) (bool, error)
		SetQuantity(ctx context.Context, id string, quantity float64) error
		ListByReceptor(ctx context.Context, receptorID string) ([]*entities.InventoryItem, error)
	}

	inventoryRepository struct {
		db *gorm.DB
	}
)

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) CreateItem(ctx context.Context, item *entities.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventoryRepository) GetItemByID(ctx context.Context, id string) (*entities.InventoryItem, error) {
	var item entities.InventoryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByStock resolves the unique (receptor, item, unit) row accrual targets.
func (r *inventoryRepository) FindByStock(ctx context.Context, receptorID, item, unit string) (*entities.InventoryItem, error) {
	var row entities.InventoryItem
	if err := r.db.WithContext(ctx).
		Where("receptor_id = ? AND item = ? AND unit = ?", receptorID, item, unit).
		First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *inventoryRepository) IncrementQuantity(ctx context.Context, id string, amount float64) error {
	return r.db.WithContext(ctx).
		Model(&entities.InventoryItem{}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", amount)).Error
}

// DecrementQuantity applies the floor check and the subtraction in one
// conditional update, so concurrent withdrawals can never drive the stock
// negative. A false result means the guard rejected the write.
func (r *inventoryRepository) DecrementQuantity(ctx context.Context, id string, amount float64) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.InventoryItem{}).
		Where("id = ? AND quantity >= ?", id, amount).
		Update("quantity", gorm.Expr("quantity - ?", amount))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *inventoryRepository) SetQuantity(ctx context.Context, id string, quantity float64) error {
	result := r.db.WithContext(ctx).
		Model(&entities.InventoryItem{}).
		Where("id = ?", id).
		Update("quantity", quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *inventoryRepository) ListByReceptor(ctx context.Context, receptorID string) ([]*entities.InventoryItem, error) {
	var items []*entities.InventoryItem
	if err := r.db.WithContext(ctx).
		Where("receptor_id = ?", receptorID).
		Order("item ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
