package inventory

import (
	"FoodBridge/domain"
	"FoodBridge/entities"
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeInventoryRepository keeps rows in memory with the same conditional
// semantics as the SQL adapter.
type fakeInventoryRepository struct {
	mu    sync.Mutex
	items map[string]*entities.InventoryItem
}

func newFakeInventoryRepository() *fakeInventoryRepository {
	return &fakeInventoryRepository{items: map[string]*entities.InventoryItem{}}
}

func (f *fakeInventoryRepository) CreateItem(_ context.Context, item *entities.InventoryItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[item.ID.String()] = item
	return nil
}

func (f *fakeInventoryRepository) GetItemByID(_ context.Context, id string) (*entities.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *item
	return &copied, nil
}

func (f *fakeInventoryRepository) FindByStock(_ context.Context, receptorID, item, unit string) (*entities.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.items {
		if row.ReceptorID.String() == receptorID && row.Item == item && row.Unit == unit {
			copied := *row
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeInventoryRepository) IncrementQuantity(_ context.Context, id string, amount float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	item.Quantity += amount
	return nil
}

func (f *fakeInventoryRepository) DecrementQuantity(_ context.Context, id string, amount float64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok || item.Quantity < amount {
		return false, nil
	}
	item.Quantity -= amount
	return true, nil
}

func (f *fakeInventoryRepository) SetQuantity(_ context.Context, id string, quantity float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	item.Quantity = quantity
	return nil
}

func (f *fakeInventoryRepository) ListByReceptor(_ context.Context, receptorID string) ([]*entities.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*entities.InventoryItem
	for _, row := range f.items {
		if row.ReceptorID.String() == receptorID {
			copied := *row
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeInventoryRepository) rowCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

func TestAccrueCreatesThenIncrements(t *testing.T) {
	repo := newFakeInventoryRepository()
	svc := NewInventoryService(repo)
	receptorID := uuid.NewString()

	first, err := svc.Accrue(context.Background(), domain.AccrueRequest{
		ReceptorID: receptorID,
		Item:       "beans",
		Quantity:   3,
		Unit:       "kg",
	})
	require.NoError(t, err)
	assert.Equal(t, 3.0, first.Quantity)

	second, err := svc.Accrue(context.Background(), domain.AccrueRequest{
		ReceptorID: receptorID,
		Item:       "beans",
		Quantity:   2,
		Unit:       "kg",
	})
	require.NoError(t, err)
	assert.Equal(t, 5.0, second.Quantity)

	// Same stock key stays a single row.
	assert.Equal(t, 1, repo.rowCount())
}

func TestAccrueSeparatesUnits(t *testing.T) {
	repo := newFakeInventoryRepository()
	svc := NewInventoryService(repo)
	receptorID := uuid.NewString()

	_, err := svc.Accrue(context.Background(), domain.AccrueRequest{
		ReceptorID: receptorID, Item: "milk", Quantity: 10, Unit: "l",
	})
	require.NoError(t, err)
	_, err = svc.Accrue(context.Background(), domain.AccrueRequest{
		ReceptorID: receptorID, Item: "milk", Quantity: 4, Unit: "box",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, repo.rowCount())
}

func TestAccrueRejectsNonPositiveAmount(t *testing.T) {
	svc := NewInventoryService(newFakeInventoryRepository())

	_, err := svc.Accrue(context.Background(), domain.AccrueRequest{
		ReceptorID: uuid.NewString(), Item: "beans", Quantity: 0, Unit: "kg",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAccrualAmount)

	_, err = svc.Accrue(context.Background(), domain.AccrueRequest{
		ReceptorID: uuid.NewString(), Item: "beans", Quantity: -1, Unit: "kg",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAccrualAmount)
}

func seedItem(t *testing.T, repo *fakeInventoryRepository, quantity float64) *entities.InventoryItem {
	t.Helper()
	item := &entities.InventoryItem{
		ID:         uuid.New(),
		ReceptorID: uuid.New(),
		Item:       "flour",
		Quantity:   quantity,
		Unit:       "kg",
	}
	require.NoError(t, repo.CreateItem(context.Background(), item))
	return item
}

func TestDecrementEnforcesFloor(t *testing.T) {
	repo := newFakeInventoryRepository()
	svc := NewInventoryService(repo)
	item := seedItem(t, repo, 5)
	owner := item.ReceptorID.String()

	err := svc.Decrement(context.Background(), item.ID.String(), 3, owner, domain.RoleReceptor)
	require.NoError(t, err)

	err = svc.Decrement(context.Background(), item.ID.String(), 3, owner, domain.RoleReceptor)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	stored, err := svc.GetItem(context.Background(), item.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 2.0, stored.Quantity)
}

func TestDecrementRequiresOwnerOrAdmin(t *testing.T) {
	repo := newFakeInventoryRepository()
	svc := NewInventoryService(repo)
	item := seedItem(t, repo, 5)

	err := svc.Decrement(context.Background(), item.ID.String(), 1, uuid.NewString(), domain.RoleReceptor)
	assert.ErrorIs(t, err, domain.ErrInventoryForbidden)

	err = svc.Decrement(context.Background(), item.ID.String(), 1, uuid.NewString(), domain.RoleAdmin)
	assert.NoError(t, err)
}

func TestAdjustQuantity(t *testing.T) {
	repo := newFakeInventoryRepository()
	svc := NewInventoryService(repo)
	item := seedItem(t, repo, 5)
	owner := item.ReceptorID.String()

	err := svc.AdjustQuantity(context.Background(), item.ID.String(), 0, owner, domain.RoleReceptor)
	require.NoError(t, err)

	stored, err := svc.GetItem(context.Background(), item.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 0.0, stored.Quantity)

	err = svc.AdjustQuantity(context.Background(), item.ID.String(), -2, owner, domain.RoleReceptor)
	assert.ErrorIs(t, err, domain.ErrNegativeQuantity)
}

func TestGetItemNotFound(t *testing.T) {
	svc := NewInventoryService(newFakeInventoryRepository())

	_, err := svc.GetItem(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrInventoryItemNotFound)
}
