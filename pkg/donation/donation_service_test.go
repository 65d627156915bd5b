package donation

import (
	"FoodBridge/domain"
	"FoodBridge/entities"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeDonationRepository struct {
	mu        sync.Mutex
	donations map[string]*entities.Donation

	listForDonorCalls    int
	listForReceptorCalls int
	listForDriverCalls   int
	listAllCalls         int
}

func newFakeDonationRepository() *fakeDonationRepository {
	return &fakeDonationRepository{donations: map[string]*entities.Donation{}}
}

func (f *fakeDonationRepository) CreateDonation(_ context.Context, d *entities.Donation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.donations[d.ID.String()] = d
	return nil
}

func (f *fakeDonationRepository) GetDonationByID(_ context.Context, id string) (*entities.Donation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.donations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *d
	return &copied, nil
}

func (f *fakeDonationRepository) UpdateDonationFields(_ context.Context, id string, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.donations[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if item, ok := fields["item"].(string); ok {
		d.Item = item
	}
	if quantity, ok := fields["quantity"].(float64); ok {
		d.Quantity = quantity
	}
	if unit, ok := fields["unit"].(string); ok {
		d.Unit = unit
	}
	if expiry, ok := fields["expiry_date"].(time.Time); ok {
		d.ExpiryDate = expiry
	}
	return nil
}

func (f *fakeDonationRepository) DeleteDonation(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.donations, id)
	return nil
}

func (f *fakeDonationRepository) ListForDonor(_ context.Context, donorID string, finalized bool) ([]*entities.Donation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listForDonorCalls++
	return nil, nil
}

func (f *fakeDonationRepository) ListForReceptor(_ context.Context, receptorID string, finalized bool) ([]*entities.Donation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listForReceptorCalls++
	return nil, nil
}

func (f *fakeDonationRepository) ListForDriver(_ context.Context, driverID string) ([]*entities.Donation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listForDriverCalls++
	return nil, nil
}

func (f *fakeDonationRepository) ListAll(_ context.Context, status string) ([]*entities.Donation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listAllCalls++
	return nil, nil
}

func (f *fakeDonationRepository) GetStatistics(_ context.Context) (*domain.DonationStatistics, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stats := &domain.DonationStatistics{}
	for _, d := range f.donations {
		stats.TotalDonations++
		switch d.Status {
		case domain.DonationPending:
			stats.PendingDonations++
		case domain.DonationReceived:
			stats.DeliveredDonations++
		case domain.DonationExpired:
			stats.ExpiredDonations++
		}
	}
	return stats, nil
}

func (f *fakeDonationRepository) CountDonations(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.donations)), nil
}

func (f *fakeDonationRepository) ExpireOverdue(_ context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, d := range f.donations {
		if d.Status == domain.DonationPending && d.ExpiryDate.Before(now) {
			d.Status = domain.DonationExpired
			count++
		}
	}
	return count, nil
}

func seedDonation(repo *fakeDonationRepository, donorID uuid.UUID, status string, expiry time.Time) *entities.Donation {
	d := &entities.Donation{
		ID:         uuid.New(),
		DonorID:    donorID,
		Item:       "bread",
		Quantity:   10,
		Unit:       "un",
		ExpiryDate: expiry,
		Status:     status,
	}
	_ = repo.CreateDonation(context.Background(), d)
	return d
}

func TestCreateDonation(t *testing.T) {
	repo := newFakeDonationRepository()
	svc := NewDonationService(repo, nil)
	donorID := uuid.NewString()

	res, err := svc.CreateDonation(context.Background(), domain.DonationRequest{
		Item:       "rice",
		Quantity:   5,
		Unit:       "kg",
		ExpiryDate: "2026-12-01",
	}, donorID)
	require.NoError(t, err)
	assert.Equal(t, domain.DonationPending, res.Status)
	assert.Equal(t, donorID, res.DonorID)
	assert.Equal(t, 5.0, res.Quantity)
}

func TestCreateDonationValidation(t *testing.T) {
	svc := NewDonationService(newFakeDonationRepository(), nil)
	donorID := uuid.NewString()

	_, err := svc.CreateDonation(context.Background(), domain.DonationRequest{
		Item: "rice", Quantity: 5, Unit: "kg", ExpiryDate: "01/12/2026",
	}, donorID)
	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)

	_, err = svc.CreateDonation(context.Background(), domain.DonationRequest{
		Item: "rice", Quantity: -5, Unit: "kg", ExpiryDate: "2026-12-01",
	}, donorID)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestUpdateDonationOwnerAndStatusGuards(t *testing.T) {
	repo := newFakeDonationRepository()
	svc := NewDonationService(repo, nil)
	donorID := uuid.New()

	d := seedDonation(repo, donorID, domain.DonationPending, time.Now().Add(24*time.Hour))

	err := svc.UpdateDonation(context.Background(), d.ID.String(), domain.UpdateDonationRequest{Item: "pasta"}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedDonation)

	err = svc.UpdateDonation(context.Background(), d.ID.String(), domain.UpdateDonationRequest{Item: "pasta"}, donorID.String())
	require.NoError(t, err)

	stored, err := repo.GetDonationByID(context.Background(), d.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "pasta", stored.Item)

	claimed := seedDonation(repo, donorID, domain.DonationAccepted, time.Now().Add(24*time.Hour))
	err = svc.UpdateDonation(context.Background(), claimed.ID.String(), domain.UpdateDonationRequest{Item: "pasta"}, donorID.String())
	assert.ErrorIs(t, err, domain.ErrDonationNotPending)
}

func TestDeleteDonationGuards(t *testing.T) {
	repo := newFakeDonationRepository()
	svc := NewDonationService(repo, nil)
	donorID := uuid.New()

	d := seedDonation(repo, donorID, domain.DonationPending, time.Now().Add(24*time.Hour))

	err := svc.DeleteDonation(context.Background(), d.ID.String(), uuid.NewString(), domain.RoleDonor)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedDonation)

	// Admin can always remove a pending offer.
	err = svc.DeleteDonation(context.Background(), d.ID.String(), uuid.NewString(), domain.RoleAdmin)
	require.NoError(t, err)

	inTransit := seedDonation(repo, donorID, domain.DonationInTransit, time.Now().Add(24*time.Hour))
	err = svc.DeleteDonation(context.Background(), inTransit.ID.String(), donorID.String(), domain.RoleDonor)
	assert.ErrorIs(t, err, domain.ErrDonationNotPending)
}

func TestListDonationsDispatchesByRole(t *testing.T) {
	repo := newFakeDonationRepository()
	svc := NewDonationService(repo, nil)
	callerID := uuid.NewString()

	_, err := svc.ListDonations(context.Background(), callerID, domain.RoleDonor, "")
	require.NoError(t, err)
	_, err = svc.ListDonations(context.Background(), callerID, domain.RoleReceptor, "")
	require.NoError(t, err)
	_, err = svc.ListDonations(context.Background(), callerID, domain.RoleDriver, "")
	require.NoError(t, err)
	_, err = svc.ListDonations(context.Background(), callerID, domain.RoleAdmin, "")
	require.NoError(t, err)

	assert.Equal(t, 1, repo.listForDonorCalls)
	assert.Equal(t, 1, repo.listForReceptorCalls)
	assert.Equal(t, 1, repo.listForDriverCalls)
	assert.Equal(t, 1, repo.listAllCalls)

	_, err = svc.ListDonations(context.Background(), callerID, "visitor", "")
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
}

func TestExpireOverdueDonations(t *testing.T) {
	repo := newFakeDonationRepository()
	svc := NewDonationService(repo, nil)
	donorID := uuid.New()

	overdue := seedDonation(repo, donorID, domain.DonationPending, time.Now().Add(-time.Hour))
	fresh := seedDonation(repo, donorID, domain.DonationPending, time.Now().Add(24*time.Hour))
	claimed := seedDonation(repo, donorID, domain.DonationAccepted, time.Now().Add(-time.Hour))

	count, err := svc.ExpireOverdueDonations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	stored, _ := repo.GetDonationByID(context.Background(), overdue.ID.String())
	assert.Equal(t, domain.DonationExpired, stored.Status)

	stored, _ = repo.GetDonationByID(context.Background(), fresh.ID.String())
	assert.Equal(t, domain.DonationPending, stored.Status)

	// Claimed donations never expire, even past their date.
	stored, _ = repo.GetDonationByID(context.Background(), claimed.ID.String())
	assert.Equal(t, domain.DonationAccepted, stored.Status)
}
