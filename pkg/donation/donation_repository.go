package donation

import (
	"FoodBridge/domain"
	"FoodBridge/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	DonationRepository interface {
		CreateDonation(ctx context.Context, donation *entities.Donation) error
		GetDonationByID(ctx context.Context, id string) (*entities.Donation, error)
		UpdateDonationFields(ctx context.Context, id string, fields map[string]interface{}) error
		DeleteDonation(ctx context.Context, id string) error

		ListForDonor(ctx context.Context, donorID string, finalized bool) ([]*entities.Donation, error)
		ListForReceptor(ctx context.Context, receptorID string, finalized bool) ([]*entities.Donation, error)
		ListForDriver(ctx context.Context, driverID string) ([]*entities.Donation, error)
		ListAll(ctx context.Context, status string) ([]*entities.Donation, error)

		GetStatistics(ctx context.Context) (*domain.DonationStatistics, error)
		CountDonations(ctx context.Context) (int64, error)
		ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
	}

	donationRepository struct {
		db *gorm.DB
	}
)

// finalStatuses are the statuses that no longer show in active listings.
var finalStatuses = []string{domain.DonationReceived, domain.DonationExpired, domain.DonationCancelled}

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) CreateDonation(ctx context.Context, donation *entities.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *donationRepository) GetDonationByID(ctx context.Context, id string) (*entities.Donation, error) {
	var donation entities.Donation
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&donation).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *donationRepository) UpdateDonationFields(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *donationRepository) DeleteDonation(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entities.Donation{}).Error
}

func (r *donationRepository) ListForDonor(ctx context.Context, donorID string, finalized bool) ([]*entities.Donation, error) {
	query := r.db.WithContext(ctx).Where("donor_id = ?", donorID)
	if finalized {
		query = query.Where("status IN ?", finalStatuses)
	} else {
		query = query.Where("status NOT IN ?", finalStatuses)
	}

	var donations []*entities.Donation
	if err := query.Order("created_at DESC").Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

// ListForReceptor returns the open pool plus the receptor's own active claims,
// or only their finalized history.
func (r *donationRepository) ListForReceptor(ctx context.Context, receptorID string, finalized bool) ([]*entities.Donation, error) {
	query := r.db.WithContext(ctx)
	if finalized {
		query = query.Where("receptor_id = ? AND status IN ?", receptorID, finalStatuses)
	} else {
		query = query.Where(
			"status = ? OR (receptor_id = ? AND status NOT IN ?)",
			domain.DonationPending, receptorID, finalStatuses,
		)
	}

	var donations []*entities.Donation
	if err := query.Order("created_at DESC").Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

// ListForDriver returns donations waiting for a driver plus the driver's own
// assignments.
func (r *donationRepository) ListForDriver(ctx context.Context, driverID string) ([]*entities.Donation, error) {
	var donations []*entities.Donation
	if err := r.db.WithContext(ctx).
		Where("status = ? OR driver_id = ?", domain.DonationAccepted, driverID).
		Order("created_at DESC").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) ListAll(ctx context.Context, status string) ([]*entities.Donation, error) {
	query := r.db.WithContext(ctx)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var donations []*entities.Donation
	if err := query.Order("created_at DESC").Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) GetStatistics(ctx context.Context) (*domain.DonationStatistics, error) {
	stats := &domain.DonationStatistics{}

	if err := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Count(&stats.TotalDonations).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("status = ?", domain.DonationPending).
		Count(&stats.PendingDonations).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("status = ?", domain.DonationReceived).
		Count(&stats.DeliveredDonations).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("status = ?", domain.DonationExpired).
		Count(&stats.ExpiredDonations).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *donationRepository) CountDonations(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExpireOverdue is the sweep behind the expired status: a single conditional
// bulk update so a concurrent claim on the same donation cannot be clobbered.
func (r *donationRepository) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("status = ? AND expiry_date < ?", domain.DonationPending, now).
		Update("status", domain.DonationExpired)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
