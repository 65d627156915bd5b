package delivery

import (
	"FoodBridge/domain"
	"FoodBridge/entities"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// errGuardFailed aborts a transaction whose conditional write matched no row.
// It never escapes the repository; callers see ok == false.
var errGuardFailed = errors.New("status guard failed")

type (
	// DeliveryRepository is the storage adapter for the lifecycle transitions
	// that touch more than one record. Single-document guards are expressed as
	// conditional updates; multi-document cascades run in one transaction.
	DeliveryRepository interface {
		ClaimDonation(ctx context.Context, donationID string, receptorID uuid.UUID) (bool, error)

		CreateRoute(ctx context.Context, route *entities.Route) error
		GetRouteByID(ctx context.Context, id string) (*entities.Route, error)
		GetRouteByDonationID(ctx context.Context, donationID string) (*entities.Route, error)
		ListRoutes(ctx context.Context, status string) ([]*entities.Route, error)

		AssignDriver(ctx context.Context, routeID string, donationID uuid.UUID, driverID uuid.UUID) (bool, error)
		CompleteRoute(ctx context.Context, routeID string, donationID uuid.UUID, completedAt time.Time) (bool, error)
		CancelRoute(ctx context.Context, routeID string, donationID uuid.UUID) (bool, error)

		DriverHasActiveRoute(ctx context.Context, driverID string) (bool, error)
		CountPendingRoutes(ctx context.Context) (int64, error)
	}

	deliveryRepository struct {
		db *gorm.DB
	}
)

func NewDeliveryRepository(db *gorm.DB) DeliveryRepository {
	return &deliveryRepository{db: db}
}

// ClaimDonation is the first-claim-wins write: the update is keyed on the
// pending status, so under concurrent claimants only the first writer
// succeeds and the rest observe a no-op.
func (r *deliveryRepository) ClaimDonation(ctx context.Context, donationID string, receptorID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("id = ? AND status = ?", donationID, domain.DonationPending).
		Updates(map[string]interface{}{
			"status":      domain.DonationAccepted,
			"receptor_id": receptorID,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *deliveryRepository) CreateRoute(ctx context.Context, route *entities.Route) error {
	return r.db.WithContext(ctx).Create(route).Error
}

func (r *deliveryRepository) GetRouteByID(ctx context.Context, id string) (*entities.Route, error) {
	var route entities.Route
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&route).Error; err != nil {
		return nil, err
	}
	return &route, nil
}

func (r *deliveryRepository) GetRouteByDonationID(ctx context.Context, donationID string) (*entities.Route, error) {
	var route entities.Route
	if err := r.db.WithContext(ctx).Where("donation_id = ?", donationID).First(&route).Error; err != nil {
		return nil, err
	}
	return &route, nil
}

func (r *deliveryRepository) ListRoutes(ctx context.Context, status string) ([]*entities.Route, error) {
	query := r.db.WithContext(ctx)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var routes []*entities.Route
	if err := query.Order("created_at DESC").Find(&routes).Error; err != nil {
		return nil, err
	}
	return routes, nil
}

// AssignDriver moves the route to in_progress and the donation to in_transit
// in a single transaction. Both writes are guarded on their pre-transition
// status; if either guard fails the whole cascade rolls back.
func (r *deliveryRepository) AssignDriver(ctx context.Context, routeID string, donationID uuid.UUID, driverID uuid.UUID) (bool, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entities.Route{}).
			Where("id = ? AND status = ?", routeID, domain.RoutePending).
			Updates(map[string]interface{}{
				"status":    domain.RouteInProgress,
				"driver_id": driverID,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errGuardFailed
		}

		result = tx.Model(&entities.Donation{}).
			Where("id = ? AND status = ?", donationID, domain.DonationAccepted).
			Updates(map[string]interface{}{
				"status":    domain.DonationInTransit,
				"driver_id": driverID,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errGuardFailed
		}
		return nil
	})
	if errors.Is(err, errGuardFailed) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CompleteRoute closes the route and marks the donation received. Inventory
// accrual is NOT part of this transaction: the donation record is the source
// of truth and a failed accrual must not roll it back.
func (r *deliveryRepository) CompleteRoute(ctx context.Context, routeID string, donationID uuid.UUID, completedAt time.Time) (bool, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entities.Route{}).
			Where("id = ? AND status = ?", routeID, domain.RouteInProgress).
			Updates(map[string]interface{}{
				"status":       domain.RouteCompleted,
				"completed_at": completedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errGuardFailed
		}

		result = tx.Model(&entities.Donation{}).
			Where("id = ? AND status = ?", donationID, domain.DonationInTransit).
			Update("status", domain.DonationReceived)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errGuardFailed
		}
		return nil
	})
	if errors.Is(err, errGuardFailed) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CancelRoute rolls the donation back to accepted and clears its driver. The
// route keeps its driver reference as a historical snapshot; availability is
// derived from in-progress membership, so no driver write is needed.
func (r *deliveryRepository) CancelRoute(ctx context.Context, routeID string, donationID uuid.UUID) (bool, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entities.Route{}).
			Where("id = ? AND status IN ?", routeID, []string{domain.RoutePending, domain.RouteInProgress}).
			Update("status", domain.RouteCancelled)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errGuardFailed
		}

		if err := tx.Model(&entities.Donation{}).
			Where("id = ?", donationID).
			Updates(map[string]interface{}{
				"status":    domain.DonationAccepted,
				"driver_id": nil,
			}).Error; err != nil {
			return err
		}
		return nil
	})
	if errors.Is(err, errGuardFailed) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// DriverHasActiveRoute backs the derived availability: a driver is en_route
// exactly while some route referencing them is in progress.
func (r *deliveryRepository) DriverHasActiveRoute(ctx context.Context, driverID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Route{}).
		Where("driver_id = ? AND status = ?", driverID, domain.RouteInProgress).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *deliveryRepository) CountPendingRoutes(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Route{}).
		Where("status = ?", domain.RoutePending).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
