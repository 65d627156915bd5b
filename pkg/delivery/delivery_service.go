package delivery

import (
	"FoodBridge/domain"
	"FoodBridge/entities"
	"FoodBridge/pkg/directions"
	"FoodBridge/pkg/donation"
	"FoodBridge/pkg/inventory"
	"FoodBridge/pkg/user"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// DeliveryService coordinates every transition that touches more than one
	// record: claims, route computation, driver assignment and the receipt /
	// cancellation cascades.
	DeliveryService interface {
		ClaimDonation(ctx context.Context, donationID, receptorID string) (*domain.Donation, error)
		ComputeRoute(ctx context.Context, donationID string) (*domain.Route, error)
		AssignDriver(ctx context.Context, routeID, driverID string) (*domain.Route, error)
		MarkRouteStatus(ctx context.Context, routeID, status string) (*domain.RouteStatusResult, error)
		GetRouteByID(ctx context.Context, routeID string) (*domain.Route, error)
		ListRoutes(ctx context.Context, status string) ([]*domain.Route, error)
		DriverAvailability(ctx context.Context, driverID string) (string, error)
		GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)
	}

	deliveryService struct {
		deliveryRepository DeliveryRepository
		donationRepository donation.DonationRepository
		userRepository     user.UserRepository
		inventoryService   inventory.InventoryService
		directions         directions.Client
		notifier           Notifier
	}
)

func NewDeliveryService(
	deliveryRepository DeliveryRepository,
	donationRepository donation.DonationRepository,
	userRepository user.UserRepository,
	inventoryService inventory.InventoryService,
	directionsClient directions.Client,
	notifier Notifier,
) DeliveryService {
	return &deliveryService{
		deliveryRepository: deliveryRepository,
		donationRepository: donationRepository,
		userRepository:     userRepository,
		inventoryService:   inventoryService,
		directions:         directionsClient,
		notifier:           notifier,
	}
}

// ClaimDonation moves a pending donation to accepted for the given receptor.
// The write is conditional on the pending status, so the first claimant wins
// and everyone else gets a conflict.
func (s *deliveryService) ClaimDonation(ctx context.Context, donationID, receptorID string) (*domain.Donation, error) {
	receptorUUID, err := uuid.Parse(receptorID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	receptor, err := s.userRepository.GetUserByID(ctx, receptorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	if receptor.Role != domain.RoleReceptor {
		return nil, domain.ErrUserNotAllowed
	}

	if _, err := s.donationRepository.GetDonationByID(ctx, donationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}

	claimed, err := s.deliveryRepository.ClaimDonation(ctx, donationID, receptorUUID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, domain.ErrDonationAlreadyTaken
	}

	updated, err := s.donationRepository.GetDonationByID(ctx, donationID)
	if err != nil {
		return nil, err
	}

	s.notifyDonor(ctx, updated, receptor)

	return toDonation(updated), nil
}

// notifyDonor tells the donor their offer was claimed. Best effort: a mail
// failure is logged, never surfaced.
func (s *deliveryService) notifyDonor(ctx context.Context, d *entities.Donation, receptor *entities.User) {
	if s.notifier == nil {
		return
	}
	donor, err := s.userRepository.GetUserByID(ctx, d.DonorID.String())
	if err != nil {
		log.Printf("claim notification skipped, donor lookup failed: %v", err)
		return
	}
	if err := s.notifier.DonationClaimed(donor.Email, d.Item, receptor.Name); err != nil {
		log.Printf("claim notification failed for donation %s: %v", d.ID, err)
	}
}

// ComputeRoute is idempotent: the first call computes and persists the route,
// every later call returns the stored record and the directions provider is
// never contacted again for the same donation.
func (s *deliveryService) ComputeRoute(ctx context.Context, donationID string) (*domain.Route, error) {
	existing, err := s.deliveryRepository.GetRouteByDonationID(ctx, donationID)
	if err == nil {
		return toRoute(existing), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	d, err := s.donationRepository.GetDonationByID(ctx, donationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}
	if d.ReceptorID == nil {
		return nil, domain.ErrDonationNotClaimable
	}

	donor, err := s.userRepository.GetUserByID(ctx, d.DonorID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPartyUnresolved
		}
		return nil, err
	}
	receptor, err := s.userRepository.GetUserByID(ctx, d.ReceptorID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPartyUnresolved
		}
		return nil, err
	}
	if donor.Role != domain.RoleDonor || receptor.Role != domain.RoleReceptor {
		return nil, domain.ErrPartyRoleMismatch
	}

	origin := postalAddress(donor)
	destination := postalAddress(receptor)

	estimate, err := s.directions.Route(ctx, origin, destination)
	if err != nil {
		// The user-facing goal is "a route exists to plan around", not a
		// perfectly accurate estimate, so provider failures degrade to a
		// simulated one.
		log.Printf("directions lookup degraded for donation %s: %v", donationID, err)
		estimate = simulatedEstimate(origin, destination)
	}

	route := &entities.Route{
		ID:                 uuid.New(),
		DonationID:         d.ID,
		Status:             domain.RoutePending,
		OriginAddress:      origin,
		DestinationAddress: destination,
		DistanceText:       estimate.DistanceText,
		DurationText:       estimate.DurationText,
		RouteSummary:       estimate.Summary,
		MapsLink:           estimate.MapsLink,
	}

	if err := s.deliveryRepository.CreateRoute(ctx, route); err != nil {
		return nil, err
	}

	return toRoute(route), nil
}

// AssignDriver puts a role-valid driver on a pending route and moves the
// donation to in_transit in the same transaction. Availability is not written
// anywhere: it is derived from in-progress route membership.
func (s *deliveryService) AssignDriver(ctx context.Context, routeID, driverID string) (*domain.Route, error) {
	driverUUID, err := uuid.Parse(driverID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	route, err := s.deliveryRepository.GetRouteByID(ctx, routeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRouteNotFound
		}
		return nil, err
	}
	if route.Status != domain.RoutePending {
		return nil, domain.ErrRouteNotPending
	}

	driver, err := s.userRepository.GetUserByID(ctx, driverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotADriver
		}
		return nil, err
	}
	if driver.Role != domain.RoleDriver {
		return nil, domain.ErrNotADriver
	}

	assigned, err := s.deliveryRepository.AssignDriver(ctx, routeID, route.DonationID, driverUUID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return nil, domain.ErrRouteNotPending
	}

	updated, err := s.deliveryRepository.GetRouteByID(ctx, routeID)
	if err != nil {
		return nil, err
	}
	return toRoute(updated), nil
}

// MarkRouteStatus handles the two terminal route transitions.
//
// completed: route -> completed, donation -> received, then inventory accrual
// for the receptor. The donation is the source of truth, so an accrual failure
// is reported as a warning alongside the successful transition instead of
// rolling it back.
//
// cancelled: route -> cancelled, donation back to accepted with the driver
// cleared; the driver's derived availability becomes available again.
func (s *deliveryService) MarkRouteStatus(ctx context.Context, routeID, status string) (*domain.RouteStatusResult, error) {
	if status != domain.RouteCompleted && status != domain.RouteCancelled {
		return nil, domain.ErrInvalidRouteStatus
	}

	route, err := s.deliveryRepository.GetRouteByID(ctx, routeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRouteNotFound
		}
		return nil, err
	}
	if route.Status == domain.RouteCompleted || route.Status == domain.RouteCancelled {
		return nil, domain.ErrRouteNotActionable
	}

	var warning string

	switch status {
	case domain.RouteCompleted:
		if route.Status != domain.RouteInProgress {
			return nil, domain.ErrRouteNotInProgress
		}
		done, err := s.deliveryRepository.CompleteRoute(ctx, routeID, route.DonationID, time.Now())
		if err != nil {
			return nil, err
		}
		if !done {
			return nil, domain.ErrRouteNotInProgress
		}
		warning = s.accrueDelivered(ctx, route.DonationID.String())

	case domain.RouteCancelled:
		cancelled, err := s.deliveryRepository.CancelRoute(ctx, routeID, route.DonationID)
		if err != nil {
			return nil, err
		}
		if !cancelled {
			return nil, domain.ErrRouteNotActionable
		}
	}

	updated, err := s.deliveryRepository.GetRouteByID(ctx, routeID)
	if err != nil {
		return nil, err
	}

	return &domain.RouteStatusResult{
		Route:   toRoute(updated),
		Warning: warning,
	}, nil
}

// accrueDelivered books the delivered quantity into the receptor's inventory.
// Returns a warning message on failure; the received status stands either way.
func (s *deliveryService) accrueDelivered(ctx context.Context, donationID string) string {
	d, err := s.donationRepository.GetDonationByID(ctx, donationID)
	if err != nil {
		log.Printf("inventory accrual skipped, donation %s lookup failed: %v", donationID, err)
		return "delivery registered, but inventory could not be updated"
	}
	if d.ReceptorID == nil {
		log.Printf("inventory accrual skipped, donation %s has no receptor", donationID)
		return "delivery registered, but inventory could not be updated"
	}

	_, err = s.inventoryService.Accrue(ctx, domain.AccrueRequest{
		ReceptorID: d.ReceptorID.String(),
		Item:       d.Item,
		Quantity:   d.Quantity,
		Unit:       d.Unit,
	})
	if err != nil {
		log.Printf("inventory accrual failed for donation %s: %v", donationID, err)
		return fmt.Sprintf("delivery registered, but inventory update failed: %s", err)
	}
	return ""
}

func (s *deliveryService) GetRouteByID(ctx context.Context, routeID string) (*domain.Route, error) {
	route, err := s.deliveryRepository.GetRouteByID(ctx, routeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRouteNotFound
		}
		return nil, err
	}
	return toRoute(route), nil
}

func (s *deliveryService) ListRoutes(ctx context.Context, status string) ([]*domain.Route, error) {
	if status != "" &&
		status != domain.RoutePending && status != domain.RouteInProgress &&
		status != domain.RouteCompleted && status != domain.RouteCancelled {
		return nil, domain.ErrInvalidRouteStatus
	}

	routes, err := s.deliveryRepository.ListRoutes(ctx, status)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Route, 0, len(routes))
	for _, route := range routes {
		result = append(result, toRoute(route))
	}
	return result, nil
}

// DriverAvailability derives the availability status instead of trusting a
// stored flag: en_route exactly while an in-progress route references the
// driver.
func (s *deliveryService) DriverAvailability(ctx context.Context, driverID string) (string, error) {
	driver, err := s.userRepository.GetUserByID(ctx, driverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrNotADriver
		}
		return "", err
	}
	if driver.Role != domain.RoleDriver {
		return "", domain.ErrNotADriver
	}
	if !driver.IsActive || driver.Availability == domain.DriverInactive {
		return domain.DriverInactive, nil
	}

	active, err := s.deliveryRepository.DriverHasActiveRoute(ctx, driverID)
	if err != nil {
		return "", err
	}
	if active {
		return domain.DriverEnRoute, nil
	}
	return domain.DriverAvailable, nil
}

func (s *deliveryService) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	donations, err := s.donationRepository.CountDonations(ctx)
	if err != nil {
		return nil, err
	}
	drivers, err := s.userRepository.CountUsersByRole(ctx, domain.RoleDriver)
	if err != nil {
		return nil, err
	}
	pendingRoutes, err := s.deliveryRepository.CountPendingRoutes(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardStats{
		TotalDonations: donations,
		TotalDrivers:   drivers,
		PendingRoutes:  pendingRoutes,
	}, nil
}

func postalAddress(u *entities.User) string {
	return fmt.Sprintf("%s, %s, %s, %s", u.Street, u.Number, u.City, u.State)
}

// simulatedEstimate stands in when the directions provider is unreachable.
func simulatedEstimate(origin, destination string) *directions.Estimate {
	return &directions.Estimate{
		DistanceText: "12 km (estimated)",
		DurationText: "35 mins (estimated)",
		Summary:      "simulated estimate, directions provider unavailable",
		MapsLink:     directions.MapsLink(origin, destination),
	}
}

func toRoute(route *entities.Route) *domain.Route {
	result := &domain.Route{
		ID:                 route.ID.String(),
		DonationID:         route.DonationID.String(),
		Status:             route.Status,
		OriginAddress:      route.OriginAddress,
		DestinationAddress: route.DestinationAddress,
		DistanceText:       route.DistanceText,
		DurationText:       route.DurationText,
		RouteSummary:       route.RouteSummary,
		MapsLink:           route.MapsLink,
		CompletedAt:        route.CompletedAt,
		CreatedAt:          route.CreatedAt,
	}
	if route.DriverID != nil {
		result.DriverID = route.DriverID.String()
	}
	return result
}

func toDonation(d *entities.Donation) *domain.Donation {
	result := &domain.Donation{
		ID:         d.ID.String(),
		DonorID:    d.DonorID.String(),
		Item:       d.Item,
		Quantity:   d.Quantity,
		Unit:       d.Unit,
		ExpiryDate: d.ExpiryDate,
		Status:     d.Status,
		ImageURL:   d.ImageURL,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
	if d.ReceptorID != nil {
		result.ReceptorID = d.ReceptorID.String()
	}
	if d.DriverID != nil {
		result.DriverID = d.DriverID.String()
	}
	return result
}
