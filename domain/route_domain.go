package domain

import "time"

const (
	RoutePending    = "pending"
	RouteInProgress = "in_progress"
	RouteCompleted  = "completed"
	RouteCancelled  = "cancelled"
)

var (
	MessageSuccessComputeRoute = "route computed successfully"
	MessageSuccessGetRoutes    = "routes retrieved successfully"
	MessageSuccessAssignDriver = "route assigned to driver successfully"
	MessageSuccessRouteStatus  = "route status updated successfully"
	MessageSuccessDashboard    = "dashboard statistics retrieved successfully"

	MessageFailedComputeRoute = "failed to compute route"
	MessageFailedGetRoutes    = "failed to retrieve routes"
	MessageFailedAssignDriver = "failed to assign driver"
	MessageFailedRouteStatus  = "failed to update route status"
	MessageFailedDashboard    = "failed to retrieve dashboard statistics"

	ErrRouteNotFound        = NewFailure(KindNotFound, "route not found")
	ErrRouteNotPending      = NewFailure(KindConflict, "route is not pending")
	ErrRouteNotInProgress   = NewFailure(KindConflict, "route is not in progress")
	ErrRouteNotActionable   = NewFailure(KindConflict, "route is in a terminal status")
	ErrInvalidRouteStatus   = NewFailure(KindInvalidArgument, "invalid route status")
	ErrPartyRoleMismatch    = NewFailure(KindInvalidState, "donation parties do not match donor and receptor roles")
	ErrPartyUnresolved      = NewFailure(KindInvalidState, "donor or receptor for this donation could not be resolved")
	ErrDonationNotClaimable = NewFailure(KindInvalidState, "donation has no receptor yet")
)

type (
	AssignDriverRequest struct {
		DriverID string `json:"driver_id" validate:"required,uuid"`
	}

	MarkRouteStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=completed cancelled"`
	}

	Route struct {
		ID                 string     `json:"id"`
		DonationID         string     `json:"donation_id"`
		DriverID           string     `json:"driver_id,omitempty"`
		Status             string     `json:"status"`
		OriginAddress      string     `json:"origin_address"`
		DestinationAddress string     `json:"destination_address"`
		DistanceText       string     `json:"distance_text"`
		DurationText       string     `json:"duration_text"`
		RouteSummary       string     `json:"route_summary"`
		MapsLink           string     `json:"maps_link"`
		CompletedAt        *time.Time `json:"completed_at,omitempty"`
		CreatedAt          time.Time  `json:"created_at"`
	}

	// RouteStatusResult reports the outcome of a cascading status change.
	// Warning carries a non-fatal side-effect failure (inventory accrual),
	// the parent transition itself has already succeeded.
	RouteStatusResult struct {
		Route   *Route `json:"route"`
		Warning string `json:"warning,omitempty"`
	}

	DashboardStats struct {
		TotalDonations int64 `json:"donations"`
		TotalDrivers   int64 `json:"drivers"`
		PendingRoutes  int64 `json:"pending_routes"`
	}
)
