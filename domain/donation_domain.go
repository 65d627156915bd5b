package domain

import (
	"mime/multipart"
	"time"
)

const (
	DonationPending   = "pending"
	DonationAccepted  = "accepted"
	DonationInTransit = "in_transit"
	DonationReceived  = "received"
	DonationExpired   = "expired"
	DonationCancelled = "cancelled"
)

var (
	MessageSuccessCreateDonation = "donation created successfully"
	MessageSuccessGetDonations   = "donations retrieved successfully"
	MessageSuccessUpdateDonation = "donation updated successfully"
	MessageSuccessDeleteDonation = "donation deleted successfully"
	MessageSuccessClaimDonation  = "donation accepted, awaiting driver"
	MessageSuccessGetStatistics  = "donation statistics retrieved successfully"

	MessageFailedCreateDonation = "failed to create donation"
	MessageFailedGetDonations   = "failed to retrieve donations"
	MessageFailedUpdateDonation = "failed to update donation"
	MessageFailedDeleteDonation = "failed to delete donation"
	MessageFailedClaimDonation  = "failed to accept donation"
	MessageFailedGetStatistics  = "failed to retrieve donation statistics"

	ErrDonationNotFound      = NewFailure(KindNotFound, "donation not found")
	ErrDonationAlreadyTaken  = NewFailure(KindConflict, "donation is no longer available")
	ErrDonationNotActionable = NewFailure(KindConflict, "donation is in a terminal status")
	ErrDonationNotPending    = NewFailure(KindConflict, "donation is not pending")
	ErrInvalidQuantity       = NewFailure(KindInvalidArgument, "quantity must be positive")
	ErrInvalidExpiryDate     = NewFailure(KindInvalidArgument, "invalid expiry date")
	ErrInvalidDonationStatus = NewFailure(KindInvalidArgument, "invalid donation status")
	ErrUnauthorizedDonation  = NewFailure(KindForbidden, "unauthorized access to donation")
)

type (
	DonationRequest struct {
		Item       string                `json:"item" validate:"required,min=2"`
		Quantity   float64               `json:"quantity" validate:"required,gt=0"`
		Unit       string                `json:"unit" validate:"required"`
		ExpiryDate string                `json:"expiry_date" validate:"required"`
		FoodImage  *multipart.FileHeader `json:"food_image" form:"food_image"`
	}

	UpdateDonationRequest struct {
		Item       string  `json:"item" validate:"omitempty,min=2"`
		Quantity   float64 `json:"quantity" validate:"omitempty,gt=0"`
		Unit       string  `json:"unit" validate:"omitempty"`
		ExpiryDate string  `json:"expiry_date" validate:"omitempty"`
	}

	Donation struct {
		ID         string    `json:"id"`
		DonorID    string    `json:"donor_id"`
		ReceptorID string    `json:"receptor_id,omitempty"`
		DriverID   string    `json:"driver_id,omitempty"`
		Item       string    `json:"item"`
		Quantity   float64   `json:"quantity"`
		Unit       string    `json:"unit"`
		ExpiryDate time.Time `json:"expiry_date"`
		Status     string    `json:"status"`
		ImageURL   string    `json:"image_url,omitempty"`
		CreatedAt  time.Time `json:"created_at"`
		UpdatedAt  time.Time `json:"updated_at"`
	}

	DonationStatistics struct {
		TotalDonations     int64 `json:"total_donations"`
		PendingDonations   int64 `json:"pending_donations"`
		DeliveredDonations int64 `json:"delivered_donations"`
		ExpiredDonations   int64 `json:"expired_donations"`
	}
)

// TerminalDonationStatus reports whether no further transitions are accepted.
func TerminalDonationStatus(status string) bool {
	return status == DonationReceived || status == DonationCancelled
}
