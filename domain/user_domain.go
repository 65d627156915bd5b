package domain

import "time"

var (
	MessageSuccessRegister    = "user registered successfully"
	MessageSuccessLogin       = "login successful"
	MessageSuccessGetMe       = "user profile retrieved successfully"
	MessageSuccessUpdateUser  = "user updated successfully"
	MessageSuccessGetDrivers  = "drivers retrieved successfully"
	MessageSuccessDeleteUser  = "user deleted successfully"
	MessageFailedRegister     = "failed to register user"
	MessageFailedLogin        = "failed to login"
	MessageFailedGetMe        = "failed to retrieve user profile"
	MessageFailedUpdateUser   = "failed to update user"
	MessageFailedGetDrivers   = "failed to retrieve drivers"
	MessageFailedDeleteUser   = "failed to delete user"

	ErrUserNotFound        = NewFailure(KindNotFound, "user not found")
	ErrEmailAlreadyExists  = NewFailure(KindConflict, "email already registered")
	ErrInvalidCredentials  = NewFailure(KindForbidden, "invalid email or password")
	ErrInvalidRole         = NewFailure(KindInvalidArgument, "unknown user role")
	ErrPasswordMismatch    = NewFailure(KindInvalidArgument, "passwords do not match")
	ErrMissingAddress      = NewFailure(KindInvalidArgument, "address is required for this role")
	ErrMissingDriverData   = NewFailure(KindInvalidArgument, "license number and vehicle plate are required for drivers")
	ErrUserInactive        = NewFailure(KindForbidden, "user account is inactive")
	ErrNotADriver          = NewFailure(KindInvalidReference, "user is not a driver")
)

type (
	AddressPayload struct {
		Street     string `json:"street" validate:"required"`
		Number     string `json:"number" validate:"required"`
		District   string `json:"district" validate:"required"`
		City       string `json:"city" validate:"required"`
		State      string `json:"state" validate:"required"`
		PostalCode string `json:"postal_code" validate:"required"`
	}

	RegisterRequest struct {
		Name            string          `json:"name" validate:"required,min=2"`
		Email           string          `json:"email" validate:"required,email"`
		Password        string          `json:"password" validate:"required,min=8"`
		ConfirmPassword string          `json:"confirm_password" validate:"required"`
		Phone           string          `json:"phone" validate:"omitempty"`
		Role            string          `json:"role" validate:"required,oneof=donor receptor driver"`
		Address         *AddressPayload `json:"address" validate:"omitempty"`

		// Driver-only fields
		LicenseNumber string `json:"license_number" validate:"omitempty"`
		VehiclePlate  string `json:"vehicle_plate" validate:"omitempty"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		AccessToken string `json:"access_token"`
		UserID      string `json:"id"`
		Role        string `json:"role"`
	}

	UserResponse struct {
		ID            string          `json:"id"`
		Name          string          `json:"name"`
		Email         string          `json:"email"`
		Phone         string          `json:"phone,omitempty"`
		Role          string          `json:"role"`
		Address       *AddressPayload `json:"address,omitempty"`
		LicenseNumber string          `json:"license_number,omitempty"`
		VehiclePlate  string          `json:"vehicle_plate,omitempty"`
		Availability  string          `json:"availability,omitempty"`
		CreatedAt     time.Time       `json:"created_at"`
	}

	UpdateUserRequest struct {
		Name         string          `json:"name" validate:"omitempty,min=2"`
		Phone        string          `json:"phone" validate:"omitempty"`
		Password     string          `json:"password" validate:"omitempty,min=8"`
		Address      *AddressPayload `json:"address" validate:"omitempty"`
		VehiclePlate string          `json:"vehicle_plate" validate:"omitempty"`
	}
)

// PostalQuery renders the address the way the directions provider expects it.
func (a AddressPayload) PostalQuery() string {
	return a.Street + ", " + a.Number + ", " + a.City + ", " + a.State
}
