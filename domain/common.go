package domain

import "os"

const (
	RoleAdmin    = "admin"
	RoleDonor    = "donor"
	RoleReceptor = "receptor"
	RoleDriver   = "driver"
)

const (
	DriverAvailable = "available"
	DriverEnRoute   = "en_route"
	DriverInactive  = "inactive"
)

var (
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	JwtSecret = os.Getenv("JWT_SECRET")

	ErrParseUUID      = NewFailure(KindInvalidArgument, "failed to parse UUID")
	ErrUserNotAllowed = NewFailure(KindForbidden, "user not allowed")
	ErrTokenNotFound  = NewFailure(KindForbidden, "failed to token not found")
	ErrTokenExpired   = NewFailure(KindForbidden, "token expired")
	ErrTokenInvalid   = NewFailure(KindForbidden, "token invalid")
)
