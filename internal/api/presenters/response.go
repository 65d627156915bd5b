package presenters

import (
	"FoodBridge/domain"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data interface{}, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	resp := Response{
		Success: false,
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	return c.Status(statusCode).JSON(resp)
}

// FailureResponse maps a domain failure to its HTTP status before rendering.
// Non-failure errors (validator, parse, unexpected) fall back to the given
// default status.
func FailureResponse(c *fiber.Ctx, defaultStatus int, message string, err error) error {
	return ErrorResponse(c, StatusFromError(err, defaultStatus), message, err)
}

// StatusFromError translates the failure taxonomy into HTTP status codes.
func StatusFromError(err error, defaultStatus int) int {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		return fiber.StatusBadRequest
	}

	var failure *domain.Failure
	if !errors.As(err, &failure) {
		return defaultStatus
	}

	switch failure.Kind {
	case domain.KindNotFound:
		return fiber.StatusNotFound
	case domain.KindConflict:
		return fiber.StatusConflict
	case domain.KindInvalidArgument, domain.KindInvalidReference:
		return fiber.StatusBadRequest
	case domain.KindInvalidState:
		return fiber.StatusUnprocessableEntity
	case domain.KindForbidden:
		return fiber.StatusForbidden
	case domain.KindUnavailable:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
