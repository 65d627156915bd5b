package handlers

import (
	"FoodBridge/domain"
	"FoodBridge/internal/api/presenters"
	"FoodBridge/pkg/delivery"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RouteHandler interface {
		ClaimDonation(c *fiber.Ctx) error
		ComputeRoute(c *fiber.Ctx) error
		GetRoutes(c *fiber.Ctx) error
		GetRouteByID(c *fiber.Ctx) error
		AssignDriver(c *fiber.Ctx) error
		MarkRouteStatus(c *fiber.Ctx) error
		GetDriverAvailability(c *fiber.Ctx) error
		GetDashboardStats(c *fiber.Ctx) error
	}

	routeHandler struct {
		deliveryService delivery.DeliveryService
		validator       *validator.Validate
	}
)

func NewRouteHandler(deliveryService delivery.DeliveryService, validator *validator.Validate) RouteHandler {
	return &routeHandler{
		deliveryService: deliveryService,
		validator:       validator,
	}
}

// ClaimDonation accepts a pending donation on behalf of the calling receptor.
func (h *routeHandler) ClaimDonation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	donationID := c.Params("id")

	res, err := h.deliveryService.ClaimDonation(c.Context(), donationID, userID)
	if err != nil {
		return presenters.FailureResponse(c, fiber.StatusBadRequest, domain.MessageFailedClaimDonation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessClaimDonation)
}

func (h *routeHandler) ComputeRoute(c *fiber.Ctx) error {
	donationID := c.Params("id")

	res, err := h.deliveryService.ComputeRoute(c.Context(), donationID)
	if err != nil {
		return presenters.FailureResponse(c, fiber.StatusBadRequest, domain.MessageFailedComputeRoute, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessComputeRoute)
}

func (h *routeHandler) GetRoutes(c *fiber.Ctx) error {
	status := c.Query("status")

	res, err := h.deliveryService.ListRoutes(c.Context(), status)
	if err != nil {
		return presenters.FailureResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRoutes, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"routes": res}, fiber.StatusOK, domain.MessageSuccessGetRoutes)
}

func (h *routeHandler) GetRouteByID(c *fiber.Ctx) error {
	routeID := c.Params("id")

	res, err := h.deliveryService.GetRouteByID(c.Context(), routeID)
	if err != nil {
		return presenters.FailureResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRoutes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRoutes)
}

func (h *routeHandler) AssignDriver(c *fiber.Ctx) error {
	routeID := c.Params("id")

	req := new(domain.AssignDriverRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAssignDriver, err)
	}

	res, err := h.deliveryService.AssignDriver(c.Context(), routeID, req.DriverID)
	if err != nil {
		return presenters.FailureResponse(c, fiber.StatusBadRequest, domain.MessageFailedAssignDriver, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAssignDriver)
}

func (h *routeHandler) MarkRouteStatus(c *fiber.Ctx) error {
	routeID := c.Params("id")

	req := new(domain.MarkRouteStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRouteStatus, err)
	}

	res, err := h.deliveryService.MarkRouteStatus(c.Context(), routeID, req.Status)
	if err != nil {
		return presenters.FailureResponse(c, fiber.StatusBadRequest, domain.MessageFailedRouteStatus, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRouteStatus)
}

func (h *routeHandler) GetDriverAvailability(c *fiber.Ctx) error {
	driverID := c.Params("id")

	availability, err := h.deliveryService.DriverAvailability(c.Context(), driverID)
	if err != nil {
		return presenters.FailureResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDrivers, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"driver_id":    driverID,
		"availability": availability,
	}, fiber.StatusOK, domain.MessageSuccessGetDrivers)
}

func (h *routeHandler) GetDashboardStats(c *fiber.Ctx) error {
	res, err := h.deliveryService.GetDashboardStats(c.Context())
	if err != nil {
		return presenters.FailureResponse(c, fiber.StatusBadRequest, domain.MessageFailedDashboard, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDashboard)
}
