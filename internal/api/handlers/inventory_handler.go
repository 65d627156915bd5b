package handlers

import (
	"FoodBridge/domain"
	"FoodBridge/internal/api/presenters"
	"FoodBridge/pkg/inventory"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	InventoryHandler interface {
		GetInventory(c *fiber.Ctx) error
		GetInventoryItem(c *fiber.Ctx) error
		Accrue(c *fiber.Ctx) error
		Decrement(c *fiber.Ctx) error
		AdjustQuantity(c *fiber.Ctx) error
	}

	inventoryHandler struct {
		inventoryService inventory.InventoryService
		validator        *validator.Validate
	}
)

func NewInventoryHandler(inventoryService inventory.InventoryService, validator *validator.Validate) InventoryHandler {
	return &inventoryHandler{
		inventoryService: inventoryService,
		validator:        validator,
	}
}

// GetInventory lists the caller's stock. Admins can inspect any receptor via
// the receptor_id query.
func (h *inventoryHandler) GetInventory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	receptorID := userID
	if role == domain.RoleAdmin && c.Query("receptor_id") != "" {
		receptorID = c.Query("receptor_id")
	}

	res, err := h.inventoryService.ListByReceptor(c.Context(), receptorID)
	if err != nil {
		return presenters.FailureResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetInventory, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"items": res}, fiber.StatusOK, domain.MessageSuccessGetInventory)
}

func (h *inventoryHandler) GetInventoryItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)
	itemID := c.Params("id")

	res, err := h.inventoryService.GetItem(c.Context(), itemID)
	if err != nil {
		return presenters.FailureResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetInventory, err)
	}

	if role != domain.RoleAdmin && res.ReceptorID != userID {
		return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedGetInventory, domain.ErrInventoryForbidden)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetInventory)
}

// Accrue registers stock received outside the delivery flow, for example a
// direct drop-off at the receptor.
func (h *inventoryHandler) Accrue(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	req := new(domain.AccrueRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	// Receptors can only book stock into their own inventory.
	if role != domain.RoleAdmin {
		req.ReceptorID = userID
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAccrueInventory, err)
	}

	res, err := h.inventoryService.Accrue(c.Context(), *req)
	if err != nil {
		return presenters.FailureResponse(c, fiber.StatusBadRequest, domain.MessageFailedAccrueInventory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAccrueInventory)
}

func (h *inventoryHandler) Decrement(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)
	itemID := c.Params("id")

	req := new(domain.DecrementRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDecrement, err)
	}

	if err := h.inventoryService.Decrement(c.Context(), itemID, req.Quantity, userID, role); err != nil {
		return presenters.FailureResponse(c, fiber.StatusBadRequest, domain.MessageFailedDecrement, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDecrement)
}

func (h *inventoryHandler) AdjustQuantity(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)
	itemID := c.Params("id")

	req := new(domain.AdjustQuantityRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAdjustInventory, err)
	}

	if err := h.inventoryService.AdjustQuantity(c.Context(), itemID, req.Quantity, userID, role); err != nil {
		return presenters.FailureResponse(c, fiber.StatusBadRequest, domain.MessageFailedAdjustInventory, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessAdjustInventory)
}
