package domain

import "time"

var (
	MessageSuccessGetInventory    = "inventory retrieved successfully"
	MessageSuccessAccrueInventory = "inventory stock updated successfully"
	MessageSuccessAdjustInventory = "inventory quantity adjusted successfully"
	MessageSuccessDecrement       = "stock withdrawal registered successfully"

	MessageFailedGetInventory    = "failed to retrieve inventory"
	MessageFailedAccrueInventory = "failed to update inventory stock"
	MessageFailedAdjustInventory = "failed to adjust inventory quantity"
	MessageFailedDecrement       = "failed to register stock withdrawal"

	ErrInventoryItemNotFound = NewFailure(KindNotFound, "inventory item not found")
	ErrInvalidAccrualAmount  = NewFailure(KindInvalidArgument, "accrual amount must be positive")
	ErrInsufficientStock     = NewFailure(KindInvalidArgument, "insufficient stock for withdrawal")
	ErrNegativeQuantity      = NewFailure(KindInvalidArgument, "quantity cannot be negative")
	ErrInventoryForbidden    = NewFailure(KindForbidden, "this item does not belong to your inventory")
)

type (
	AccrueRequest struct {
		ReceptorID string  `json:"receptor_id" validate:"required,uuid"`
		Item       string  `json:"item" validate:"required,min=2"`
		Quantity   float64 `json:"quantity" validate:"required,gt=0"`
		Unit       string  `json:"unit" validate:"required"`
		Location   string  `json:"location" validate:"omitempty"`
	}

	DecrementRequest struct {
		Quantity float64 `json:"quantity" validate:"required,gt=0"`
	}

	AdjustQuantityRequest struct {
		Quantity float64 `json:"quantity" validate:"min=0"`
	}

	InventoryItem struct {
		ID         string    `json:"id"`
		ReceptorID string    `json:"receptor_id"`
		Item       string    `json:"item"`
		Quantity   float64   `json:"quantity"`
		Unit       string    `json:"unit"`
		Location   string    `json:"location,omitempty"`
		UpdatedAt  time.Time `json:"updated_at"`
	}
)
