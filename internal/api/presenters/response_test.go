package presenters

import (
	"FoodBridge/domain"
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", domain.ErrDonationNotFound, fiber.StatusNotFound},
		{"conflict", domain.ErrDonationAlreadyTaken, fiber.StatusConflict},
		{"invalid argument", domain.ErrInvalidQuantity, fiber.StatusBadRequest},
		{"invalid reference", domain.ErrNotADriver, fiber.StatusBadRequest},
		{"invalid state", domain.ErrDonationNotClaimable, fiber.StatusUnprocessableEntity},
		{"forbidden", domain.ErrUserNotAllowed, fiber.StatusForbidden},
		{"unavailable", domain.NewFailure(domain.KindUnavailable, "down"), fiber.StatusServiceUnavailable},
		{"internal", domain.NewFailure(domain.KindInternal, "boom"), fiber.StatusInternalServerError},
		{"unclassified", errors.New("driver exploded"), fiber.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusFromError(tc.err, fiber.StatusBadRequest))
		})
	}
}

func TestStatusFromErrorUnwrapsChains(t *testing.T) {
	wrapped := fmt.Errorf("looking up route: %w", domain.ErrRouteNotFound)
	assert.Equal(t, fiber.StatusNotFound, StatusFromError(wrapped, fiber.StatusBadRequest))
}
