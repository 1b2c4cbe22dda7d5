package services

import (
	"errors"
	"fmt"
)

// Error categories. Controllers map these to HTTP codes with errors.Is:
// ErrValidation -> 400, ErrNotFound -> 404, ErrInvalidState -> 409.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
)

var (
	ErrCustomerNameRequired = fmt.Errorf("%w: customer name is required", ErrValidation)
	ErrNoItems              = fmt.Errorf("%w: order must have at least one item", ErrValidation)
	ErrBadQuantity          = fmt.Errorf("%w: item quantity must be at least 1", ErrValidation)
	ErrBadPaymentMethod     = fmt.Errorf("%w: unknown payment method", ErrValidation)
	ErrBadCookingStatus     = fmt.Errorf("%w: unknown cooking status", ErrValidation)
	ErrLastItem             = fmt.Errorf("%w: cannot remove the last item of an order", ErrValidation)

	ErrOrderNotFound        = fmt.Errorf("order %w", ErrNotFound)
	ErrItemNotFound         = fmt.Errorf("item %w in order", ErrNotFound)
	ErrMenuItemNotFound     = fmt.Errorf("menu item %w", ErrNotFound)
	ErrNotificationNotFound = fmt.Errorf("notification %w", ErrNotFound)

	ErrOrderCompleted   = fmt.Errorf("%w: order is already completed", ErrInvalidState)
	ErrItemInProcess    = fmt.Errorf("%w: cannot cancel, an item is in process", ErrInvalidState)
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// menuItemError keeps the offending name in the message while staying
// matchable as both ErrMenuItemNotFound and ErrValidation at the boundary.
func menuItemError(name string) error {
	return fmt.Errorf("%w: %q is not on the menu", ErrValidation, name)
}
