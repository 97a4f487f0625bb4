package validation

import (
	"context"
	"errors"
	"fmt"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/ports"
	"orderservice/internal/pkg/errs"
)

var (
	// ErrEmptyOrder means the caller submitted no items. Detected locally,
	// before any remote call.
	ErrEmptyOrder = errors.New("order must contain at least one item")

	// ErrMenuValidationFailed means the restaurant collaborator could not
	// deliver a verdict. A dependency fault, not a client error.
	ErrMenuValidationFailed = errors.New("menu validation failed")

	// ErrInvalidMenuSelection means the restaurant rejected the selection.
	ErrInvalidMenuSelection = errors.New("invalid menu selection")
)

// InvalidMenuSelectionError carries the restaurant's reason for rejecting a
// selection. It unwraps to ErrInvalidMenuSelection.
type InvalidMenuSelectionError struct {
	Reason string
}

func NewInvalidMenuSelectionError(reason string) *InvalidMenuSelectionError {
	return &InvalidMenuSelectionError{Reason: reason}
}

func (e *InvalidMenuSelectionError) Error() string {
	if e.Reason == "" {
		return ErrInvalidMenuSelection.Error()
	}
	return fmt.Sprintf("%s: %s", ErrInvalidMenuSelection.Error(), e.Reason)
}

func (e *InvalidMenuSelectionError) Unwrap() error {
	return ErrInvalidMenuSelection
}

// MenuValidator checks a requested selection against the restaurant's menu
// and returns the authoritative pricing. Caller-supplied prices do not exist
// in this flow; whatever the restaurant answers is persisted verbatim.
type MenuValidator struct {
	restaurantClient ports.RestaurantClient
}

func NewMenuValidator(restaurantClient ports.RestaurantClient) (*MenuValidator, error) {
	if restaurantClient == nil {
		return nil, errs.NewValueIsRequiredError("restaurantClient")
	}
	return &MenuValidator{restaurantClient: restaurantClient}, nil
}

// Validate prices the selection. An empty selection fails before any remote
// call is made.
func (v *MenuValidator) Validate(
	ctx context.Context,
	restaurantID int64,
	items []ports.ItemRequest,
	correlationID kernel.CorrelationID,
) (ports.ItemValidation, error) {
	if len(items) == 0 {
		return ports.ItemValidation{}, ErrEmptyOrder
	}

	verdict, err := v.restaurantClient.ValidateItems(ctx, restaurantID, items, correlationID)
	if err != nil {
		return ports.ItemValidation{}, fmt.Errorf("%w: %w", ErrMenuValidationFailed, err)
	}

	if !verdict.Valid {
		return ports.ItemValidation{}, NewInvalidMenuSelectionError(verdict.Reason)
	}

	return verdict, nil
}
