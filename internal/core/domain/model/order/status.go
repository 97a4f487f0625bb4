package order

import (
	"fmt"

	"orderservice/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so that orders
// follow the ordered-commit workflow and never regress.
//
// State transitions:
//
//	PendingPayment ──┬──> Confirmed ──> OutForDelivery
//	                 │
//	                 └──> PaymentFailed (terminal)
//
// Status is a value object that validates state transitions and provides
// the wire/storage string representation of each state.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// PendingPayment is the initial status: the order and its items are
	// persisted but no charge has been attempted yet.
	PendingPayment

	// Confirmed indicates the charge succeeded. The order is awaiting
	// courier assignment.
	Confirmed

	// OutForDelivery indicates a courier was assigned to the confirmed order.
	OutForDelivery

	// PaymentFailed indicates the charge attempt failed.
	// This is a terminal state with no further transitions allowed.
	PaymentFailed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "UNKNOWN",
		PendingPayment: "PENDING_PAYMENT",
		Confirmed:      "CONFIRMED",
		OutForDelivery: "OUT_FOR_DELIVERY",
		PaymentFailed:  "PAYMENT_FAILED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		PendingPayment: "PENDING_PAYMENT",
		Confirmed:      "CONFIRMED",
		OutForDelivery: "OUT_FOR_DELIVERY",
		PaymentFailed:  "PAYMENT_FAILED",
	}
}

// StatusFromString reconstructs a Status from its storage representation.
// Returns an error for strings that do not name a valid status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"order status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire/storage name of the status, e.g. "PENDING_PAYMENT".
// Invalid values render as "UNKNOWN". Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ConfirmPayment transitions the status to Confirmed.
//
// Valid transitions:
//   - PendingPayment -> Confirmed (charge succeeded)
//
// Returns (0, error) for any other starting state.
func (s Status) ConfirmPayment() (Status, error) {
	if s != PendingPayment {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("%s is not a valid status to confirm payment", s.String()),
		)
	}

	return Confirmed, nil
}

// FailPayment transitions the status to the terminal PaymentFailed state.
//
// Valid transitions:
//   - PendingPayment -> PaymentFailed (charge failed or was unreachable)
//
// Returns (0, error) for any other starting state.
func (s Status) FailPayment() (Status, error) {
	if s != PendingPayment {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("%s is not a valid status to fail payment", s.String()),
		)
	}

	return PaymentFailed, nil
}

// StartDelivery transitions the status to OutForDelivery.
//
// Valid transitions:
//   - Confirmed -> OutForDelivery (courier assigned)
//
// Returns (0, error) for any other starting state. A confirmed order whose
// courier assignment failed simply never takes this transition.
func (s Status) StartDelivery() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("%s is not a valid status to start delivery", s.String()),
		)
	}

	return OutForDelivery, nil
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == PaymentFailed || s == OutForDelivery
}
