package commands

import (
	"errors"
	"fmt"

	"orderservice/internal/core/domain/model/kernel"
)

// ErrPaymentFailed marks the terminal payment failure outcome. The order row
// already exists and is marked failed by the time this error is returned.
var ErrPaymentFailed = errors.New("payment failed")

// PaymentFailedError carries the id of the order whose charge failed, so the
// caller can reconcile against the persisted failed order. It unwraps to
// ErrPaymentFailed.
type PaymentFailedError struct {
	OrderID kernel.UUID
	Cause   error
}

func NewPaymentFailedError(orderID kernel.UUID, cause error) *PaymentFailedError {
	return &PaymentFailedError{OrderID: orderID, Cause: cause}
}

func (e *PaymentFailedError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("payment failed for order %s", e.OrderID.String())
	}
	return fmt.Sprintf("payment failed for order %s: %s", e.OrderID.String(), e.Cause)
}

func (e *PaymentFailedError) Unwrap() error {
	return ErrPaymentFailed
}
