package order

import (
	"fmt"

	"orderservice/internal/pkg/errs"
)

// PaymentStatus tracks the outcome of the single charge attempt made for an
// order. It moves from PaymentPending to exactly one of PaymentSuccess or
// PaymentFailure; both outcomes are final.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined payment status.
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentPending means no charge outcome has been recorded yet.
	PaymentPending

	// PaymentSuccess means the charge was accepted by the payment collaborator.
	PaymentSuccess

	// PaymentFailure means the charge was declined or the collaborator was
	// unreachable. The two cases are deliberately not distinguished.
	PaymentFailure
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusUnknown: "UNKNOWN",
		PaymentPending:       "PENDING",
		PaymentSuccess:       "SUCCESS",
		PaymentFailure:       "FAILED",
	}
}

func getValidPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // PaymentStatusUnknown is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		PaymentPending: "PENDING",
		PaymentSuccess: "SUCCESS",
		PaymentFailure: "FAILED",
	}
}

// PaymentStatusFromString reconstructs a PaymentStatus from its storage
// representation. Returns an error for unrecognized strings.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getValidPaymentStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment status",
		fmt.Errorf("%q is not a valid payment status", s),
	)
}

// Validate checks that the PaymentStatus is one of the defined states.
func (p PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status",
			fmt.Errorf("%d is not a valid payment status", p),
		)
	}
	return nil
}

// String returns the wire/storage name, e.g. "PENDING". Implements fmt.Stringer.
func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "UNKNOWN"
}

// Succeed transitions PaymentPending to PaymentSuccess.
func (p PaymentStatus) Succeed() (PaymentStatus, error) {
	if p != PaymentPending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"payment status",
			fmt.Errorf("%s is not a valid payment status to succeed from", p.String()),
		)
	}

	return PaymentSuccess, nil
}

// Fail transitions PaymentPending to PaymentFailure.
func (p PaymentStatus) Fail() (PaymentStatus, error) {
	if p != PaymentPending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"payment status",
			fmt.Errorf("%s is not a valid payment status to fail from", p.String()),
		)
	}

	return PaymentFailure, nil
}
