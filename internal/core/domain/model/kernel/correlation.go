package kernel

import (
	"orderservice/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrCorrelationIDIsNotConstructed is returned when validating a zero-value
// CorrelationID that bypassed the constructor functions.
var ErrCorrelationIDIsNotConstructed = errs.NewValueIsRequiredError(
	"CorrelationID must be created via NewCorrelationID or CorrelationIDFromString",
)

// CorrelationID is the opaque token that ties together every outbound call
// and log line produced on behalf of one inbound request. It is taken from
// the X-Correlation-Id header when present and generated otherwise.
//
// CorrelationID is a value object: immutable, compared by value, and only
// valid when produced by one of its constructors.
type CorrelationID struct {
	value string
}

// NewCorrelationID generates a fresh random correlation token.
func NewCorrelationID() CorrelationID {
	return CorrelationID{value: uuid.NewString()}
}

// CorrelationIDFromString adopts a caller-supplied token, generating a new
// one when the input is empty. Inbound requests without a correlation header
// therefore always end up with a usable token.
func CorrelationIDFromString(s string) CorrelationID {
	if s == "" {
		return NewCorrelationID()
	}
	return CorrelationID{value: s}
}

// String returns the token for use in headers and log fields.
func (c CorrelationID) String() string {
	return c.value
}

// IsEqual compares two correlation tokens by value.
func (c CorrelationID) IsEqual(other CorrelationID) bool {
	return c.value == other.value
}

// Validate returns ErrCorrelationIDIsNotConstructed for the zero value.
func (c CorrelationID) Validate() error {
	if c.value == "" {
		return ErrCorrelationIDIsNotConstructed
	}
	return nil
}
