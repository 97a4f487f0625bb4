package order

import (
	"errors"
	"fmt"
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderHasNoItems is returned when an order would be created without
	// any line items. Empty orders are rejected before persistence.
	ErrOrderHasNoItems = errors.New("Order must contain at least one item")
)

// Order is the aggregate root for one placed food order. It owns its line
// items and the two status machines that record how far the placement
// orchestration progressed.
//
// Order maintains these invariants:
//   - At least one line item, all created together with the order
//   - The total always equals the sum of price x quantity over its items
//   - Status transitions never regress; PaymentFailed is terminal
//   - Instances exist only via NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier, minted at creation
	id kernel.UUID

	// customerID and restaurantID reference external entities
	customerID   int64
	restaurantID int64

	// addressID optionally references one of the customer's addresses
	addressID *int64

	// status is the order lifecycle state
	status Status

	// paymentStatus records the outcome of the single charge attempt
	paymentStatus PaymentStatus

	// total is computed from the authoritative item prices, never from the caller
	total float64

	// createdAt is set once at creation and immutable afterward
	createdAt time.Time

	// items are the immutable line items owned by this order
	items []*Item

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an order in PendingPayment/PaymentPending state from
// authoritatively priced line items. The order id is minted here and the
// total is computed as the sum of the items' subtotals; a caller-supplied
// total is never accepted.
func NewOrder(customerID, restaurantID int64, addressID *int64, items []*Item) (*Order, error) {
	order := &Order{
		id:            kernel.NewUUID(),
		status:        PendingPayment,
		paymentStatus: PaymentPending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setCustomerID(customerID),
		order.setRestaurantID(restaurantID),
		order.setAddressID(addressID),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	for _, item := range items {
		order.total += item.Subtotal()
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence. The stored total and
// timestamps are trusted as written; statuses must be valid lifecycle states.
func RestoreOrder(
	id kernel.UUID,
	customerID, restaurantID int64,
	addressID *int64,
	status Status,
	paymentStatus PaymentStatus,
	total float64,
	createdAt time.Time,
	items []*Item,
) (*Order, error) {
	order := &Order{
		total:         total,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setRestaurantID(restaurantID),
		order.setAddressID(addressID),
		order.setStatus(status),
		order.setPaymentStatus(paymentStatus),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the external customer reference.
func (o *Order) CustomerID() int64 {
	return o.customerID
}

// RestaurantID returns the external restaurant reference.
func (o *Order) RestaurantID() int64 {
	return o.restaurantID
}

// AddressID returns the optional delivery address reference.
// Returns nil when the order was placed without an address.
func (o *Order) AddressID() *int64 {
	return o.addressID
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the recorded charge outcome.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Total returns the order total computed from the authoritative item prices.
func (o *Order) Total() float64 {
	return o.total
}

// CreatedAt returns the immutable creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns the order's line items. The slice must not be mutated.
func (o *Order) Items() []*Item {
	return o.items
}

// ConfirmPayment records a successful charge: the order moves to Confirmed
// and the payment status to PaymentSuccess. Only valid from
// PendingPayment/PaymentPending.
func (o *Order) ConfirmPayment() error {
	newStatus, err := o.status.ConfirmPayment()
	if err != nil {
		return err
	}

	newPaymentStatus, err := o.paymentStatus.Succeed()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.paymentStatus = newPaymentStatus
	return nil
}

// FailPayment records a failed charge: the order moves to the terminal
// PaymentFailed state and the payment status to PaymentFailure. Only valid
// from PendingPayment/PaymentPending.
func (o *Order) FailPayment() error {
	newStatus, err := o.status.FailPayment()
	if err != nil {
		return err
	}

	newPaymentStatus, err := o.paymentStatus.Fail()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.paymentStatus = newPaymentStatus
	return nil
}

// StartDelivery records a successful courier assignment, moving the order
// from Confirmed to OutForDelivery. A confirmed order whose assignment
// failed simply stays Confirmed.
func (o *Order) StartDelivery() error {
	newStatus, err := o.status.StartDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"customer id",
			fmt.Errorf("%d is not a valid customer id", customerID),
		)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID int64) error {
	if restaurantID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"restaurant id",
			fmt.Errorf("%d is not a valid restaurant id", restaurantID),
		)
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setAddressID(addressID *int64) error {
	if addressID != nil && *addressID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"address id",
			fmt.Errorf("%d is not a valid address id", *addressID),
		)
	}
	o.addressID = addressID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setPaymentStatus(paymentStatus PaymentStatus) error {
	if err := paymentStatus.Validate(); err != nil {
		return err
	}
	o.paymentStatus = paymentStatus
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = items
	return nil
}
