package commands

import (
	"errors"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/ports"
	"orderservice/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerIDIsInvalid   = errors.New("customer id must be greater than 0")
	ErrRestaurantIDIsInvalid = errors.New("restaurant id must be greater than 0")
	ErrAddressIDIsInvalid    = errors.New("address id must be greater than 0 when provided")
	ErrItemSelectionIsInvalid = errors.New(
		"every requested item must have an id and a quantity greater than 0",
	)
)

// DefaultPaymentMethod is used when the caller does not name one.
const DefaultPaymentMethod = "CARD"

// CreateOrderCommand represents a request to place a food order. It carries
// the caller's raw selection; authoritative pricing comes later from the
// restaurant collaborator. An empty item list is accepted here so the
// orchestration can reject it as an empty order rather than a malformed
// command.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID    int64
	restaurantID  int64
	addressID     *int64
	items         []ports.ItemRequest
	paymentMethod string
	customerEmail string
	correlationID kernel.CorrelationID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order. The payment
// method defaults to DefaultPaymentMethod, the email is optional, and the
// address is optional but must be positive when present.
func NewCreateOrderCommand(
	customerID int64,
	restaurantID int64,
	addressID *int64,
	items []ports.ItemRequest,
	paymentMethod string,
	customerEmail string,
	correlationID kernel.CorrelationID,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerID(customerID),
		orderCommand.setRestaurantID(restaurantID),
		orderCommand.setAddressID(addressID),
		orderCommand.setItems(items),
		orderCommand.setPaymentMethod(paymentMethod),
		orderCommand.setCorrelationID(correlationID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.customerEmail = customerEmail
	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateOrderCommand) CustomerID() int64 {
	return c.customerID
}

// RestaurantID returns the identifier of the restaurant being ordered from.
func (c CreateOrderCommand) RestaurantID() int64 {
	return c.restaurantID
}

// AddressID returns the optional delivery address identifier.
func (c CreateOrderCommand) AddressID() *int64 {
	if c.addressID == nil {
		return nil
	}
	addressID := *c.addressID
	return &addressID
}

// Items returns the requested selection, unpriced.
func (c CreateOrderCommand) Items() []ports.ItemRequest {
	items := make([]ports.ItemRequest, len(c.items))
	copy(items, c.items)
	return items
}

// PaymentMethod returns the payment method for the charge.
func (c CreateOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

// CustomerEmail returns the caller-supplied contact email, possibly empty.
func (c CreateOrderCommand) CustomerEmail() string {
	return c.customerEmail
}

// CorrelationID returns the correlation token of the inbound request.
func (c CreateOrderCommand) CorrelationID() kernel.CorrelationID {
	return c.correlationID
}

func (c *CreateOrderCommand) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return ErrCustomerIDIsInvalid
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID int64) error {
	if restaurantID <= 0 {
		return ErrRestaurantIDIsInvalid
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setAddressID(addressID *int64) error {
	if addressID == nil {
		return nil
	}
	if *addressID <= 0 {
		return ErrAddressIDIsInvalid
	}

	value := *addressID
	c.addressID = &value
	return nil
}

func (c *CreateOrderCommand) setItems(items []ports.ItemRequest) error {
	for _, item := range items {
		if item.ItemID <= 0 || item.Quantity <= 0 {
			return ErrItemSelectionIsInvalid
		}
	}

	c.items = make([]ports.ItemRequest, len(items))
	copy(c.items, items)
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		paymentMethod = DefaultPaymentMethod
	}

	c.paymentMethod = paymentMethod
	return nil
}

func (c *CreateOrderCommand) setCorrelationID(correlationID kernel.CorrelationID) error {
	if err := correlationID.Validate(); err != nil {
		return err
	}

	c.correlationID = correlationID
	return nil
}
