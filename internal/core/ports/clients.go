package ports

import (
	"context"

	"orderservice/internal/core/domain/model/kernel"
)

// Customer is the subset of the customer collaborator's record that the
// order orchestration needs: the contact email (possibly empty) and the
// identifiers of the customer's known addresses.
type Customer struct {
	Email      string
	AddressIDs []int64
}

// CustomerClient reads customer records from the customer collaborator.
type CustomerClient interface {
	// GetCustomer fetches one customer by id. Any non-success transport
	// result surfaces as an error; the caller decides how to classify it.
	GetCustomer(ctx context.Context, customerID int64, correlationID kernel.CorrelationID) (Customer, error)
}

// ItemRequest is one requested line of an order as submitted by the caller,
// before the restaurant collaborator has priced it.
type ItemRequest struct {
	ItemID   int64
	Quantity int
}

// PricedItem is one line of an order as priced by the restaurant
// collaborator. Its unit price is authoritative and is persisted verbatim.
type PricedItem struct {
	ItemID    int64
	Quantity  int
	UnitPrice float64
}

// ItemValidation is the restaurant collaborator's verdict on a selection.
// When Valid is false, Reason explains why; when true, Total and Items carry
// the authoritative pricing.
type ItemValidation struct {
	Valid  bool
	Reason string
	Total  float64
	Items  []PricedItem
}

// RestaurantClient submits item selections to the restaurant collaborator's
// internal validation endpoint.
type RestaurantClient interface {
	// ValidateItems prices the requested items against the restaurant's
	// menu. A transport-level failure surfaces as an error; an invalid
	// selection comes back as ItemValidation{Valid: false}.
	ValidateItems(
		ctx context.Context,
		restaurantID int64,
		items []ItemRequest,
		correlationID kernel.CorrelationID,
	) (ItemValidation, error)
}

// ChargeRequest carries everything the payment collaborator needs to charge
// an order. The idempotency key is derived from the order id by the client,
// so a repeated charge for the same order is never double-processed.
type ChargeRequest struct {
	OrderID       kernel.UUID
	Amount        float64
	Method        string
	Reference     string
	CustomerEmail string
}

// PaymentClient submits charges to the payment collaborator.
type PaymentClient interface {
	// Charge makes exactly one charge attempt. A nil return means the
	// charge succeeded; any error means it did not. Declines and transport
	// faults are deliberately not distinguished.
	Charge(ctx context.Context, req ChargeRequest, correlationID kernel.CorrelationID) error
}

// DeliveryClient requests courier assignment from the delivery collaborator.
type DeliveryClient interface {
	// AssignCourier makes one assignment attempt for the order. A nil
	// return means a courier was assigned; any error means "not assigned"
	// with no further detail retained.
	AssignCourier(ctx context.Context, orderID kernel.UUID, correlationID kernel.CorrelationID) error
}

// EmailNotification describes one customer-facing notification.
type EmailNotification struct {
	EventType string
	Recipient string
	Subject   string
	Message   string
}

// NotificationClient sends best-effort customer notifications. Callers
// ignore the result; the error return exists only so it can be logged.
type NotificationClient interface {
	SendEmail(ctx context.Context, notification EmailNotification, correlationID kernel.CorrelationID) error
}
