// Package queries contains read operations that bypass the domain model.
// Query handlers read the database directly with raw SQL and return plain
// response structs, keeping reads cheap and side-effect free.
package queries

import (
	"errors"
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its line items.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order by id.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the full read model of one order, including the
// priced line items exactly as they were persisted at placement time.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	CustomerID    int64
	RestaurantID  int64
	AddressID     *int64
	Status        string
	PaymentStatus string
	Total         float64
	CreatedAt     time.Time
	Items         []GetOrderQueryItemResponse
}

// GetOrderQueryItemResponse is one priced line item of the order read model.
type GetOrderQueryItemResponse struct {
	ID       kernel.UUID
	ItemID   int64
	Quantity int
	Price    float64
}
