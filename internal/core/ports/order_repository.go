// Package ports defines the contracts between the application core and the
// outside world: transactional persistence for the order aggregate and the
// five remote collaborators the order orchestration depends on.
package ports

import (
	"context"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order and its line items are always written together; items are never
// stored or updated independently of their order.
type OrderRepository interface {
	// Add persists a new order aggregate together with all of its line items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, payment status and total of an existing order.
	// Line items are immutable and are not touched by updates.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, including
	// all of its line items. Returns an errs.ObjectNotFoundError when no
	// order with the given id exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
