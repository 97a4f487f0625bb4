// Package order provides domain entities and business logic for food-order
// placement. It implements the Order aggregate root with lifecycle management
// and state transitions.
//
// The package includes:
//   - Order: The aggregate root owning identity, line items, total and lifecycle
//   - Item: An immutable line item with its unit-price snapshot
//   - Status: A state machine enforcing valid order status transitions
//   - PaymentStatus: The outcome of the single charge attempt made per order
//
// Key business rules:
//   - Orders must reference a customer and a restaurant and contain at least one item
//   - The order total is the sum of authoritative item prices times quantities
//   - Order status follows PENDING_PAYMENT -> CONFIRMED -> OUT_FOR_DELIVERY,
//     with PAYMENT_FAILED as the only other (terminal) outcome
//   - Line items are created with the order and never mutated afterward
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
