package order

import (
	"errors"
	"fmt"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

// Item is one line of an order: a snapshot of a menu item, its quantity and
// its unit price as priced by the restaurant collaborator at order time.
// Items are created together with their Order and never mutated afterward,
// so later menu price changes cannot retroactively affect the order.
type Item struct {
	// id is the unique identifier for the line item, minted at creation
	id kernel.UUID

	// menuItemID references the restaurant's menu item
	menuItemID int64

	// quantity as requested by the customer (must be positive)
	quantity int

	// price is the authoritative unit price snapshot (must not be negative)
	price float64

	// isConstructed ensures the item was created via a constructor
	isConstructed bool
}

// NewItem creates a line item from an authoritative priced selection.
// The item id is minted here; menuItemID must be positive, quantity must be
// positive and price must not be negative.
func NewItem(menuItemID int64, quantity int, price float64) (*Item, error) {
	item := &Item{
		id:            kernel.NewUUID(),
		isConstructed: true,
	}

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs a line item from persistence with its stored id.
func RestoreItem(id kernel.UUID, menuItemID int64, quantity int, price float64) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	item, err := NewItem(menuItemID, quantity, price)
	if err != nil {
		return nil, err
	}

	item.id = id
	return item, nil
}

// Validate ensures the Item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}

	return nil
}

// ID returns the line item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// MenuItemID returns the referenced menu item identifier.
func (i *Item) MenuItemID() int64 {
	return i.menuItemID
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price snapshot taken at order-creation time.
func (i *Item) Price() float64 {
	return i.price
}

// Subtotal returns price multiplied by quantity.
func (i *Item) Subtotal() float64 {
	return i.price * float64(i.quantity)
}

func (i *Item) setMenuItemID(menuItemID int64) error {
	if menuItemID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("item id", fmt.Errorf("%d is not a valid item id", menuItemID))
	}
	i.menuItemID = menuItemID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is negative", price))
	}
	i.price = price
	return nil
}
