// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and the orders/order_items
// tables.
package orderrepo

import (
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database row for an order aggregate.
// Statuses are stored as their wire strings so rows stay inspectable when an
// orchestration stops partway through its flow.
type OrderDTO struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID    int64          `gorm:"not null;index"`
	RestaurantID  int64          `gorm:"not null;index"`
	AddressID     *int64         `gorm:"index"`
	Status        string         `gorm:"type:varchar(50);not null"`
	PaymentStatus string         `gorm:"type:varchar(50);not null"`
	Total         float64        `gorm:"not null"`
	CreatedAt     time.Time      `gorm:"not null"`
	Items         []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order rows.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one immutable line item row, owned by its order.
// Deleting an order cascades to its items; items never move between orders.
type OrderItemDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemID   int64     `gorm:"not null"`
	Quantity int       `gorm:"not null"`
	Price    float64   `gorm:"not null"`
}

// TableName specifies the database table name for line item rows.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation,
// items included.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:       item.ID().Bytes(),
			OrderID:  aggregate.ID().Bytes(),
			ItemID:   item.MenuItemID(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		CustomerID:    aggregate.CustomerID(),
		RestaurantID:  aggregate.RestaurantID(),
		AddressID:     aggregate.AddressID(),
		Status:        aggregate.Status().String(),
		PaymentStatus: aggregate.PaymentStatus().String(),
		Total:         aggregate.Total(),
		CreatedAt:     aggregate.CreatedAt(),
		Items:         items,
	}
}

// toDomain converts database rows back into an order aggregate via RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreItem(itemID, itemDTO.ItemID, itemDTO.Quantity, itemDTO.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.CustomerID,
		dto.RestaurantID,
		dto.AddressID,
		status,
		paymentStatus,
		dto.Total,
		dto.CreatedAt,
		items,
	)
}
