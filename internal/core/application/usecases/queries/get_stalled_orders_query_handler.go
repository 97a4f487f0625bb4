package queries

import (
	"context"
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStalledOrdersQueryHandler finds confirmed orders that have been waiting
// for a courier longer than the query's age threshold.
type GetStalledOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetStalledOrdersQueryHandler creates a handler for stalled order queries.
func NewGetStalledOrdersQueryHandler(db *gorm.DB) GetStalledOrdersQueryHandler {
	return GetStalledOrdersQueryHandler{db: db}
}

// Handle returns confirmed orders created before now minus the query's max
// age, oldest first.
func (h GetStalledOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStalledOrdersQuery,
) ([]GetStalledOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().Add(-query.MaxAge())
	orders := make([]GetStalledOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			total,
			created_at
		FROM orders
		WHERE status = ?
		  AND created_at < ?
		ORDER BY created_at
	`, order.Confirmed.String(), cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetStalledOrdersQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &response.Total, &response.CreatedAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = orderID

		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
