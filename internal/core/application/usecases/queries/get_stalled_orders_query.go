package queries

import (
	"errors"
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/pkg/guard"
)

var (
	ErrGetStalledOrdersQueryIsNotConstructed = errors.New(
		"GetStalledOrdersQuery must be created via NewGetStalledOrdersQuery constructor",
	)
	ErrMaxAgeIsInvalid = errors.New("max age must be greater than 0")
)

// GetStalledOrdersQuery retrieves confirmed orders that never made it out
// for delivery within the given age. Courier assignment is best-effort, so
// such orders are expected to exist occasionally; this query makes them
// visible.
type GetStalledOrdersQuery struct {
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewGetStalledOrdersQuery creates a query for confirmed orders older than
// maxAge.
func NewGetStalledOrdersQuery(maxAge time.Duration) (GetStalledOrdersQuery, error) {
	if maxAge <= 0 {
		return GetStalledOrdersQuery{}, ErrMaxAgeIsInvalid
	}

	return GetStalledOrdersQuery{
		maxAge: maxAge,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStalledOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStalledOrdersQueryIsNotConstructed)
}

// MaxAge returns the age beyond which a confirmed order counts as stalled.
func (q GetStalledOrdersQuery) MaxAge() time.Duration {
	return q.maxAge
}

// GetStalledOrdersQueryResponse identifies one stalled order.
type GetStalledOrdersQueryResponse struct {
	ID        kernel.UUID
	Total     float64
	CreatedAt time.Time
}
