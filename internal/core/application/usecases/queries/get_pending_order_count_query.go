package queries

import (
	"errors"

	"orderservice/internal/pkg/guard"
)

var (
	ErrGetPendingOrderCountQueryIsNotConstructed = errors.New(
		"GetPendingOrderCountQuery must be created via NewGetPendingOrderCountQuery constructor",
	)
)

// GetPendingOrderCountQuery counts orders still in Pending status.
// Feeds the periodic backlog report; a parameterless system-wide query.
type GetPendingOrderCountQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingOrderCountQuery creates a query counting pending orders.
func NewGetPendingOrderCountQuery() GetPendingOrderCountQuery {
	return GetPendingOrderCountQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingOrderCountQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrderCountQueryIsNotConstructed)
}
