package queries

import (
	"errors"

	"orderservice/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery retrieves all orders visible under a customer scope,
// hydrated with their items. A non-empty customer identity limits the
// listing to that customer's own orders; an empty identity is the
// administrative scope and lists every order system-wide.
type GetAllOrdersQuery struct {
	customerID string

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a listing query. customerID may be empty for
// administrative (unscoped) access.
func NewGetAllOrdersQuery(customerID string) GetAllOrdersQuery {
	return GetAllOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// CustomerID returns the scoping customer identity ("" = administrative).
func (q GetAllOrdersQuery) CustomerID() string {
	return q.customerID
}
