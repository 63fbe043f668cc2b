// Package queries contains the read side of the CQRS split. Query handlers
// run raw SQL against the database connection directly, bypassing the
// aggregate and unit-of-work machinery that the write side uses. Reads are
// not transactionally isolated from concurrent writes.
package queries

import (
	"errors"
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single hydrated order by its identifier.
//
// The customer scope controls visibility: with a non-empty customer
// identity the lookup only sees that customer's orders, so an order owned
// by someone else reads as not found rather than as a permission error.
// An empty customer identity is the administrative scope and sees any order.
type GetOrderQuery struct {
	orderID    kernel.UUID
	customerID string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order. customerID may be empty
// for administrative (unscoped) access.
func NewGetOrderQuery(orderID kernel.UUID, customerID string) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID:    orderID,
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
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

// CustomerID returns the scoping customer identity ("" = administrative).
func (q GetOrderQuery) CustomerID() string {
	return q.customerID
}

// OrderResponse is the hydrated order view returned by the read side.
type OrderResponse struct {
	ID         kernel.UUID
	CustomerID string
	Status     order.Status
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	Items      []OrderItemResponse
}

// OrderItemResponse is one order line within an OrderResponse.
type OrderItemResponse struct {
	ID  kernel.UUID
	SKU string
	Qty int
}
