package ports

import (
	"context"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Lookups accept an optional owning customer identity: a non-empty
// customerID scopes the query so that somebody else's order is
// indistinguishable from a non-existent one, while an empty customerID
// grants unrestricted (administrative) visibility.
type OrderRepository interface {
	// Add persists a new order aggregate together with all of its items.
	// The write is atomic: either the order row and every item row are
	// stored, or nothing is.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves a hydrated order by its identifier, scoped to the
	// given customer when customerID is non-empty. Returns an
	// errs.ObjectNotFoundError when no matching row is visible.
	Get(ctx context.Context, id kernel.UUID, customerID string) (*order.Order, error)

	// GetAll retrieves all hydrated orders visible under the customer
	// scope, in creation-time ascending order.
	GetAll(ctx context.Context, customerID string) ([]*order.Order, error)

	// UpdateStatusIf atomically advances the order's status from expected
	// to next, matching on id, owning customer and current status in a
	// single conditional write. When no row matches (wrong id, wrong
	// owner, or status already advanced) it performs no write and returns
	// an errs.ObjectNotFoundError; otherwise it returns the rehydrated
	// updated order.
	UpdateStatusIf(
		ctx context.Context,
		id kernel.UUID,
		customerID string,
		expected order.Status,
		next order.Status,
	) (*order.Order, error)
}
