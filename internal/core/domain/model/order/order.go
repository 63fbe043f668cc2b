package order

import (
	"errors"
	"time"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods. This ensures all
// orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for a customer's order. It holds the order
// header together with its line items and tracks the lifecycle status.
//
// Order invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty owning customer identity
//   - Must have at least one item at creation
//   - Status transitions follow the rules defined on Status
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation; the updated
// timestamp stays nil until the first status transition.
type Order struct {
	id         kernel.UUID
	customerID string
	status     Status
	createdAt  time.Time
	updatedAt  *time.Time
	items      []*Item

	isConstructed bool
}

// NewOrder creates a new Order owned by customerID with the given items.
// The order starts in Pending status with a creation timestamp of now.
// Returns a validation error when the customer identity is missing or the
// item list is empty.
func NewOrder(id kernel.UUID, customerID string, items []*Item) (*Order, error) {
	order := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence, including its current
// status and timestamps. Used by the storage adapter when hydrating rows.
func RestoreOrder(
	id kernel.UUID,
	customerID string,
	status Status,
	createdAt time.Time,
	updatedAt *time.Time,
	items []*Item,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if customerID == "" {
		return nil, errs.NewValueIsRequiredError("customerID")
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		items:         items,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identity of the customer owning the order.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last-updated timestamp.
// Returns nil until the order has gone through its first status transition.
func (o *Order) UpdatedAt() *time.Time {
	return o.updatedAt
}

// Items returns the order's line items.
func (o *Order) Items() []*Item {
	return o.items
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerID")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = items
	return nil
}
