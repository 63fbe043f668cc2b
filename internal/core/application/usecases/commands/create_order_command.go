package commands

import (
	"errors"
	"fmt"

	"orderservice/internal/pkg/errs"
	"orderservice/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one item is required")
)

// ItemLine is one submitted order line: a product identifier plus quantity.
type ItemLine struct {
	SKU string
	Qty int
}

// CreateOrderCommand represents a request to create a new order for a
// customer. The command carries the owning customer identity and the
// submitted item lines.
//
// An order cannot be created without items, and every line must carry a SKU
// and a positive quantity. These rules are enforced here, before any
// persistence is attempted, so an invalid payload never reaches the store.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID string
	items      []ItemLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the customer identity is present, the item list is
// non-empty, and every line has a SKU and a quantity greater than zero.
func NewCreateOrderCommand(customerID string, items []ItemLine) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerID(customerID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the identity of the customer owning the new order.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// Items returns the submitted item lines.
func (c CreateOrderCommand) Items() []ItemLine {
	return c.items
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerID")
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemLine) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for i, item := range items {
		if item.SKU == "" {
			return errs.NewValueIsRequiredError(fmt.Sprintf("items[%d].sku", i))
		}
		if item.Qty <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d].qty", i),
				fmt.Errorf("%d is not greater than 0", item.Qty),
			)
		}
	}

	c.items = items
	return nil
}
