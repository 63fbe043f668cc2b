package order

import (
	"errors"
	"fmt"

	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one SKU+quantity line within an Order. Items are exclusively owned
// by their order: they are created only as part of order creation and their
// lifetime is bound to the order's.
//
// Item invariants:
//   - Must have a valid unique identifier
//   - SKU must not be empty
//   - Quantity must be positive (greater than 0)
type Item struct {
	id  kernel.UUID
	sku string
	qty int

	isConstructed bool
}

// NewItem creates an order line with validation. The identifier is generated
// here; items never receive externally supplied identities.
func NewItem(sku string, qty int) (*Item, error) {
	item := &Item{
		id:            kernel.NewUUID(),
		isConstructed: true,
	}

	if err := errors.Join(
		item.setSKU(sku),
		item.setQty(qty),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an item from persistence. The stored values are
// trusted to have passed validation when the order was created.
func RestoreItem(id kernel.UUID, sku string, qty int) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Item{
		id:            id,
		sku:           sku,
		qty:           qty,
		isConstructed: true,
	}, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// SKU returns the product identifier for this line.
func (i *Item) SKU() string {
	return i.sku
}

// Qty returns the ordered quantity.
func (i *Item) Qty() int {
	return i.qty
}

func (i *Item) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	i.sku = sku
	return nil
}

func (i *Item) setQty(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	i.qty = qty
	return nil
}
