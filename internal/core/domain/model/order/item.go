package order

import (
	"errors"
	"fmt"

	"pedido/internal/core/domain/model/kernel"
	"pedido/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory methods.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

// Item is a line item within an Order: one product-quantity pairing priced
// at creation time. Items are owned exclusively by their parent order; they
// are persisted and removed together with it and are never shared.
//
// The unit price is always the catalog's authoritative price at the moment
// the order was created, never a client-supplied value.
type Item struct {
	// id is assigned by the store together with the parent order's id
	id kernel.UUID

	// productID references an entry in the external catalog
	productID int64

	// quantity is the number of units ordered (at least 1)
	quantity int

	// unitPrice is the catalog price captured at order creation
	unitPrice float64

	// isConstructed ensures the item was created via a constructor
	isConstructed bool
}

// NewItem creates a priced line item. The id stays zero until the store
// assigns one on first persistence.
//
// Validation rules:
//   - productID must be positive
//   - quantity must be at least 1
//   - unitPrice must not be negative
func NewItem(productID int64, quantity int, unitPrice float64) (*Item, error) {
	item := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs a persisted line item, including its
// store-assigned identifier. Used by the persistence layer only.
func RestoreItem(id kernel.UUID, productID int64, quantity int, unitPrice float64) (*Item, error) {
	item, err := NewItem(productID, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	if err = id.Validate(); err != nil {
		return nil, err
	}
	item.id = id

	return item, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}

	return nil
}

// ID returns the item's identifier. Zero until the store assigns one.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the catalog identifier of the ordered product.
func (i *Item) ProductID() int64 {
	return i.productID
}

// Quantity returns the number of units ordered.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the catalog price captured at order creation.
func (i *Item) UnitPrice() float64 {
	return i.unitPrice
}

// Subtotal returns unitPrice multiplied by quantity.
func (i *Item) Subtotal() float64 {
	return i.unitPrice * float64(i.quantity)
}

// AssignID sets the store-assigned identifier.
// Fails if the id is invalid or the item already has one.
func (i *Item) AssignID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !i.id.IsZero() {
		return errs.NewValueIsInvalidError("item id is already assigned")
	}

	i.id = id
	return nil
}

func (i *Item) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("productID is invalid", fmt.Errorf("%d is not greater than 0", productID))
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is less than 1", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice is invalid", fmt.Errorf("%v is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}
