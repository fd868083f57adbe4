package order

import (
	"errors"
	"fmt"

	"pedido/internal/core/domain/model/kernel"
	"pedido/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods. This ensures all
// orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents a customer's purchase request. It is the aggregate root
// owning its line items: items never outlive the order and are never shared
// across orders.
//
// Order follows these invariants:
//   - Must reference a customer
//   - Every item is valid and priced
//   - totalAmount equals the sum of unitPrice x quantity over the items
//     as resolved at creation time; no re-pricing happens afterwards
//   - The identifier stays zero until the store assigns one
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is assigned by the store on first persistence
	id kernel.UUID

	// customerID identifies the requesting customer; opaque to this service
	customerID string

	// items are the line items, owned exclusively by this order
	items []*Item

	// totalAmount is the computed monetary total
	totalAmount float64

	// status is the lifecycle state; always Pending at creation
	status Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an order from already-priced line items, computes the
// total, and marks it Pending. The identifier stays zero until the store
// persists the aggregate.
//
// An order with no items is accepted and totals zero; downstream services
// treat such orders like any other pending order.
func NewOrder(customerID string, items []*Item) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	for _, item := range o.items {
		o.totalAmount += item.Subtotal()
	}

	return o, nil
}

// RestoreOrder reconstructs a persisted order with its store-assigned
// identifier, total, and status. Used by the persistence layer only.
func RestoreOrder(
	id kernel.UUID,
	customerID string,
	items []*Item,
	totalAmount float64,
	status Status,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		o.setCustomerID(customerID),
		o.setItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if totalAmount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("totalAmount is invalid",
			fmt.Errorf("%v is negative", totalAmount))
	}

	o.id = id
	o.totalAmount = totalAmount
	o.status = status
	return o, nil
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

// ID returns the order's identifier. Zero until the store assigns one.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the requesting customer.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Items returns the order's line items in request order.
func (o *Order) Items() []*Item {
	return o.items
}

// TotalAmount returns the monetary total computed at creation time.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Status returns the current lifecycle status of the order.
func (o *Order) Status() Status {
	return o.status
}

// AssignID sets the store-assigned identifier.
// Fails if the id is invalid or the order already has one.
func (o *Order) AssignID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !o.id.IsZero() {
		return errs.NewValueIsInvalidError("order id is already assigned")
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
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}
