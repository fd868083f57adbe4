package commands

import (
	"errors"
	"fmt"

	"pedido/internal/pkg/errs"
	"pedido/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerIsRequired = errors.New("customerId is required")
)

// CreateOrderLine is one requested product-quantity pairing within a
// CreateOrderCommand. It carries no price: prices are resolved from the
// catalog during handling and any client-supplied value is ignored.
type CreateOrderLine struct {
	ProductID int64
	Quantity  int
}

// CreateOrderCommand represents a request to place a new order.
// Encapsulates the requesting customer and the desired line items.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("customer-1", []CreateOrderLine{
//	    {ProductID: 1, Quantity: 2},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, catalog)
//	placed, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID string
	lines      []CreateOrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the customer is present and every line references a
// positive product identifier with a quantity of at least 1. An empty line
// list is accepted: such an order totals zero.
func NewCreateOrderCommand(customerID string, lines []CreateOrderLine) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerID(customerID),
		orderCommand.setLines(lines),
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

// CustomerID returns the identifier of the requesting customer.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// Lines returns the requested line items in request order.
func (c CreateOrderCommand) Lines() []CreateOrderLine {
	return c.lines
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return ErrCustomerIsRequired
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []CreateOrderLine) error {
	for _, line := range lines {
		if line.ProductID <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("productId is invalid",
				fmt.Errorf("%d is not greater than 0", line.ProductID))
		}
		if line.Quantity < 1 {
			return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
				fmt.Errorf("%d is less than 1", line.Quantity))
		}
	}

	c.lines = lines
	return nil
}
