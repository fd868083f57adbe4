package order

import (
	"fmt"

	"pedido/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Orders are always created in Pending status. The transitions to Paid and
// Shipped are driven by the payment and shipping services; no component of
// this service performs them, so Status only validates and renders values.
//
//	Pending ──> Paid ──> Shipped
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned when an order is created.
	Pending

	// Paid indicates the order has been paid for.
	Paid

	// Shipped indicates the order has been handed to shipping.
	Shipped
)

// getStatusStrings returns a map of Status values to their wire representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "UNKNOWN",
		Pending: "PENDING",
		Paid:    "PAID",
		Shipped: "SHIPPED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending: "PENDING",
		Paid:    "PAID",
		Shipped: "SHIPPED",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, Paid, and Shipped; Unknown (0) and any
// other values are invalid. Used when reconstructing orders from the
// database or other external sources.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status, e.g. "PENDING".
// Invalid values render as "UNKNOWN". Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
