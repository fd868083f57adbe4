// Package order provides the domain model for customer orders.
//
// The package includes:
//   - Order: the aggregate root owning its line items and computed total
//   - Item: one product-quantity pairing, priced at creation time
//   - Status: the lifecycle state (PENDING, PAID, SHIPPED)
//
// Key business rules:
//   - Unit prices come from the external catalog at creation time; client
//     supplied prices are ignored
//   - The total always equals the sum of unitPrice x quantity over the items
//   - Items belong to exactly one order and are persisted with it
//   - Identifiers are assigned by the store on first persistence
//   - Status transitions beyond PENDING belong to other services
package order
