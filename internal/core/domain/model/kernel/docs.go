// Package kernel contains shared domain primitives used across aggregates.
//
// It currently provides the UUID value object that identifies orders and
// order items. Identifiers are assigned by the persistence layer on first
// save; until then aggregates carry the zero value, which fails validation.
package kernel
