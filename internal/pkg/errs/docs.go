// Package errs provides standardized error types for the order service.
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g., ErrValueIsRequired) for errors.Is checks
//   - a struct carrying the error details (parameter name, offending value, cause)
//   - constructor functions with and without a cause
//   - Error() and Unwrap() so callers can format and classify uniformly
//
// Domain and adapter code wraps its failures in these types instead of
// ad hoc fmt.Errorf strings, which keeps classification (not found vs
// invalid vs required) reliable at the HTTP boundary.
package errs
