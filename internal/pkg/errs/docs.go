// Package errs provides the typed errors shared by the dispatch service.
//
// Each error type follows the same shape:
//   - a sentinel variable (e.g. ErrValueIsRequired) for errors.Is checks
//   - a struct carrying the offending parameter and an optional cause
//   - New...Error and New...ErrorWithCause constructors
//   - Unwrap returning the sentinel
//
// Domain constructors and the delivery store return these errors so callers can
// classify failures (not found, invalid transition, missing value) without string matching.
package errs
