// Package order provides the Order value accepted by the scheduler: a named order
// and the time after which it may be handed to a delivery provider.
//
// Key business rules:
//   - Orders must have a non-blank name and a due time
//   - An order is due once the current time is not before its due time
//   - Orders are never dispatched before they are due and never more than once
package order
