// Package guard provides ConstructorGuard, a marker embedded in value objects and
// commands to detect instances that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is zero (unconstructed) unless built through NewConstructorGuard.
//
// Example:
//
//	type ShipOrderCommand struct {
//	    orderName string
//	    guard     guard.ConstructorGuard
//	}
//
//	func (c ShipOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
