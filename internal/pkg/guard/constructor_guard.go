// Package guard holds ConstructorGuard, a marker embedded in commands,
// queries and value objects to tell constructed values from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is only non-zero when produced by NewConstructorGuard.
//
// Example:
//
//	type CancelOrderItemCommand struct {
//	    orderItemID kernel.ID
//	    guard       guard.ConstructorGuard
//	}
//
//	func (c CancelOrderItemCommand) Validate() error {
//	    return c.guard.Validate(ErrCancelOrderItemCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the enclosing value as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
