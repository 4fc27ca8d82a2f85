// Package guard provides a defensive construction check for value objects
// and commands: embedding a ConstructorGuard lets a type detect whether it
// was created through its constructor or left as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// fails validation, so structs created outside their constructor are caught
// before any business logic runs on them.
//
// Example:
//
//	type ApproveOrderCommand struct {
//	    orderID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewApproveOrderCommand(id kernel.UUID) (ApproveOrderCommand, error) {
//	    ...
//	    return ApproveOrderCommand{orderID: id, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c ApproveOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrApproveOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its holder as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when nil is given.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
