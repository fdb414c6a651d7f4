// Package guard provides the constructor guard pattern used by domain
// objects and application commands to ensure instances are only created
// through their designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided and the object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects zero-value struct instantiation. Embed one in a
// struct and set it via NewConstructorGuard inside the constructor; a
// zero-value instance then fails Validate.
//
// Example:
//
//	type SuspendAgencyCommand struct {
//	    agencyID kernel.UUID
//	    reason   string
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewSuspendAgencyCommand(...) (SuspendAgencyCommand, error) {
//	    cmd := SuspendAgencyCommand{guard: guard.NewConstructorGuard()}
//	    ...
//	}
//
//	func (c SuspendAgencyCommand) Validate() error {
//	    return c.guard.Validate(ErrSuspendAgencyCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
