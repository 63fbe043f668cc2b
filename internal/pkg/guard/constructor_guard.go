// Package guard provides a constructor guard for value objects, commands and
// queries. Embedding a ConstructorGuard and validating it forces callers to
// build instances through the type's constructor instead of a struct literal,
// so validation can never be bypassed.
package guard

import "errors"

// ErrIsNotConstructed is the default error returned when an object carrying
// a zero-value guard is validated.
var ErrIsNotConstructed = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether its owner was built through a constructor.
// The zero value is invalid; NewConstructorGuard produces a valid guard.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guard was properly constructed. Otherwise it
// returns notConstructedErr, or ErrIsNotConstructed when none is given.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}

	if notConstructedErr == nil {
		return ErrIsNotConstructed
	}
	return notConstructedErr
}
