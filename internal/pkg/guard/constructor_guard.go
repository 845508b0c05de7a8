// Package guard implements the constructor-guard pattern used by domain value
// objects and commands. Embedding a ConstructorGuard in a struct makes it
// possible to tell a properly constructed instance apart from a zero value,
// which keeps validation at the constructor and invariants intact afterwards.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is supplied and the guarded object was not built via its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. The zero value fails validation, so structs embedding a guard
// cannot be used as bare literals.
//
// Example:
//
//	type Money struct {
//	    amount decimal.Decimal
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewMoney(amount decimal.Decimal) (Money, error) {
//	    if amount.IsNegative() {
//	        return Money{}, errors.New("amount cannot be negative")
//	    }
//	    return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (m Money) Validate() error {
//	    return m.guard.Validate(ErrMoneyIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed. Call it from the object's constructor only.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed object. For a zero-value
// guard it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
