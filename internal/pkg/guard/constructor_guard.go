// Package guard provides a defensive construction pattern for domain objects.
// Embedding a ConstructorGuard in a value object makes zero-value instances
// detectable, so aggregates restored from persistence or built by hand cannot
// bypass constructor validation unnoticed.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes objects built through their constructor from
// zero values. The guard is immutable and safe for concurrent use.
//
// Example:
//
//	type Payment struct {
//	    amount float64
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewPayment(amount float64) (Payment, error) {
//	    if amount < 0 {
//	        return Payment{}, errors.New("amount cannot be negative")
//	    }
//	    return Payment{amount: amount, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p Payment) Validate() error {
//	    return p.guard.Validate(ErrPaymentIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed. Call it only
// from the owning type's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns notConstructed, or ErrDefaultConstructorGuard when notConstructed
// is nil.
func (g ConstructorGuard) Validate(notConstructed error) error {
	if g.isConstructed {
		return nil
	}
	if notConstructed == nil {
		return ErrDefaultConstructorGuard
	}
	return notConstructed
}
