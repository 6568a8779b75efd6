// Package ring implements arbitrary precision commutative scalar rings: the
// integers, the rationals, the reals, the complexes and the integers modulo N.
//
// The package also defines the Ring, Element and Morphism interfaces through
// which the polynomial, series and matrix layers consume scalars. Any type
// satisfying these interfaces can serve as a coefficient ring, including the
// polynomial and series rings themselves, so rings nest freely.
//
// Rings are constructed explicitly by the caller (there are no package-level
// singletons) and equivalent instances compare equal by value:
// NewIntegerRing().Equal(NewIntegerRing()) is true.
package ring

import (
	"fmt"
)

// Element is the minimal capability set required from a scalar. All
// implementations are immutable value objects: every operation allocates a
// fresh result and no element is mutated after construction.
type Element interface {
	// Parent returns the ring the element belongs to.
	Parent() Ring

	Add(other Element) Element
	Sub(other Element) Element
	Neg() Element
	Mul(other Element) Element

	// Pow returns the element raised to the n-th power. Pow panics if n is
	// negative.
	Pow(n int) Element

	Equal(other Element) bool
	IsZero() bool

	// IsUnit returns true if the element has a multiplicative inverse.
	IsUnit() bool

	// Inverse returns the multiplicative inverse of the element, or an error
	// if the element is not a unit.
	Inverse() (Element, error)

	fmt.Stringer
}

// Ring is a commutative ring of Element values.
type Ring interface {
	Zero() Element
	One() Element

	// FromInt64 returns the image of n under the unique ring homomorphism
	// from the integers.
	FromInt64(n int64) Element

	// Equal reports whether the two rings are the same ring. Equality is by
	// value: two independently constructed instances of the same ring
	// compare equal.
	Equal(other Ring) bool

	// Exact reports whether arithmetic in the ring is exact. The reals and
	// complexes, which round to a fixed precision, are not exact.
	Exact() bool

	fmt.Stringer
}

// Signed is an optional capability for elements of ordered rings, used to
// fold negative coefficients into the sign of a printed term.
type Signed interface {
	// Sign returns -1, 0 or 1 depending on the sign of the element.
	Sign() int
}

// Morphism is a ring homomorphism.
type Morphism interface {
	Domain() Ring
	Codomain() Ring

	// Apply returns the image of x. It panics if x is not an element of the
	// domain.
	Apply(x Element) Element
}

// pow raises x to the n-th power by repeated squaring. It panics if n is
// negative.
func pow(x Element, n int) Element {
	if n < 0 {
		panic(fmt.Errorf("cannot raise a ring element to the negative power %d", n))
	}
	if n == 0 {
		return x.Parent().One()
	}

	apow := x
	for n&1 == 0 {
		apow = apow.Mul(apow)
		n >>= 1
	}

	res := apow
	n >>= 1
	for n > 0 {
		apow = apow.Mul(apow)
		if n&1 == 1 {
			res = apow.Mul(res)
		}
		n >>= 1
	}
	return res
}
