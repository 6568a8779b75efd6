package ring

import (
	"fmt"
	"math/big"
)

// RationalRing is the field of rational numbers, backed by math/big.Rat.
type RationalRing struct{}

// NewRationalRing returns the field of rational numbers.
func NewRationalRing() RationalRing {
	return RationalRing{}
}

// Zero returns the additive identity.
func (r RationalRing) Zero() Element {
	return Rational{v: new(big.Rat)}
}

// One returns the multiplicative identity.
func (r RationalRing) One() Element {
	return Rational{v: big.NewRat(1, 1)}
}

// FromInt64 returns n as an element of the ring.
func (r RationalRing) FromInt64(n int64) Element {
	return Rational{v: big.NewRat(n, 1)}
}

// FromInt64Quotient returns p/q as an element of the ring. It panics if q is
// zero.
func (r RationalRing) FromInt64Quotient(p, q int64) Element {
	return Rational{v: big.NewRat(p, q)}
}

// Equal reports whether other is also the field of rationals.
func (r RationalRing) Equal(other Ring) bool {
	_, ok := other.(RationalRing)
	return ok
}

// Exact returns true.
func (r RationalRing) Exact() bool {
	return true
}

func (r RationalRing) String() string {
	return "The field of rational numbers (via math/big.Rat)."
}

// Rational is an element of RationalRing.
type Rational struct {
	v *big.Rat
}

func asRational(x Element) Rational {
	y, ok := x.(Rational)
	if !ok {
		panic(fmt.Errorf("expected a rational operand but got %T", x))
	}
	return y
}

// Parent returns the field of rationals.
func (x Rational) Parent() Ring {
	return RationalRing{}
}

// BigRat returns a copy of the underlying big.Rat.
func (x Rational) BigRat() *big.Rat {
	return new(big.Rat).Set(x.v)
}

// Numerator returns the numerator of x as an integer.
func (x Rational) Numerator() Integer {
	return Integer{v: new(big.Int).Set(x.v.Num())}
}

// Denominator returns the denominator of x as an integer.
func (x Rational) Denominator() Integer {
	return Integer{v: new(big.Int).Set(x.v.Denom())}
}

func (x Rational) Add(other Element) Element {
	return Rational{v: new(big.Rat).Add(x.v, asRational(other).v)}
}

func (x Rational) Sub(other Element) Element {
	return Rational{v: new(big.Rat).Sub(x.v, asRational(other).v)}
}

func (x Rational) Neg() Element {
	return Rational{v: new(big.Rat).Neg(x.v)}
}

func (x Rational) Mul(other Element) Element {
	return Rational{v: new(big.Rat).Mul(x.v, asRational(other).v)}
}

// Div returns x / other. It panics if other is zero.
func (x Rational) Div(other Element) Element {
	return Rational{v: new(big.Rat).Quo(x.v, asRational(other).v)}
}

// Pow returns x^n. It panics if n is negative.
func (x Rational) Pow(n int) Element {
	return pow(x, n)
}

func (x Rational) Equal(other Element) bool {
	y, ok := other.(Rational)
	return ok && x.v.Cmp(y.v) == 0
}

func (x Rational) IsZero() bool {
	return x.v.Sign() == 0
}

// IsUnit returns true if x is non-zero.
func (x Rational) IsUnit() bool {
	return x.v.Sign() != 0
}

// Inverse returns 1/x, or an error if x is zero.
func (x Rational) Inverse() (Element, error) {
	if x.v.Sign() == 0 {
		return nil, fmt.Errorf("the rational number 0 is not a unit")
	}
	return Rational{v: new(big.Rat).Inv(x.v)}, nil
}

// Sign returns the sign of x.
func (x Rational) Sign() int {
	return x.v.Sign()
}

func (x Rational) String() string {
	return x.v.RatString()
}
