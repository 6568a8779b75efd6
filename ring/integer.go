package ring

import (
	"fmt"
	"math/big"
)

// IntegerRing is the ring of integers, backed by math/big.Int.
type IntegerRing struct{}

// NewIntegerRing returns the ring of integers.
func NewIntegerRing() IntegerRing {
	return IntegerRing{}
}

// Zero returns the additive identity.
func (r IntegerRing) Zero() Element {
	return Integer{v: new(big.Int)}
}

// One returns the multiplicative identity.
func (r IntegerRing) One() Element {
	return Integer{v: big.NewInt(1)}
}

// FromInt64 returns n as an element of the ring.
func (r IntegerRing) FromInt64(n int64) Element {
	return Integer{v: big.NewInt(n)}
}

// FromBigInt returns a copy of n as an element of the ring.
func (r IntegerRing) FromBigInt(n *big.Int) Element {
	return Integer{v: new(big.Int).Set(n)}
}

// Equal reports whether other is also the ring of integers.
func (r IntegerRing) Equal(other Ring) bool {
	_, ok := other.(IntegerRing)
	return ok
}

// Exact returns true.
func (r IntegerRing) Exact() bool {
	return true
}

func (r IntegerRing) String() string {
	return "The ring of integers (via math/big.Int)."
}

// Integer is an element of IntegerRing.
type Integer struct {
	v *big.Int
}

func asInteger(x Element) Integer {
	y, ok := x.(Integer)
	if !ok {
		panic(fmt.Errorf("expected an integer operand but got %T", x))
	}
	return y
}

// Parent returns the ring of integers.
func (x Integer) Parent() Ring {
	return IntegerRing{}
}

// BigInt returns a copy of the underlying big.Int.
func (x Integer) BigInt() *big.Int {
	return new(big.Int).Set(x.v)
}

// Int64 returns the element as an int64, assuming it fits.
func (x Integer) Int64() int64 {
	return x.v.Int64()
}

func (x Integer) Add(other Element) Element {
	return Integer{v: new(big.Int).Add(x.v, asInteger(other).v)}
}

func (x Integer) Sub(other Element) Element {
	return Integer{v: new(big.Int).Sub(x.v, asInteger(other).v)}
}

func (x Integer) Neg() Element {
	return Integer{v: new(big.Int).Neg(x.v)}
}

func (x Integer) Mul(other Element) Element {
	return Integer{v: new(big.Int).Mul(x.v, asInteger(other).v)}
}

// Pow returns x^n. It panics if n is negative.
func (x Integer) Pow(n int) Element {
	if n < 0 {
		panic(fmt.Errorf("cannot raise an integer to the negative power %d", n))
	}
	return Integer{v: new(big.Int).Exp(x.v, big.NewInt(int64(n)), nil)}
}

func (x Integer) Equal(other Element) bool {
	y, ok := other.(Integer)
	return ok && x.v.Cmp(y.v) == 0
}

func (x Integer) IsZero() bool {
	return x.v.Sign() == 0
}

// IsUnit returns true if x is 1 or -1.
func (x Integer) IsUnit() bool {
	return x.v.CmpAbs(big.NewInt(1)) == 0
}

// Inverse returns the inverse of x, or an error if x is not 1 or -1.
func (x Integer) Inverse() (Element, error) {
	if !x.IsUnit() {
		return nil, fmt.Errorf("the integer %s is not a unit", x.v)
	}
	return Integer{v: new(big.Int).Set(x.v)}, nil
}

// Sign returns the sign of x.
func (x Integer) Sign() int {
	return x.v.Sign()
}

func (x Integer) String() string {
	return x.v.String()
}

// GCD returns the greatest common divisor of x and y.
func GCD(x, y Integer) Integer {
	return Integer{v: new(big.Int).GCD(nil, nil, new(big.Int).Abs(x.v), new(big.Int).Abs(y.v))}
}

// Factorial returns n! as an element of the ring of integers. It panics if n
// is negative.
func Factorial(n int64) Integer {
	if n < 0 {
		panic(fmt.Errorf("cannot take the factorial of the negative integer %d", n))
	}
	return Integer{v: new(big.Int).MulRange(1, n)}
}
