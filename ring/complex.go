package ring

import (
	"fmt"

	"github.com/noetherlab/noether/utils/bignum"
)

// ComplexRing is the ring of complex numbers whose real and imaginary parts
// are rounded to a fixed precision.
type ComplexRing struct {
	prec uint
}

// NewComplexRing returns the ring of complex numbers with prec bits of
// mantissa per component.
func NewComplexRing(prec uint) ComplexRing {
	return ComplexRing{prec: prec}
}

// Prec returns the precision, in mantissa bits, of the ring.
func (r ComplexRing) Prec() uint {
	return r.prec
}

// Zero returns the additive identity.
func (r ComplexRing) Zero() Element {
	return Complex{ring: r, v: bignum.ToComplex(0, r.prec)}
}

// One returns the multiplicative identity.
func (r ComplexRing) One() Element {
	return Complex{ring: r, v: bignum.ToComplex(1, r.prec)}
}

// FromInt64 returns n as an element of the ring.
func (r ComplexRing) FromInt64(n int64) Element {
	return Complex{ring: r, v: bignum.ToComplex(n, r.prec)}
}

// FromComplex128 returns x as an element of the ring.
func (r ComplexRing) FromComplex128(x complex128) Element {
	return Complex{ring: r, v: bignum.ToComplex(x, r.prec)}
}

// FromBigComplex returns a copy of x, rounded to the precision of the ring.
func (r ComplexRing) FromBigComplex(x *bignum.Complex) Element {
	return Complex{ring: r, v: bignum.ToComplex(x, r.prec)}
}

// Equal reports whether other is a complex ring of the same precision.
func (r ComplexRing) Equal(other Ring) bool {
	o, ok := other.(ComplexRing)
	return ok && o.prec == r.prec
}

// Exact returns false: complex arithmetic rounds.
func (r ComplexRing) Exact() bool {
	return false
}

func (r ComplexRing) String() string {
	return fmt.Sprintf("The ring of complex numbers with %d bits of precision (via math/big.Float).", r.prec)
}

// Complex is an element of ComplexRing.
type Complex struct {
	ring ComplexRing
	v    *bignum.Complex
}

func (x Complex) asComplex(other Element) Complex {
	y, ok := other.(Complex)
	if !ok {
		panic(fmt.Errorf("expected a complex operand but got %T", other))
	}
	return y
}

func (x Complex) wrap(v *bignum.Complex) Element {
	return Complex{ring: x.ring, v: v.SetPrec(x.ring.prec)}
}

// Parent returns the ring the element belongs to.
func (x Complex) Parent() Ring {
	return x.ring
}

// BigComplex returns a copy of the underlying bignum.Complex.
func (x Complex) BigComplex() *bignum.Complex {
	return x.v.Clone()
}

// Complex128 returns the element as a complex128.
func (x Complex) Complex128() complex128 {
	return x.v.Complex128()
}

func (x Complex) Add(other Element) Element {
	return x.wrap(bignum.NewComplex().Add(x.v, x.asComplex(other).v))
}

func (x Complex) Sub(other Element) Element {
	return x.wrap(bignum.NewComplex().Sub(x.v, x.asComplex(other).v))
}

func (x Complex) Neg() Element {
	return x.wrap(bignum.NewComplex().Neg(x.v))
}

func (x Complex) Mul(other Element) Element {
	return x.wrap(bignum.NewComplex().Mul(x.v, x.asComplex(other).v))
}

// Div returns x / other. It panics if other is zero.
func (x Complex) Div(other Element) Element {
	return x.wrap(bignum.NewComplex().Quo(x.v, x.asComplex(other).v))
}

// Pow returns x^n. It panics if n is negative.
func (x Complex) Pow(n int) Element {
	return pow(x, n)
}

func (x Complex) Equal(other Element) bool {
	y, ok := other.(Complex)
	return ok && x.v.Equal(y.v)
}

func (x Complex) IsZero() bool {
	return x.v.IsZero()
}

// IsUnit returns true if x is non-zero.
func (x Complex) IsUnit() bool {
	return !x.v.IsZero()
}

// Inverse returns 1/x, or an error if x is zero.
func (x Complex) Inverse() (Element, error) {
	if x.v.IsZero() {
		return nil, fmt.Errorf("the complex number 0 is not a unit")
	}
	one := bignum.ToComplex(1, x.ring.prec)
	return x.wrap(bignum.NewComplex().Quo(one, x.v)), nil
}

func (x Complex) String() string {
	return x.v.String()
}
