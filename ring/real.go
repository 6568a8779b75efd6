package ring

import (
	"fmt"
	"math/big"

	"github.com/noetherlab/noether/utils/bignum"
)

// RealRing is the ring of real numbers rounded to a fixed precision, backed
// by math/big.Float.
type RealRing struct {
	prec uint
}

// NewRealRing returns the ring of real numbers with prec bits of mantissa.
func NewRealRing(prec uint) RealRing {
	return RealRing{prec: prec}
}

// Prec returns the precision, in mantissa bits, of the ring.
func (r RealRing) Prec() uint {
	return r.prec
}

// Zero returns the additive identity.
func (r RealRing) Zero() Element {
	return Real{ring: r, v: new(big.Float).SetPrec(r.prec)}
}

// One returns the multiplicative identity.
func (r RealRing) One() Element {
	return Real{ring: r, v: bignum.NewFloat(1, r.prec)}
}

// FromInt64 returns n as an element of the ring.
func (r RealRing) FromInt64(n int64) Element {
	return Real{ring: r, v: bignum.NewFloat(n, r.prec)}
}

// FromFloat64 returns x as an element of the ring.
func (r RealRing) FromFloat64(x float64) Element {
	return Real{ring: r, v: bignum.NewFloat(x, r.prec)}
}

// FromBigFloat returns a copy of x, rounded to the precision of the ring.
func (r RealRing) FromBigFloat(x *big.Float) Element {
	return Real{ring: r, v: bignum.NewFloat(x, r.prec)}
}

// Pi returns an approximation of pi at the precision of the ring.
func (r RealRing) Pi() Element {
	return Real{ring: r, v: bignum.Pi(r.prec)}
}

// Equal reports whether other is a real ring of the same precision.
func (r RealRing) Equal(other Ring) bool {
	o, ok := other.(RealRing)
	return ok && o.prec == r.prec
}

// Exact returns false: real arithmetic rounds.
func (r RealRing) Exact() bool {
	return false
}

func (r RealRing) String() string {
	return fmt.Sprintf("The ring of real numbers with %d bits of precision (via math/big.Float).", r.prec)
}

// Real is an element of RealRing.
type Real struct {
	ring RealRing
	v    *big.Float
}

func (x Real) asReal(other Element) Real {
	y, ok := other.(Real)
	if !ok {
		panic(fmt.Errorf("expected a real operand but got %T", other))
	}
	return y
}

func (x Real) new() *big.Float {
	return new(big.Float).SetPrec(x.ring.prec)
}

// Parent returns the ring the element belongs to.
func (x Real) Parent() Ring {
	return x.ring
}

// BigFloat returns a copy of the underlying big.Float.
func (x Real) BigFloat() *big.Float {
	return new(big.Float).Set(x.v)
}

// Float64 returns the element as a float64.
func (x Real) Float64() float64 {
	f, _ := x.v.Float64()
	return f
}

func (x Real) Add(other Element) Element {
	return Real{ring: x.ring, v: x.new().Add(x.v, x.asReal(other).v)}
}

func (x Real) Sub(other Element) Element {
	return Real{ring: x.ring, v: x.new().Sub(x.v, x.asReal(other).v)}
}

func (x Real) Neg() Element {
	return Real{ring: x.ring, v: x.new().Neg(x.v)}
}

func (x Real) Mul(other Element) Element {
	return Real{ring: x.ring, v: x.new().Mul(x.v, x.asReal(other).v)}
}

// Div returns x / other. It panics if other is zero.
func (x Real) Div(other Element) Element {
	return Real{ring: x.ring, v: x.new().Quo(x.v, x.asReal(other).v)}
}

// Pow returns x^n. It panics if n is negative.
func (x Real) Pow(n int) Element {
	return pow(x, n)
}

// Log returns the natural logarithm of x.
func (x Real) Log() Element {
	return Real{ring: x.ring, v: bignum.Log(x.BigFloat())}
}

// Exp returns e^x.
func (x Real) Exp() Element {
	return Real{ring: x.ring, v: bignum.Exp(x.BigFloat())}
}

// Sqrt returns the square root of x. It panics if x is negative.
func (x Real) Sqrt() Element {
	return Real{ring: x.ring, v: bignum.Sqrt(x.v)}
}

func (x Real) Equal(other Element) bool {
	y, ok := other.(Real)
	return ok && x.v.Cmp(y.v) == 0
}

func (x Real) IsZero() bool {
	return x.v.Sign() == 0
}

// IsUnit returns true if x is non-zero.
func (x Real) IsUnit() bool {
	return x.v.Sign() != 0
}

// Inverse returns 1/x, or an error if x is zero.
func (x Real) Inverse() (Element, error) {
	if x.v.Sign() == 0 {
		return nil, fmt.Errorf("the real number 0 is not a unit")
	}
	return Real{ring: x.ring, v: x.new().Quo(bignum.NewFloat(1, x.ring.prec), x.v)}, nil
}

// Sign returns the sign of x.
func (x Real) Sign() int {
	return x.v.Sign()
}

func (x Real) String() string {
	return x.v.String()
}
