package ring

import (
	"fmt"
	"math/big"
)

// IntegerModRing is the ring of integers modulo N.
type IntegerModRing struct {
	n *big.Int
}

// NewIntegerModRing returns the ring of integers modulo n. It returns an
// error if n < 2.
func NewIntegerModRing(n int64) (IntegerModRing, error) {
	return NewIntegerModRingFromBigInt(big.NewInt(n))
}

// NewIntegerModRingFromBigInt returns the ring of integers modulo n. It
// returns an error if n < 2.
func NewIntegerModRingFromBigInt(n *big.Int) (IntegerModRing, error) {
	if n.Cmp(big.NewInt(2)) < 0 {
		return IntegerModRing{}, fmt.Errorf("the modulus %s is smaller than 2", n)
	}
	return IntegerModRing{n: new(big.Int).Set(n)}, nil
}

// Modulus returns a copy of the modulus of the ring.
func (r IntegerModRing) Modulus() *big.Int {
	return new(big.Int).Set(r.n)
}

// Zero returns the additive identity.
func (r IntegerModRing) Zero() Element {
	return IntegerMod{ring: r, v: new(big.Int)}
}

// One returns the multiplicative identity.
func (r IntegerModRing) One() Element {
	return r.FromInt64(1)
}

// FromInt64 returns n reduced modulo the modulus of the ring.
func (r IntegerModRing) FromInt64(n int64) Element {
	return IntegerMod{ring: r, v: new(big.Int).Mod(big.NewInt(n), r.n)}
}

// FromBigInt returns n reduced modulo the modulus of the ring.
func (r IntegerModRing) FromBigInt(n *big.Int) Element {
	return IntegerMod{ring: r, v: new(big.Int).Mod(n, r.n)}
}

// Equal reports whether other is the ring of integers modulo the same N.
func (r IntegerModRing) Equal(other Ring) bool {
	o, ok := other.(IntegerModRing)
	return ok && o.n.Cmp(r.n) == 0
}

// Exact returns true.
func (r IntegerModRing) Exact() bool {
	return true
}

func (r IntegerModRing) String() string {
	return fmt.Sprintf("The ring of integers modulo %s.", r.n)
}

// IntegerMod is an element of IntegerModRing, stored as its canonical
// representative in [0, N).
type IntegerMod struct {
	ring IntegerModRing
	v    *big.Int
}

func (x IntegerMod) asIntegerMod(other Element) IntegerMod {
	y, ok := other.(IntegerMod)
	if !ok {
		panic(fmt.Errorf("expected an operand modulo %s but got %T", x.ring.n, other))
	}
	if y.ring.n.Cmp(x.ring.n) != 0 {
		panic(fmt.Errorf("mismatched moduli %s and %s", x.ring.n, y.ring.n))
	}
	return y
}

func (x IntegerMod) wrap(v *big.Int) Element {
	return IntegerMod{ring: x.ring, v: v.Mod(v, x.ring.n)}
}

// Parent returns the ring the element belongs to.
func (x IntegerMod) Parent() Ring {
	return x.ring
}

// BigInt returns a copy of the canonical representative of x.
func (x IntegerMod) BigInt() *big.Int {
	return new(big.Int).Set(x.v)
}

func (x IntegerMod) Add(other Element) Element {
	return x.wrap(new(big.Int).Add(x.v, x.asIntegerMod(other).v))
}

func (x IntegerMod) Sub(other Element) Element {
	return x.wrap(new(big.Int).Sub(x.v, x.asIntegerMod(other).v))
}

func (x IntegerMod) Neg() Element {
	return x.wrap(new(big.Int).Neg(x.v))
}

func (x IntegerMod) Mul(other Element) Element {
	return x.wrap(new(big.Int).Mul(x.v, x.asIntegerMod(other).v))
}

// Pow returns x^n. It panics if n is negative.
func (x IntegerMod) Pow(n int) Element {
	if n < 0 {
		panic(fmt.Errorf("cannot raise an element modulo %s to the negative power %d", x.ring.n, n))
	}
	return IntegerMod{ring: x.ring, v: new(big.Int).Exp(x.v, big.NewInt(int64(n)), x.ring.n)}
}

func (x IntegerMod) Equal(other Element) bool {
	y, ok := other.(IntegerMod)
	return ok && y.ring.n.Cmp(x.ring.n) == 0 && y.v.Cmp(x.v) == 0
}

func (x IntegerMod) IsZero() bool {
	return x.v.Sign() == 0
}

// IsUnit returns true if x is coprime to the modulus.
func (x IntegerMod) IsUnit() bool {
	return new(big.Int).GCD(nil, nil, x.v, x.ring.n).Cmp(big.NewInt(1)) == 0
}

// Inverse returns the inverse of x modulo N, or an error if x is not coprime
// to N.
func (x IntegerMod) Inverse() (Element, error) {
	inv := new(big.Int).ModInverse(x.v, x.ring.n)
	if inv == nil {
		return nil, fmt.Errorf("the element %s is not a unit modulo %s", x.v, x.ring.n)
	}
	return IntegerMod{ring: x.ring, v: inv}, nil
}

func (x IntegerMod) String() string {
	return x.v.String()
}
