// Package poly implements generic multivariable polynomial rings over any
// scalar ring, with a sparse and a packed monomial representation.
package poly

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"lukechampine.com/uint128"
)

// PackingBoundLog2 is the number of bits reserved per variable in the packed
// monomial representation.
const PackingBoundLog2 = 16

// PackingBound is the strict per-variable exponent bound of the packed
// monomial representation: no exponent may reach this value.
const PackingBound = 1 << PackingBoundLog2

// MaxPackedVars is the number of variables a packed monomial can hold.
const MaxPackedVars = 128 / PackingBoundLog2

// ErrExponentOverflow is the panic value raised when a packed monomial
// operation would push a per-variable exponent to PackingBound or beyond.
var ErrExponentOverflow = errors.New("packed monomial exponent reaches the packing bound")

// Representation selects how a ring encodes its monomials.
type Representation int

const (
	// Packed encodes the exponent vector as base-2^16 digits of a single
	// 128-bit integer. Multiplication is a single addition, but at most
	// MaxPackedVars variables are supported.
	Packed Representation = iota
	// Sparse encodes the exponent vector as an ordered (variable, exponent)
	// pair list with no bound on the number of variables.
	Sparse
)

func (rep Representation) String() string {
	switch rep {
	case Packed:
		return "packed"
	case Sparse:
		return "sparse"
	default:
		return fmt.Sprintf("Representation(%d)", int(rep))
	}
}

// Pair is a (variable index, exponent) entry of a monomial.
type Pair struct {
	Var int
	Exp int
}

// Monomial is an immutable exponent vector over the generators of a ring.
// Both implementations are comparable value types, so monomials can key a Go
// map directly. Monomials of different representations never compare equal,
// even when they encode the same exponent vector.
type Monomial interface {
	// Mul returns the monomial whose exponent at each variable is the sum of
	// the receiver's and other's. It panics if the representations are mixed.
	Mul(other Monomial) Monomial

	// Degree returns the sum of the exponents.
	Degree() int

	// WeightedDegree returns the sum of the exponents scaled by the
	// per-variable weights.
	WeightedDegree(weights []int) int

	// Exponent returns the exponent of the i-th variable.
	Exponent(i int) int

	// Pairs returns the (variable, exponent) pairs with ascending variable
	// indices and no zero exponents.
	Pairs() []Pair

	// IsOne reports whether the monomial is the unit monomial.
	IsOne() bool

	fmt.Stringer
}

// unitMonomial returns the unit monomial of the given representation.
func unitMonomial(rep Representation) Monomial {
	if rep == Packed {
		return PackedMonomial{}
	}
	return SparseMonomial{}
}

// monomialFromPairs builds a monomial of the given representation from a flat
// (i0,e0,i1,e1,...) pair sequence.
func monomialFromPairs(rep Representation, pairs ...int) Monomial {
	if rep == Packed {
		return PackedFromPairs(pairs...)
	}
	return NewSparseMonomial(pairs...)
}

// monomialFromExponents builds a monomial of the given representation from a
// dense exponent vector.
func monomialFromExponents(rep Representation, exps []int) Monomial {
	if rep == Packed {
		return PackedFromExponents(exps)
	}
	return SparseFromExponents(exps)
}

// PackedMonomial packs the exponent vector into a single 128-bit integer,
// PackingBoundLog2 bits per variable. The zero value is the unit monomial.
type PackedMonomial struct {
	weight uint128.Uint128
}

// NewPackedMonomial returns the packed monomial with the given raw weight.
func NewPackedMonomial(weight uint128.Uint128) PackedMonomial {
	return PackedMonomial{weight: weight}
}

// PackedFromPairs builds a packed monomial from a flat (i0,e0,i1,e1,...)
// sequence with strictly increasing variable indices. It panics if the
// sequence is malformed, if a variable index is out of range, or if an
// exponent reaches the packing bound.
func PackedFromPairs(pairs ...int) PackedMonomial {
	if len(pairs)%2 != 0 {
		panic(fmt.Errorf("the pair sequence has odd length %d", len(pairs)))
	}
	var m PackedMonomial
	prev := -1
	for i := 0; i < len(pairs); i += 2 {
		v, e := pairs[i], pairs[i+1]
		if v <= prev {
			panic(fmt.Errorf("variable indices must be strictly increasing, got %d after %d", v, prev))
		}
		m = m.setExponent(v, e)
		prev = v
	}
	return m
}

// PackedFromExponents builds a packed monomial from a dense exponent vector;
// zero entries are allowed and dropped.
func PackedFromExponents(exps []int) PackedMonomial {
	var m PackedMonomial
	for i, e := range exps {
		if e != 0 {
			m = m.setExponent(i, e)
		}
	}
	return m
}

func (m PackedMonomial) setExponent(i, e int) PackedMonomial {
	if i < 0 || i >= MaxPackedVars {
		panic(fmt.Errorf("variable index %d out of range for the packed representation (max %d variables)", i, MaxPackedVars))
	}
	if e < 0 {
		panic(fmt.Errorf("negative exponent %d", e))
	}
	if e >= PackingBound {
		panic(ErrExponentOverflow)
	}
	return PackedMonomial{weight: m.weight.Or(uint128.From64(uint64(e)).Lsh(uint(i * PackingBoundLog2)))}
}

// Weight returns the raw packed integer.
func (m PackedMonomial) Weight() uint128.Uint128 {
	return m.weight
}

func (m PackedMonomial) digit(i int) int {
	return int(m.weight.Rsh(uint(i * PackingBoundLog2)).Lo & (PackingBound - 1))
}

// Mul returns the product of the two monomials. It panics with
// ErrExponentOverflow if any summed exponent reaches the packing bound, and
// panics if other is not packed.
func (m PackedMonomial) Mul(other Monomial) Monomial {
	o, ok := other.(PackedMonomial)
	if !ok {
		panic(fmt.Errorf("cannot multiply a packed monomial by a %T", other))
	}
	for i := 0; i < MaxPackedVars; i++ {
		if m.digit(i)+o.digit(i) >= PackingBound {
			panic(ErrExponentOverflow)
		}
	}
	return PackedMonomial{weight: m.weight.Add(o.weight)}
}

// Degree returns the sum of the exponents.
func (m PackedMonomial) Degree() (deg int) {
	for i := 0; i < MaxPackedVars; i++ {
		deg += m.digit(i)
	}
	return
}

// WeightedDegree returns the sum of the exponents scaled by weights.
func (m PackedMonomial) WeightedDegree(weights []int) (deg int) {
	for i := 0; i < MaxPackedVars; i++ {
		if e := m.digit(i); e != 0 {
			deg += weights[i] * e
		}
	}
	return
}

// Exponent returns the exponent of the i-th variable.
func (m PackedMonomial) Exponent(i int) int {
	if i < 0 || i >= MaxPackedVars {
		return 0
	}
	return m.digit(i)
}

// Pairs returns the sparse (variable, exponent) pairs of the monomial.
func (m PackedMonomial) Pairs() (pairs []Pair) {
	for i := 0; i < MaxPackedVars; i++ {
		if e := m.digit(i); e != 0 {
			pairs = append(pairs, Pair{Var: i, Exp: e})
		}
	}
	return
}

// IsOne reports whether the monomial is the unit monomial.
func (m PackedMonomial) IsOne() bool {
	return m.weight.IsZero()
}

func (m PackedMonomial) String() string {
	return m.weight.String()
}

// SparseMonomial stores the (variable, exponent) pairs of the exponent
// vector, encoded into a comparable key. The zero value is the unit monomial.
type SparseMonomial struct {
	key string
}

// NewSparseMonomial builds a sparse monomial from a flat (i0,e0,i1,e1,...)
// sequence with strictly increasing variable indices and positive exponents.
// It panics if the sequence is malformed.
func NewSparseMonomial(pairs ...int) SparseMonomial {
	if len(pairs)%2 != 0 {
		panic(fmt.Errorf("the pair sequence has odd length %d", len(pairs)))
	}
	ps := make([]Pair, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		ps = append(ps, Pair{Var: pairs[i], Exp: pairs[i+1]})
	}
	return sparseFromPairList(ps)
}

// SparseFromExponents builds a sparse monomial from a dense exponent vector;
// zero entries are allowed and dropped.
func SparseFromExponents(exps []int) SparseMonomial {
	ps := make([]Pair, 0, len(exps))
	for i, e := range exps {
		if e != 0 {
			ps = append(ps, Pair{Var: i, Exp: e})
		}
	}
	return sparseFromPairList(ps)
}

func sparseFromPairList(pairs []Pair) SparseMonomial {
	prev := -1
	buf := make([]byte, 8*len(pairs))
	for i, p := range pairs {
		if p.Var <= prev {
			panic(fmt.Errorf("variable indices must be strictly increasing, got %d after %d", p.Var, prev))
		}
		if p.Exp <= 0 {
			panic(fmt.Errorf("the exponent of variable %d must be positive, got %d", p.Var, p.Exp))
		}
		binary.BigEndian.PutUint32(buf[8*i:], uint32(p.Var))
		binary.BigEndian.PutUint32(buf[8*i+4:], uint32(p.Exp))
		prev = p.Var
	}
	return SparseMonomial{key: string(buf)}
}

// Pairs returns the (variable, exponent) pairs of the monomial.
func (m SparseMonomial) Pairs() (pairs []Pair) {
	pairs = make([]Pair, len(m.key)/8)
	for i := range pairs {
		pairs[i] = Pair{
			Var: int(binary.BigEndian.Uint32([]byte(m.key[8*i : 8*i+4]))),
			Exp: int(binary.BigEndian.Uint32([]byte(m.key[8*i+4 : 8*i+8]))),
		}
	}
	return
}

// Mul returns the product of the two monomials via a linear merge of the two
// sorted pair lists. It panics if other is not sparse.
func (m SparseMonomial) Mul(other Monomial) Monomial {
	o, ok := other.(SparseMonomial)
	if !ok {
		panic(fmt.Errorf("cannot multiply a sparse monomial by a %T", other))
	}

	a, b := m.Pairs(), o.Pairs()
	merged := make([]Pair, 0, len(a)+len(b))
	var i, j int
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Var < b[j].Var:
			merged = append(merged, a[i])
			i++
		case a[i].Var == b[j].Var:
			if e := a[i].Exp + b[j].Exp; e != 0 {
				merged = append(merged, Pair{Var: a[i].Var, Exp: e})
			}
			i++
			j++
		default:
			merged = append(merged, b[j])
			j++
		}
	}
	merged = append(merged, a[i:]...)
	merged = append(merged, b[j:]...)

	return sparseFromPairList(merged)
}

// Degree returns the sum of the exponents.
func (m SparseMonomial) Degree() (deg int) {
	for _, p := range m.Pairs() {
		deg += p.Exp
	}
	return
}

// WeightedDegree returns the sum of the exponents scaled by weights.
func (m SparseMonomial) WeightedDegree(weights []int) (deg int) {
	for _, p := range m.Pairs() {
		deg += weights[p.Var] * p.Exp
	}
	return
}

// Exponent returns the exponent of the i-th variable via a linear scan of
// the sorted pair list.
func (m SparseMonomial) Exponent(i int) int {
	for _, p := range m.Pairs() {
		if p.Var == i {
			return p.Exp
		}
		if p.Var > i {
			break
		}
	}
	return 0
}

// IsOne reports whether the monomial is the unit monomial.
func (m SparseMonomial) IsOne() bool {
	return len(m.key) == 0
}

func (m SparseMonomial) String() string {
	pairs := m.Pairs()
	elems := make([]string, 0, 2*len(pairs))
	for _, p := range pairs {
		elems = append(elems, fmt.Sprintf("%d", p.Var), fmt.Sprintf("%d", p.Exp))
	}
	return "(" + strings.Join(elems, ", ") + ")"
}
