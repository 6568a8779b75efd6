package ring

import (
	"fmt"
	"math/big"
)

type identity struct {
	r Ring
}

// Identity returns the identity morphism of r.
func Identity(r Ring) Morphism {
	return identity{r: r}
}

func (m identity) Domain() Ring {
	return m.r
}

func (m identity) Codomain() Ring {
	return m.r
}

func (m identity) Apply(x Element) Element {
	if !x.Parent().Equal(m.r) {
		panic(fmt.Errorf("the input is an element of %s, not of %s", x.Parent(), m.r))
	}
	return x
}

type composite struct {
	f, g Morphism
}

// Compose returns the morphism g after f. It returns an error if the
// codomain of f is not the domain of g.
func Compose(f, g Morphism) (Morphism, error) {
	if !f.Codomain().Equal(g.Domain()) {
		return nil, fmt.Errorf("cannot compose: the codomain %s of the first morphism is not the domain %s of the second", f.Codomain(), g.Domain())
	}
	return composite{f: f, g: g}, nil
}

func (m composite) Domain() Ring {
	return m.f.Domain()
}

func (m composite) Codomain() Ring {
	return m.g.Codomain()
}

func (m composite) Apply(x Element) Element {
	return m.g.Apply(m.f.Apply(x))
}

type reduction struct {
	zz IntegerRing
	zn IntegerModRing
}

// ReduceMod returns the reduction morphism from the ring of integers to the
// ring of integers modulo N.
func ReduceMod(zz IntegerRing, zn IntegerModRing) Morphism {
	return reduction{zz: zz, zn: zn}
}

func (m reduction) Domain() Ring {
	return m.zz
}

func (m reduction) Codomain() Ring {
	return m.zn
}

func (m reduction) Apply(x Element) Element {
	y, ok := x.(Integer)
	if !ok {
		panic(fmt.Errorf("the input is of type %T, not an integer", x))
	}
	return m.zn.FromBigInt(y.v)
}

type inclusion struct {
	zz IntegerRing
	qq RationalRing
}

// IncludeIntegers returns the inclusion morphism from the ring of integers to
// the field of rational numbers.
func IncludeIntegers(zz IntegerRing, qq RationalRing) Morphism {
	return inclusion{zz: zz, qq: qq}
}

func (m inclusion) Domain() Ring {
	return m.zz
}

func (m inclusion) Codomain() Ring {
	return m.qq
}

func (m inclusion) Apply(x Element) Element {
	y, ok := x.(Integer)
	if !ok {
		panic(fmt.Errorf("the input is of type %T, not an integer", x))
	}
	return Rational{v: new(big.Rat).SetInt(y.v)}
}
