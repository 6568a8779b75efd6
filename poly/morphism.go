package poly

import (
	"fmt"

	"github.com/noetherlab/noether/ring"
)

// MorphismParameters is a literal describing a ring morphism out of a
// polynomial ring. The morphism sends the i-th generator to Images[i] and
// applies BaseMorphism to every coefficient.
type MorphismParameters struct {
	Domain   *Ring
	Codomain ring.Ring
	// BaseMorphism maps the domain's base ring into the codomain. If nil
	// and the domain's base ring equals the codomain's underlying scalar
	// structure, the identity is used.
	BaseMorphism ring.Morphism
	Images       []ring.Element
}

// Morphism is a ring morphism from a polynomial ring into an arbitrary ring,
// determined by generator images and a morphism on coefficients. Generator
// powers and whole monomial images are memoized, so repeated applications to
// structurally similar polynomials avoid recomputing products.
//
// A Morphism is not safe for concurrent use: the memoization caches are
// written on Apply.
type Morphism struct {
	domain   *Ring
	codomain ring.Ring
	base     ring.Morphism
	images   []ring.Element

	genPowCache   map[genPow]ring.Element
	monomialCache map[Monomial]ring.Element
}

type genPow struct {
	idx int
	exp int
}

type embedding struct {
	ring *Ring
}

// Embedding returns the morphism that maps the base ring of r into r as
// constant polynomials.
func Embedding(r *Ring) ring.Morphism {
	return embedding{ring: r}
}

func (e embedding) Domain() ring.Ring {
	return e.ring.base
}

func (e embedding) Codomain() ring.Ring {
	return e.ring
}

func (e embedding) Apply(x ring.Element) ring.Element {
	if !x.Parent().Equal(e.ring.base) {
		panic(fmt.Errorf("the input is an element of %s, not of the base ring %s", x.Parent(), e.ring.base))
	}
	return e.ring.constant(x)
}

// NewMorphism validates the parameters and creates the morphism.
func NewMorphism(params MorphismParameters) (*Morphism, error) {
	if params.Domain == nil {
		return nil, fmt.Errorf("the domain is nil")
	}
	if params.Codomain == nil {
		return nil, fmt.Errorf("the codomain is nil")
	}

	base := params.BaseMorphism
	if base == nil {
		if !params.Domain.BaseRing().Equal(params.Codomain) {
			return nil, fmt.Errorf("no base morphism given and the base ring %s is not the codomain %s", params.Domain.BaseRing(), params.Codomain)
		}
		base = ring.Identity(params.Codomain)
	} else {
		if !base.Domain().Equal(params.Domain.BaseRing()) {
			return nil, fmt.Errorf("the base morphism is defined on %s, not on the base ring %s", base.Domain(), params.Domain.BaseRing())
		}
		if !base.Codomain().Equal(params.Codomain) {
			return nil, fmt.Errorf("the base morphism maps into %s, not into the codomain %s", base.Codomain(), params.Codomain)
		}
	}

	if len(params.Images) != params.Domain.Ngens() {
		return nil, fmt.Errorf("got %d generator images for a ring with %d generators", len(params.Images), params.Domain.Ngens())
	}
	for i, img := range params.Images {
		if !img.Parent().Equal(params.Codomain) {
			return nil, fmt.Errorf("the image of generator %d belongs to %s, not to the codomain %s", i, img.Parent(), params.Codomain)
		}
	}

	return &Morphism{
		domain:        params.Domain,
		codomain:      params.Codomain,
		base:          base,
		images:        append([]ring.Element(nil), params.Images...),
		genPowCache:   make(map[genPow]ring.Element),
		monomialCache: make(map[Monomial]ring.Element),
	}, nil
}

// Domain returns the polynomial ring the morphism is defined on.
func (m *Morphism) Domain() ring.Ring {
	return m.domain
}

// Codomain returns the ring the morphism maps into.
func (m *Morphism) Codomain() ring.Ring {
	return m.codomain
}

// Image returns the image of the i-th generator.
func (m *Morphism) Image(i int) ring.Element {
	return m.images[i]
}

func (m *Morphism) generatorPower(idx, exp int) ring.Element {
	key := genPow{idx: idx, exp: exp}
	if v, ok := m.genPowCache[key]; ok {
		return v
	}
	v := m.images[idx].Pow(exp)
	m.genPowCache[key] = v
	return v
}

// ApplyMonomial returns the image of a single monomial, the product of the
// cached generator powers it lists.
func (m *Morphism) ApplyMonomial(mono Monomial) ring.Element {
	if v, ok := m.monomialCache[mono]; ok {
		return v
	}
	v := m.codomain.One()
	for _, pair := range mono.Pairs() {
		v = v.Mul(m.generatorPower(pair.Var, pair.Exp))
	}
	m.monomialCache[mono] = v
	return v
}

// Apply maps a polynomial of the domain to its image. It panics if x does
// not belong to the domain.
func (m *Morphism) Apply(x ring.Element) ring.Element {
	p, ok := x.(*Polynomial)
	if !ok || !p.Ring().Equal(m.domain) {
		panic(fmt.Errorf("the argument does not belong to the domain %s", m.domain))
	}

	acc := m.codomain.Zero()
	p.Terms().ForEachTerm(func(mono Monomial, c ring.Element) {
		acc = acc.Add(m.base.Apply(c).Mul(m.ApplyMonomial(mono)))
	})
	return acc
}
