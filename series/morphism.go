package series

import (
	"fmt"

	"github.com/noetherlab/noether/poly"
	"github.com/noetherlab/noether/ring"
)

type embedding struct {
	ring *Ring
}

// Embedding returns the morphism that maps the scalar base ring of r into r
// as constant series.
func Embedding(r *Ring) ring.Morphism {
	return embedding{ring: r}
}

func (e embedding) Domain() ring.Ring {
	return e.ring.BaseRing()
}

func (e embedding) Codomain() ring.Ring {
	return e.ring
}

func (e embedding) Apply(x ring.Element) ring.Element {
	s, err := e.ring.New(x)
	if err != nil {
		panic(err)
	}
	return s
}

// MorphismParameters is a literal describing a morphism between capped power
// series rings. The morphism sends the i-th generator to Images[i] and
// applies BaseMorphism to every scalar coefficient.
type MorphismParameters struct {
	Domain   *Ring
	Codomain *Ring
	// BaseMorphism maps the domain's scalar ring into the codomain's. If
	// nil and the two scalar rings are equal, the identity is used.
	BaseMorphism ring.Morphism
	Images       []*Series
}

// Morphism is a ring morphism between capped power series rings. It is only
// defined when the codomain's precision cap does not exceed the domain's:
// terms the domain has already discarded can then never influence a
// surviving term of the image.
//
// A Morphism is not safe for concurrent use: it memoizes monomial images.
type Morphism struct {
	domain   *Ring
	codomain *Ring
	inner    *poly.Morphism
}

// NewMorphism validates the parameters and creates the morphism.
func NewMorphism(params MorphismParameters) (*Morphism, error) {
	if params.Domain == nil {
		return nil, fmt.Errorf("the domain is nil")
	}
	if params.Codomain == nil {
		return nil, fmt.Errorf("the codomain is nil")
	}
	if params.Codomain.Cap() > params.Domain.Cap() {
		return nil, fmt.Errorf("the codomain precision %d exceeds the domain precision %d", params.Codomain.Cap(), params.Domain.Cap())
	}

	base := params.BaseMorphism
	if base == nil {
		if !params.Domain.BaseRing().Equal(params.Codomain.BaseRing()) {
			return nil, fmt.Errorf("no base morphism given and the scalar rings %s and %s differ", params.Domain.BaseRing(), params.Codomain.BaseRing())
		}
		base = ring.Identity(params.Domain.BaseRing())
	}
	lifted, err := ring.Compose(base, Embedding(params.Codomain))
	if err != nil {
		return nil, err
	}

	images := make([]ring.Element, len(params.Images))
	for i, img := range params.Images {
		images[i] = img
	}

	inner, err := poly.NewMorphism(poly.MorphismParameters{
		Domain:       params.Domain.PolyRing(),
		Codomain:     params.Codomain,
		BaseMorphism: lifted,
		Images:       images,
	})
	if err != nil {
		return nil, err
	}

	return &Morphism{
		domain:   params.Domain,
		codomain: params.Codomain,
		inner:    inner,
	}, nil
}

// Domain returns the series ring the morphism is defined on.
func (m *Morphism) Domain() ring.Ring {
	return m.domain
}

// Codomain returns the series ring the morphism maps into.
func (m *Morphism) Codomain() ring.Ring {
	return m.codomain
}

// Apply maps a series of the domain to its image, bucket by bucket. It
// panics if x does not belong to the domain.
func (m *Morphism) Apply(x ring.Element) ring.Element {
	s, ok := x.(*Series)
	if !ok || !s.Ring().Equal(m.domain) {
		panic(fmt.Errorf("the argument does not belong to the domain %s", m.domain))
	}

	acc := m.codomain.Zero()
	for _, b := range s.buckets {
		acc = acc.Add(m.inner.Apply(b.Coeff))
	}
	return acc
}
