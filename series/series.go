// Package series implements absolutely-capped power series rings on top of
// weighted polynomial rings. A series is stored as an ordered list of
// homogeneous buckets, one per weighted degree below the ring's precision
// cap; every operation truncates at the cap, so all arithmetic is exact
// modulo the ideal of terms of weighted degree at least the cap.
package series

import (
	"fmt"
	"sort"
	"strings"

	"github.com/noetherlab/noether/poly"
	"github.com/noetherlab/noether/ring"
	"github.com/noetherlab/noether/utils"
)

// Parameters is a literal describing a capped power series ring.
type Parameters struct {
	// PolyRing is the underlying weighted polynomial ring.
	PolyRing *poly.Ring
	// Cap is the precision cap: terms of weighted degree >= Cap are
	// discarded. Must be at least 1.
	Cap int
}

// Ring is a power series ring with an absolute precision cap. A Ring is
// immutable after construction and safe for concurrent use, and satisfies
// ring.Ring.
type Ring struct {
	pr      *poly.Ring
	cap     int
	weights []int
	one     *Series
	zero    *Series
	gens    []*Series
}

// NewRing creates a capped power series ring from the given parameters.
func NewRing(params Parameters) (*Ring, error) {
	if params.PolyRing == nil {
		return nil, fmt.Errorf("the polynomial ring is nil")
	}
	if params.Cap < 1 {
		return nil, fmt.Errorf("the precision cap %d is not positive", params.Cap)
	}

	r := &Ring{
		pr:      params.PolyRing,
		cap:     params.Cap,
		weights: params.PolyRing.Weights(),
	}

	r.zero = &Series{ring: r}
	r.one = r.wrap([]Bucket{{Degree: 0, Coeff: r.pr.One().(*poly.Polynomial)}})

	r.gens = make([]*Series, r.pr.Ngens())
	for i := range r.gens {
		r.gens[i] = r.wrap([]Bucket{{Degree: r.weights[i], Coeff: r.pr.Gen(i)}})
	}

	return r, nil
}

// wrap takes ownership of buckets, dropping zero coefficients and any bucket
// at or above the precision cap. The buckets must have distinct degrees.
func (r *Ring) wrap(buckets []Bucket) *Series {
	kept := buckets[:0]
	for _, b := range buckets {
		if b.Degree < r.cap && !b.Coeff.IsZero() {
			kept = append(kept, b)
		}
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].Degree < kept[j].Degree })
	return &Series{ring: r, buckets: kept}
}

// unflatten splits a polynomial into homogeneous buckets by weighted degree,
// discarding every term of weighted degree at or above the precision cap.
func (r *Ring) unflatten(p *poly.Polynomial) *Series {
	groups := make(map[int]map[poly.Monomial]ring.Element)
	p.Terms().ForEachTerm(func(m poly.Monomial, c ring.Element) {
		deg := m.WeightedDegree(r.weights)
		if deg >= r.cap {
			return
		}
		g, ok := groups[deg]
		if !ok {
			g = make(map[poly.Monomial]ring.Element)
			groups[deg] = g
		}
		g[m] = c
	})

	buckets := make([]Bucket, 0, len(groups))
	for _, deg := range utils.GetSortedKeys(groups) {
		coeff, err := r.pr.New(poly.NewTerms(r.pr.BaseRing(), r.pr.Representation(), groups[deg]))
		if err != nil {
			panic(err)
		}
		buckets = append(buckets, Bucket{Degree: deg, Coeff: coeff})
	}
	return r.wrap(buckets)
}

// PolyRing returns the underlying polynomial ring.
func (r *Ring) PolyRing() *poly.Ring {
	return r.pr
}

// BaseRing returns the scalar ring of the underlying polynomial ring.
func (r *Ring) BaseRing() ring.Ring {
	return r.pr.BaseRing()
}

// Cap returns the precision cap.
func (r *Ring) Cap() int {
	return r.cap
}

// Gen returns the i-th generator, truncated at the cap.
func (r *Ring) Gen(i int) *Series {
	return r.gens[i]
}

// Gens returns the generators of the ring.
func (r *Ring) Gens() []*Series {
	return append([]*Series(nil), r.gens...)
}

// Zero returns the zero series.
func (r *Ring) Zero() ring.Element {
	return r.zero
}

// One returns the unit series.
func (r *Ring) One() ring.Element {
	return r.one
}

// FromInt64 returns the constant series with value n.
func (r *Ring) FromInt64(n int64) ring.Element {
	return r.wrap([]Bucket{{Degree: 0, Coeff: r.pr.FromInt64(n).(*poly.Polynomial)}})
}

// Equal reports whether other is a power series ring over the same
// polynomial ring with the same precision cap.
func (r *Ring) Equal(other ring.Ring) bool {
	o, ok := other.(*Ring)
	if !ok {
		return false
	}
	return r == o || (r.cap == o.cap && r.pr.Equal(o.pr))
}

// Exact reports whether arithmetic in the coefficients is exact. The
// truncation at the cap is part of the ring structure, not a rounding.
func (r *Ring) Exact() bool {
	return r.pr.Exact()
}

func (r *Ring) String() string {
	return fmt.Sprintf("Ring of power series of precision %d over %s", r.cap, r.pr)
}

// New builds an element of the ring from data. Accepted types are:
//   - int, int64: the constant series with that value;
//   - *poly.Polynomial: an element of the underlying polynomial ring, split
//     into buckets and truncated at the cap;
//   - *Series: an element of a series ring over the same polynomial ring,
//     re-truncated to this ring's cap;
//   - ring.Element: an element of the scalar base ring, as a constant.
func (r *Ring) New(data interface{}) (*Series, error) {
	switch v := data.(type) {
	case int:
		return r.FromInt64(int64(v)).(*Series), nil
	case int64:
		return r.FromInt64(v).(*Series), nil
	case *Series:
		if !v.ring.pr.Equal(r.pr) {
			return nil, fmt.Errorf("the series is defined over %s, not over %s", v.ring.pr, r.pr)
		}
		return r.wrap(append([]Bucket(nil), v.buckets...)), nil
	case *poly.Polynomial:
		if !v.Parent().Equal(r.pr) {
			return nil, fmt.Errorf("the polynomial belongs to %s, not to the underlying ring %s", v.Parent(), r.pr)
		}
		return r.unflatten(v), nil
	case ring.Element:
		if !v.Parent().Equal(r.pr.BaseRing()) {
			return nil, fmt.Errorf("the element belongs to %s, not to the base ring %s", v.Parent(), r.pr.BaseRing())
		}
		p, err := r.pr.New(v)
		if err != nil {
			return nil, err
		}
		return r.wrap([]Bucket{{Degree: 0, Coeff: p}}), nil
	default:
		return nil, fmt.Errorf("no known constructor for input data of type %T", data)
	}
}

// coerce interprets x as an element of r: a series over the same polynomial
// ring (re-truncated), a polynomial, or a scalar of the base ring.
func (r *Ring) coerce(x ring.Element) *Series {
	if s, ok := x.(*Series); ok && s.ring.pr.Equal(r.pr) {
		if s.ring.Equal(r) {
			return s
		}
		return r.wrap(append([]Bucket(nil), s.buckets...))
	}
	s, err := r.New(x)
	if err != nil {
		panic(fmt.Errorf("cannot interpret an element of %s as an element of %s", x.Parent(), r))
	}
	return s
}

// Bucket is one homogeneous component of a series: the polynomial made of
// all terms of the given weighted degree.
type Bucket struct {
	Degree int
	Coeff  *poly.Polynomial
}

// Series is an element of a capped power series Ring: an ordered list of
// homogeneous buckets of ascending weighted degree, all strictly below the
// ring's precision cap. Series are immutable value objects.
type Series struct {
	ring    *Ring
	buckets []Bucket
}

// resultRing returns the parent of the result of a binary operation: the
// right-hand operand's ring, whose cap therefore bounds the result.
func resultRing(x, y *Series) *Ring {
	return y.ring
}

func mustSeries(x ring.Element) *Series {
	s, ok := x.(*Series)
	if !ok {
		panic(fmt.Errorf("expected a series operand but got %T", x))
	}
	return s
}

// Parent returns the ring the series belongs to.
func (s *Series) Parent() ring.Ring {
	return s.ring
}

// Ring returns the ring the series belongs to.
func (s *Series) Ring() *Ring {
	return s.ring
}

// Buckets returns the homogeneous components in ascending weighted degree.
func (s *Series) Buckets() []Bucket {
	return append([]Bucket(nil), s.buckets...)
}

// Coefficient returns the homogeneous component of the given weighted
// degree, or the zero polynomial if there is none.
func (s *Series) Coefficient(degree int) *poly.Polynomial {
	for _, b := range s.buckets {
		if b.Degree == degree {
			return b.Coeff
		}
		if b.Degree > degree {
			break
		}
	}
	return s.ring.pr.Zero().(*poly.Polynomial)
}

// Flatten returns the sum of the buckets as a polynomial.
func (s *Series) Flatten() *poly.Polynomial {
	acc := s.ring.pr.Zero()
	for _, b := range s.buckets {
		acc = acc.Add(b.Coeff)
	}
	return acc.(*poly.Polynomial)
}

// IsZero reports whether the series has no buckets.
func (s *Series) IsZero() bool {
	return len(s.buckets) == 0
}

// IsHomogeneous reports whether the series has at most one bucket.
func (s *Series) IsHomogeneous() bool {
	return len(s.buckets) <= 1
}

// Degree returns the weighted degree of the highest bucket, or -1 for the
// zero series.
func (s *Series) Degree() int {
	if len(s.buckets) == 0 {
		return -1
	}
	return s.buckets[len(s.buckets)-1].Degree
}

// FiltrationWeight returns the weighted degree of the lowest bucket. The
// zero series sits in every filtration step, so its weight is the cap.
func (s *Series) FiltrationWeight() int {
	if len(s.buckets) == 0 {
		return s.ring.cap
	}
	return s.buckets[0].Degree
}

// Add returns s + other. The result belongs to the right operand's ring, so
// its precision cap applies; the left operand is coerced into it.
func (s *Series) Add(other ring.Element) ring.Element {
	o := mustSeries(other)
	target := resultRing(s, o)
	a, b := target.coerce(s), o

	merged := make([]Bucket, 0, len(a.buckets)+len(b.buckets))
	var i, j int
	for i < len(a.buckets) && j < len(b.buckets) {
		switch {
		case a.buckets[i].Degree < b.buckets[j].Degree:
			merged = append(merged, a.buckets[i])
			i++
		case a.buckets[i].Degree == b.buckets[j].Degree:
			merged = append(merged, Bucket{
				Degree: a.buckets[i].Degree,
				Coeff:  a.buckets[i].Coeff.Add(b.buckets[j].Coeff).(*poly.Polynomial),
			})
			i++
			j++
		default:
			merged = append(merged, b.buckets[j])
			j++
		}
	}
	merged = append(merged, a.buckets[i:]...)
	merged = append(merged, b.buckets[j:]...)

	return target.wrap(merged)
}

// Neg returns -s.
func (s *Series) Neg() ring.Element {
	negated := make([]Bucket, len(s.buckets))
	for i, b := range s.buckets {
		negated[i] = Bucket{Degree: b.Degree, Coeff: b.Coeff.Neg().(*poly.Polynomial)}
	}
	return &Series{ring: s.ring, buckets: negated}
}

// Sub returns s - other, with the same parent policy as Add.
func (s *Series) Sub(other ring.Element) ring.Element {
	return s.Add(other.Neg())
}

// Mul returns s * other, with the same parent policy as Add. Bucket pairs
// whose degrees sum to the cap or beyond are never expanded: the inner loop
// walks ascending degrees and stops at the first pair over the cap.
func (s *Series) Mul(other ring.Element) ring.Element {
	o := mustSeries(other)
	target := resultRing(s, o)
	a, b := target.coerce(s), o

	products := make(map[int]*poly.Polynomial)
	for _, x := range a.buckets {
		for _, y := range b.buckets {
			deg := x.Degree + y.Degree
			if deg >= target.cap {
				break
			}
			p := x.Coeff.Mul(y.Coeff).(*poly.Polynomial)
			if acc, ok := products[deg]; ok {
				products[deg] = acc.Add(p).(*poly.Polynomial)
			} else {
				products[deg] = p
			}
		}
	}

	buckets := make([]Bucket, 0, len(products))
	for _, deg := range utils.GetSortedKeys(products) {
		buckets = append(buckets, Bucket{Degree: deg, Coeff: products[deg]})
	}
	return target.wrap(buckets)
}

// Pow returns the n-th power by repeated squaring. It panics if n is
// negative; use Inverse for reciprocals.
func (s *Series) Pow(n int) ring.Element {
	if n < 0 {
		panic(fmt.Errorf("cannot raise a series to the negative power %d", n))
	}

	res := s.ring.one
	apow := s
	for n > 0 {
		if n&1 == 1 {
			res = res.Mul(apow).(*Series)
		}
		apow = apow.Mul(apow).(*Series)
		n >>= 1
	}
	return res
}

// Div returns s / other, with the same parent policy as Add. A zero
// numerator short-circuits to zero without requiring the divisor to be a
// unit; otherwise the divisor is inverted by Newton iteration and the error
// of a non-unit divisor is returned.
func (s *Series) Div(other ring.Element) (ring.Element, error) {
	o := mustSeries(other)
	if s.IsZero() {
		return resultRing(s, o).Zero(), nil
	}
	inv, err := o.Inverse()
	if err != nil {
		return nil, err
	}
	return s.Mul(inv), nil
}

// Equal reports whether other is a series of the same ring with the same
// buckets.
func (s *Series) Equal(other ring.Element) bool {
	o, ok := other.(*Series)
	if !ok || !s.ring.Equal(o.ring) || len(s.buckets) != len(o.buckets) {
		return false
	}
	for i, b := range s.buckets {
		if b.Degree != o.buckets[i].Degree || !b.Coeff.Equal(o.buckets[i].Coeff) {
			return false
		}
	}
	return true
}

// IsUnit reports whether the constant term of the series is a unit of the
// scalar ring, which makes the series invertible in the capped ring.
func (s *Series) IsUnit() bool {
	return len(s.buckets) > 0 && s.buckets[0].Degree == 0 && s.buckets[0].Coeff.IsUnit()
}

// Inverse computes the reciprocal of the series by Newton iteration. The
// approximation starts from the inverse of the constant term and doubles its
// precision each round until it reaches the cap.
func (s *Series) Inverse() (ring.Element, error) {
	if !s.IsUnit() {
		return nil, fmt.Errorf("the series is not a unit: its constant term is not invertible")
	}

	c, err := s.buckets[0].Coeff.Inverse()
	if err != nil {
		return nil, err
	}

	r := s.ring
	approx, err := r.New(c.(*poly.Polynomial))
	if err != nil {
		return nil, err
	}
	for n := 1; n < r.cap; n *= 2 {
		// approx <- approx + approx*(1 - s*approx)
		residual := r.one.Sub(s.Mul(approx))
		approx = approx.Add(approx.Mul(residual)).(*Series)
	}
	return approx, nil
}

// String renders the flattened series followed by the truncation order,
// written in terms of the filtration F.
func (s *Series) String() string {
	var b strings.Builder
	if len(s.buckets) > 0 {
		b.WriteString(s.Flatten().String())
		b.WriteString(" + ")
	}
	fmt.Fprintf(&b, "O(F^%d)", s.ring.cap)
	return b.String()
}
