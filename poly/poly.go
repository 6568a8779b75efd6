package poly

import (
	"fmt"
	"strings"

	"github.com/noetherlab/noether/ring"
	"github.com/noetherlab/noether/utils"
)

// Parameters is a literal describing a polynomial ring.
type Parameters struct {
	// BaseRing is the scalar ring the coefficients are taken from.
	BaseRing ring.Ring
	// Gens is the number of generators.
	Gens int
	// Prefix names the generators Prefix0, Prefix1, ...
	Prefix string
	// Weights assigns a positive weight to each generator. If nil, all
	// weights default to 1.
	Weights []int
	// Sparse selects the sparse monomial representation. The default is the
	// packed representation, which supports at most MaxPackedVars
	// generators.
	Sparse bool
}

// Ring is a multivariable polynomial ring over a scalar base ring. A Ring is
// immutable after construction and safe for concurrent use. Ring itself
// satisfies ring.Ring, so polynomial rings nest and can serve as coefficient
// rings for further polynomial, series or matrix layers.
type Ring struct {
	base    ring.Ring
	ngens   int
	prefix  string
	weights []int
	rep     Representation
	gens    []*Polynomial
	one     *Polynomial
	zero    *Polynomial
}

// NewRing creates a polynomial ring from the given parameters.
func NewRing(params Parameters) (*Ring, error) {
	if params.BaseRing == nil {
		return nil, fmt.Errorf("the base ring is nil")
	}
	if params.Gens < 1 {
		return nil, fmt.Errorf("the number of generators %d is not positive", params.Gens)
	}

	rep := Packed
	if params.Sparse {
		rep = Sparse
	}
	if rep == Packed && params.Gens > MaxPackedVars {
		return nil, fmt.Errorf("the packed representation supports at most %d generators, got %d", MaxPackedVars, params.Gens)
	}

	weights := params.Weights
	if weights == nil {
		weights = make([]int, params.Gens)
		for i := range weights {
			weights[i] = 1
		}
	} else {
		if len(weights) != params.Gens {
			return nil, fmt.Errorf("the number of weights %d is not equal to the number of generators %d", len(weights), params.Gens)
		}
		for i, w := range weights {
			if w <= 0 {
				return nil, fmt.Errorf("the weight %d of generator %d is not positive", w, i)
			}
		}
		weights = append([]int(nil), weights...)
	}

	r := &Ring{
		base:    params.BaseRing,
		ngens:   params.Gens,
		prefix:  params.Prefix,
		weights: weights,
		rep:     rep,
	}

	r.gens = make([]*Polynomial, r.ngens)
	for i := range r.gens {
		r.gens[i] = r.wrap(NewTerms(r.base, rep, map[Monomial]ring.Element{
			monomialFromPairs(rep, i, 1): r.base.One(),
		}))
	}

	r.one = r.constant(r.base.One())
	r.zero = r.wrap(NewTerms(r.base, rep, nil))

	return r, nil
}

func (r *Ring) wrap(t Terms) *Polynomial {
	return &Polynomial{ring: r, terms: t}
}

func (r *Ring) constant(c ring.Element) *Polynomial {
	return r.wrap(NewTerms(r.base, r.rep, map[Monomial]ring.Element{unitMonomial(r.rep): c}))
}

// BaseRing returns the scalar ring the coefficients are taken from.
func (r *Ring) BaseRing() ring.Ring {
	return r.base
}

// Ngens returns the number of generators.
func (r *Ring) Ngens() int {
	return r.ngens
}

// Prefix returns the name prefix of the generators.
func (r *Ring) Prefix() string {
	return r.prefix
}

// Weights returns a copy of the generator weights.
func (r *Ring) Weights() []int {
	return append([]int(nil), r.weights...)
}

// Representation returns the monomial representation of the ring.
func (r *Ring) Representation() Representation {
	return r.rep
}

// Gen returns the i-th generator.
func (r *Ring) Gen(i int) *Polynomial {
	return r.gens[i]
}

// Gens returns the generators of the ring.
func (r *Ring) Gens() []*Polynomial {
	return append([]*Polynomial(nil), r.gens...)
}

// Zero returns the zero polynomial. The returned element is a shared
// singleton, safe to share since polynomials are immutable.
func (r *Ring) Zero() ring.Element {
	return r.zero
}

// One returns the unit polynomial.
func (r *Ring) One() ring.Element {
	return r.one
}

// FromInt64 returns the constant polynomial with value n.
func (r *Ring) FromInt64(n int64) ring.Element {
	return r.constant(r.base.FromInt64(n))
}

// Equal reports whether other is structurally the same polynomial ring: same
// base ring, generator count, prefix, weights and monomial representation.
func (r *Ring) Equal(other ring.Ring) bool {
	o, ok := other.(*Ring)
	if !ok {
		return false
	}
	if r == o {
		return true
	}
	return r.base.Equal(o.base) &&
		r.ngens == o.ngens &&
		r.prefix == o.prefix &&
		r.rep == o.rep &&
		utils.EqualSlice(r.weights, o.weights)
}

// Exact reports whether arithmetic in the ring is exact.
func (r *Ring) Exact() bool {
	return r.base.Exact()
}

func (r *Ring) String() string {
	names := make([]string, r.ngens)
	for i := range names {
		names[i] = fmt.Sprintf("%s%d", r.prefix, i)
	}
	return fmt.Sprintf("Ring of polynomials in %d variables %v with weights %v over %s", r.ngens, names, r.weights, r.base)
}

// Term is one entry of a polynomial literal: the sparse (i0,e0,i1,e1,...)
// pair sequence of a monomial and its coefficient.
type Term struct {
	Pairs []int
	Coeff ring.Element
}

// New builds an element of the ring from data. Accepted types are:
//   - int, int64: the constant polynomial with that value;
//   - []Term: a general polynomial given by monomial/coefficient literals;
//   - *Polynomial: an element of this ring (copied), or an element of the
//     base ring when the base ring is itself a polynomial ring (embedded as
//     a constant);
//   - Terms: raw term-dictionary data already built for this ring;
//   - ring.Element: an element of the base ring, embedded as a constant.
func (r *Ring) New(data interface{}) (*Polynomial, error) {
	switch v := data.(type) {
	case int:
		return r.constant(r.base.FromInt64(int64(v))), nil
	case int64:
		return r.constant(r.base.FromInt64(v)), nil
	case []Term:
		coeffs := make(map[Monomial]ring.Element, len(v))
		for _, t := range v {
			if !t.Coeff.Parent().Equal(r.base) {
				return nil, fmt.Errorf("the coefficient %s is an element of %s, not of the base ring %s", t.Coeff, t.Coeff.Parent(), r.base)
			}
			m := monomialFromPairs(r.rep, t.Pairs...)
			if c, ok := coeffs[m]; ok {
				coeffs[m] = c.Add(t.Coeff)
			} else {
				coeffs[m] = t.Coeff
			}
		}
		return r.wrap(NewTerms(r.base, r.rep, coeffs)), nil
	case *Polynomial:
		if v.ring.Equal(r) {
			return r.wrap(v.terms), nil
		}
		if v.Parent().Equal(r.base) {
			return r.constant(v), nil
		}
		return nil, fmt.Errorf("the polynomial belongs to %s, which is neither this ring nor its base ring", v.ring)
	case Terms:
		if !v.base.Equal(r.base) {
			return nil, fmt.Errorf("the term data is over %s, not over the base ring %s", v.base, r.base)
		}
		if v.rep != r.rep {
			return nil, fmt.Errorf("the term data uses the %s representation but the ring uses %s", v.rep, r.rep)
		}
		return r.wrap(v), nil
	case ring.Element:
		if v.Parent().Equal(r.base) {
			return r.constant(v), nil
		}
		return nil, fmt.Errorf("the element belongs to %s, not to the base ring %s", v.Parent(), r.base)
	default:
		return nil, fmt.Errorf("no known constructor for input data of type %T", data)
	}
}

// coerce interprets x as an element of r: either x already belongs to r, or
// x belongs to the base ring and embeds as a constant.
func (r *Ring) coerce(x ring.Element) *Polynomial {
	if p, ok := x.(*Polynomial); ok && p.ring.Equal(r) {
		return p
	}
	if x.Parent().Equal(r.base) {
		return r.constant(x)
	}
	panic(fmt.Errorf("cannot interpret an element of %s as an element of %s", x.Parent(), r))
}

// Polynomial is an element of a polynomial Ring. Polynomials are immutable
// value objects: every operation returns a new element.
type Polynomial struct {
	ring  *Ring
	terms Terms
}

// resultRing returns the parent of the result of a binary operation: the
// right-hand operand's ring. The left operand is coerced into it. This is
// the single place the right-operand-determines-result policy is encoded
// for polynomials.
func resultRing(p, q *Polynomial) *Ring {
	return q.ring
}

func mustPolynomial(x ring.Element) *Polynomial {
	q, ok := x.(*Polynomial)
	if !ok {
		panic(fmt.Errorf("expected a polynomial operand but got %T", x))
	}
	return q
}

// Parent returns the ring the polynomial belongs to.
func (p *Polynomial) Parent() ring.Ring {
	return p.ring
}

// Ring returns the ring the polynomial belongs to.
func (p *Polynomial) Ring() *Ring {
	return p.ring
}

// Terms returns the underlying term dictionary.
func (p *Polynomial) Terms() Terms {
	return p.terms
}

// Add returns p + other. The result belongs to the right operand's ring;
// the left operand is coerced into it.
func (p *Polynomial) Add(other ring.Element) ring.Element {
	q := mustPolynomial(other)
	target := resultRing(p, q)
	return target.wrap(target.coerce(p).terms.Add(q.terms))
}

// Sub returns p - other, with the same parent policy as Add.
func (p *Polynomial) Sub(other ring.Element) ring.Element {
	q := mustPolynomial(other)
	target := resultRing(p, q)
	return target.wrap(target.coerce(p).terms.Sub(q.terms))
}

// Neg returns -p.
func (p *Polynomial) Neg() ring.Element {
	return p.ring.wrap(p.terms.Neg())
}

// Mul returns p * other, with the same parent policy as Add.
func (p *Polynomial) Mul(other ring.Element) ring.Element {
	q := mustPolynomial(other)
	target := resultRing(p, q)
	return target.wrap(target.coerce(p).terms.Mul(q.terms))
}

// Pow returns p raised to the n-th power by repeated squaring. It panics if
// n is negative.
func (p *Polynomial) Pow(n int) ring.Element {
	return p.ring.wrap(p.terms.Pow(n))
}

// Scale returns p with every coefficient multiplied by the scalar c, which
// must be an element of the base ring. The monomials are unchanged, so this
// is cheaper than multiplying by the constant polynomial c.
func (p *Polynomial) Scale(c ring.Element) *Polynomial {
	if !c.Parent().Equal(p.ring.base) {
		panic(fmt.Errorf("the scalar belongs to %s, not to the base ring %s", c.Parent(), p.ring.base))
	}
	return p.ring.wrap(p.terms.Scale(c))
}

// Equal reports whether other is a polynomial of the same ring with the same
// terms.
func (p *Polynomial) Equal(other ring.Element) bool {
	q, ok := other.(*Polynomial)
	return ok && p.ring.Equal(q.ring) && p.terms.Equal(q.terms)
}

// IsZero reports whether p is the zero polynomial.
func (p *Polynomial) IsZero() bool {
	return p.terms.IsZero()
}

// IsUnit reports whether p is a unit: a constant polynomial whose
// coefficient is a unit in the base ring.
func (p *Polynomial) IsUnit() bool {
	if p.terms.NumTerms() != 1 {
		return false
	}
	c := p.terms.Coefficient(unitMonomial(p.ring.rep))
	return !c.IsZero() && c.IsUnit()
}

// Inverse returns the inverse of p, or an error if p is not a unit constant.
func (p *Polynomial) Inverse() (ring.Element, error) {
	if !p.IsUnit() {
		return nil, fmt.Errorf("the polynomial is not a unit: only unit constants are invertible")
	}
	inv, err := p.terms.Coefficient(unitMonomial(p.ring.rep)).Inverse()
	if err != nil {
		return nil, err
	}
	return p.ring.constant(inv), nil
}

// Coefficient returns the coefficient of the monomial m, or the base ring's
// zero if m does not occur in p.
func (p *Polynomial) Coefficient(m Monomial) ring.Element {
	return p.terms.Coefficient(m)
}

// CoefficientAt returns the coefficient of the monomial with the given dense
// exponent vector, one entry per generator.
func (p *Polynomial) CoefficientAt(exps ...int) (ring.Element, error) {
	if len(exps) != p.ring.ngens {
		return nil, fmt.Errorf("got %d exponents for a polynomial in %d variables", len(exps), p.ring.ngens)
	}
	return p.terms.Coefficient(monomialFromExponents(p.ring.rep, exps)), nil
}

// ConstantCoefficient returns the coefficient of the unit monomial.
func (p *Polynomial) ConstantCoefficient() ring.Element {
	return p.terms.Coefficient(unitMonomial(p.ring.rep))
}

// Evaluate substitutes args[i] for the i-th generator and returns the
// resulting scalar. The arguments must be elements of the base ring, one per
// generator; any other arity is not supported and returns an error.
func (p *Polynomial) Evaluate(args ...ring.Element) (ring.Element, error) {
	if len(args) != p.ring.ngens {
		return nil, fmt.Errorf("evaluation at %d arguments is not supported for a polynomial in %d variables", len(args), p.ring.ngens)
	}
	for _, a := range args {
		if !a.Parent().Equal(p.ring.base) {
			return nil, fmt.Errorf("evaluation argument of %s is not an element of the base ring %s", a.Parent(), p.ring.base)
		}
	}
	return p.terms.Evaluate(args), nil
}

// String renders the polynomial term by term. The terms appear in whatever
// order the underlying dictionary yields them; no canonical ordering is
// guaranteed.
func (p *Polynomial) String() string {
	if p.terms.IsZero() {
		return "0"
	}

	var b strings.Builder
	first := true
	for m, c := range p.terms.coeffs {
		neg := false
		if s, ok := c.(ring.Signed); ok && s.Sign() < 0 {
			neg = true
			c = c.Neg()
		}
		token := c.String()
		if strings.Contains(token, " ") {
			token = "(" + token + ")"
		}
		switch {
		case first && neg:
			b.WriteString("- " + token)
		case first:
			b.WriteString(token)
		case neg:
			b.WriteString(" - " + token)
		default:
			b.WriteString(" + " + token)
		}
		for _, pair := range m.Pairs() {
			fmt.Fprintf(&b, "*%s%d^%d", p.ring.prefix, pair.Var, pair.Exp)
		}
		first = false
	}
	return b.String()
}
