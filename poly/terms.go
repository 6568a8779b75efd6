package poly

import (
	"fmt"

	"github.com/noetherlab/noether/ring"
)

// Terms is the underlying data of a polynomial: a dictionary from monomials
// to non-zero scalar coefficients. The zero polynomial has an empty
// dictionary.
//
// A Terms value is owned by the polynomial wrapping it and is never mutated
// after construction: every operation allocates a fresh dictionary. All
// monomial keys of a dictionary share a single representation; the
// representations are never mixed within one value.
type Terms struct {
	base   ring.Ring
	rep    Representation
	coeffs map[Monomial]ring.Element
}

// NewTerms builds a term dictionary over base from the given coefficients,
// dropping any entry whose coefficient is zero. The input map is copied.
func NewTerms(base ring.Ring, rep Representation, coeffs map[Monomial]ring.Element) Terms {
	t := Terms{base: base, rep: rep, coeffs: make(map[Monomial]ring.Element, len(coeffs))}
	for m, c := range coeffs {
		if !c.IsZero() {
			t.coeffs[m] = c
		}
	}
	return t
}

// unitTerms returns the term dictionary of the constant polynomial 1.
func unitTerms(base ring.Ring, rep Representation) Terms {
	return Terms{base: base, rep: rep, coeffs: map[Monomial]ring.Element{unitMonomial(rep): base.One()}}
}

// resultBase returns the base ring tag carried by the result of a binary
// operation on term dictionaries. The right-hand operand wins; this is the
// single place the right-operand-determines-result policy is encoded.
func resultBase(x, y Terms) ring.Ring {
	return y.base
}

// BaseRing returns the scalar ring the coefficients are taken from.
func (t Terms) BaseRing() ring.Ring {
	return t.base
}

// NumTerms returns the number of non-zero terms.
func (t Terms) NumTerms() int {
	return len(t.coeffs)
}

// IsZero reports whether the dictionary has no terms.
func (t Terms) IsZero() bool {
	return len(t.coeffs) == 0
}

// Coefficient returns the coefficient of the monomial m, or the base ring's
// zero if m is absent.
func (t Terms) Coefficient(m Monomial) ring.Element {
	if c, ok := t.coeffs[m]; ok {
		return c
	}
	return t.base.Zero()
}

// ForEachTerm calls f on every (monomial, coefficient) entry, in no
// particular order.
func (t Terms) ForEachTerm(f func(m Monomial, c ring.Element)) {
	for m, c := range t.coeffs {
		f(m, c)
	}
}

// Add returns the sum of the two term dictionaries. The result carries the
// right-hand operand's base ring.
func (t Terms) Add(other Terms) Terms {
	// Merge the smaller dictionary into a copy of the larger one.
	big, small := t, other
	if len(t.coeffs) < len(other.coeffs) {
		big, small = other, t
	}

	merged := make(map[Monomial]ring.Element, len(big.coeffs))
	for m, c := range big.coeffs {
		merged[m] = c
	}
	for m, c := range small.coeffs {
		if acc, ok := merged[m]; ok {
			merged[m] = acc.Add(c)
		} else {
			merged[m] = c
		}
	}

	return NewTerms(resultBase(t, other), other.rep, merged)
}

// Neg returns the negation of the term dictionary.
func (t Terms) Neg() Terms {
	negated := make(map[Monomial]ring.Element, len(t.coeffs))
	for m, c := range t.coeffs {
		negated[m] = c.Neg()
	}
	return Terms{base: t.base, rep: t.rep, coeffs: negated}
}

// Sub returns t - other.
func (t Terms) Sub(other Terms) Terms {
	return t.Add(other.Neg())
}

// Mul returns the product of the two term dictionaries by full bilinear
// expansion. It panics if the base rings differ.
func (t Terms) Mul(other Terms) Terms {
	if !t.base.Equal(other.base) {
		panic(fmt.Errorf("cannot multiply term dictionaries over the distinct base rings %s and %s", t.base, other.base))
	}

	expanded := make(map[Monomial]ring.Element, len(t.coeffs)*len(other.coeffs))
	for m, c := range t.coeffs {
		for n, d := range other.coeffs {
			k := m.Mul(n)
			e := c.Mul(d)
			if acc, ok := expanded[k]; ok {
				expanded[k] = acc.Add(e)
			} else {
				expanded[k] = e
			}
		}
	}

	return NewTerms(resultBase(t, other), other.rep, expanded)
}

// Scale returns the term dictionary with every coefficient multiplied by the
// scalar c. The monomials are unchanged.
func (t Terms) Scale(c ring.Element) Terms {
	scaled := make(map[Monomial]ring.Element, len(t.coeffs))
	for m, d := range t.coeffs {
		scaled[m] = d.Mul(c)
	}
	return NewTerms(t.base, t.rep, scaled)
}

// Pow returns the n-th power of the term dictionary by repeated squaring.
// It panics if n is negative.
func (t Terms) Pow(n int) Terms {
	if n < 0 {
		panic(fmt.Errorf("cannot raise a polynomial to the negative power %d", n))
	}
	if n == 0 {
		return unitTerms(t.base, t.rep)
	}

	apow := t
	for n&1 == 0 {
		apow = apow.Mul(apow)
		n >>= 1
	}

	res := apow
	n >>= 1
	for n > 0 {
		apow = apow.Mul(apow)
		if n&1 == 1 {
			res = apow.Mul(res)
		}
		n >>= 1
	}
	return res
}

// Evaluate substitutes args[i] for the i-th variable and returns the
// resulting scalar. The arguments must be elements of the base ring, one per
// variable.
func (t Terms) Evaluate(args []ring.Element) ring.Element {
	x := t.base.Zero()
	for m, c := range t.coeffs {
		monomialPart := t.base.One()
		for _, p := range m.Pairs() {
			monomialPart = monomialPart.Mul(args[p.Var].Pow(p.Exp))
		}
		x = x.Add(c.Mul(monomialPart))
	}
	return x
}

// Equal reports whether the two dictionaries hold the same terms over the
// same base ring.
func (t Terms) Equal(other Terms) bool {
	if !t.base.Equal(other.base) || len(t.coeffs) != len(other.coeffs) {
		return false
	}
	for m, c := range t.coeffs {
		d, ok := other.coeffs[m]
		if !ok || !c.Equal(d) {
			return false
		}
	}
	return true
}

func (t Terms) String() string {
	s := "{"
	first := true
	for m, c := range t.coeffs {
		if !first {
			s += ", "
		}
		s += fmt.Sprintf("%s: %s", m, c)
		first = false
	}
	return s + "}"
}
