package series

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noetherlab/noether/poly"
	"github.com/noetherlab/noether/ring"
)

func testSeriesRing(t *testing.T, base ring.Ring, weights []int, cap int) *Ring {
	pr, err := poly.NewRing(poly.Parameters{
		BaseRing: base,
		Gens:     len(weights),
		Prefix:   "t",
		Weights:  weights,
	})
	require.NoError(t, err)

	r, err := NewRing(Parameters{PolyRing: pr, Cap: cap})
	require.NoError(t, err)
	return r
}

func TestRingConstruction(t *testing.T) {

	zz := ring.NewIntegerRing()

	t.Run("Validation", func(t *testing.T) {
		_, err := NewRing(Parameters{Cap: 4})
		require.Error(t, err) // nil polynomial ring

		pr, err := poly.NewRing(poly.Parameters{BaseRing: zz, Gens: 1, Prefix: "t"})
		require.NoError(t, err)
		_, err = NewRing(Parameters{PolyRing: pr, Cap: 0})
		require.Error(t, err)
	})

	t.Run("Equal", func(t *testing.T) {
		a := testSeriesRing(t, zz, []int{1, 2}, 8)
		b := testSeriesRing(t, zz, []int{1, 2}, 8)
		require.True(t, a.Equal(b))
		require.False(t, a.Equal(testSeriesRing(t, zz, []int{1, 2}, 9)))
		require.False(t, a.Equal(testSeriesRing(t, zz, []int{1, 1}, 8)))
	})

	t.Run("GeneratorsAboveCap", func(t *testing.T) {
		// A generator whose weight reaches the cap is already zero.
		r := testSeriesRing(t, zz, []int{1, 5}, 5)
		require.False(t, r.Gen(0).IsZero())
		require.True(t, r.Gen(1).IsZero())
	})
}

func TestTruncation(t *testing.T) {

	zz := ring.NewIntegerRing()
	r := testSeriesRing(t, zz, []int{2}, 6)
	g := r.Gen(0) // weight 2

	// g^2 has degree 4 and survives, g^3 has degree 6 and is cut.
	require.Equal(t, 4, g.Pow(2).(*Series).Degree())
	require.True(t, g.Pow(3).IsZero())

	// (1+g)*(1+g) keeps only the part below the cap.
	p := r.One().Add(g)
	sq := p.Mul(p).(*Series)
	require.Equal(t, []int{0, 2, 4}, bucketDegrees(sq))
	require.True(t, sq.Coefficient(2).Equal(r.PolyRing().Gen(0).Mul(r.PolyRing().FromInt64(2))))
}

func bucketDegrees(s *Series) []int {
	degs := make([]int, 0, len(s.Buckets()))
	for _, b := range s.Buckets() {
		degs = append(degs, b.Degree)
	}
	return degs
}

func TestDisjointDegrees(t *testing.T) {

	zz := ring.NewIntegerRing()
	r := testSeriesRing(t, zz, []int{5, 8}, 20)

	a := r.Gen(0) // degree 5
	b := r.Gen(1) // degree 8

	sum := a.Add(b).(*Series)
	require.Equal(t, []int{5, 8}, bucketDegrees(sum))
	require.Equal(t, 5, sum.FiltrationWeight())
	require.Equal(t, 8, sum.Degree())
	require.False(t, sum.IsHomogeneous())

	diff := sum.Sub(b).(*Series)
	require.True(t, diff.Equal(a))
	require.True(t, diff.IsHomogeneous())

	require.True(t, sum.Sub(sum).IsZero())
	require.Equal(t, 20, sum.Sub(sum).(*Series).FiltrationWeight())

	// The product lands in degree 13.
	require.Equal(t, []int{13}, bucketDegrees(a.Mul(b).(*Series)))
}

func TestUnflatten(t *testing.T) {

	zz := ring.NewIntegerRing()
	r := testSeriesRing(t, zz, []int{1, 3}, 7)
	pr := r.PolyRing()

	// t0^2*t1 has weighted degree 5, t1^3 has degree 9 and is dropped.
	p, err := pr.New([]poly.Term{
		{Pairs: nil, Coeff: zz.FromInt64(4)},
		{Pairs: []int{0, 2, 1, 1}, Coeff: zz.FromInt64(1)},
		{Pairs: []int{1, 3}, Coeff: zz.FromInt64(1)},
	})
	require.NoError(t, err)

	s, err := r.New(p)
	require.NoError(t, err)
	require.Equal(t, []int{0, 5}, bucketDegrees(s))

	// Flattening recovers exactly the surviving terms.
	flat := s.Flatten()
	require.Equal(t, 2, flat.Terms().NumTerms())
	c, err := flat.CoefficientAt(2, 1)
	require.NoError(t, err)
	require.True(t, c.Equal(zz.FromInt64(1)))
}

func TestCapPolicy(t *testing.T) {

	zz := ring.NewIntegerRing()
	wide := testSeriesRing(t, zz, []int{1}, 10)
	narrow := testSeriesRing(t, zz, []int{1}, 3)

	p := wide.One().Add(wide.Gen(0).Pow(5)).(*Series)

	// The right operand's cap bounds the result.
	q := p.Add(narrow.Zero()).(*Series)
	require.True(t, q.Ring().Equal(narrow))
	require.Equal(t, []int{0}, bucketDegrees(q))

	back := narrow.One().Mul(p).(*Series)
	require.True(t, back.Ring().Equal(wide))
	require.Equal(t, []int{0, 5}, bucketDegrees(back))
}

func TestInverse(t *testing.T) {

	zz := ring.NewIntegerRing()
	qq := ring.NewRationalRing()

	t.Run("Geometric", func(t *testing.T) {
		r := testSeriesRing(t, zz, []int{1}, 16)
		g := r.Gen(0)

		// 1/(1-t) = 1 + t + t^2 + ...
		f := r.One().Sub(g).(*Series)
		inv, err := f.Inverse()
		require.NoError(t, err)
		require.True(t, f.Mul(inv).Equal(r.One()))

		all := make([]int, 16)
		for i := range all {
			all[i] = i
		}
		require.Equal(t, all, bucketDegrees(inv.(*Series)))
	})

	t.Run("RationalConstant", func(t *testing.T) {
		r := testSeriesRing(t, qq, []int{1, 1}, 9)
		f := r.FromInt64(2).Add(r.Gen(0).Mul(r.Gen(1))).(*Series)
		inv, err := f.Inverse()
		require.NoError(t, err)
		require.True(t, f.Mul(inv).Equal(r.One()))
		require.True(t, inv.Mul(f).Equal(r.One()))
	})

	t.Run("NonUnit", func(t *testing.T) {
		r := testSeriesRing(t, zz, []int{1}, 8)

		_, err := r.Gen(0).Inverse() // no constant term
		require.Error(t, err)

		_, err = r.FromInt64(2).Inverse() // 2 is not a unit in ZZ
		require.Error(t, err)

		require.False(t, r.Zero().IsUnit())
	})
}

func TestDiv(t *testing.T) {

	zz := ring.NewIntegerRing()
	qq := ring.NewRationalRing()

	t.Run("RoundTrip", func(t *testing.T) {
		r := testSeriesRing(t, qq, []int{1}, 12)
		g := r.Gen(0)

		f := r.One().Add(g.Pow(2)).(*Series)
		d := r.FromInt64(2).Sub(g).(*Series)

		q, err := f.Div(d)
		require.NoError(t, err)
		require.True(t, q.Mul(d).Equal(f))

		// f/f = 1.
		q, err = f.Div(f)
		require.NoError(t, err)
		require.True(t, q.Equal(r.One()))
	})

	t.Run("ZeroNumerator", func(t *testing.T) {
		r := testSeriesRing(t, zz, []int{1}, 8)

		// 0/t is zero even though t is not invertible.
		q, err := r.Zero().(*Series).Div(r.Gen(0))
		require.NoError(t, err)
		require.True(t, q.IsZero())
	})

	t.Run("NonUnitDivisor", func(t *testing.T) {
		r := testSeriesRing(t, zz, []int{1}, 8)

		_, err := r.One().(*Series).Div(r.Gen(0))
		require.Error(t, err)
	})
}

func TestNewErrors(t *testing.T) {

	zz := ring.NewIntegerRing()
	r := testSeriesRing(t, zz, []int{1}, 4)

	_, err := r.New("series")
	require.ErrorContains(t, err, "no known constructor for input data of type string")

	otherPr, err := poly.NewRing(poly.Parameters{BaseRing: zz, Gens: 2, Prefix: "u"})
	require.NoError(t, err)
	_, err = r.New(otherPr.Gen(0))
	require.Error(t, err)

	_, err = r.New(ring.NewRationalRing().FromInt64(1))
	require.Error(t, err)

	s, err := r.New(5)
	require.NoError(t, err)
	require.True(t, s.Equal(r.FromInt64(5)))
}
