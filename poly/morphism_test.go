package poly

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noetherlab/noether/ring"
)

func TestMorphismValidation(t *testing.T) {

	zz := ring.NewIntegerRing()
	r, err := NewRing(Parameters{BaseRing: zz, Gens: 2, Prefix: "x"})
	require.NoError(t, err)

	t.Run("ImageCount", func(t *testing.T) {
		_, err := NewMorphism(MorphismParameters{
			Domain:   r,
			Codomain: zz,
			Images:   []ring.Element{zz.FromInt64(1)},
		})
		require.ErrorContains(t, err, "got 1 generator images for a ring with 2 generators")
	})

	t.Run("ImageParent", func(t *testing.T) {
		_, err := NewMorphism(MorphismParameters{
			Domain:   r,
			Codomain: zz,
			Images:   []ring.Element{zz.FromInt64(1), ring.NewRationalRing().FromInt64(1)},
		})
		require.Error(t, err)
	})

	t.Run("MissingBaseMorphism", func(t *testing.T) {
		// No base morphism and the codomain is not the base ring.
		_, err := NewMorphism(MorphismParameters{
			Domain:   r,
			Codomain: ring.NewRationalRing(),
			Images:   []ring.Element{ring.NewRationalRing().FromInt64(1), ring.NewRationalRing().FromInt64(2)},
		})
		require.Error(t, err)
	})

	t.Run("BaseMorphismMismatch", func(t *testing.T) {
		qq := ring.NewRationalRing()
		zn, err := ring.NewIntegerModRing(5)
		require.NoError(t, err)

		_, err = NewMorphism(MorphismParameters{
			Domain:       r,
			Codomain:     qq,
			BaseMorphism: ring.ReduceMod(zz, zn), // maps into Z/5Z, not QQ
			Images:       []ring.Element{qq.FromInt64(1), qq.FromInt64(2)},
		})
		require.Error(t, err)
	})
}

func TestMorphismEvaluation(t *testing.T) {

	zz := ring.NewIntegerRing()
	r, err := NewRing(Parameters{BaseRing: zz, Gens: 2, Prefix: "x"})
	require.NoError(t, err)

	// x0 -> 2, x1 -> 3 over the integers.
	m, err := NewMorphism(MorphismParameters{
		Domain:   r,
		Codomain: zz,
		Images:   []ring.Element{zz.FromInt64(2), zz.FromInt64(3)},
	})
	require.NoError(t, err)

	p := r.Gen(0).Pow(2).Add(r.Gen(1)).Add(r.FromInt64(5))
	require.True(t, m.Apply(p).Equal(zz.FromInt64(4+3+5)))

	// Repeated application hits the memoized monomial images.
	require.True(t, m.Apply(p).Equal(m.Apply(p)))
	require.True(t, m.Apply(r.Zero().(*Polynomial)).IsZero())

	require.Panics(t, func() { m.Apply(zz.FromInt64(1)) })
}

func TestMorphismSubstitution(t *testing.T) {

	zz := ring.NewIntegerRing()
	r, err := NewRing(Parameters{BaseRing: zz, Gens: 2, Prefix: "x"})
	require.NoError(t, err)
	s, err := NewRing(Parameters{BaseRing: zz, Gens: 1, Prefix: "y"})
	require.NoError(t, err)

	y0 := s.Gen(0)

	// x0 -> y0, x1 -> y0^2.
	m, err := NewMorphism(MorphismParameters{
		Domain:       r,
		Codomain:     s,
		BaseMorphism: Embedding(s),
		Images:       []ring.Element{y0, y0.Pow(2)},
	})
	require.NoError(t, err)

	// x0*x1 + 3*x1 maps to y0^3 + 3*y0^2.
	p := r.Gen(0).Mul(r.Gen(1)).Add(r.Gen(1).Mul(r.FromInt64(3)))
	want := y0.Pow(3).Add(y0.Pow(2).Mul(s.FromInt64(3)))
	require.True(t, m.Apply(p).Equal(want))
}

func TestMorphismModularReduction(t *testing.T) {

	zz := ring.NewIntegerRing()
	zn, err := ring.NewIntegerModRing(5)
	require.NoError(t, err)

	r, err := NewRing(Parameters{BaseRing: zz, Gens: 1, Prefix: "x"})
	require.NoError(t, err)
	s, err := NewRing(Parameters{BaseRing: zn, Gens: 1, Prefix: "x"})
	require.NoError(t, err)

	// Coefficient-wise reduction: ZZ -> Z/5Z -> constants of s.
	base, err := ring.Compose(ring.ReduceMod(zz, zn), Embedding(s))
	require.NoError(t, err)

	m, err := NewMorphism(MorphismParameters{
		Domain:       r,
		Codomain:     s,
		BaseMorphism: base,
		Images:       []ring.Element{s.Gen(0)},
	})
	require.NoError(t, err)

	// 7*x0 + 5 reduces to 2*x0.
	p := r.Gen(0).Mul(r.FromInt64(7)).Add(r.FromInt64(5))
	want := s.Gen(0).Mul(s.FromInt64(2))
	require.True(t, m.Apply(p).Equal(want))
}
