package series

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noetherlab/noether/ring"
)

func TestMorphismValidation(t *testing.T) {

	zz := ring.NewIntegerRing()
	wide := testSeriesRing(t, zz, []int{1}, 10)
	narrow := testSeriesRing(t, zz, []int{1}, 4)

	t.Run("CapOrdering", func(t *testing.T) {
		// Into a less precise ring is fine, into a more precise one is not.
		_, err := NewMorphism(MorphismParameters{
			Domain:   wide,
			Codomain: narrow,
			Images:   []*Series{narrow.Gen(0)},
		})
		require.NoError(t, err)

		_, err = NewMorphism(MorphismParameters{
			Domain:   narrow,
			Codomain: wide,
			Images:   []*Series{wide.Gen(0)},
		})
		require.ErrorContains(t, err, "the codomain precision 10 exceeds the domain precision 4")
	})

	t.Run("ImageCount", func(t *testing.T) {
		_, err := NewMorphism(MorphismParameters{
			Domain:   wide,
			Codomain: narrow,
			Images:   nil,
		})
		require.Error(t, err)
	})

	t.Run("ScalarRings", func(t *testing.T) {
		qseries := testSeriesRing(t, ring.NewRationalRing(), []int{1}, 4)
		_, err := NewMorphism(MorphismParameters{
			Domain:   wide,
			Codomain: qseries,
			Images:   []*Series{qseries.Gen(0)},
		})
		require.Error(t, err) // no base morphism between ZZ and QQ given

		base, err := ring.Compose(ring.IncludeIntegers(ring.NewIntegerRing(), ring.NewRationalRing()), ring.Identity(ring.NewRationalRing()))
		require.NoError(t, err)
		_, err = NewMorphism(MorphismParameters{
			Domain:       wide,
			Codomain:     qseries,
			BaseMorphism: base,
			Images:       []*Series{qseries.Gen(0)},
		})
		require.NoError(t, err)
	})
}

func TestMorphismTruncates(t *testing.T) {

	zz := ring.NewIntegerRing()
	wide := testSeriesRing(t, zz, []int{1}, 10)
	narrow := testSeriesRing(t, zz, []int{1}, 4)

	m, err := NewMorphism(MorphismParameters{
		Domain:   wide,
		Codomain: narrow,
		Images:   []*Series{narrow.Gen(0)},
	})
	require.NoError(t, err)

	// 1 + t + t^7: the t^7 bucket dies at the narrower precision.
	f := wide.One().Add(wide.Gen(0)).Add(wide.Gen(0).Pow(7))
	img := m.Apply(f).(*Series)
	require.True(t, img.Ring().Equal(narrow))
	require.Equal(t, []int{0, 1}, bucketDegrees(img))

	require.Panics(t, func() { m.Apply(narrow.Gen(0)) })
}

func TestMorphismSubstitutes(t *testing.T) {

	zz := ring.NewIntegerRing()
	dom := testSeriesRing(t, zz, []int{1}, 8)
	cod := testSeriesRing(t, zz, []int{1}, 8)

	// t -> t + t^2.
	m, err := NewMorphism(MorphismParameters{
		Domain:   dom,
		Codomain: cod,
		Images:   []*Series{cod.Gen(0).Add(cod.Gen(0).Pow(2)).(*Series)},
	})
	require.NoError(t, err)

	g := cod.Gen(0).Add(cod.Gen(0).Pow(2))

	// Morphisms respect products: (t^2) maps to (t+t^2)^2.
	img := m.Apply(dom.Gen(0).Pow(2))
	require.True(t, img.Equal(g.Mul(g)))

	// And sums with constants.
	f := dom.FromInt64(3).Add(dom.Gen(0))
	require.True(t, m.Apply(f).Equal(cod.FromInt64(3).Add(g)))
}
