package matrix

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/noetherlab/noether/poly"
	"github.com/noetherlab/noether/ring"
)

// fill builds a rows x cols integer matrix with a deterministic pattern.
func fill(t *testing.T, zz ring.Ring, rows, cols int, f func(i, j int) int64) *Matrix {
	entries := make([][]ring.Element, rows)
	for i := range entries {
		entries[i] = make([]ring.Element, cols)
		for j := range entries[i] {
			entries[i][j] = zz.FromInt64(f(i, j))
		}
	}
	m, err := FromRows(zz, entries)
	require.NoError(t, err)
	return m
}

func entries(m *Matrix) [][]ring.Element {
	rows := make([][]ring.Element, m.Rows())
	for i := range rows {
		rows[i] = make([]ring.Element, m.Cols())
		for j := range rows[i] {
			rows[i][j] = m.At(i, j)
		}
	}
	return rows
}

var cmpElements = cmp.Comparer(func(x, y ring.Element) bool { return x.Equal(y) })

func TestConstruction(t *testing.T) {

	zz := ring.NewIntegerRing()

	t.Run("Validation", func(t *testing.T) {
		_, err := New(zz, 0, 3)
		require.Error(t, err)

		_, err = FromRows(zz, [][]ring.Element{
			{zz.FromInt64(1), zz.FromInt64(2)},
			{zz.FromInt64(3)},
		})
		require.ErrorContains(t, err, "row 1 has 1 entries, expected 2")

		_, err = FromRows(zz, [][]ring.Element{{ring.NewRationalRing().FromInt64(1)}})
		require.Error(t, err)
	})

	t.Run("Identity", func(t *testing.T) {
		id, err := Identity(zz, 3)
		require.NoError(t, err)
		a := fill(t, zz, 3, 3, func(i, j int) int64 { return int64(5*i - 3*j + 1) })

		left, err := id.Mul(a)
		require.NoError(t, err)
		right, err := a.Mul(id)
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(entries(a), entries(left), cmpElements))
		require.Empty(t, cmp.Diff(entries(a), entries(right), cmpElements))
	})
}

func TestArithmetic(t *testing.T) {

	zz := ring.NewIntegerRing()
	a := fill(t, zz, 2, 3, func(i, j int) int64 { return int64(i + 10*j) })
	b := fill(t, zz, 2, 3, func(i, j int) int64 { return int64(7*i - j) })

	t.Run("AddSub", func(t *testing.T) {
		sum, err := a.Add(b)
		require.NoError(t, err)
		back, err := sum.Sub(b)
		require.NoError(t, err)
		require.True(t, back.Equal(a))

		diff, err := a.Sub(a)
		require.NoError(t, err)
		require.True(t, diff.IsZero())

		_, err = a.Add(fill(t, zz, 3, 2, func(i, j int) int64 { return 0 }))
		require.Error(t, err)
	})

	t.Run("Scale", func(t *testing.T) {
		doubled, err := a.Scale(zz.FromInt64(2))
		require.NoError(t, err)
		sum, err := a.Add(a)
		require.NoError(t, err)
		require.True(t, doubled.Equal(sum))

		_, err = a.Scale(ring.NewRationalRing().FromInt64(2))
		require.Error(t, err)
	})

	t.Run("Transpose", func(t *testing.T) {
		tr := a.Transpose()
		require.Equal(t, 3, tr.Rows())
		require.Equal(t, 2, tr.Cols())
		require.True(t, tr.Transpose().Equal(a))
		require.True(t, a.At(1, 2).Equal(tr.At(2, 1)))
	})

	t.Run("Trace", func(t *testing.T) {
		sq := fill(t, zz, 3, 3, func(i, j int) int64 { return int64(i*3 + j) })
		tr, err := sq.Trace()
		require.NoError(t, err)
		require.True(t, tr.Equal(zz.FromInt64(0+4+8)))

		_, err = a.Trace()
		require.Error(t, err)
	})

	t.Run("DimensionChecks", func(t *testing.T) {
		_, err := a.Mul(b) // 2x3 times 2x3
		require.Error(t, err)
	})
}

func TestMulAssociativity(t *testing.T) {

	zz := ring.NewIntegerRing()
	a := fill(t, zz, 2, 3, func(i, j int) int64 { return int64(i - j) })
	b := fill(t, zz, 3, 4, func(i, j int) int64 { return int64(2*i + j) })
	c := fill(t, zz, 4, 2, func(i, j int) int64 { return int64(i * j) })

	ab, err := a.Mul(b)
	require.NoError(t, err)
	abc1, err := ab.Mul(c)
	require.NoError(t, err)

	bc, err := b.Mul(c)
	require.NoError(t, err)
	abc2, err := a.Mul(bc)
	require.NoError(t, err)

	require.Empty(t, cmp.Diff(entries(abc1), entries(abc2), cmpElements))
}

func TestStrassenMatchesNaive(t *testing.T) {

	zz := ring.NewIntegerRing()

	t.Run("Square", func(t *testing.T) {
		// 33x33 pads to 64, so the recursion runs two levels deep.
		a := fill(t, zz, 33, 33, func(i, j int) int64 { return int64(31*i + 17*j - 40) })
		b := fill(t, zz, 33, 33, func(i, j int) int64 { return int64(13*i - 7*j + 5) })

		want, err := a.Mul(b)
		require.NoError(t, err)
		got, err := a.MulStrassen(b)
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(entries(want), entries(got), cmpElements))
	})

	t.Run("Rectangular", func(t *testing.T) {
		a := fill(t, zz, 20, 35, func(i, j int) int64 { return int64(i*j - 3*i + j) })
		b := fill(t, zz, 35, 9, func(i, j int) int64 { return int64(i - 2*j) })

		want, err := a.Mul(b)
		require.NoError(t, err)
		got, err := a.MulStrassen(b)
		require.NoError(t, err)
		require.Empty(t, cmp.Diff(entries(want), entries(got), cmpElements))
	})

	t.Run("SmallFallsBack", func(t *testing.T) {
		a := fill(t, zz, 4, 4, func(i, j int) int64 { return int64(i + j) })
		want, err := a.Mul(a)
		require.NoError(t, err)
		got, err := a.MulStrassen(a)
		require.NoError(t, err)
		require.True(t, want.Equal(got))
	})

	t.Run("DimensionChecks", func(t *testing.T) {
		a := fill(t, zz, 4, 4, func(i, j int) int64 { return 1 })
		b := fill(t, zz, 5, 4, func(i, j int) int64 { return 1 })
		_, err := a.MulStrassen(b)
		require.Error(t, err)
	})
}

func TestPolynomialEntries(t *testing.T) {

	zz := ring.NewIntegerRing()
	pr, err := poly.NewRing(poly.Parameters{BaseRing: zz, Gens: 2, Prefix: "x"})
	require.NoError(t, err)

	x0, x1 := pr.Gen(0), pr.Gen(1)

	// [[x0, x1], [0, 1]] squared.
	m, err := FromRows(pr, [][]ring.Element{
		{x0, x1},
		{pr.Zero(), pr.One()},
	})
	require.NoError(t, err)

	sq, err := m.Mul(m)
	require.NoError(t, err)
	require.True(t, sq.At(0, 0).Equal(x0.Mul(x0)))
	require.True(t, sq.At(0, 1).Equal(x0.Mul(x1).Add(x1)))
	require.True(t, sq.At(1, 1).Equal(pr.One()))
}
