package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFloat(t *testing.T) {

	prec := uint(128)

	t.Run("FromInt", func(t *testing.T) {
		f64, _ := NewFloat(7, prec).Float64()
		require.Equal(t, 7.0, f64)
	})

	t.Run("FromFloat64", func(t *testing.T) {
		f64, _ := NewFloat(0.375, prec).Float64()
		require.Equal(t, 0.375, f64)
	})

	t.Run("FromBigInt", func(t *testing.T) {
		f64, _ := NewFloat(big.NewInt(-42), prec).Float64()
		require.Equal(t, -42.0, f64)
	})

	t.Run("Nil", func(t *testing.T) {
		require.True(t, NewFloat(nil, prec).Sign() == 0)
	})

	t.Run("InvalidType", func(t *testing.T) {
		require.Panics(t, func() { NewFloat("3.14", prec) })
	})
}

func TestRound(t *testing.T) {
	for _, tc := range []struct{ in, want float64 }{
		{0.4, 0}, {0.5, 1}, {1.6, 2}, {-0.4, 0}, {-0.5, -1}, {-1.6, -2},
	} {
		got, _ := Round(NewFloat(tc.in, 64)).Float64()
		require.Equal(t, tc.want, got)
	}
}

func TestTranscendental(t *testing.T) {

	prec := uint(128)

	t.Run("Pi", func(t *testing.T) {
		f64, _ := Pi(prec).Float64()
		require.Equal(t, math.Pi, f64)
	})

	t.Run("LogExp", func(t *testing.T) {
		x := NewFloat(2.5, prec)
		y, _ := Exp(Log(x)).Float64()
		require.InDelta(t, 2.5, y, 1e-15)
	})

	t.Run("Pow", func(t *testing.T) {
		y, _ := Pow(NewFloat(2, prec), NewFloat(10, prec)).Float64()
		require.InDelta(t, 1024, y, 1e-12)
	})

	t.Run("Sqrt", func(t *testing.T) {
		y, _ := Sqrt(NewFloat(2, prec)).Float64()
		require.InDelta(t, math.Sqrt2, y, 1e-15)
	})
}

func TestComplex(t *testing.T) {

	prec := uint(96)

	t.Run("Arithmetic", func(t *testing.T) {
		a := ToComplex(3+4i, prec)
		b := ToComplex(1-2i, prec)

		require.Equal(t, complex(4, 2), a.Add(a, b).Complex128())

		a = ToComplex(3+4i, prec)
		require.Equal(t, complex(11, -2), NewComplex().Mul(a, b).Complex128())

		q := NewComplex().Quo(NewComplex().Mul(a, b), b)
		require.InDelta(t, 3, real(q.Complex128()), 1e-15)
		require.InDelta(t, 4, imag(q.Complex128()), 1e-15)
	})

	t.Run("IsReal", func(t *testing.T) {
		require.True(t, ToComplex(2.5, prec).IsReal())
		require.False(t, ToComplex(2.5+1i, prec).IsReal())
	})

	t.Run("Prec", func(t *testing.T) {
		a := ToComplex(1+1i, prec)
		require.Equal(t, prec, a.Prec())
		require.Equal(t, uint(256), a.SetPrec(256).Prec())
	})
}
