package bignum

import (
	"fmt"
	"math/big"

	"github.com/noetherlab/noether/utils"
)

// Complex is a type for arbitrary precision complex numbers.
type Complex [2]*big.Float

// NewComplex creates a new arbitrary precision complex number set to zero.
func NewComplex() (c *Complex) {
	return &Complex{
		new(big.Float),
		new(big.Float),
	}
}

// ToComplex takes a complex128, float64, int, int64, uint64, *big.Int,
// *big.Float or *Complex and returns a *Complex set to the given precision.
func ToComplex(value interface{}, prec uint) (cmplx *Complex) {

	cmplx = new(Complex)

	switch value := value.(type) {
	case complex128:
		cmplx[0] = new(big.Float).SetPrec(prec).SetFloat64(real(value))
		cmplx[1] = new(big.Float).SetPrec(prec).SetFloat64(imag(value))
	case float64:
		cmplx[0] = new(big.Float).SetPrec(prec).SetFloat64(value)
		cmplx[1] = new(big.Float).SetPrec(prec)
	case int:
		cmplx[0] = new(big.Float).SetPrec(prec).SetInt64(int64(value))
		cmplx[1] = new(big.Float).SetPrec(prec)
	case int64:
		cmplx[0] = new(big.Float).SetPrec(prec).SetInt64(value)
		cmplx[1] = new(big.Float).SetPrec(prec)
	case uint64:
		return ToComplex(new(big.Int).SetUint64(value), prec)
	case *big.Float:
		cmplx[0] = new(big.Float).SetPrec(prec).Set(value)
		cmplx[1] = new(big.Float).SetPrec(prec)
	case *big.Int:
		cmplx[0] = new(big.Float).SetPrec(prec).SetInt(value)
		cmplx[1] = new(big.Float).SetPrec(prec)
	case *Complex:
		cmplx[0] = new(big.Float).SetPrec(prec).Set(value[0])
		cmplx[1] = new(big.Float).SetPrec(prec).Set(value[1])
	default:
		panic(fmt.Errorf("invalid value.(type): must be int, int64, uint64, float64, complex128, *big.Int, *big.Float or *Complex but is %T", value))
	}

	return
}

// IsReal returns true if the imaginary part is zero.
func (c *Complex) IsReal() bool {
	return c[1] == nil || c[1].Cmp(new(big.Float)) == 0
}

// IsZero returns true if both the real and imaginary parts are zero.
func (c *Complex) IsZero() bool {
	zero := new(big.Float)
	return c[0].Cmp(zero) == 0 && (c[1] == nil || c[1].Cmp(zero) == 0)
}

// Set sets an arbitrary precision complex number.
func (c *Complex) Set(a *Complex) *Complex {
	c[0].Set(a[0])
	c[1].Set(a[1])
	return c
}

// Clone returns a new copy of the target arbitrary precision complex number.
func (c *Complex) Clone() *Complex {
	return &Complex{new(big.Float).Set(c[0]), new(big.Float).Set(c[1])}
}

// Prec returns the precision of the target complex number.
func (c *Complex) Prec() uint {
	return utils.Max(c[0].Prec(), c[1].Prec())
}

// SetPrec sets the precision of the target complex number.
func (c *Complex) SetPrec(prec uint) *Complex {
	c[0].SetPrec(prec)
	c[1].SetPrec(prec)
	return c
}

// Real returns the real part as a big.Float.
func (c *Complex) Real() *big.Float {
	return c[0]
}

// Imag returns the imaginary part as a big.Float.
func (c *Complex) Imag() *big.Float {
	return c[1]
}

// Complex128 returns the arbitrary precision complex number as a complex128.
func (c *Complex) Complex128() complex128 {
	real, _ := c[0].Float64()
	imag, _ := c[1].Float64()
	return complex(real, imag)
}

// Add evaluates c = a + b.
func (c *Complex) Add(a, b *Complex) *Complex {
	c[0].Add(a[0], b[0])
	c[1].Add(a[1], b[1])
	return c
}

// Sub evaluates c = a - b.
func (c *Complex) Sub(a, b *Complex) *Complex {
	c[0].Sub(a[0], b[0])
	c[1].Sub(a[1], b[1])
	return c
}

// Neg evaluates c = -a.
func (c *Complex) Neg(a *Complex) *Complex {
	c[0].Neg(a[0])
	c[1].Neg(a[1])
	return c
}

// Mul evaluates c = a * b.
func (c *Complex) Mul(a, b *Complex) *Complex {

	tmp0 := new(big.Float).Mul(a[0], b[0])
	tmp1 := new(big.Float).Mul(a[1], b[1])
	tmp2 := new(big.Float).Mul(a[0], b[1])
	tmp3 := new(big.Float).Mul(a[1], b[0])

	c[0].Sub(tmp0, tmp1)
	c[1].Add(tmp2, tmp3)

	return c
}

// Quo evaluates c = a / b.
func (c *Complex) Quo(a, b *Complex) *Complex {

	// tmp0 = (a[0] * b[0]) + (a[1] * b[1]) real part
	// tmp1 = (a[1] * b[0]) - (a[0] * b[1]) imag part
	// tmp2 = (b[0] * b[0]) + (b[1] * b[1]) denominator
	tmp0 := new(big.Float).Mul(a[0], b[0])
	tmp0.Add(tmp0, new(big.Float).Mul(a[1], b[1]))

	tmp1 := new(big.Float).Mul(a[1], b[0])
	tmp1.Sub(tmp1, new(big.Float).Mul(a[0], b[1]))

	tmp2 := new(big.Float).Mul(b[0], b[0])
	tmp2.Add(tmp2, new(big.Float).Mul(b[1], b[1]))

	c[0].Quo(tmp0, tmp2)
	c[1].Quo(tmp1, tmp2)

	return c
}

// Equal returns true if a == c componentwise.
func (c *Complex) Equal(a *Complex) bool {
	return c[0].Cmp(a[0]) == 0 && c[1].Cmp(a[1]) == 0
}

func (c *Complex) String() string {
	return fmt.Sprintf("%s + %si", c[0].String(), c[1].String())
}
