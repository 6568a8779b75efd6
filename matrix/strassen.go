package matrix

import (
	"fmt"
	"sync"

	"github.com/noetherlab/noether/ring"
)

// strassenCutoff is the block size below which the recursion falls back to
// the schoolbook product. Ring operations allocate, so the crossover sits
// far lower than it would for machine words.
const strassenCutoff = 16

// parallelDepth bounds how many levels of the recursion fan the seven block
// products out to their own goroutines; 7^2 = 49 concurrent products at most.
const parallelDepth = 2

// MulStrassen returns the product m * other using Strassen's algorithm. The
// operands are padded to the next power-of-two square size, multiplied
// recursively with seven block products per level, and the result is cut
// back to the true dimensions. The top recursion levels run their block
// products concurrently.
func (m *Matrix) MulStrassen(other *Matrix) (*Matrix, error) {
	if err := m.checkCompatible(other); err != nil {
		return nil, err
	}
	if m.cols != other.rows {
		return nil, fmt.Errorf("cannot multiply a %dx%d matrix by a %dx%d matrix", m.rows, m.cols, other.rows, other.cols)
	}

	size := nextPow2(max3(m.rows, m.cols, other.cols))
	if size <= strassenCutoff {
		return m.Mul(other)
	}

	a := m.pad(size)
	b := other.pad(size)
	c := strassen(a, b, parallelDepth)
	return c.crop(m.rows, other.cols), nil
}

func nextPow2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}

func max3(a, b, c int) int {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}

// pad returns a size x size copy of m, filled with zeros outside the
// original dimensions.
func (m *Matrix) pad(size int) *Matrix {
	if m.rows == size && m.cols == size {
		return m
	}
	res, _ := New(m.ring, size, size)
	for i := 0; i < m.rows; i++ {
		copy(res.data[i*size:], m.data[i*m.cols:(i+1)*m.cols])
	}
	return res
}

// crop returns the top-left rows x cols block of m.
func (m *Matrix) crop(rows, cols int) *Matrix {
	if m.rows == rows && m.cols == cols {
		return m
	}
	res := &Matrix{ring: m.ring, rows: rows, cols: cols, data: make([]ring.Element, rows*cols)}
	for i := 0; i < rows; i++ {
		copy(res.data[i*cols:], m.data[i*m.cols:][:cols])
	}
	return res
}

// quadrant returns the half x half block of the square matrix m whose
// top-left corner is (half*qi, half*qj).
func (m *Matrix) quadrant(qi, qj int) *Matrix {
	half := m.rows / 2
	res := &Matrix{ring: m.ring, rows: half, cols: half, data: make([]ring.Element, half*half)}
	for i := 0; i < half; i++ {
		copy(res.data[i*half:], m.data[(qi*half+i)*m.cols+qj*half:][:half])
	}
	return res
}

// join assembles a square matrix from its four quadrants.
func join(c11, c12, c21, c22 *Matrix) *Matrix {
	half := c11.rows
	size := 2 * half
	res := &Matrix{ring: c11.ring, rows: size, cols: size, data: make([]ring.Element, size*size)}
	for i := 0; i < half; i++ {
		copy(res.data[i*size:], c11.data[i*half:(i+1)*half])
		copy(res.data[i*size+half:], c12.data[i*half:(i+1)*half])
		copy(res.data[(half+i)*size:], c21.data[i*half:(i+1)*half])
		copy(res.data[(half+i)*size+half:], c22.data[i*half:(i+1)*half])
	}
	return res
}

func mustAdd(a, b *Matrix) *Matrix {
	c, err := a.Add(b)
	if err != nil {
		panic(err)
	}
	return c
}

func mustSub(a, b *Matrix) *Matrix {
	c, err := a.Sub(b)
	if err != nil {
		panic(err)
	}
	return c
}

// strassen multiplies two square power-of-two matrices. depth counts the
// remaining recursion levels allowed to run their products in parallel.
func strassen(a, b *Matrix, depth int) *Matrix {
	if a.rows <= strassenCutoff {
		c, err := a.Mul(b)
		if err != nil {
			panic(err)
		}
		return c
	}

	a11, a12 := a.quadrant(0, 0), a.quadrant(0, 1)
	a21, a22 := a.quadrant(1, 0), a.quadrant(1, 1)
	b11, b12 := b.quadrant(0, 0), b.quadrant(0, 1)
	b21, b22 := b.quadrant(1, 0), b.quadrant(1, 1)

	products := [7]struct{ x, y *Matrix }{
		{mustAdd(a11, a22), mustAdd(b11, b22)},
		{mustAdd(a21, a22), b11},
		{a11, mustSub(b12, b22)},
		{a22, mustSub(b21, b11)},
		{mustAdd(a11, a12), b22},
		{mustSub(a21, a11), mustAdd(b11, b12)},
		{mustSub(a12, a22), mustAdd(b21, b22)},
	}

	var p [7]*Matrix
	if depth > 0 {
		var wg sync.WaitGroup
		wg.Add(len(products))
		for i := range products {
			go func(i int) {
				defer wg.Done()
				p[i] = strassen(products[i].x, products[i].y, depth-1)
			}(i)
		}
		wg.Wait()
	} else {
		for i := range products {
			p[i] = strassen(products[i].x, products[i].y, 0)
		}
	}

	c11 := mustAdd(mustSub(mustAdd(p[0], p[3]), p[4]), p[6])
	c12 := mustAdd(p[2], p[4])
	c21 := mustAdd(p[1], p[3])
	c22 := mustAdd(mustAdd(mustSub(p[0], p[1]), p[2]), p[5])

	return join(c11, c12, c21, c22)
}
