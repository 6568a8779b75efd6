// Package matrix implements dense matrices with entries in any scalar or
// polynomial ring.
package matrix

import (
	"fmt"
	"strings"

	"github.com/noetherlab/noether/ring"
)

// Matrix is a dense row-major matrix over a ring. Matrices are immutable:
// every operation returns a new matrix, and entries are never aliased
// mutable state since ring elements are themselves immutable.
type Matrix struct {
	ring ring.Ring
	rows int
	cols int
	data []ring.Element
}

// New returns the rows x cols zero matrix over r.
func New(r ring.Ring, rows, cols int) (*Matrix, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", rows, cols)
	}
	m := &Matrix{ring: r, rows: rows, cols: cols, data: make([]ring.Element, rows*cols)}
	zero := r.Zero()
	for i := range m.data {
		m.data[i] = zero
	}
	return m, nil
}

// FromRows builds a matrix from its rows. The rows must be non-empty, of
// equal length, and every entry must belong to r.
func FromRows(r ring.Ring, rows [][]ring.Element) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("a matrix needs at least one row and one column")
	}
	cols := len(rows[0])
	m := &Matrix{ring: r, rows: len(rows), cols: cols, data: make([]ring.Element, 0, len(rows)*cols)}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d entries, expected %d", i, len(row), cols)
		}
		for j, e := range row {
			if !e.Parent().Equal(r) {
				return nil, fmt.Errorf("entry (%d, %d) belongs to %s, not to %s", i, j, e.Parent(), r)
			}
			m.data = append(m.data, e)
		}
	}
	return m, nil
}

// Identity returns the n x n identity matrix over r.
func Identity(r ring.Ring, n int) (*Matrix, error) {
	m, err := New(r, n, n)
	if err != nil {
		return nil, err
	}
	one := r.One()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}
	return m, nil
}

// BaseRing returns the ring the entries are taken from.
func (m *Matrix) BaseRing() ring.Ring {
	return m.ring
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.cols
}

// At returns the entry at row i, column j.
func (m *Matrix) At(i, j int) ring.Element {
	return m.data[i*m.cols+j]
}

func (m *Matrix) checkCompatible(other *Matrix) error {
	if !m.ring.Equal(other.ring) {
		return fmt.Errorf("the matrices are over the distinct rings %s and %s", m.ring, other.ring)
	}
	return nil
}

// Add returns m + other.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if err := m.checkCompatible(other); err != nil {
		return nil, err
	}
	if m.rows != other.rows || m.cols != other.cols {
		return nil, fmt.Errorf("cannot add a %dx%d matrix to a %dx%d matrix", other.rows, other.cols, m.rows, m.cols)
	}
	res := &Matrix{ring: m.ring, rows: m.rows, cols: m.cols, data: make([]ring.Element, len(m.data))}
	for i := range m.data {
		res.data[i] = m.data[i].Add(other.data[i])
	}
	return res, nil
}

// Sub returns m - other.
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	return m.Add(other.Neg())
}

// Neg returns -m.
func (m *Matrix) Neg() *Matrix {
	res := &Matrix{ring: m.ring, rows: m.rows, cols: m.cols, data: make([]ring.Element, len(m.data))}
	for i := range m.data {
		res.data[i] = m.data[i].Neg()
	}
	return res
}

// Scale returns m with every entry multiplied by the scalar c.
func (m *Matrix) Scale(c ring.Element) (*Matrix, error) {
	if !c.Parent().Equal(m.ring) {
		return nil, fmt.Errorf("the scalar belongs to %s, not to %s", c.Parent(), m.ring)
	}
	res := &Matrix{ring: m.ring, rows: m.rows, cols: m.cols, data: make([]ring.Element, len(m.data))}
	for i := range m.data {
		res.data[i] = m.data[i].Mul(c)
	}
	return res, nil
}

// Mul returns the product m * other by the schoolbook algorithm. See
// MulStrassen for an asymptotically faster alternative on large square
// matrices.
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if err := m.checkCompatible(other); err != nil {
		return nil, err
	}
	if m.cols != other.rows {
		return nil, fmt.Errorf("cannot multiply a %dx%d matrix by a %dx%d matrix", m.rows, m.cols, other.rows, other.cols)
	}

	res := &Matrix{ring: m.ring, rows: m.rows, cols: other.cols, data: make([]ring.Element, m.rows*other.cols)}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < other.cols; j++ {
			acc := m.ring.Zero()
			for k := 0; k < m.cols; k++ {
				acc = acc.Add(m.data[i*m.cols+k].Mul(other.data[k*other.cols+j]))
			}
			res.data[i*other.cols+j] = acc
		}
	}
	return res, nil
}

// Transpose returns the transposed matrix.
func (m *Matrix) Transpose() *Matrix {
	res := &Matrix{ring: m.ring, rows: m.cols, cols: m.rows, data: make([]ring.Element, len(m.data))}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			res.data[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}
	return res
}

// Trace returns the sum of the diagonal entries of a square matrix.
func (m *Matrix) Trace() (ring.Element, error) {
	if m.rows != m.cols {
		return nil, fmt.Errorf("the trace of a %dx%d matrix is not defined", m.rows, m.cols)
	}
	acc := m.ring.Zero()
	for i := 0; i < m.rows; i++ {
		acc = acc.Add(m.data[i*m.cols+i])
	}
	return acc, nil
}

// Equal reports whether other has the same ring, dimensions and entries.
func (m *Matrix) Equal(other *Matrix) bool {
	if !m.ring.Equal(other.ring) || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		if !m.data[i].Equal(other.data[i]) {
			return false
		}
	}
	return true
}

// IsZero reports whether every entry is zero.
func (m *Matrix) IsZero() bool {
	for i := range m.data {
		if !m.data[i].IsZero() {
			return false
		}
	}
	return true
}

func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		b.WriteString("[")
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(m.data[i*m.cols+j].String())
		}
		b.WriteString("]\n")
	}
	return b.String()
}
