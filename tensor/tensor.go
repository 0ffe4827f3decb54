// Package tensor provides the dense vector and matrix types used throughout
// the module. The arithmetic is backed by gonum, with one deliberate change of
// contract: incompatible shapes return type supervised.DimensionMismatchError
// instead of panicking, and no operation ever truncates or pads an operand.
//
// All operations are pure. They return new values and never modify their
// operands, so Vectors and Matrices can be shared freely between goroutines.
package tensor

import (
	"github.com/sharnoff/supervised"
	"gonum.org/v1/gonum/mat"
)

// Vector is a dense, fixed-length sequence of real values.
type Vector struct {
	data *mat.VecDense
}

// NewVector constructs a Vector holding a copy of values. The caller may reuse
// the slice afterwards.
func NewVector(values []float64) Vector {
	if len(values) == 0 {
		return Vector{}
	}

	return Vector{mat.NewVecDense(len(values), append([]float64(nil), values...))}
}

// Len returns the number of values in the Vector. The zero Vector has length 0.
func (v Vector) Len() int {
	if v.data == nil {
		return 0
	}

	return v.data.Len()
}

// At returns the value at index i. It panics if i is out of range, matching
// slice semantics.
func (v Vector) At(i int) float64 {
	return v.data.AtVec(i)
}

// Raw returns a copy of the Vector's values.
func (v Vector) Raw() []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.data.AtVec(i)
	}

	return out
}

// Add returns v + w elementwise.
func (v Vector) Add(w Vector) (Vector, error) {
	if v.Len() != w.Len() {
		return Vector{}, supervised.DimensionMismatchError{Expected: v.Len(), Got: w.Len(), Context: "vector addition"}
	} else if v.Len() == 0 {
		return Vector{}, nil
	}

	out := mat.NewVecDense(v.Len(), nil)
	out.AddVec(v.data, w.data)
	return Vector{out}, nil
}

// Sub returns v - w elementwise.
func (v Vector) Sub(w Vector) (Vector, error) {
	if v.Len() != w.Len() {
		return Vector{}, supervised.DimensionMismatchError{Expected: v.Len(), Got: w.Len(), Context: "vector subtraction"}
	} else if v.Len() == 0 {
		return Vector{}, nil
	}

	out := mat.NewVecDense(v.Len(), nil)
	out.SubVec(v.data, w.data)
	return Vector{out}, nil
}

// Scale returns c * v.
func (v Vector) Scale(c float64) Vector {
	if v.Len() == 0 {
		return Vector{}
	}

	out := mat.NewVecDense(v.Len(), nil)
	out.ScaleVec(c, v.data)
	return Vector{out}
}

// MulElem returns the elementwise (Hadamard) product of v and w.
func (v Vector) MulElem(w Vector) (Vector, error) {
	if v.Len() != w.Len() {
		return Vector{}, supervised.DimensionMismatchError{Expected: v.Len(), Got: w.Len(), Context: "elementwise vector product"}
	} else if v.Len() == 0 {
		return Vector{}, nil
	}

	out := mat.NewVecDense(v.Len(), nil)
	out.MulElemVec(v.data, w.data)
	return Vector{out}, nil
}

// Dot returns the inner product of v and w. The dot product of two zero
// Vectors is 0.
func (v Vector) Dot(w Vector) (float64, error) {
	if v.Len() != w.Len() {
		return 0, supervised.DimensionMismatchError{Expected: v.Len(), Got: w.Len(), Context: "dot product"}
	} else if v.Len() == 0 {
		return 0, nil
	}

	return mat.Dot(v.data, w.data), nil
}

// Map returns a Vector with f applied to each value.
func (v Vector) Map(f func(float64) float64) Vector {
	if v.Len() == 0 {
		return Vector{}
	}

	out := make([]float64, v.Len())
	for i := range out {
		out[i] = f(v.data.AtVec(i))
	}

	return Vector{mat.NewVecDense(len(out), out)}
}

// Matrix is a dense, row-major matrix of real values.
type Matrix struct {
	data *mat.Dense
}

// NewMatrix constructs a rows×cols Matrix from values given in row-major order.
// The values are copied. A DimensionMismatchError is returned if len(values)
// does not equal rows*cols. An empty shape yields the zero Matrix.
func NewMatrix(rows, cols int, values []float64) (Matrix, error) {
	if len(values) != rows*cols {
		return Matrix{}, supervised.DimensionMismatchError{Expected: rows * cols, Got: len(values), Context: "matrix construction"}
	} else if rows == 0 || cols == 0 {
		return Matrix{}, nil
	}

	return Matrix{mat.NewDense(rows, cols, append([]float64(nil), values...))}, nil
}

// Dims returns the number of rows and columns.
func (m Matrix) Dims() (rows, cols int) {
	if m.data == nil {
		return 0, 0
	}

	return m.data.Dims()
}

// At returns the value at row i, column j. It panics if out of range, matching
// slice semantics.
func (m Matrix) At(i, j int) float64 {
	return m.data.At(i, j)
}

// Add returns m + n elementwise.
func (m Matrix) Add(n Matrix) (Matrix, error) {
	mr, mc := m.Dims()
	nr, nc := n.Dims()
	if mr != nr || mc != nc {
		return Matrix{}, supervised.DimensionMismatchError{Expected: mr * mc, Got: nr * nc, Context: "matrix addition"}
	} else if mr == 0 {
		return Matrix{}, nil
	}

	out := mat.NewDense(mr, mc, nil)
	out.Add(m.data, n.data)
	return Matrix{out}, nil
}

// Scale returns c * m.
func (m Matrix) Scale(c float64) Matrix {
	mr, mc := m.Dims()
	if mr == 0 {
		return Matrix{}
	}

	out := mat.NewDense(mr, mc, nil)
	out.Scale(c, m.data)
	return Matrix{out}
}

// MulElem returns the elementwise (Hadamard) product of m and n.
func (m Matrix) MulElem(n Matrix) (Matrix, error) {
	mr, mc := m.Dims()
	nr, nc := n.Dims()
	if mr != nr || mc != nc {
		return Matrix{}, supervised.DimensionMismatchError{Expected: mr * mc, Got: nr * nc, Context: "elementwise matrix product"}
	} else if mr == 0 {
		return Matrix{}, nil
	}

	out := mat.NewDense(mr, mc, nil)
	out.MulElem(m.data, n.data)
	return Matrix{out}, nil
}

// Mul returns the matrix product m * n.
func (m Matrix) Mul(n Matrix) (Matrix, error) {
	mr, mc := m.Dims()
	nr, nc := n.Dims()
	if mc != nr {
		return Matrix{}, supervised.DimensionMismatchError{Expected: mc, Got: nr, Context: "matrix product"}
	} else if mr == 0 || mc == 0 || nc == 0 {
		return Matrix{}, nil
	}

	out := mat.NewDense(mr, nc, nil)
	out.Mul(m.data, n.data)
	return Matrix{out}, nil
}

// MulVec returns the matrix-vector product m * v.
func (m Matrix) MulVec(v Vector) (Vector, error) {
	mr, mc := m.Dims()
	if mc != v.Len() {
		return Vector{}, supervised.DimensionMismatchError{Expected: mc, Got: v.Len(), Context: "matrix-vector product"}
	} else if mr == 0 {
		return Vector{}, nil
	}

	out := mat.NewVecDense(mr, nil)
	out.MulVec(m.data, v.data)
	return Vector{out}, nil
}

// T returns the transpose of m.
func (m Matrix) T() Matrix {
	if m.data == nil {
		return Matrix{}
	}

	return Matrix{mat.DenseCopyOf(m.data.T())}
}

// Row returns a copy of row i as a Vector.
func (m Matrix) Row(i int) Vector {
	_, mc := m.Dims()
	out := make([]float64, mc)
	for j := range out {
		out[j] = m.data.At(i, j)
	}

	return Vector{mat.NewVecDense(len(out), out)}
}
