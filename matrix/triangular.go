// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// Triangular is a lower or upper triangular matrix.
type Triangular struct {
	t *mat.TriDense
}

// NewLower creates a new n×n lower triangular matrix. If data is nil, a
// zero matrix is allocated, otherwise data is the row-major backing slice of
// length n*n of which only the lower triangle is referenced.
func NewLower(n int, data []float64) *Triangular {
	return &Triangular{t: mat.NewTriDense(n, mat.Lower, data)}
}

// NewUpper creates a new n×n upper triangular matrix. See NewLower for the
// meaning of data.
func NewUpper(n int, data []float64) *Triangular {
	return &Triangular{t: mat.NewTriDense(n, mat.Upper, data)}
}

// Dims returns the dimensions of the matrix.
func (t *Triangular) Dims() (r, c int) { return t.t.Dims() }

// At returns the element at row i, column j.
func (t *Triangular) At(i, j int) float64 { return t.t.At(i, j) }

// T returns the transpose of the matrix.
func (t *Triangular) T() mat.Matrix { return t.t.T() }

// SetAt sets the element at row i, column j. The position must lie in the
// stored triangle.
func (t *Triangular) SetAt(i, j int, v float64) { t.t.SetTri(i, j, v) }

// MulVecTo computes A*x and stores the result into dst.
func (t *Triangular) MulVecTo(dst, x []float64) {
	n, _ := t.t.Dims()
	checkVecs(n, dst, x)
	copy(dst, x)
	blas64.Trmv(blas.NoTrans, t.t.RawTriangular(), blas64.Vector{N: n, Data: dst, Inc: 1})
}

// DoRowNonZero calls fn for each nonzero entry of row i.
func (t *Triangular) DoRowNonZero(i int, fn func(i, j int, v float64)) {
	raw := t.t.RawTriangular()
	if i < 0 || raw.N <= i {
		panic("matrix: row index out of range")
	}
	lo, hi := 0, i+1
	if raw.Uplo == blas.Upper {
		lo, hi = i, raw.N
	}
	row := raw.Data[i*raw.Stride:]
	for j := lo; j < hi; j++ {
		if v := row[j]; v != 0 {
			fn(i, j, v)
		}
	}
}

// SolveVecTo stores into dst the solution of A z = rhs by forward or
// backward substitution.
func (t *Triangular) SolveVecTo(dst, rhs []float64) error {
	raw := t.t.RawTriangular()
	checkVecs(raw.N, dst, rhs)
	for i := 0; i < raw.N; i++ {
		if raw.Data[i*raw.Stride+i] == 0 {
			return fmt.Errorf("%w: zero diagonal entry %d", ErrSingular, i)
		}
	}
	copy(dst, rhs)
	blas64.Trsv(blas.NoTrans, raw, blas64.Vector{N: raw.N, Data: dst, Inc: 1})
	return nil
}
