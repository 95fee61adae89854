// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Tridiagonal is a tridiagonal matrix backed by a gonum mat.Tridiag.
type Tridiagonal struct {
	m *mat.Tridiag
}

// NewTridiagonal creates a new n×n Tridiagonal matrix, where n = len(d).
// dl is the subdiagonal and du the superdiagonal, both of length n-1. The
// slices are used as the backing data.
func NewTridiagonal(dl, d, du []float64) *Tridiagonal {
	n := len(d)
	if n == 0 {
		panic(mat.ErrZeroLength)
	}
	if len(dl) != n-1 || len(du) != n-1 {
		panic("matrix: bad off-diagonal length")
	}
	return &Tridiagonal{m: mat.NewTridiag(n, dl, d, du)}
}

// NewSymTridiagonal creates a symmetric Tridiagonal matrix with diagonal d
// and off-diagonal e of length len(d)-1.
func NewSymTridiagonal(d, e []float64) *Tridiagonal {
	return NewTridiagonal(e, d, e)
}

// Dims returns the dimensions of the matrix.
func (t *Tridiagonal) Dims() (r, c int) { return t.m.Dims() }

// At returns the element at row i, column j.
func (t *Tridiagonal) At(i, j int) float64 {
	n, _ := t.m.Dims()
	checkIndex(n, i, j)
	return t.m.At(i, j)
}

// T returns the transpose of the matrix.
func (t *Tridiagonal) T() mat.Matrix {
	n, _ := t.m.Dims()
	dl := make([]float64, n-1)
	d := make([]float64, n)
	du := make([]float64, n-1)
	for i := 0; i < n; i++ {
		d[i] = t.m.At(i, i)
		if i < n-1 {
			dl[i] = t.m.At(i, i+1)
			du[i] = t.m.At(i+1, i)
		}
	}
	return NewTridiagonal(dl, d, du)
}

// MulVecTo computes A*x and stores the result into dst.
func (t *Tridiagonal) MulVecTo(dst, x []float64) {
	n, _ := t.m.Dims()
	checkVecs(n, dst, x)
	t.m.MulVecTo(mat.NewVecDense(n, dst), false, mat.NewVecDense(n, x))
}

// DoRowNonZero calls fn for each nonzero entry of row i.
func (t *Tridiagonal) DoRowNonZero(i int, fn func(i, j int, v float64)) {
	n, _ := t.m.Dims()
	if i < 0 || n <= i {
		panic("matrix: row index out of range")
	}
	t.m.DoRowNonZero(i, func(i, j int, v float64) {
		if v != 0 {
			fn(i, j, v)
		}
	})
}

// SolveVecTo stores into dst the solution of A z = rhs computed by Gaussian
// elimination with partial pivoting (LAPACK Dgtsv). It returns ErrSingular
// only if A is exactly singular.
func (t *Tridiagonal) SolveVecTo(dst, rhs []float64) error {
	n, _ := t.m.Dims()
	checkVecs(n, dst, rhs)
	err := t.m.SolveVecTo(mat.NewVecDense(n, dst), false, mat.NewVecDense(n, rhs))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSingular, err)
	}
	return nil
}
