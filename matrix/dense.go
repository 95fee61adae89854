// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// Dense is a general square matrix stored in row-major order.
//
// SolveVecTo factorizes the matrix on first use and reuses the LU factors
// afterwards, so the matrix must not be modified after the first solve.
type Dense struct {
	m *mat.Dense

	once  sync.Once
	lu    mat.LU
	luErr error
}

// NewDense creates a new n×n Dense matrix. If data is nil, a zero matrix is
// allocated, otherwise data is used as the backing slice in row-major order
// and must have length n*n.
func NewDense(n int, data []float64) *Dense {
	return &Dense{m: mat.NewDense(n, n, data)}
}

// DenseCopyOf returns a Dense copy of the square matrix a.
func DenseCopyOf(a mat.Matrix) *Dense {
	r, c := a.Dims()
	if r != c {
		panic(mat.ErrSquare)
	}
	return &Dense{m: mat.DenseCopyOf(a)}
}

// Dims returns the dimensions of the matrix.
func (d *Dense) Dims() (r, c int) { return d.m.Dims() }

// At returns the element at row i, column j.
func (d *Dense) At(i, j int) float64 { return d.m.At(i, j) }

// T returns the transpose of the matrix.
func (d *Dense) T() mat.Matrix { return mat.Transpose{Matrix: d} }

// SetAt sets the element at row i, column j to v.
func (d *Dense) SetAt(i, j int, v float64) { d.m.Set(i, j, v) }

// MulVecTo computes A*x and stores the result into dst.
func (d *Dense) MulVecTo(dst, x []float64) {
	n, _ := d.m.Dims()
	checkVecs(n, dst, x)
	blas64.Gemv(blas.NoTrans, 1, d.m.RawMatrix(),
		blas64.Vector{N: n, Data: x, Inc: 1},
		0, blas64.Vector{N: n, Data: dst, Inc: 1})
}

// DoRowNonZero calls fn for each nonzero entry of row i.
func (d *Dense) DoRowNonZero(i int, fn func(i, j int, v float64)) {
	raw := d.m.RawMatrix()
	if i < 0 || raw.Rows <= i {
		panic("matrix: row index out of range")
	}
	row := raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols]
	for j, v := range row {
		if v != 0 {
			fn(i, j, v)
		}
	}
}

// SolveVecTo stores into dst the solution of A z = rhs using the LU
// factorization of A.
func (d *Dense) SolveVecTo(dst, rhs []float64) error {
	n, _ := d.m.Dims()
	checkVecs(n, dst, rhs)
	d.once.Do(func() {
		d.lu.Factorize(d.m)
		if d.lu.Det() == 0 {
			d.luErr = ErrSingular
		}
	})
	if d.luErr != nil {
		return d.luErr
	}
	return luSolve(&d.lu, dst, rhs)
}

func luSolve(lu *mat.LU, dst, rhs []float64) error {
	z := mat.NewVecDense(len(dst), dst)
	err := lu.SolveVecTo(z, false, mat.NewVecDense(len(rhs), rhs))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSingular, err)
	}
	return nil
}
