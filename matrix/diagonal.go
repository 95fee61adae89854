// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Diagonal is a diagonal matrix.
type Diagonal struct {
	data []float64
}

// NewDiagonal creates a new n×n Diagonal matrix with the diagonal d, where
// n = len(d). d is used as the backing slice.
func NewDiagonal(d []float64) *Diagonal {
	return &Diagonal{data: d}
}

// Dims returns the dimensions of the matrix.
func (d *Diagonal) Dims() (r, c int) { return len(d.data), len(d.data) }

// At returns the element at row i, column j.
func (d *Diagonal) At(i, j int) float64 {
	checkIndex(len(d.data), i, j)
	if i != j {
		return 0
	}
	return d.data[i]
}

// T returns the receiver, a diagonal matrix is symmetric.
func (d *Diagonal) T() mat.Matrix { return d }

// MulVecTo computes A*x and stores the result into dst.
func (d *Diagonal) MulVecTo(dst, x []float64) {
	checkVecs(len(d.data), dst, x)
	for i, v := range d.data {
		dst[i] = v * x[i]
	}
}

// DoRowNonZero calls fn for the diagonal entry of row i if it is nonzero.
func (d *Diagonal) DoRowNonZero(i int, fn func(i, j int, v float64)) {
	if v := d.data[i]; v != 0 {
		fn(i, i, v)
	}
}

// SolveVecTo stores into dst the solution of A z = rhs.
func (d *Diagonal) SolveVecTo(dst, rhs []float64) error {
	checkVecs(len(d.data), dst, rhs)
	for i, v := range d.data {
		if v == 0 {
			return fmt.Errorf("%w: zero diagonal entry %d", ErrSingular, i)
		}
	}
	for i, v := range d.data {
		dst[i] = rhs[i] / v
	}
	return nil
}
