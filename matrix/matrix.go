// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package matrix provides the matrix representations used by the iterative
// solvers: Dense, Diagonal, Tridiagonal, Triangular and Sparse.
//
// Every representation implements the same three capabilities: applying the
// matrix to a vector (MulVecTo), enumerating the nonzero entries of a row
// (DoRowNonZero), and solving a system with the matrix (SolveVecTo), so that
// any of them can serve as the system matrix A or as a preconditioner P. The
// cost of each operation is that of the structure, for example O(n) for
// Diagonal and Tridiagonal. The one exception is Sparse.SolveVecTo, which
// factorizes a dense copy and is limited to small matrices.
//
// All representations also implement mat.Matrix and can be used with the
// functions of gonum.org/v1/gonum/mat.
package matrix

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrSingular is returned by SolveVecTo when the matrix is singular or too
// ill-conditioned for the solve to be meaningful.
var ErrSingular = errors.New("matrix: singular matrix")

// ErrTooLarge is returned by Sparse.SolveVecTo for matrices with more than
// MaxDirectSolve rows.
var ErrTooLarge = errors.New("matrix: too large for a direct solve")

// Matrix is a square matrix that can be applied to vectors, enumerate its
// nonzero entries row by row and solve linear systems.
type Matrix interface {
	mat.Matrix

	// MulVecTo computes A*x and stores the result into dst.
	MulVecTo(dst, x []float64)

	// DoRowNonZero calls fn for each nonzero entry of row i, passing the
	// row index, the column index and the value.
	DoRowNonZero(i int, fn func(i, j int, v float64))

	// SolveVecTo stores into dst the solution z of A z = rhs. It returns
	// ErrSingular (possibly wrapped) if A is singular.
	SolveVecTo(dst, rhs []float64) error
}

var (
	_ Matrix = (*Dense)(nil)
	_ Matrix = (*Diagonal)(nil)
	_ Matrix = (*Tridiagonal)(nil)
	_ Matrix = (*Triangular)(nil)
	_ Matrix = (*Sparse)(nil)
)

// DiagonalOf returns the diagonal part of a as a Diagonal matrix. The
// result is the preconditioner of the Jacobi method.
func DiagonalOf(a mat.Matrix) *Diagonal {
	r, c := a.Dims()
	if r != c {
		panic(mat.ErrSquare)
	}
	d := make([]float64, r)
	for i := range d {
		d[i] = a.At(i, i)
	}
	return NewDiagonal(d)
}

// LowerOf returns the lower triangle of a, diagonal included, as a
// Triangular matrix. The result is the preconditioner of the Gauss-Seidel
// method.
func LowerOf(a mat.Matrix) *Triangular {
	r, c := a.Dims()
	if r != c {
		panic(mat.ErrSquare)
	}
	l := NewLower(r, nil)
	if rm, ok := a.(Matrix); ok {
		for i := 0; i < r; i++ {
			rm.DoRowNonZero(i, func(i, j int, v float64) {
				if j <= i {
					l.SetAt(i, j, v)
				}
			})
		}
		return l
	}
	for i := 0; i < r; i++ {
		for j := 0; j <= i; j++ {
			l.SetAt(i, j, a.At(i, j))
		}
	}
	return l
}

func checkVecs(n int, dst, x []float64) {
	if len(x) != n {
		panic("matrix: dimension mismatch")
	}
	if len(dst) != n {
		panic("matrix: dimension mismatch")
	}
}

func checkIndex(n, i, j int) {
	if i < 0 || n <= i {
		panic("matrix: row index out of range")
	}
	if j < 0 || n <= j {
		panic("matrix: column index out of range")
	}
}
