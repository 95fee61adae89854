// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import (
	"fmt"
	"sort"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// Sparse is a square matrix in compressed sparse row (CSR) format. Use
// Triplet to assemble one.
//
// SolveVecTo factorizes a dense copy of the matrix on first use, which costs
// O(n³) time and O(n²) memory regardless of the sparsity. It is meant for
// small preconditioners and refuses matrices larger than MaxDirectSolve.
// The iterative solvers themselves only need MulVecTo and DoRowNonZero,
// which cost O(nnz).
type Sparse struct {
	n      int
	rowPtr []int
	colInd []int
	values []float64

	once  sync.Once
	lu    mat.LU
	luErr error
}

// Dims returns the dimensions of the matrix.
func (s *Sparse) Dims() (r, c int) { return s.n, s.n }

// NNZ returns the number of stored nonzero entries.
func (s *Sparse) NNZ() int { return len(s.values) }

// At returns the element at row i, column j.
func (s *Sparse) At(i, j int) float64 {
	checkIndex(s.n, i, j)
	cols := s.colInd[s.rowPtr[i]:s.rowPtr[i+1]]
	k := sort.SearchInts(cols, j)
	if k < len(cols) && cols[k] == j {
		return s.values[s.rowPtr[i]+k]
	}
	return 0
}

// T returns the transpose of the matrix.
func (s *Sparse) T() mat.Matrix { return mat.Transpose{Matrix: s} }

// MulVecTo computes A*x and stores the result into dst.
func (s *Sparse) MulVecTo(dst, x []float64) {
	checkVecs(s.n, dst, x)
	for i := 0; i < s.n; i++ {
		var sum float64
		for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
			sum += s.values[k] * x[s.colInd[k]]
		}
		dst[i] = sum
	}
}

// DoRowNonZero calls fn for each nonzero entry of row i in increasing
// column order.
func (s *Sparse) DoRowNonZero(i int, fn func(i, j int, v float64)) {
	if i < 0 || s.n <= i {
		panic("matrix: row index out of range")
	}
	for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
		fn(i, s.colInd[k], s.values[k])
	}
}

// MaxDirectSolve is the largest order of a Sparse matrix that SolveVecTo
// factorizes.
const MaxDirectSolve = 2000

// SolveVecTo stores into dst the solution of A z = rhs. It returns
// ErrTooLarge if the order of A exceeds MaxDirectSolve.
func (s *Sparse) SolveVecTo(dst, rhs []float64) error {
	checkVecs(s.n, dst, rhs)
	if s.n > MaxDirectSolve {
		return fmt.Errorf("%w: order %d", ErrTooLarge, s.n)
	}
	s.once.Do(func() {
		s.lu.Factorize(mat.DenseCopyOf(s))
		if s.lu.Det() == 0 {
			s.luErr = ErrSingular
		}
	})
	if s.luErr != nil {
		return s.luErr
	}
	return luSolve(&s.lu, dst, rhs)
}
