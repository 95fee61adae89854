// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iterative

// Jacobi implements the Jacobi iteration
//  x_{k+1}[i] = (b[i] - Σ_{j≠i} A[i,j]*x_k[j]) / A[i,i],
// where every component of the new iterate is computed from the old
// iterate only. It is Richardson with M = diag(A) computed row by row.
//
// Jacobi needs MatVec and DoRowNonZero matrix operations. The preconditioner
// is not used. A zero diagonal entry of A makes LinearSolve return
// ErrZeroDiagonal.
type Jacobi struct {
	resume int

	xnew []float64
}

// Init implements the Method interface.
func (m *Jacobi) Init(dim int) {
	if dim <= 0 {
		panic("iterative: dimension not positive")
	}

	m.xnew = reuse(m.xnew, dim)
	m.resume = 1
}

// Iterate implements the Method interface.
func (m *Jacobi) Iterate(ctx *Context) (Operation, error) {
	switch m.resume {
	case 1:
		ctx.Src = ctx.X
		ctx.Dst = m.xnew
		m.resume = 2
		return JacobiSweep, nil
	case 2:
		copy(ctx.X, m.xnew)
		ctx.Src = nil
		ctx.Dst = nil
		m.resume = 3
		return ComputeResidual, nil
	case 3:
		m.resume = 4
		return checkResidualNorm(ctx), nil
	case 4:
		return endIteration(ctx, &m.resume), nil

	default:
		panic("iterative: Jacobi.Init not called")
	}
}

// GaussSeidel implements the forward Gauss-Seidel iteration
//  x_{k+1}[i] = (b[i] - Σ_{j<i} A[i,j]*x_{k+1}[j] - Σ_{j>i} A[i,j]*x_k[j]) / A[i,i],
// which updates the iterate in place, row by row in increasing order. It is
// Richardson with M equal to the lower triangle of A. The result depends on
// the ordering of the unknowns.
//
// GaussSeidel needs MatVec and DoRowNonZero matrix operations. The
// preconditioner is not used. A zero diagonal entry of A makes LinearSolve
// return ErrZeroDiagonal.
type GaussSeidel struct {
	resume int
}

// Init implements the Method interface.
func (m *GaussSeidel) Init(dim int) {
	if dim <= 0 {
		panic("iterative: dimension not positive")
	}
	m.resume = 1
}

// Iterate implements the Method interface.
func (m *GaussSeidel) Iterate(ctx *Context) (Operation, error) {
	switch m.resume {
	case 1:
		ctx.Src = nil
		ctx.Dst = nil
		m.resume = 2
		return GaussSeidelSweep, nil
	case 2:
		m.resume = 3
		return ComputeResidual, nil
	case 3:
		m.resume = 4
		return checkResidualNorm(ctx), nil
	case 4:
		return endIteration(ctx, &m.resume), nil

	default:
		panic("iterative: GaussSeidel.Init not called")
	}
}
