// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iterative

import "gonum.org/v1/gonum/floats"

// Richardson implements the preconditioned Richardson iteration
//  x_{k+1} = x_k + ω M^{-1} (b - A x_k),
// the general fixed-point iteration for the splitting A = M - (M - A).
// It converges for every initial guess if and only if the spectral radius of
// I - ω M^{-1} A is less than one. This is not checked.
//
// With M = diag(A) it produces the iterates of Jacobi, with M the lower
// triangle of A those of GaussSeidel.
//
// Richardson needs MatVec and PSolve matrix operations.
type Richardson struct {
	// Omega is the relaxation parameter ω.
	// If it is zero, it will be set to 1.
	Omega float64

	resume int
	omega  float64

	u []float64
}

// Init implements the Method interface.
func (r *Richardson) Init(dim int) {
	if dim <= 0 {
		panic("iterative: dimension not positive")
	}

	r.omega = r.Omega
	if r.omega == 0 {
		r.omega = 1
	}
	r.u = reuse(r.u, dim)
	r.resume = 1
}

// Iterate implements the Method interface.
func (r *Richardson) Iterate(ctx *Context) (Operation, error) {
	switch r.resume {
	case 1:
		ctx.Src = ctx.Residual
		ctx.Dst = r.u
		r.resume = 2
		return PSolve, nil
		// Solve M u = r_k.
	case 2:
		floats.AddScaled(ctx.X, r.omega, r.u) // x_{k+1} = x_k + ω u
		ctx.Src = nil
		ctx.Dst = nil
		r.resume = 3
		return ComputeResidual, nil
	case 3:
		r.resume = 4
		return checkResidualNorm(ctx), nil
	case 4:
		return endIteration(ctx, &r.resume), nil

	default:
		panic("iterative: Richardson.Init not called")
	}
}

// checkResidualNorm updates the residual norm from ctx.Residual and
// commands the convergence check.
func checkResidualNorm(ctx *Context) Operation {
	ctx.ResidualNorm = floats.Norm(ctx.Residual, 2)
	ctx.Converged = false
	return CheckResidualNorm
}

// endIteration ends an iteration of a method whose iterations start at
// resume state 1.
func endIteration(ctx *Context, resume *int) Operation {
	if ctx.Converged {
		*resume = 0 // Calling Iterate again without Init will panic.
	} else {
		*resume = 1
	}
	return EndIteration
}
