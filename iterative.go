// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iterative provides iterative algorithms for solving linear systems
//  A x = b.
//
// The stationary methods (Richardson, Jacobi, Gauss-Seidel) and the gradient
// methods for symmetric positive definite systems (steepest descent,
// conjugate gradient) share the same loop: compute the residual, stop if its
// norm relative to |b| is below the tolerance, otherwise compute a correction
// and update the iterate. The stopping test bounds the relative error only up
// to the condition number of A.
package iterative

// Operation specifies the type of operation.
type Operation uint64

// Operations commanded by Method.Iterate.
const (
	NoOperation Operation = 0

	// Multiply A*x where x is stored
	// in Context.Src and the result will
	// be stored in Context.Dst.
	MatVec Operation = 1 << (iota - 1)

	// Do the preconditioner solve
	//  M z = r,
	// where r is stored in Context.Src,
	// and store the solution z in
	// Context.Dst.
	PSolve

	// Compute b - A*x where x is stored
	// in Context.X and store the result
	// into Context.Residual.
	ComputeResidual

	// Check convergence using the
	// residual norm in Context.ResidualNorm.
	// If convergence is detected,
	// Context.Converged will be set to
	// true before Method.Iterate is
	// called again.
	CheckResidualNorm

	// Do one Jacobi sweep: for each row i
	//  Dst[i] = (b[i] - Σ_{j≠i} A[i,j]*Src[j]) / A[i,i],
	// using only the values in Context.Src.
	// Src and Dst must not overlap.
	JacobiSweep

	// Do one forward Gauss-Seidel sweep on
	// Context.X in place: rows are
	// visited in increasing order and
	// each row uses the values of X
	// already updated in this sweep.
	GaussSeidelSweep

	// EndIteration indicates that Method
	// has finished what it considers to
	// be one iteration. If
	// Context.Converged is true, the
	// iterative process must be
	// terminated, and Method.Init must
	// be called before calling
	// Method.Iterate again.
	EndIteration
)

// String returns the name of the operation.
func (op Operation) String() string {
	switch op {
	case NoOperation:
		return "NoOperation"
	case MatVec:
		return "MatVec"
	case PSolve:
		return "PSolve"
	case ComputeResidual:
		return "ComputeResidual"
	case CheckResidualNorm:
		return "CheckResidualNorm"
	case JacobiSweep:
		return "JacobiSweep"
	case GaussSeidelSweep:
		return "GaussSeidelSweep"
	case EndIteration:
		return "EndIteration"
	}
	return "Operation(?)"
}

// Method is an iterative method that produces a sequence of vectors converging
// to the vector x satisfying a system of linear equations
//  A x = b,
// where A is non-singular dim×dim matrix, and x and b are vectors of dimension
// dim.
//
// Method uses a reverse-communication interface between the iterative algorithm
// and the caller. Method acts as a client that commands the caller to perform
// needed operations via Operation returned from Iterate methods. This provides
// independence of Method on representation of the matrix A, and enables
// automation of common operations like checking for convergence and maintaining
// statistics.
type Method interface {
	// Init initializes the method for solving a dim×dim linear system.
	// All state from a previous solve is discarded.
	Init(dim int)

	// Iterate retrieves data from Context, updates it, and returns the next
	// operation. The caller must perform the Operation using data in
	// Context, and depending on the state call Iterate again.
	Iterate(*Context) (Operation, error)
}

// Context mediates the communication between a Method and the caller. It must
// not be modified or accessed apart from the commanded Operations.
type Context struct {
	// X is the current approximate solution. On the first call to
	// Method.Iterate, X must contain the initial estimate. Method must
	// update X with the current estimate when it commands ComputeResidual
	// and EndIteration.
	X []float64
	// Residual is the current residual b-A*x. On the first call to
	// Method.Iterate, Residual must contain the initial residual.
	Residual []float64
	// ResidualNorm is the norm of the current residual. Method must update
	// it when it commands CheckResidualNorm.
	ResidualNorm float64
	// Converged indicates to Method that the ResidualNorm satisfies the
	// stopping criterion as a result of CheckResidualNorm operation.
	// If a Method commands EndIteration with Converged true, the caller
	// must not call Method.Iterate again without calling Method.Init first.
	Converged bool

	// Src and Dst are the source and destination vectors for various
	// Operations.
	Src, Dst []float64
}

func reuse(v []float64, n int) []float64 {
	if cap(v) < n {
		return make([]float64, n)
	}
	return v[:n]
}

const dlamchE = 1.0 / (1 << 53)
