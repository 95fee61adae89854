// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iterative

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"
)

// MatrixOps describes the matrix of the
// linear system in terms of the
// operations the methods need.
type MatrixOps struct {
	// Compute A*x and store the result
	// into dst.
	// It must be non-nil.
	MatVec func(dst, x []float64)

	// Call fn for each nonzero entry
	// of row i of A.
	// It is needed only by the methods
	// that sweep over the rows of A
	// (Jacobi and GaussSeidel) and can
	// be nil otherwise.
	DoRowNonZero func(i int, fn func(i, j int, v float64))
}

// RowMatrix is a matrix that can be applied to a vector and that can
// enumerate the nonzero entries of its rows. All matrices in package
// matrix are RowMatrix.
type RowMatrix interface {
	MulVecTo(dst, x []float64)
	DoRowNonZero(i int, fn func(i, j int, v float64))
}

// OpsFor returns the MatrixOps of a.
func OpsFor(a RowMatrix) MatrixOps {
	return MatrixOps{
		MatVec:       a.MulVecTo,
		DoRowNonZero: a.DoRowNonZero,
	}
}

// Settings holds various settings for
// solving a linear system.
type Settings struct {
	// X0 is an initial guess.
	// If it is nil, the zero vector will
	// be used.
	// If it is not nil, the length of X0
	// must be equal to the dimension of
	// the system.
	X0 []float64

	// Tolerance specifies the tolerance
	// for the relative residual norm
	//  |b - A*x_i| / |b|.
	// The iteration stops as soon as the
	// relative residual norm is below
	// Tolerance.
	// Tolerance must be smaller than one
	// and greater than the machine
	// epsilon.
	// If it is zero, it will be set to
	// 1e-6.
	Tolerance float64

	// MaxIterations is the limit on the
	// number of iterations.
	// If it is zero, it will be set to
	// 100.
	MaxIterations int

	// PSolve describes the
	// preconditioner solve that stores
	// into dst the solution of the
	// system
	//  M z = rhs.
	// If it is nil, no preconditioning
	// will be used (M is the
	// identity).
	// A returned error terminates the
	// solve.
	PSolve func(dst, rhs []float64) error
}

// DefaultSettings returns the settings used for zero-valued fields.
func DefaultSettings() Settings {
	return Settings{
		Tolerance:     1e-6,
		MaxIterations: 100,
	}
}

func defaultSettings(s *Settings) {
	def := DefaultSettings()
	if s.Tolerance == 0 {
		s.Tolerance = def.Tolerance
	}
	if s.MaxIterations == 0 {
		s.MaxIterations = def.MaxIterations
	}
}

// Result holds the result of an iterative solve.
type Result struct {
	// X is the approximate solution.
	X []float64
	// History holds the relative residual
	// norms |b - A*x_k| / |b| of the
	// iterates x_0, x_1, ..., in order.
	// History[0] belongs to the initial
	// guess and precedes the first update,
	// History[k] to the iterate after k
	// completed iterations, so
	// len(History) == Stats.Iterations+1.
	History []float64
	// Stats holds the statistics of the
	// solve.
	Stats Stats
}

// Stats holds statistics about an iterative solve.
type Stats struct {
	// Iterations is the number of
	// iteration done by Method.
	Iterations int
	// MatVec is the number of MatVec
	// operations, including those
	// needed for ComputeResidual.
	MatVec int
	// PSolve is the number of PSolve
	// operations.
	PSolve int
	// Sweeps is the number of Jacobi
	// and Gauss-Seidel sweeps.
	Sweeps int
	// ResidualNorm is the final norm of
	// the residual.
	ResidualNorm float64
	// Converged reports whether the
	// relative residual norm dropped
	// below the tolerance. If it is
	// false, the iteration limit was
	// reached and X is the last iterate.
	Converged bool
	// StartTime is an approximate time
	// when the solve was started.
	StartTime time.Time
	// Runtime is an approximate duration
	// of the solve.
	Runtime time.Duration
}

// LinearSolve solves the system of n linear equations
//  A*x = b,
// where the n×n matrix A is represented by the matrix operations in a.
// The dimension of the problem n is determined by the length of b.
//
// method is an iterative method used for finding an approximate solution of the
// linear system. It must not be nil. The operations in a must provide what the
// method needs.
//
// settings provide means for adjusting the iterative process. Zero values of
// the fields mean default values.
//
// Reaching the iteration limit is not an error: the last iterate is returned
// with Stats.Converged false and the caller can inspect History. An error is
// returned if the preconditioner solve fails, if a sweep meets a zero
// diagonal entry of A, or if the method breaks down. A, b, settings.X0 and
// the preconditioner are not modified.
func LinearSolve(a MatrixOps, b []float64, method Method, settings Settings) (Result, error) {
	stats := Stats{StartTime: time.Now()}

	dim := len(b)
	if a.MatVec == nil {
		panic("iterative: nil matrix-vector multiplication")
	}
	if settings.X0 != nil && len(settings.X0) != dim {
		panic("iterative: mismatched length of initial guess")
	}

	if dim == 0 {
		stats.Converged = true
		return Result{Stats: stats}, nil
	}

	defaultSettings(&settings)
	if settings.Tolerance < dlamchE || 1 <= settings.Tolerance {
		panic("iterative: invalid tolerance")
	}
	if settings.MaxIterations < 0 {
		panic("iterative: negative iteration limit")
	}

	ctx := &Context{
		X:        make([]float64, dim),
		Residual: make([]float64, dim),
	}
	if settings.X0 != nil {
		copy(ctx.X, settings.X0)
		a.MatVec(ctx.Residual, ctx.X)
		stats.MatVec++
		floats.AddScaledTo(ctx.Residual, b, -1, ctx.Residual) // r = b - Ax
	} else {
		copy(ctx.Residual, b) // r = b
	}

	bnorm := floats.Norm(b, 2)
	if bnorm == 0 {
		bnorm = 1
	}
	ctx.ResidualNorm = floats.Norm(ctx.Residual, 2)
	stats.ResidualNorm = ctx.ResidualNorm
	history := []float64{ctx.ResidualNorm / bnorm}

	var err error
	if history[0] < settings.Tolerance {
		stats.Converged = true
	} else {
		s := &solver{
			a:        a,
			b:        b,
			bnorm:    bnorm,
			settings: settings,
			stats:    &stats,
			history:  history,
		}
		err = s.iterate(ctx, method)
		history = s.history
	}

	stats.Runtime = time.Since(stats.StartTime)
	return Result{
		X:       ctx.X,
		History: history,
		Stats:   stats,
	}, err
}

// solver holds the caller side of the reverse-communication loop for one
// call of LinearSolve.
type solver struct {
	a        MatrixOps
	b        []float64
	bnorm    float64
	settings Settings
	stats    *Stats
	history  []float64

	// diag holds the diagonal of A, extracted on the first sweep.
	diag []float64
}

func (s *solver) iterate(ctx *Context, method Method) error {
	a, b, stats := s.a, s.b, s.stats

	method.Init(len(ctx.X))

	for {
		op, err := method.Iterate(ctx)
		if err != nil {
			return err
		}

		switch op {
		case NoOperation:

		case ComputeResidual:
			a.MatVec(ctx.Residual, ctx.X)
			stats.MatVec++
			floats.AddScaledTo(ctx.Residual, b, -1, ctx.Residual)

		case MatVec:
			a.MatVec(ctx.Dst, ctx.Src)
			stats.MatVec++

		case PSolve:
			if s.settings.PSolve == nil {
				copy(ctx.Dst, ctx.Src)
				continue
			}
			if err := s.settings.PSolve(ctx.Dst, ctx.Src); err != nil {
				return fmt.Errorf("iterative: preconditioner solve: %w", err)
			}
			stats.PSolve++

		case JacobiSweep, GaussSeidelSweep:
			if err := s.sweep(op, ctx); err != nil {
				return err
			}
			stats.Sweeps++

		case CheckResidualNorm:
			rel := ctx.ResidualNorm / s.bnorm
			ctx.Converged = rel < s.settings.Tolerance
			s.history = append(s.history, rel)

		case EndIteration:
			stats.Iterations++
			stats.ResidualNorm = ctx.ResidualNorm
			if ctx.Converged {
				stats.Converged = true
				return nil
			}
			if stats.Iterations == s.settings.MaxIterations {
				return nil
			}

		default:
			panic("iterate: invalid operation")
		}
	}
}
