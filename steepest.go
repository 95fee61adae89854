// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iterative

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// SteepestDescent implements the method of steepest descent with
// preconditioning for solving the system of linear equations
//  Ax = b,
// where A is symmetric positive definite. It minimizes the energy
//  φ(x) = 1/2 xᵀAx - xᵀb,
// whose gradient is -r, by exact line searches along the preconditioned
// residual z = M^{-1} r:
//  α = (r·z) / (z·Az),  x = x + α z,  r = r - α Az.
// The error in the A-norm decreases in every iteration at least by the factor
// (κ-1)/(κ+1) where κ is the condition number of A (of M^{-1}A when
// preconditioned). Prefer CG.
//
// SteepestDescent needs MatVec and PSolve matrix operations.
type SteepestDescent struct {
	resume int

	z  []float64
	az []float64
}

// Init implements the Method interface.
func (sd *SteepestDescent) Init(dim int) {
	if dim <= 0 {
		panic("iterative: dimension not positive")
	}

	sd.z = reuse(sd.z, dim)
	sd.az = reuse(sd.az, dim)
	sd.resume = 1
}

// Iterate implements the Method interface.
func (sd *SteepestDescent) Iterate(ctx *Context) (Operation, error) {
	switch sd.resume {
	case 1:
		ctx.Src = ctx.Residual
		ctx.Dst = sd.z
		sd.resume = 2
		return PSolve, nil
		// Solve M z = r.
	case 2:
		ctx.Src = sd.z
		ctx.Dst = sd.az
		sd.resume = 3
		return MatVec, nil
		// Compute Az.
	case 3:
		zaz := floats.Dot(sd.z, sd.az)
		if zaz <= 0 {
			sd.resume = 0 // Calling Iterate again without Init will panic.
			return NoOperation, fmt.Errorf("%w: z·Az = %v", ErrBreakdown, zaz)
		}
		alpha := floats.Dot(ctx.Residual, sd.z) / zaz // α = (r·z) / (z·Az)
		floats.AddScaled(ctx.X, alpha, sd.z)          // x = x + α z
		floats.AddScaled(ctx.Residual, -alpha, sd.az) // r = r - α Az
		ctx.Src = nil
		ctx.Dst = nil
		sd.resume = 4
		return checkResidualNorm(ctx), nil
	case 4:
		return endIteration(ctx, &sd.resume), nil

	default:
		panic("iterative: SteepestDescent.Init not called")
	}
}
