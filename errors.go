// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iterative

import "errors"

var (
	// ErrZeroDiagonal is returned when a Jacobi or Gauss-Seidel sweep
	// meets a zero diagonal entry of A.
	ErrZeroDiagonal = errors.New("iterative: zero diagonal entry")

	// ErrBreakdown is returned by SteepestDescent and CG when the
	// curvature along the search direction is not positive, which
	// happens when A is not symmetric positive definite.
	ErrBreakdown = errors.New("iterative: breakdown")
)
