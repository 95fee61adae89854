// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iterative

import "fmt"

func (s *solver) sweep(op Operation, ctx *Context) error {
	if s.a.DoRowNonZero == nil {
		panic("iterative: nil row access")
	}
	if s.diag == nil {
		diag, err := diagonal(s.a.DoRowNonZero, len(ctx.X))
		if err != nil {
			return err
		}
		s.diag = diag
	}
	if op == JacobiSweep {
		jacobiSweep(s.a.DoRowNonZero, s.diag, s.b, ctx.Dst, ctx.Src)
	} else {
		gaussSeidelSweep(s.a.DoRowNonZero, s.diag, s.b, ctx.X)
	}
	return nil
}

// diagonal returns the diagonal of the n×n matrix whose rows are enumerated
// by rowDo.
func diagonal(rowDo func(int, func(i, j int, v float64)), n int) ([]float64, error) {
	d := make([]float64, n)
	for i := range d {
		rowDo(i, func(i, j int, v float64) {
			if i == j {
				d[i] += v
			}
		})
		if d[i] == 0 {
			return nil, fmt.Errorf("%w: row %d", ErrZeroDiagonal, i)
		}
	}
	return d, nil
}

// jacobiSweep computes
//  dst[i] = (b[i] - Σ_{j≠i} A[i,j]*src[j]) / A[i,i]
// for all rows i.
func jacobiSweep(rowDo func(int, func(i, j int, v float64)), diag, b, dst, src []float64) {
	for i := range dst {
		sum := b[i]
		rowDo(i, func(i, j int, v float64) {
			if i != j {
				sum -= v * src[j]
			}
		})
		dst[i] = sum / diag[i]
	}
}

// gaussSeidelSweep overwrites x row by row in increasing order. Row i sees
// the new values of x[0:i] and the old values of x[i+1:].
func gaussSeidelSweep(rowDo func(int, func(i, j int, v float64)), diag, b, x []float64) {
	for i := range x {
		sum := b[i]
		rowDo(i, func(i, j int, v float64) {
			if i != j {
				sum -= v * x[j]
			}
		})
		x[i] = sum / diag[i]
	}
}
