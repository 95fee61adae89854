// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poisson

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/epfl-matmat/numerical-analysis-sub002/matrix"
)

func one(float64) float64 { return 1 }

// exactOne is the solution for f = 1.
func exactOne(x float64) float64 { return x * (1 - x) / 2 }

func TestNodes(t *testing.T) {
	t.Parallel()
	require.InDeltaSlice(t, []float64{0.25, 0.5, 0.75}, Nodes(3), 1e-15)
	require.Equal(t, 0.25, Step(3))
}

func TestFiniteDifferenceQuadratic(t *testing.T) {
	t.Parallel()
	// Central differences are exact for quadratics.
	for _, n := range []int{1, 2, 7, 50} {
		a, b := FiniteDifference(n, one)
		u := make([]float64, n)
		require.NoError(t, a.SolveVecTo(u, b))
		for i, x := range Nodes(n) {
			require.InDelta(t, exactOne(x), u[i], 1e-12, "n=%d node %d", n, i)
		}
	}
}

func TestGalerkinNodalExactness(t *testing.T) {
	t.Parallel()
	// In one dimension the linear finite element solution of the Poisson
	// problem is exact at the nodes.
	f := func(x float64) float64 { return math.Pi * math.Pi * math.Sin(math.Pi*x) }
	for _, n := range []int{1, 3, 10, 40} {
		a, b := Galerkin(n, f)
		u := make([]float64, n)
		require.NoError(t, a.SolveVecTo(u, b))
		for i, x := range Nodes(n) {
			require.InDelta(t, math.Sin(math.Pi*x), u[i], 1e-9, "n=%d node %d", n, i)
		}
	}
}

func TestGalerkinLoad(t *testing.T) {
	t.Parallel()
	// ∫ φ_i = h.
	n := 9
	_, b := Galerkin(n, one)
	for _, bi := range b {
		require.InDelta(t, Step(n), bi, 1e-14)
	}
}

func TestDiscretizationsAreSymmetric(t *testing.T) {
	t.Parallel()
	fd, _ := FiniteDifference(6, one)
	fem, _ := Galerkin(6, one)
	for _, a := range []*matrix.Tridiagonal{fd, fem} {
		n, _ := a.Dims()
		for i := 0; i < n; i++ {
			require.Greater(t, a.At(i, i), 0.0)
			for j := 0; j < n; j++ {
				require.Equal(t, a.At(i, j), a.At(j, i))
			}
		}
	}
}

func TestHat(t *testing.T) {
	t.Parallel()
	h := Hat{Center: 0.5, Width: 0.25}
	require.Equal(t, 1.0, h.At(0.5))
	require.Equal(t, 0.5, h.At(0.375))
	require.Equal(t, 0.5, h.At(0.625))
	require.Equal(t, 0.0, h.At(0.25))
	require.Equal(t, 0.0, h.At(0.9))
	for _, d := range []float64{0.01, 0.1, 0.2, 0.3} {
		require.InDelta(t, h.At(0.5-d), h.At(0.5+d), 1e-15, "offset %v", d)
	}
}

func TestInterpolant(t *testing.T) {
	t.Parallel()
	p := Interpolant{Values: []float64{1, 2, 3}}
	require.Equal(t, 0.0, p.At(0))
	require.InDelta(t, 0.5, p.At(0.125), 1e-15)
	require.InDelta(t, 2.0, p.At(0.5), 1e-15)
	require.InDelta(t, 1.5, p.At(0.875), 1e-15)
}
