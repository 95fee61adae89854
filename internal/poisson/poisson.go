// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package poisson generates discretizations of the model boundary value
// problem
//  -u''(x) = f(x),  0 < x < 1,  u(0) = u(1) = 0,
// on n equally spaced interior nodes. The resulting matrices are symmetric
// positive definite and tridiagonal with condition number growing like n².
package poisson

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/epfl-matmat/numerical-analysis-sub002/matrix"
)

// quadPoints is the number of Gauss-Legendre points used per element for
// the load vector.
const quadPoints = 8

// Step returns the mesh width for n interior nodes.
func Step(n int) float64 {
	return 1 / float64(n+1)
}

// Nodes returns the n interior nodes x_i = (i+1)h.
func Nodes(n int) []float64 {
	h := Step(n)
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i+1) * h
	}
	return x
}

// FiniteDifference returns the second-order central difference
// discretization: A = tridiag(-1, 2, -1)/h² and b_i = f(x_i).
func FiniteDifference(n int, f func(float64) float64) (*matrix.Tridiagonal, []float64) {
	if n <= 0 {
		panic("poisson: non-positive number of nodes")
	}
	h := Step(n)
	a := stencil(n, 1/(h*h))
	b := make([]float64, n)
	for i, x := range Nodes(n) {
		b[i] = f(x)
	}
	return a, b
}

// Galerkin returns the Galerkin discretization with continuous piecewise
// linear hat functions φ_i: the stiffness matrix A = tridiag(-1, 2, -1)/h and
// the load vector b_i = ∫ f φ_i, integrated by Gauss-Legendre quadrature on
// each element. The solution holds the nodal values of the finite element
// approximation.
func Galerkin(n int, f func(float64) float64) (*matrix.Tridiagonal, []float64) {
	if n <= 0 {
		panic("poisson: non-positive number of nodes")
	}
	h := Step(n)
	a := stencil(n, 1/h)
	b := make([]float64, n)
	for i, xi := range Nodes(n) {
		hat := Hat{Center: xi, Width: h}
		left := func(x float64) float64 { return f(x) * hat.At(x) }
		b[i] = quad.Fixed(left, xi-h, xi, quadPoints, nil, 0) +
			quad.Fixed(left, xi, xi+h, quadPoints, nil, 0)
	}
	return a, b
}

// stencil returns s*tridiag(-1, 2, -1).
func stencil(n int, s float64) *matrix.Tridiagonal {
	d := make([]float64, n)
	e := make([]float64, n-1)
	for i := range d {
		d[i] = 2 * s
	}
	for i := range e {
		e[i] = -s
	}
	return matrix.NewSymTridiagonal(d, e)
}

// Hat is the piecewise linear basis function that is one at Center and
// vanishes outside (Center-Width, Center+Width).
type Hat struct {
	Center, Width float64
}

// At returns the value of the hat function at x.
func (h Hat) At(x float64) float64 {
	d := math.Abs(x - h.Center)
	if d >= h.Width {
		return 0
	}
	return 1 - d/h.Width
}

// Interpolant is the continuous piecewise linear function with the given
// values at the interior nodes and zero at the boundary.
type Interpolant struct {
	Values []float64
}

// At returns the value of the interpolant at x in [0, 1].
func (p Interpolant) At(x float64) float64 {
	n := len(p.Values)
	h := Step(n)
	k := int(x / h)
	if k < 0 || k > n {
		return 0
	}
	t := x/h - float64(k)
	var left, right float64
	if k > 0 {
		left = p.Values[k-1]
	}
	if k < n {
		right = p.Values[k]
	}
	return (1-t)*left + t*right
}
