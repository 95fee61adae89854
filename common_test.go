// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iterative

import (
	"math"
	"math/rand"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/epfl-matmat/numerical-analysis-sub002/matrix"
)

type testCase struct {
	name string
	n    int
	a    *matrix.Dense
	// kappa is the 2-norm condition number of a if it is known.
	kappa float64
}

// randomSPD returns a random symmetric positive-definite matrix whose
// eigenvalues are spread evenly over [1, kappa].
func randomSPD(n int, kappa float64, rnd *rand.Rand) testCase {
	g := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			g.Set(i, j, rnd.NormFloat64())
		}
	}
	var qr mat.QR
	qr.Factorize(g)
	var q mat.Dense
	qr.QTo(&q)

	lambda := make([]float64, n)
	for i := range lambda {
		lambda[i] = 1
		if n > 1 {
			lambda[i] += (kappa - 1) * float64(i) / float64(n-1)
		}
	}
	var a mat.Dense
	a.Product(&q, mat.NewDiagDense(n, lambda), q.T())

	// Remove the rounding asymmetry.
	sym := matrix.NewDense(n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sym.SetAt(i, j, (a.At(i, j)+a.At(j, i))/2)
		}
	}
	if n == 1 {
		kappa = 1
	}
	return testCase{
		name:  "randomSPD(" + strconv.Itoa(n) + ")",
		n:     n,
		a:     sym,
		kappa: kappa,
	}
}

// randomDiagDominant returns a random, generally non-symmetric matrix whose
// diagonal entries dominate their rows so that Jacobi and Gauss-Seidel
// converge.
func randomDiagDominant(n int, rnd *rand.Rand) testCase {
	a := matrix.NewDense(n, nil)
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v := rnd.Float64() - 0.5
			a.SetAt(i, j, v)
			sum += math.Abs(v)
		}
		a.SetAt(i, i, 2*sum+1)
	}
	return testCase{
		name: "randomDiagDominant(" + strconv.Itoa(n) + ")",
		n:    n,
		a:    a,
	}
}

// rhsFor returns b = A*x for x = [1,1,...,1] and the vector x.
func rhsFor(a matrix.Matrix) (b, want []float64) {
	n, _ := a.Dims()
	want = make([]float64, n)
	for i := range want {
		want[i] = 1
	}
	b = make([]float64, n)
	a.MulVecTo(b, want)
	return b, want
}

// energyNorm returns sqrt((x-y)ᵀ A (x-y)).
func energyNorm(a matrix.Matrix, x, y []float64) float64 {
	e := make([]float64, len(x))
	for i := range e {
		e[i] = x[i] - y[i]
	}
	ae := make([]float64, len(x))
	a.MulVecTo(ae, e)
	var s float64
	for i := range e {
		s += e[i] * ae[i]
	}
	return math.Sqrt(s)
}
