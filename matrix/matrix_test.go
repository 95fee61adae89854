// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/epfl-matmat/numerical-analysis-sub002/matrix"
)

// variants returns the same diagonally dominant 5×5 tridiagonal matrix in
// every representation, plus its lower triangle.
func variants() map[string]matrix.Matrix {
	const n = 5
	dl := []float64{-1, -2, -1, -0.5}
	d := []float64{4, 5, 6, 4, 3}
	du := []float64{-1, 0.5, -2, -1}

	dense := matrix.NewDense(n, nil)
	tri := matrix.NewTriplet(n)
	for i := 0; i < n; i++ {
		dense.SetAt(i, i, d[i])
		tri.Append(i, i, d[i])
		if i > 0 {
			dense.SetAt(i, i-1, dl[i-1])
			tri.Append(i, i-1, dl[i-1])
		}
		if i < n-1 {
			dense.SetAt(i, i+1, du[i])
			tri.Append(i, i+1, du[i])
		}
	}
	return map[string]matrix.Matrix{
		"Dense":       dense,
		"Tridiagonal": matrix.NewTridiagonal(dl, d, du),
		"Sparse":      tri.Sparse(),
		"Lower":       matrix.LowerOf(dense),
		"Diagonal":    matrix.DiagonalOf(dense),
	}
}

func TestMulVecToMatchesGonum(t *testing.T) {
	t.Parallel()
	rnd := rand.New(rand.NewSource(1))
	for name, a := range variants() {
		a := a
		t.Run(name, func(t *testing.T) {
			n, _ := a.Dims()
			x := make([]float64, n)
			for i := range x {
				x[i] = rnd.NormFloat64()
			}
			got := make([]float64, n)
			a.MulVecTo(got, x)

			var want mat.VecDense
			want.MulVec(mat.DenseCopyOf(a), mat.NewVecDense(n, x))
			require.True(t, floats.EqualApprox(got, want.RawVector().Data, 1e-14),
				"got %v, want %v", got, want.RawVector().Data)
		})
	}
}

func TestSolveVecToInvertsMulVecTo(t *testing.T) {
	t.Parallel()
	for name, a := range variants() {
		a := a
		t.Run(name, func(t *testing.T) {
			n, _ := a.Dims()
			want := []float64{1, -2, 3, 0.5, -1}
			rhs := make([]float64, n)
			a.MulVecTo(rhs, want)
			rhsCopy := append([]float64(nil), rhs...)

			got := make([]float64, n)
			require.NoError(t, a.SolveVecTo(got, rhs))
			require.Less(t, floats.Distance(got, want, math.Inf(1)), 1e-12)
			require.Equal(t, rhsCopy, rhs, "SolveVecTo modified rhs")
		})
	}
}

func TestSolveVecToSingular(t *testing.T) {
	t.Parallel()
	cases := map[string]matrix.Matrix{
		"Dense":       matrix.NewDense(2, []float64{1, 2, 2, 4}),
		"Diagonal":    matrix.NewDiagonal([]float64{1, 0, 3}),
		"Tridiagonal": matrix.NewSymTridiagonal([]float64{1, 1}, []float64{1}),
		"Lower":       matrix.NewLower(2, []float64{1, 0, 5, 0}),
		"Sparse": func() matrix.Matrix {
			tri := matrix.NewTriplet(2)
			tri.Append(0, 0, 1)
			tri.Append(1, 0, 1)
			return tri.Sparse()
		}(),
	}
	for name, a := range cases {
		a := a
		t.Run(name, func(t *testing.T) {
			n, _ := a.Dims()
			dst := make([]float64, n)
			rhs := make([]float64, n)
			for i := range rhs {
				rhs[i] = 1
			}
			require.ErrorIs(t, a.SolveVecTo(dst, rhs), matrix.ErrSingular)
		})
	}
}

func TestTripletSumsDuplicates(t *testing.T) {
	t.Parallel()
	tri := matrix.NewTriplet(3)
	tri.Append(0, 0, 1)
	tri.Append(2, 1, 4)
	tri.Append(0, 0, 2)
	tri.Append(1, 2, 5)
	tri.Append(1, 2, -5)
	s := tri.Sparse()

	require.Equal(t, 2, s.NNZ())
	require.Equal(t, 3.0, s.At(0, 0))
	require.Equal(t, 4.0, s.At(2, 1))
	require.Equal(t, 0.0, s.At(1, 2))
	require.Equal(t, 4.0, s.T().At(1, 2))
}

func TestDoRowNonZero(t *testing.T) {
	t.Parallel()
	for name, a := range variants() {
		a := a
		t.Run(name, func(t *testing.T) {
			n, _ := a.Dims()
			for i := 0; i < n; i++ {
				row := make([]float64, n)
				a.DoRowNonZero(i, func(r, j int, v float64) {
					require.Equal(t, i, r)
					require.NotZero(t, v)
					row[j] = v
				})
				for j := 0; j < n; j++ {
					require.Equal(t, a.At(i, j), row[j], "entry (%d,%d)", i, j)
				}
			}
		})
	}
}

func TestSplittings(t *testing.T) {
	t.Parallel()
	a := matrix.NewDense(3, []float64{
		4, 1, 2,
		3, 5, 1,
		1, 1, 6,
	})
	d := matrix.DiagonalOf(a)
	l := matrix.LowerOf(a)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			wantD, wantL := 0.0, 0.0
			if i == j {
				wantD = a.At(i, j)
			}
			if j <= i {
				wantL = a.At(i, j)
			}
			require.Equal(t, wantD, d.At(i, j))
			require.Equal(t, wantL, l.At(i, j))
		}
	}
}

// TestSolveVecToZeroPivot checks that a nonsingular matrix whose leading
// pivots vanish without row interchanges is solved by every variant that
// can represent it.
func TestSolveVecToZeroPivot(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		name      string
		dl, d, du []float64
		want      []float64
	}{
		{"swap", []float64{1}, []float64{0, 0}, []float64{1}, []float64{1, 1}},
		{"second pivot", []float64{1, 1}, []float64{1, 2, 1}, []float64{2, 1}, []float64{-1, 1, 0}},
	} {
		n := len(test.d)
		dense := matrix.NewDense(n, nil)
		tri := matrix.NewTriplet(n)
		for i := 0; i < n; i++ {
			dense.SetAt(i, i, test.d[i])
			tri.Append(i, i, test.d[i])
			if i > 0 {
				dense.SetAt(i, i-1, test.dl[i-1])
				tri.Append(i, i-1, test.dl[i-1])
			}
			if i < n-1 {
				dense.SetAt(i, i+1, test.du[i])
				tri.Append(i, i+1, test.du[i])
			}
		}
		require.NotZero(t, mat.Det(dense), test.name)
		for name, a := range map[string]matrix.Matrix{
			"Dense":       dense,
			"Tridiagonal": matrix.NewTridiagonal(test.dl, test.d, test.du),
			"Sparse":      tri.Sparse(),
		} {
			rhs := make([]float64, n)
			a.MulVecTo(rhs, test.want)
			got := make([]float64, n)
			require.NoError(t, a.SolveVecTo(got, rhs), "%s, %s", test.name, name)
			require.Less(t, floats.Distance(got, test.want, math.Inf(1)), 1e-13, "%s, %s", test.name, name)
		}
	}
}

func TestDenseIllConditioned(t *testing.T) {
	t.Parallel()
	dst := make([]float64, 2)

	// A condition number of 1e8 is solved.
	a := matrix.NewDense(2, []float64{1, 0, 0, 1e-8})
	require.NoError(t, a.SolveVecTo(dst, []float64{1, 1e-8}))
	require.InDeltaSlice(t, []float64{1, 1}, dst, 1e-12)

	// A nonzero determinant with a condition number beyond
	// mat.ConditionTolerance is reported as singular.
	a = matrix.NewDense(2, []float64{1, 0, 0, 1e-20})
	require.NotZero(t, mat.Det(a))
	require.ErrorIs(t, a.SolveVecTo(dst, []float64{1, 1}), matrix.ErrSingular)
}

func TestSparseSolveTooLarge(t *testing.T) {
	t.Parallel()
	n := matrix.MaxDirectSolve + 1
	tri := matrix.NewTriplet(n)
	for i := 0; i < n; i++ {
		tri.Append(i, i, 2)
	}
	s := tri.Sparse()
	x := make([]float64, n)
	for i := range x {
		x[i] = 1
	}
	y := make([]float64, n)
	s.MulVecTo(y, x)
	require.Equal(t, 2.0, y[n-1])
	require.ErrorIs(t, s.SolveVecTo(x, y), matrix.ErrTooLarge)
}
