// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command itersolve compares the iterative methods of package iterative on
// model problems.
//
// Usage:
//
//	itersolve -n 32 -problem fd -rhs sin -tol 1e-6 -maxiter 1000
//
// For each method it prints the number of iterations, the final relative
// residual and whether the tolerance was reached. With -history it also
// prints the relative residual of every iterate.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	iterative "github.com/epfl-matmat/numerical-analysis-sub002"
	"github.com/epfl-matmat/numerical-analysis-sub002/internal/poisson"
	"github.com/epfl-matmat/numerical-analysis-sub002/matrix"
)

type config struct {
	n       int
	tol     float64
	maxIter int
	problem string
	rhs     string
	kappa   float64
	history bool
	samples int
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("itersolve: ")

	var cfg config
	flag.IntVar(&cfg.n, "n", 32, "number of unknowns")
	flag.Float64Var(&cfg.tol, "tol", 1e-6, "tolerance for the relative residual norm")
	flag.IntVar(&cfg.maxIter, "maxiter", 1000, "iteration limit")
	flag.StringVar(&cfg.problem, "problem", "fd", "model problem: fd, fem or diag")
	flag.StringVar(&cfg.rhs, "rhs", "one", "right-hand side f of -u'' = f: one or sin")
	flag.Float64Var(&cfg.kappa, "kappa", 100, "condition number of the diag problem")
	flag.BoolVar(&cfg.history, "history", false, "print the residual history of every method")
	flag.IntVar(&cfg.samples, "samples", 0, "print the CG solution at this many equispaced points")
	flag.Parse()

	if err := run(os.Stdout, cfg); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, cfg config) error {
	a, b, err := problem(cfg)
	if err != nil {
		return err
	}
	settings := iterative.Settings{
		Tolerance:     cfg.tol,
		MaxIterations: cfg.maxIter,
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "method\titerations\trelative residual\tconverged\t")
	var (
		solution  []float64
		histories [][]float64
	)
	ms := methods(a)
	for _, m := range ms {
		s := settings
		s.PSolve = m.psolve
		res, err := iterative.LinearSolve(iterative.OpsFor(a), b, m.method, s)
		if err != nil {
			return fmt.Errorf("%s: %w", m.name, err)
		}
		fmt.Fprintf(tw, "%s\t%d\t%.3e\t%v\t\n", m.name, res.Stats.Iterations,
			res.History[len(res.History)-1], res.Stats.Converged)
		histories = append(histories, res.History)
		if _, ok := m.method.(*iterative.CG); ok {
			solution = res.X
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if cfg.history {
		for i, m := range ms {
			printHistory(w, m.name, histories[i])
		}
	}

	if cfg.samples > 0 && cfg.problem != "diag" {
		fmt.Fprintln(w)
		u := poisson.Interpolant{Values: solution}
		for i := 0; i < cfg.samples; i++ {
			x := float64(i) / float64(max(cfg.samples-1, 1))
			fmt.Fprintf(w, "u(%.4f) = %.6f\n", x, u.At(x))
		}
	}
	return nil
}

type namedMethod struct {
	name   string
	method iterative.Method
	psolve func(dst, rhs []float64) error
}

func methods(a matrix.Matrix) []namedMethod {
	return []namedMethod{
		{"Richardson (M = diag A)", &iterative.Richardson{}, matrix.DiagonalOf(a).SolveVecTo},
		{"Jacobi", &iterative.Jacobi{}, nil},
		{"Gauss-Seidel", &iterative.GaussSeidel{}, nil},
		{"steepest descent", &iterative.SteepestDescent{}, nil},
		{"conjugate gradient", &iterative.CG{}, nil},
	}
}

func problem(cfg config) (matrix.Matrix, []float64, error) {
	if cfg.n <= 0 {
		return nil, nil, errors.New("n must be positive")
	}
	var f func(float64) float64
	switch cfg.rhs {
	case "one":
		f = func(float64) float64 { return 1 }
	case "sin":
		f = func(x float64) float64 { return math.Pi * math.Pi * math.Sin(math.Pi*x) }
	default:
		return nil, nil, fmt.Errorf("unknown right-hand side %q", cfg.rhs)
	}

	switch cfg.problem {
	case "fd":
		a, b := poisson.FiniteDifference(cfg.n, f)
		return a, b, nil
	case "fem":
		a, b := poisson.Galerkin(cfg.n, f)
		return a, b, nil
	case "diag":
		if cfg.kappa < 1 {
			return nil, nil, errors.New("kappa must be at least 1")
		}
		d := make([]float64, cfg.n)
		b := make([]float64, cfg.n)
		for i := range d {
			d[i] = 1
			if cfg.n > 1 {
				d[i] += (cfg.kappa - 1) * float64(i) / float64(cfg.n-1)
			}
			b[i] = d[i] // the solution is [1,1,...,1]
		}
		return matrix.NewDiagonal(d), b, nil
	}
	return nil, nil, fmt.Errorf("unknown problem %q", cfg.problem)
}

func printHistory(w io.Writer, name string, history []float64) {
	fmt.Fprintf(w, "\n%s\n", name)
	fmt.Fprintln(w, strings.Repeat("-", len(name)))
	for k, h := range history {
		fmt.Fprintf(w, "%4d  %.6e\n", k, h)
	}
}
