// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matrix

import "sort"

type triplet struct {
	i, j int
	v    float64
}

// Triplet is a square sparse matrix in coordinate (COO) format used for
// assembling a Sparse matrix. Entries appended at the same position are
// summed.
type Triplet struct {
	n    int
	data []triplet
}

// NewTriplet returns an empty n×n Triplet.
func NewTriplet(n int) *Triplet {
	return &Triplet{n: n}
}

// Dims returns the dimensions of the matrix.
func (m *Triplet) Dims() (r, c int) {
	return m.n, m.n
}

// Append adds v to the entry at row i, column j.
func (m *Triplet) Append(i, j int, v float64) {
	checkIndex(m.n, i, j)
	m.data = append(m.data, triplet{i, j, v})
}

// Sparse returns the compressed sparse row form of m. Duplicate entries are
// summed and entries that sum to zero are dropped.
func (m *Triplet) Sparse() *Sparse {
	data := make([]triplet, len(m.data))
	copy(data, m.data)
	sort.SliceStable(data, func(a, b int) bool {
		if data[a].i != data[b].i {
			return data[a].i < data[b].i
		}
		return data[a].j < data[b].j
	})

	s := &Sparse{
		n:      m.n,
		rowPtr: make([]int, m.n+1),
	}
	for k := 0; k < len(data); {
		i, j := data[k].i, data[k].j
		var v float64
		for ; k < len(data) && data[k].i == i && data[k].j == j; k++ {
			v += data[k].v
		}
		if v == 0 {
			continue
		}
		s.colInd = append(s.colInd, j)
		s.values = append(s.values, v)
		s.rowPtr[i+1]++
	}
	for i := 0; i < m.n; i++ {
		s.rowPtr[i+1] += s.rowPtr[i]
	}
	return s
}
