// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Multivariate resamples vector observations. Observations are the
// columns of a dim×n matrix.
type Multivariate struct {
	Weighted
	obs *mat.Dense
}

// NewMultivariate returns a resampler over a copy of obs, where column
// j of obs is an observation with weight weights[j].
func NewMultivariate(obs mat.Matrix, weights []float64) (*Multivariate, error) {
	_, n := obs.Dims()
	if err := checkLen(n, weights); err != nil {
		return nil, err
	}
	w, err := NewWeighted(weights)
	if err != nil {
		return nil, err
	}
	return &Multivariate{Weighted: w, obs: mat.DenseCopyOf(obs)}, nil
}

// Dim returns the dimension of an observation.
func (m *Multivariate) Dim() int {
	d, _ := m.obs.Dims()
	return d
}

// Rand draws one observation into dst and returns it. All coordinates
// come from the same drawn observation. If dst is nil a new slice is
// allocated; otherwise it must have length Dim.
func (m *Multivariate) Rand(dst []float64, r *rand.Rand) []float64 {
	if dst != nil && len(dst) != m.Dim() {
		panic(fmt.Sprintf("resample: destination length %d, dimension %d", len(dst), m.Dim()))
	}
	return mat.Col(dst, m.Index(r), m.obs)
}

// RandN draws k independent observations and returns them as the
// columns of a Dim×k matrix. k must be positive.
func (m *Multivariate) RandN(k int, r *rand.Rand) *mat.Dense {
	out := mat.NewDense(m.Dim(), k, nil)
	col := make([]float64, m.Dim())
	for j := 0; j < k; j++ {
		out.SetCol(j, m.Rand(col, r))
	}
	return out
}

// Mean returns the weighted mean observation. If dst is nil a new
// slice is allocated; otherwise it must have length Dim.
func (m *Multivariate) Mean(dst []float64) []float64 {
	d := m.Dim()
	if dst == nil {
		dst = make([]float64, d)
	} else if len(dst) != d {
		panic(fmt.Sprintf("resample: destination length %d, dimension %d", len(dst), d))
	}
	for i := range dst {
		dst[i] = stat.Mean(m.obs.RawRowView(i), m.weights)
	}
	return dst
}
