// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
)

// Matrixvariate resamples matrix observations of a common shape.
type Matrixvariate struct {
	Weighted
	obs  []*mat.Dense
	r, c int
}

// NewMatrixvariate returns a resampler over copies of obs, where obs[i]
// has weight weights[i]. Every observation must have the same
// dimensions.
func NewMatrixvariate(obs []mat.Matrix, weights []float64) (*Matrixvariate, error) {
	if err := checkLen(len(obs), weights); err != nil {
		return nil, err
	}
	w, err := NewWeighted(weights)
	if err != nil {
		return nil, err
	}

	r, c := obs[0].Dims()
	cp := make([]*mat.Dense, len(obs))
	for i, o := range obs {
		if or, oc := o.Dims(); or != r || oc != c {
			return nil, fmt.Errorf("observation %d is %d×%d, want %d×%d: %w", i, or, oc, r, c, ErrDimensionMismatch)
		}
		cp[i] = mat.DenseCopyOf(o)
	}
	return &Matrixvariate{Weighted: w, obs: cp, r: r, c: c}, nil
}

// Dims returns the dimensions of an observation.
func (m *Matrixvariate) Dims() (r, c int) {
	return m.r, m.c
}

// Rand draws one observation. The result is a copy the caller may
// modify.
func (m *Matrixvariate) Rand(r *rand.Rand) *mat.Dense {
	return mat.DenseCopyOf(m.obs[m.Index(r)])
}

// RandN draws k independent observations.
func (m *Matrixvariate) RandN(k int, r *rand.Rand) []*mat.Dense {
	out := make([]*mat.Dense, k)
	for i := range out {
		out[i] = m.Rand(r)
	}
	return out
}

// Mean returns the weighted mean observation.
func (m *Matrixvariate) Mean() *mat.Dense {
	mean := mat.NewDense(m.r, m.c, nil)
	total := m.Total()
	var t mat.Dense
	for i, o := range m.obs {
		t.Scale(m.weights[i]/total, o)
		mean.Add(mean, &t)
	}
	return mean
}
