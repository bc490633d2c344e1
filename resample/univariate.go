// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat"
)

// Univariate resamples scalar observations.
type Univariate struct {
	Weighted
	xs []float64
}

// NewUnivariate returns a resampler over a copy of xs, where xs[i] has
// weight weights[i].
func NewUnivariate(xs, weights []float64) (*Univariate, error) {
	if err := checkLen(len(xs), weights); err != nil {
		return nil, err
	}
	w, err := NewWeighted(weights)
	if err != nil {
		return nil, err
	}
	return &Univariate{Weighted: w, xs: append([]float64(nil), xs...)}, nil
}

// Rand draws one observation.
func (u *Univariate) Rand(r *rand.Rand) float64 {
	return u.xs[u.Index(r)]
}

// RandN draws k independent observations.
func (u *Univariate) RandN(k int, r *rand.Rand) []float64 {
	out := make([]float64, k)
	for i := range out {
		out[i] = u.Rand(r)
	}
	return out
}

// Mean returns the weighted mean of the observations, which is the
// expected value of a draw.
func (u *Univariate) Mean() float64 {
	return stat.Mean(u.xs, u.weights)
}
