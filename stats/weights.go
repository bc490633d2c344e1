// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Scale returns the normalization factor of a weighted second moment,
//
//	1 / (Σ weights - c)
//
// where c is 1 if corrected is true and 0 otherwise. corrected applies
// Bessel's correction, so for unit weights Scale(w, true) is 1/(N-1).
//
// Scale does not guard against a zero denominator; the result is then
// ±Inf.
func Scale(weights []float64, corrected bool) float64 {
	return scale(floats.Sum(weights), corrected)
}

func scale(sum float64, corrected bool) float64 {
	if corrected {
		sum--
	}
	return 1 / sum
}

// sumWeights returns the total weight of n observations.
func sumWeights(n int, weights []float64) float64 {
	if weights == nil {
		return float64(n)
	}
	return floats.Sum(weights)
}

// Center returns a copy of x with the weighted mean of each column
// subtracted from that column. The mean of column j is
//
//	Σᵢ weights[i]·x[i,j] / Σᵢ weights[i]
//
// If weights is nil, every row has weight 1.
func Center(x mat.Matrix, weights []float64) (*mat.Dense, error) {
	r, _ := x.Dims()
	if err := checkWeights(r, weights); err != nil {
		return nil, err
	}
	return center(x, weights), nil
}

// center assumes weights has already been checked.
func center(x mat.Matrix, weights []float64) *mat.Dense {
	// Work on the transpose so each variable is a contiguous row.
	var xt mat.Dense
	xt.CloneFrom(x.T())
	m, _ := xt.Dims()
	for j := 0; j < m; j++ {
		v := xt.RawRowView(j)
		floats.AddConst(-stat.Mean(v, weights), v)
	}
	var c mat.Dense
	c.CloneFrom(xt.T())
	return &c
}

// ExponentialWeights returns n weights that decay exponentially into
// the past, with the most recent observation last:
//
//	w[i] = λ(1-λ)^(n-1-i)
//
// lambda must be in (0, 1].
func ExponentialWeights(n int, lambda float64) []float64 {
	if lambda <= 0 || lambda > 1 {
		panic("stats: exponential weight factor must be in (0, 1]")
	}
	w := make([]float64, n)
	for i := range w {
		w[i] = lambda * math.Pow(1-lambda, float64(n-1-i))
	}
	return w
}
