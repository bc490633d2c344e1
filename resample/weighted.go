// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// Weighted draws indices in [0, n) with probability proportional to n
// fixed weights. It is the index distribution shared by all
// resamplers.
type Weighted struct {
	weights []float64
	cum     []float64 // cumulative sum of weights
	last    int       // largest index with a positive weight
}

// NewWeighted returns a Weighted over a copy of weights.
func NewWeighted(weights []float64) (Weighted, error) {
	if len(weights) == 0 {
		return Weighted{}, ErrNoObservations
	}
	last := -1
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return Weighted{}, fmt.Errorf("weight %d is %v: %w", i, w, ErrNegativeWeight)
		}
		if w > 0 {
			last = i
		}
	}
	if last < 0 {
		return Weighted{}, ErrZeroWeight
	}

	w := append([]float64(nil), weights...)
	return Weighted{
		weights: w,
		cum:     floats.CumSum(make([]float64, len(w)), w),
		last:    last,
	}, nil
}

// Len returns the number of indices.
func (s Weighted) Len() int { return len(s.weights) }

// Weights returns a copy of the weights.
func (s Weighted) Weights() []float64 {
	return append([]float64(nil), s.weights...)
}

// Total returns the sum of the weights.
func (s Weighted) Total() float64 {
	return s.cum[len(s.cum)-1]
}

// Index draws one index, independently of any previous draw.
func (s Weighted) Index(r *rand.Rand) int {
	var u float64
	if r == nil {
		u = rand.Float64()
	} else {
		u = r.Float64()
	}
	u *= s.Total()
	// The first index whose cumulative weight exceeds u. Indices
	// with zero weight never satisfy this strictly.
	i := sort.Search(len(s.cum), func(i int) bool { return s.cum[i] > u })
	if i == len(s.cum) {
		// u rounded up to the total.
		i = s.last
	}
	return i
}

// Distinct draws up to k distinct indices without replacement, each
// draw weighted among the indices not yet taken. Fewer than k indices
// are returned when fewer than k have a positive weight.
func (s Weighted) Distinct(k int, r *rand.Rand) []int {
	if k <= 0 {
		return nil
	}
	var src rand.Source
	if r != nil {
		src = r
	}
	w := sampleuv.NewWeighted(s.weights, src)
	idx := make([]int, 0, min(k, s.Len()))
	for len(idx) < k {
		i, ok := w.Take()
		if !ok {
			break
		}
		idx = append(idx, i)
	}
	return idx
}
