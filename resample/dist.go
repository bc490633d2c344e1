// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

import "golang.org/x/exp/rand"

// A Resampler is a discrete distribution over a finite set of stored
// observations, each drawn with probability proportional to its
// weight. Univariate, Multivariate and Matrixvariate differ only in
// the shape of the observation returned for a drawn index.
type Resampler interface {
	// Len returns the number of stored observations.
	Len() int

	// Weights returns a copy of the observation weights.
	Weights() []float64

	// Index draws an observation index in [0, Len()) with
	// probability proportional to its weight.
	Index(r *rand.Rand) int

	// Distinct draws up to k distinct observation indices without
	// replacement.
	Distinct(k int, r *rand.Rand) []int
}

var (
	_ Resampler = (*Univariate)(nil)
	_ Resampler = (*Multivariate)(nil)
	_ Resampler = (*Matrixvariate)(nil)
)
