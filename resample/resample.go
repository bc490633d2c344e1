// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resample draws observations from a finite data set with
// probability proportional to per-observation weights, as in a
// weighted bootstrap.
//
// A resampler is immutable once built. It holds no random state:
// every draw takes the *rand.Rand to advance, so resamplers built from
// the same data and driven by identically seeded sources produce
// identical draws. A nil *rand.Rand uses the global source of
// golang.org/x/exp/rand. Concurrent draws are safe as long as each
// goroutine uses its own source.
package resample // import "github.com/invenia/statsutils/resample"

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch is returned when the number of
	// observations differs from the number of weights, or
	// observations differ in shape.
	ErrDimensionMismatch = errors.New("resample: dimension mismatch")

	// ErrNoObservations is returned for an empty data set.
	ErrNoObservations = errors.New("resample: no observations")

	// ErrNegativeWeight is returned for a weight that is negative
	// or NaN.
	ErrNegativeWeight = errors.New("resample: negative weight")

	// ErrZeroWeight is returned when the weights sum to zero.
	ErrZeroWeight = errors.New("resample: weights sum to zero")
)

func checkLen(n int, weights []float64) error {
	if n != len(weights) {
		return fmt.Errorf("%d observations, %d weights: %w", n, len(weights), ErrDimensionMismatch)
	}
	return nil
}
