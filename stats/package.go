// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats computes weighted second-moment statistics of
// multivariate observations in factored form.
//
// Data is an N×M matrix with one observation per row and one variable
// per column. Weights, when given, hold one non-negative value per
// row; a nil weight slice means every observation has weight 1.
//
// The central objects are square roots: any matrix R with Rᵀ·R equal
// to the target covariance or correlation matrix. Square roots are
// computed directly from the weighted, centered data and never by
// factoring a formed covariance matrix.
package stats // import "github.com/invenia/statsutils/stats"

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch is returned when two arguments disagree
	// on a shared dimension, such as the number of data rows and
	// the number of weights.
	ErrDimensionMismatch = errors.New("stats: dimension mismatch")

	// ErrNotDiagonal is returned when a matrix that must be
	// diagonal has a non-zero off-diagonal element.
	ErrNotDiagonal = errors.New("stats: matrix is not diagonal")

	// ErrNegativeWeight is returned for a weight below zero.
	ErrNegativeWeight = errors.New("stats: negative weight")
)

// checkWeights validates weights against n observations. nil weights
// are always valid.
func checkWeights(n int, weights []float64) error {
	if weights == nil {
		return nil
	}
	if len(weights) != n {
		return fmt.Errorf("%d observations, %d weights: %w", n, len(weights), ErrDimensionMismatch)
	}
	for i, w := range weights {
		if w < 0 {
			return fmt.Errorf("weight %d is %v: %w", i, w, ErrNegativeWeight)
		}
	}
	return nil
}
