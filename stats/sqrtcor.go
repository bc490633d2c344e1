// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// StdDev returns the weighted standard deviation of each column of x.
// These are the column norms of SqrtCov(x, weights, corrected), and the
// square roots of the diagonal of the weighted covariance matrix.
func StdDev(x mat.Matrix, weights []float64, corrected bool) ([]float64, error) {
	m, err := newMoments(x, weights, corrected)
	if err != nil {
		return nil, err
	}
	return m.stdDev(), nil
}

// SqrtCor returns a square root of the weighted correlation matrix of
// x: SqrtCov(x, weights, corrected) with column j divided by the
// weighted standard deviation of column j.
//
// A column with zero weighted variance yields a column of NaNs. Such
// variables should be removed before calling SqrtCor.
func SqrtCor(x mat.Matrix, weights []float64, corrected bool) (*mat.Dense, error) {
	m, err := newMoments(x, weights, corrected)
	if err != nil {
		return nil, err
	}
	return corRoot(m.root(), m.stdDev()), nil
}

// corRoot divides each column of root by the matching std, in place.
func corRoot(root *mat.Dense, std []float64) *mat.Dense {
	r, _ := root.Dims()
	for i := 0; i < r; i++ {
		floats.Div(root.RawRowView(i), std)
	}
	return root
}
