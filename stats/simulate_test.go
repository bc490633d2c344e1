// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

func TestSimulate(t *testing.T) {
	cov := mat.NewSymDense(2, []float64{
		4, 1.2,
		1.2, 1,
	})
	var chol mat.Cholesky
	require.True(t, chol.Factorize(cov))
	root := SqrtCovFactor(CholeskyFactor{&chol})
	mu := []float64{10, -3}

	const n = 20000
	dst := mat.NewDense(n, 2, nil)
	Simulate(dst, mu, root, rand.NewSource(1))

	for j, m := range mu {
		require.InDelta(t, m, stat.Mean(mat.Col(nil, j, dst), nil), 0.1)
	}
	var got mat.SymDense
	stat.CovarianceMatrix(&got, dst, nil)
	requireEqualApprox(t, cov, &got, 0.25)

	// The same seed reproduces the same draws.
	again := mat.NewDense(n, 2, nil)
	Simulate(again, mu, root, rand.NewSource(1))
	require.True(t, mat.Equal(dst, again))
}

func TestSimulateShape(t *testing.T) {
	root := mat.NewDiagDense(2, []float64{1, 1})
	require.Panics(t, func() {
		Simulate(mat.NewDense(5, 3, nil), []float64{0, 0}, root, nil)
	})
	require.Panics(t, func() {
		Simulate(mat.NewDense(5, 2, nil), []float64{0}, root, nil)
	})
}
