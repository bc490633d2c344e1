// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Simulate fills each row of dst with an independent draw from the
// multivariate normal distribution with mean mu and covariance
// rootᵀ·root. root may be any square root, K×M, such as the result of
// SqrtCov or Combine. Each row is mu + z·root with z a vector of K
// standard normal variates.
//
// dst must be n×M and len(mu) must be M. If src is nil, the global
// source of golang.org/x/exp/rand is used.
func Simulate(dst *mat.Dense, mu []float64, root mat.Matrix, src rand.Source) {
	k, m := root.Dims()
	n, c := dst.Dims()
	if c != m || len(mu) != m {
		panic(mat.ErrShape)
	}

	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	z := mat.NewDense(n, k, nil)
	for i := 0; i < n; i++ {
		row := z.RawRowView(i)
		for j := range row {
			row[j] = norm.Rand()
		}
	}
	dst.Mul(z, root)
	for i := 0; i < n; i++ {
		floats.Add(dst.RawRowView(i), mu)
	}
}
