// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// testX is 8 observations of 3 variables.
var testX = mat.NewDense(8, 3, []float64{
	1.2, 3.4, -0.5,
	2.1, 2.9, 0.3,
	0.7, 4.1, -1.2,
	3.3, 1.8, 0.9,
	1.9, 3.0, 0.1,
	2.6, 2.2, 1.4,
	0.4, 4.6, -0.8,
	1.5, 3.3, 0.0,
})

var testW = []float64{0.5, 1, 2, 0.25, 1.5, 3, 1, 0.75}

func ones(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	return w
}

// requireEqualApprox fails t unless want and got are element-wise within
// tol of each other.
func requireEqualApprox(t *testing.T, want, got mat.Matrix, tol float64) {
	t.Helper()
	if !mat.EqualApprox(want, got, tol) {
		t.Fatalf("want\n%v\ngot\n%v", mat.Formatted(want), mat.Formatted(got))
	}
}
