// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromSqrt returns Rᵀ·R for a square root R. It reconstructs a
// covariance matrix from SqrtCov and a correlation matrix from
// SqrtCor alike.
//
// If root is diagonal the result is a *mat.DiagDense; otherwise it is
// a *mat.SymDense.
func FromSqrt(root mat.Matrix) mat.Symmetric {
	if d, ok := root.(mat.Diagonal); ok {
		n := d.Diag()
		sq := make([]float64, n)
		for i := range sq {
			v := d.At(i, i)
			sq[i] = v * v
		}
		return mat.NewDiagDense(n, sq)
	}
	return outer(root)
}

func outer(root mat.Matrix) *mat.SymDense {
	var s mat.SymDense
	s.SymOuterK(1, root.T())
	return &s
}

// Cov returns the weighted covariance matrix of x, computed through
// its square root.
func Cov(x mat.Matrix, weights []float64, corrected bool) (*mat.SymDense, error) {
	root, err := SqrtCov(x, weights, corrected)
	if err != nil {
		return nil, err
	}
	return outer(root), nil
}

// Cor returns the weighted Pearson correlation matrix of x, computed
// through its square root.
func Cor(x mat.Matrix, weights []float64, corrected bool) (*mat.SymDense, error) {
	root, err := SqrtCor(x, weights, corrected)
	if err != nil {
		return nil, err
	}
	return outer(root), nil
}

// Combine returns an upper triangular square root of the covariance
// matrix whose correlation has square root sqrtCor and whose standard
// deviations are the diagonal of stds.
//
// sqrtCor is N×M and stds must be an M×M diagonal matrix; any
// mat.Diagonal is accepted without inspection. The result
// is the M×M R factor of the QR factorization of sqrtCor·stds, so that
// Rᵀ·R = stds·Cor·stds. No sign normalization is applied to R; its
// diagonal may have negative elements.
func Combine(sqrtCor, stds mat.Matrix) (*mat.TriDense, error) {
	_, m := sqrtCor.Dims()
	if r, c := stds.Dims(); r != m || c != m {
		return nil, fmt.Errorf("square root has %d columns, std matrix is %d×%d: %w", m, r, c, ErrDimensionMismatch)
	}
	if err := checkDiagonal(stds); err != nil {
		return nil, err
	}

	// QR needs at least as many rows as columns; zero rows leave
	// pᵀ·p unchanged.
	n, _ := sqrtCor.Dims()
	p := mat.NewDense(max(n, m), m, nil)
	p.Slice(0, n, 0, m).(*mat.Dense).Mul(sqrtCor, stds)
	var qr mat.QR
	qr.Factorize(p)
	return QRFactor{&qr}.Root().(*mat.TriDense), nil
}

func checkDiagonal(a mat.Matrix) error {
	if _, ok := a.(mat.Diagonal); ok {
		return nil
	}
	r, c := a.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if i != j && a.At(i, j) != 0 {
				return fmt.Errorf("element (%d, %d) is %v: %w", i, j, a.At(i, j), ErrNotDiagonal)
			}
		}
	}
	return nil
}
