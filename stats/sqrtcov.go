// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// moments holds weighted, centered data together with the
// normalization factor of its second moment. Every square root and
// standard deviation of one data set is derived from the same moments
// so that they agree exactly.
type moments struct {
	c  *mat.Dense // centered data, N×M
	w  []float64  // nil means unit weights
	sv float64    // Scale(w, corrected)
}

func newMoments(x mat.Matrix, weights []float64, corrected bool) (*moments, error) {
	r, _ := x.Dims()
	if err := checkWeights(r, weights); err != nil {
		return nil, err
	}
	return &moments{
		c:  center(x, weights),
		w:  weights,
		sv: scale(sumWeights(r, weights), corrected),
	}, nil
}

// weight returns the weight of row i.
func (m *moments) weight(i int) float64 {
	if m.w == nil {
		return 1
	}
	return m.w[i]
}

// root returns the covariance square root: row i of the centered data
// scaled by sqrt(w[i])·sqrt(sv).
func (m *moments) root() *mat.Dense {
	root := mat.DenseCopyOf(m.c)
	r, _ := root.Dims()
	ssv := math.Sqrt(m.sv)
	for i := 0; i < r; i++ {
		floats.Scale(math.Sqrt(m.weight(i))*ssv, root.RawRowView(i))
	}
	return root
}

// stdDev returns sqrt(sv·Σᵢ w[i]·c[i,j]²) for each column j.
func (m *moments) stdDev() []float64 {
	r, c := m.c.Dims()
	std := make([]float64, c)
	for i := 0; i < r; i++ {
		w := m.weight(i)
		for j, v := range m.c.RawRowView(i) {
			std[j] += w * v * v
		}
	}
	for j, ss := range std {
		std[j] = math.Sqrt(m.sv * ss)
	}
	return std
}

// SqrtCov returns a square root R of the weighted covariance matrix of
// x, such that Rᵀ·R is the covariance. R has the shape of x: row i is
// observation i after centering, scaled by
//
//	sqrt(weights[i] · Scale(weights, corrected))
//
// The covariance itself is never formed. If weights is nil, every
// observation has weight 1; with corrected set this is the square root
// of the usual (N-1)-normalized sample covariance.
func SqrtCov(x mat.Matrix, weights []float64, corrected bool) (*mat.Dense, error) {
	m, err := newMoments(x, weights, corrected)
	if err != nil {
		return nil, err
	}
	return m.root(), nil
}

// A Factorization is a factored symmetric positive semi-definite
// matrix A that can report a square root of A.
type Factorization interface {
	// Root returns a matrix R such that Rᵀ·R = A, with rows and
	// columns in the original variable order of A.
	Root() mat.Matrix
}

// SqrtCovFactor returns the square root held by a factorization of a
// covariance matrix.
func SqrtCovFactor(f Factorization) mat.Matrix {
	return f.Root()
}

// CholeskyFactor is a Cholesky factorization A = Uᵀ·U.
type CholeskyFactor struct {
	Chol *mat.Cholesky
}

// Root returns the upper triangular factor U.
func (f CholeskyFactor) Root() mat.Matrix {
	var u mat.TriDense
	f.Chol.UTo(&u)
	return &u
}

// PivotedCholeskyFactor is a Cholesky factorization with complete
// pivoting, Pᵀ·A·P = Uᵀ·U.
type PivotedCholeskyFactor struct {
	Chol *mat.PivotedCholesky
}

// Root returns U with the pivoting undone. The result is in general
// not triangular. For a rank deficient A the trailing rows of U are
// zero and the result is still a square root of A.
func (f PivotedCholeskyFactor) Root() mat.Matrix {
	var u mat.TriDense
	f.Chol.UTo(&u)
	return unpivot(&u, f.Chol.ColumnPivots(nil))
}

// TriangularFactor is an externally computed factorization
// Pᵀ·A·P = Uᵀ·U. Perm describes P the way
// mat.PivotedCholesky.ColumnPivots does, with P[Perm[k],k] = 1. A nil
// Perm means no pivoting.
type TriangularFactor struct {
	U    mat.Triangular
	Perm []int
}

// Root returns U, with the pivoting undone if Perm is set.
func (f TriangularFactor) Root() mat.Matrix {
	if f.Perm == nil {
		return f.U
	}
	return unpivot(f.U, f.Perm)
}

// QRFactor is a QR factorization X = Q·R of a data matrix X, so that
// Rᵀ·R = Xᵀ·X.
type QRFactor struct {
	QR *mat.QR
}

// Root returns the c×c upper triangular factor R, where c is the
// number of columns of X.
func (f QRFactor) Root() mat.Matrix {
	var r mat.Dense
	f.QR.RTo(&r)
	return upperTri(&r)
}

// unpivot returns the square root of A given a square root u of
// Pᵀ·A·P, by applying the inverse permutation to both the rows and
// the columns of u.
func unpivot(u mat.Matrix, piv []int) *mat.Dense {
	n := len(piv)
	if r, c := u.Dims(); r != n || c != n {
		panic(mat.ErrShape)
	}
	inv := make([]int, n)
	for k, p := range piv {
		inv[p] = k
	}
	root := mat.NewDense(n, n, nil)
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			root.Set(a, b, u.At(inv[a], inv[b]))
		}
	}
	return root
}

// upperTri returns the c×c upper triangle of the r×c matrix a. If
// r < c the missing rows are zero.
func upperTri(a mat.Matrix) *mat.TriDense {
	r, c := a.Dims()
	t := mat.NewTriDense(c, mat.Upper, nil)
	for i := 0; i < min(r, c); i++ {
		for j := i; j < c; j++ {
			t.SetTri(i, j, a.At(i, j))
		}
	}
	return t
}
