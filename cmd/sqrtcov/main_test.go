package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const testInput = `# x, y, weight
1.2, 3.4, 0.5
2.1, 2.9, 1
0.7, 4.1, 2
3.3, 1.8, 0.25
1.9, 3.0, 1.5
`

func runString(t *testing.T, opts options, input string) *mat.Dense {
	t.Helper()
	if opts.comma == 0 {
		opts.comma = ','
	}
	var out bytes.Buffer
	require.NoError(t, run(opts, strings.NewReader(input), &out))
	got, err := readInput(&out, opts.comma)
	require.NoError(t, err)
	return got
}

func TestReadInput(t *testing.T) {
	x, err := readInput(strings.NewReader(testInput), ',')
	require.NoError(t, err)
	r, c := x.Dims()
	require.Equal(t, 5, r)
	require.Equal(t, 3, c)
	require.Equal(t, 2.9, x.At(1, 1))

	_, err = readInput(strings.NewReader("1,2\n3,x\n"), ',')
	require.ErrorContains(t, err, "line 2")

	_, err = readInput(strings.NewReader("1,2\n3\n"), ',')
	require.Error(t, err)

	_, err = readInput(strings.NewReader("# nothing\n"), ',')
	require.Error(t, err)
}

func TestRunCov(t *testing.T) {
	x, err := readInput(strings.NewReader(testInput), ',')
	require.NoError(t, err)
	data, weights, err := splitWeights(x)
	require.NoError(t, err)

	var want mat.SymDense
	stat.CovarianceMatrix(&want, data, weights)

	got := runString(t, options{op: "cov", corrected: true, weightsColumn: true}, testInput)
	require.True(t, mat.EqualApprox(&want, got, 1e-12))

	// The combined triangular root reproduces the same covariance.
	root := runString(t, options{op: "combine", corrected: true, weightsColumn: true}, testInput)
	var cov mat.SymDense
	cov.SymOuterK(1, root.T())
	require.True(t, mat.EqualApprox(&want, &cov, 1e-12))
}

func TestRunStd(t *testing.T) {
	got := runString(t, options{op: "std", corrected: true, comma: ';'}, "1;2\n3;2\n5;8\n")
	r, c := got.Dims()
	require.Equal(t, 1, r)
	require.Equal(t, 2, c)
	require.InDelta(t, 2, got.At(0, 0), 1e-12)
	require.InDelta(t, stat.StdDev([]float64{2, 2, 8}, nil), got.At(0, 1), 1e-12)
}

func TestRunSqrtCor(t *testing.T) {
	root := runString(t, options{op: "sqrtcor", lambda: 0.3}, testInput)
	r, c := root.Dims()
	require.Equal(t, 5, r)
	require.Equal(t, 3, c)
	var cor mat.SymDense
	cor.SymOuterK(1, root.T())
	for i := 0; i < c; i++ {
		require.InDelta(t, 1, cor.At(i, i), 1e-12)
	}
}

func TestRunResample(t *testing.T) {
	const input = `1, 10, 0
2, 20, 0
3, 30, 1
`
	got := runString(t, options{op: "resample", n: 7, seed: 3, weightsColumn: true}, input)
	r, c := got.Dims()
	require.Equal(t, 7, r)
	require.Equal(t, 2, c)
	for i := 0; i < r; i++ {
		require.Equal(t, []float64{3, 30}, mat.Row(nil, i, got))
	}
}

func TestRunSimulate(t *testing.T) {
	opts := options{op: "simulate", n: 4, seed: 5, corrected: true, weightsColumn: true}
	a := runString(t, opts, testInput)
	b := runString(t, opts, testInput)
	r, c := a.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 2, c)
	require.True(t, mat.Equal(a, b))
}

func TestRunErrors(t *testing.T) {
	for _, opts := range []options{
		{op: "nope"},
		{op: "cov", weightsColumn: true, lambda: 0.5},
		{op: "cov", lambda: 2},
		{op: "resample", n: 0},
	} {
		opts.comma = ','
		err := run(opts, strings.NewReader(testInput), new(bytes.Buffer))
		require.Error(t, err, "%+v", opts)
	}

	err := run(options{op: "cov", weightsColumn: true, comma: ','}, strings.NewReader("1\n2\n"), new(bytes.Buffer))
	require.Error(t, err)
}
