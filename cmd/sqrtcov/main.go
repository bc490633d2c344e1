// sqrtcov reads a table of observations from stdin, one observation
// per line and one variable per field, and prints a weighted second
// moment statistic of it or a weighted resample of its rows.
//
// Usage:
//
//	sqrtcov [-op op] [-biased] [-weights-column | -lambda λ] [-n n] [-seed s] < data.csv
//
// The operations are
//
//	cov       weighted covariance matrix
//	cor       weighted correlation matrix
//	sqrtcov   N×M square root of the covariance
//	sqrtcor   N×M square root of the correlation
//	std       weighted standard deviation of each variable
//	combine   M×M upper triangular square root of the covariance
//	resample  n rows drawn with replacement, weighted
//	simulate  n rows from a normal distribution with the data's
//	          weighted mean and covariance
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/golang/glog"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/invenia/statsutils/resample"
	"github.com/invenia/statsutils/stats"
)

var (
	opFlag = flag.String(
		"op", "sqrtcov",
		"Statistic to print: cov, cor, sqrtcov, sqrtcor, std, combine, resample or simulate.")
	biasedFlag = flag.Bool(
		"biased", false,
		"Normalize by the sum of weights instead of the sum of weights minus one.")
	weightsColumnFlag = flag.Bool(
		"weights-column", false,
		"The last field of each line is the weight of that observation.")
	lambdaFlag = flag.Float64(
		"lambda", 0,
		"If in (0, 1], weight observations exponentially, the last line most.")
	nFlag = flag.Int(
		"n", 10,
		"Number of rows to draw for resample and simulate.")
	seedFlag = flag.Uint64(
		"seed", 1,
		"Random seed for resample and simulate.")
	commaFlag = flag.String(
		"comma", ",",
		"Field delimiter.")
)

type options struct {
	op            string
	corrected     bool
	weightsColumn bool
	lambda        float64
	n             int
	seed          uint64
	comma         rune
}

func main() {
	flag.Parse()
	defer glog.Flush()

	comma, size := utf8.DecodeRuneInString(*commaFlag)
	if size != len(*commaFlag) {
		glog.Fatal("-comma must be a single character")
	}
	opts := options{
		op:            *opFlag,
		corrected:     !*biasedFlag,
		weightsColumn: *weightsColumnFlag,
		lambda:        *lambdaFlag,
		n:             *nFlag,
		seed:          *seedFlag,
		comma:         comma,
	}
	if err := run(opts, os.Stdin, os.Stdout); err != nil {
		glog.Fatal(err)
	}
}

func run(opts options, in io.Reader, out io.Writer) error {
	if opts.weightsColumn && opts.lambda != 0 {
		return fmt.Errorf("-weights-column and -lambda are exclusive")
	}
	if (opts.op == "resample" || opts.op == "simulate") && opts.n <= 0 {
		return fmt.Errorf("-n must be positive, got %d", opts.n)
	}

	x, err := readInput(in, opts.comma)
	if err != nil {
		return err
	}
	var weights []float64
	switch {
	case opts.weightsColumn:
		x, weights, err = splitWeights(x)
		if err != nil {
			return err
		}
	case opts.lambda != 0:
		if opts.lambda < 0 || opts.lambda > 1 {
			return fmt.Errorf("-lambda %v not in (0, 1]", opts.lambda)
		}
		r, _ := x.Dims()
		weights = stats.ExponentialWeights(r, opts.lambda)
	}
	r, c := x.Dims()
	glog.Infof("%d observations of %d variables, weighted=%v corrected=%v", r, c, weights != nil, opts.corrected)

	switch opts.op {
	case "cov":
		cov, err := stats.Cov(x, weights, opts.corrected)
		if err != nil {
			return err
		}
		return writeMatrix(out, cov, opts.comma)
	case "cor":
		cor, err := stats.Cor(x, weights, opts.corrected)
		if err != nil {
			return err
		}
		return writeMatrix(out, cor, opts.comma)
	case "sqrtcov":
		root, err := stats.SqrtCov(x, weights, opts.corrected)
		if err != nil {
			return err
		}
		return writeMatrix(out, root, opts.comma)
	case "sqrtcor":
		root, err := stats.SqrtCor(x, weights, opts.corrected)
		if err != nil {
			return err
		}
		return writeMatrix(out, root, opts.comma)
	case "std":
		std, err := stats.StdDev(x, weights, opts.corrected)
		if err != nil {
			return err
		}
		return writeMatrix(out, mat.NewDense(1, len(std), std), opts.comma)
	case "combine":
		root, err := combine(x, weights, opts.corrected)
		if err != nil {
			return err
		}
		return writeMatrix(out, root, opts.comma)
	case "resample":
		if weights == nil {
			weights = make([]float64, r)
			for i := range weights {
				weights[i] = 1
			}
		}
		m, err := resample.NewMultivariate(x.T(), weights)
		if err != nil {
			return err
		}
		draws := m.RandN(opts.n, rand.New(rand.NewSource(opts.seed)))
		return writeMatrix(out, draws.T(), opts.comma)
	case "simulate":
		root, err := combine(x, weights, opts.corrected)
		if err != nil {
			return err
		}
		mu := make([]float64, c)
		for j := range mu {
			mu[j] = stat.Mean(mat.Col(nil, j, x), weights)
		}
		sim := mat.NewDense(opts.n, c, nil)
		stats.Simulate(sim, mu, root, rand.NewSource(opts.seed))
		return writeMatrix(out, sim, opts.comma)
	}
	return fmt.Errorf("unknown -op %q", opts.op)
}

// combine returns the triangular covariance square root assembled from
// the correlation square root and the standard deviations.
func combine(x mat.Matrix, weights []float64, corrected bool) (*mat.TriDense, error) {
	sqrtCor, err := stats.SqrtCor(x, weights, corrected)
	if err != nil {
		return nil, err
	}
	std, err := stats.StdDev(x, weights, corrected)
	if err != nil {
		return nil, err
	}
	return stats.Combine(sqrtCor, mat.NewDiagDense(len(std), std))
}

func readInput(r io.Reader, comma rune) (*mat.Dense, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.Comment = '#'
	reader.TrimLeadingSpace = true

	var data []float64
	rows, cols := 0, 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		for i, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				line, _ := reader.FieldPos(i)
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			data = append(data, v)
		}
		rows, cols = rows+1, len(record)
	}
	if rows == 0 {
		return nil, fmt.Errorf("no observations")
	}
	return mat.NewDense(rows, cols, data), nil
}

// splitWeights removes the last column of x and returns it as weights.
func splitWeights(x *mat.Dense) (*mat.Dense, []float64, error) {
	r, c := x.Dims()
	if c < 2 {
		return nil, nil, fmt.Errorf("need at least one variable besides the weights column")
	}
	weights := mat.Col(nil, c-1, x)
	return mat.DenseCopyOf(x.Slice(0, r, 0, c-1)), weights, nil
}

func writeMatrix(w io.Writer, m mat.Matrix, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	r, c := m.Dims()
	record := make([]string, c)
	for i := 0; i < r; i++ {
		for j := range record {
			record[j] = strconv.FormatFloat(m.At(i, j), 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
