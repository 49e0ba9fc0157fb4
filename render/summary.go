package render

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/mat"
)

// Summary describes the distribution of the nonzero rates in a dense
// transition matrix.
type Summary struct {
	States  int     // matrix dimension
	Nonzero int     // count of nonzero entries
	Min     float64 // smallest nonzero rate
	Max     float64 // largest rate
	Mean    float64 // mean of nonzero rates
	Median  float64 // median of nonzero rates
}

// Summarize computes a Summary of d's nonzero entries.
// Returns ErrNoRates when no entry is nonzero.
func Summarize(d *mat.Dense) (Summary, error) {
	if d == nil {
		return Summary{}, ErrNilMatrix
	}
	rows, cols := d.Dims()
	nonzero := make(stats.Float64Data, 0, rows)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := d.At(i, j); v != 0 {
				nonzero = append(nonzero, v)
			}
		}
	}
	if len(nonzero) == 0 {
		return Summary{}, ErrNoRates
	}

	s := Summary{States: rows, Nonzero: len(nonzero)}
	var err error
	if s.Min, err = nonzero.Min(); err != nil {
		return Summary{}, fmt.Errorf("render: summarize min: %w", err)
	}
	if s.Max, err = nonzero.Max(); err != nil {
		return Summary{}, fmt.Errorf("render: summarize max: %w", err)
	}
	if s.Mean, err = nonzero.Mean(); err != nil {
		return Summary{}, fmt.Errorf("render: summarize mean: %w", err)
	}
	if s.Median, err = nonzero.Median(); err != nil {
		return Summary{}, fmt.Errorf("render: summarize median: %w", err)
	}

	return s, nil
}
