// Package render turns a transition matrix into consumable artifacts:
// a dense numeric matrix, a normalized grayscale image, spreadsheet and
// CSV exports, and a rate-distribution summary.
//
// The core deliberately defines no ordering on the state set; this
// package imposes one (Order) and every artifact uses it, so rows and
// columns line up across image, sheet, and CSV outputs.
package render

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/repton/chain"
	"github.com/katalvlaran/repton/statespace"
)

// Sentinel errors for rendering operations.
var (
	// ErrNilMatrix indicates a nil transition matrix was passed.
	ErrNilMatrix = errors.New("render: transition matrix is nil")
	// ErrNoRates indicates every entry is zero, so the image cannot be
	// normalized.
	ErrNoRates = errors.New("render: matrix has no nonzero rates")
)

// Order returns the configurations of set sorted by their compact keys:
// the deterministic total order every artifact in this package uses.
// It matches the order of statespace.Matrix.States().
func Order(set chain.Set) []chain.Polymer {
	out := make([]chain.Polymer, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })

	return out
}

// Dense fills a gonum dense matrix from m: row i is the origin
// m.States()[i], column j the target m.States()[j].
// Returns ErrNilMatrix when m is nil.
func Dense(m *statespace.Matrix[float64]) (*mat.Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	states := m.States()
	index := make(map[chain.Polymer]int, len(states))
	for i, p := range states {
		index[p] = i
	}
	d := mat.NewDense(len(states), len(states), nil)
	for i, origin := range states {
		for target, rate := range m.Rates(origin) {
			d.Set(i, index[target], rate)
		}
	}

	return d, nil
}
