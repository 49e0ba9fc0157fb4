package statespace

import (
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/repton/chain"
)

// Matrix is the generator of the continuous-time Markov chain over
// polymer configurations of a fixed length: a sparse mapping from ordered
// (origin, target) configuration pairs to combined transition rates,
// implicitly zero for absent pairs. Off-diagonal entries only; diagonal
// normalization (negative row sums for a proper generator) is the
// consumer's concern. A Matrix is built once and read-only afterwards.
type Matrix[R any] struct {
	zero   R
	states []chain.Polymer
	rates  map[chain.Polymer]map[chain.Polymer]R
}

// NewMatrix discovers the full state space for chains of n links and
// records, for every state, its transition rates under table and combine
// (see chain.TransitionRates for the rate-folding contract). zero is the
// identity of combine and the value reported for absent pairs.
//
// Returns chain.ErrEmptyChain when n < 1, ErrOptionViolation for bad
// options, or the context's error on cancellation.
func NewMatrix[R any](n int, table chain.RateTable[R], combine func(R, R) R, zero R, opts ...Option) (*Matrix[R], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	set, err := All(n, opts...)
	if err != nil {
		return nil, err
	}

	// Deterministic state order, so States() and exports are stable.
	states := make([]chain.Polymer, 0, len(set))
	for p := range set {
		states = append(states, p)
	}
	sort.Slice(states, func(i, j int) bool { return states[i].Key() < states[j].Key() })

	rates := make(map[chain.Polymer]map[chain.Polymer]R, len(states))
	workers := o.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(states) {
		workers = len(states)
	}

	// Per-state rate maps are independent; fan out like the closure and
	// merge into the shared map single-threaded. Bounds derive from the
	// state count, not the worker count: the ceiling chunk size can
	// leave the last stride short of workers full chunks.
	partials := make([]map[chain.Polymer]map[chain.Polymer]R, 0, workers)
	g, ctx := errgroup.WithContext(o.Ctx)
	chunk := (len(states) + workers - 1) / workers
	for lo := 0; lo < len(states); lo += chunk {
		hi := lo + chunk
		if hi > len(states) {
			hi = len(states)
		}
		part := states[lo:hi]
		local := make(map[chain.Polymer]map[chain.Polymer]R, len(part))
		partials = append(partials, local)
		g.Go(func() error {
			for _, p := range part {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				local[p] = chain.TransitionRates(p, table, combine, zero)
			}

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	for _, part := range partials {
		for p, row := range part {
			rates[p] = row
		}
	}

	return &Matrix[R]{zero: zero, states: states, rates: rates}, nil
}

// At returns the combined rate of the single-move transition from origin
// to target, or the matrix's zero when no such transition exists.
func (m *Matrix[R]) At(origin, target chain.Polymer) R {
	if row, ok := m.rates[origin]; ok {
		if r, ok := row[target]; ok {
			return r
		}
	}

	return m.zero
}

// Rates returns a copy of origin's full transition-rate row. The row's
// key set is exactly origin.ReachableFrom().
func (m *Matrix[R]) Rates(origin chain.Polymer) map[chain.Polymer]R {
	row, ok := m.rates[origin]
	if !ok {
		return nil
	}
	out := make(map[chain.Polymer]R, len(row))
	for p, r := range row {
		out[p] = r
	}

	return out
}

// States returns the full state set in the matrix's deterministic order,
// as a fresh slice.
func (m *Matrix[R]) States() []chain.Polymer {
	out := make([]chain.Polymer, len(m.states))
	copy(out, m.states)

	return out
}

// Size returns the number of states, always 5^n for chains of n links.
func (m *Matrix[R]) Size() int { return len(m.states) }

// NewRateMatrix builds the physical float64 generator matrix: rates fold
// by numeric addition with identity 0.
func NewRateMatrix(n int, table chain.RateTable[float64], opts ...Option) (*Matrix[float64], error) {
	return NewMatrix(n, table, chain.SumRates, 0, opts...)
}

// NewMoveTypeMatrix builds the diagnostic matrix: each entry is the
// bitwise union of every move kind that can carry origin to target.
func NewMoveTypeMatrix(n int, opts ...Option) (*Matrix[chain.MoveType], error) {
	table := make(chain.RateTable[chain.MoveType], len(chain.MoveTypes))
	for _, kind := range chain.MoveTypes {
		table[kind] = kind
	}

	return NewMatrix(n, table, chain.UnionMoveTypes, 0, opts...)
}
