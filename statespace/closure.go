package statespace

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/repton/chain"
)

// All discovers every chain configuration of n links reachable from the
// fully-collapsed chain, by fixed-point iteration: expand the frontier,
// merge anything unseen into the accumulator, repeat until a round adds
// nothing. The worklist is explicit, not recursive, so the call stack
// stays flat however large the 5^n domain grows.
//
// The move rules are confluent enough that the whole configuration space
// is reachable from the collapsed state, so the result always has 5^n
// elements; termination follows from the domain being finite.
//
// Returns chain.ErrEmptyChain when n < 1, ErrOptionViolation for bad
// options, or the context's error on cancellation.
func All(n int, opts ...Option) (chain.Set, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	start, err := chain.AllCurledUp(n)
	if err != nil {
		return nil, err
	}

	states := make(chain.Set)
	states.Add(start)
	frontier := []chain.Polymer{start}

	for len(frontier) > 0 {
		reached, err := expand(o.Ctx, frontier, o.Workers)
		if err != nil {
			return nil, err
		}
		// Keep only configurations this round saw for the first time.
		frontier = frontier[:0]
		for p := range reached {
			if !states.Has(p) {
				states.Add(p)
				frontier = append(frontier, p)
			}
		}
	}

	return states, nil
}

// expand returns the union of ReachableFrom over the frontier, fanning
// the per-state expansions out across up to workers goroutines. Each
// goroutine accumulates a private set; the partials are merged
// single-threaded afterwards, so no locking is needed.
func expand(ctx context.Context, frontier []chain.Polymer, workers int) (chain.Set, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(frontier) {
		workers = len(frontier)
	}

	g, ctx := errgroup.WithContext(ctx)
	chunk := (len(frontier) + workers - 1) / workers
	// Walk the frontier by offset: with a ceiling chunk size the last
	// stride may fall short of workers full chunks, so bounds derive
	// from the slice length, never from the worker count.
	partials := make([]chain.Set, 0, workers)
	for lo := 0; lo < len(frontier); lo += chunk {
		hi := lo + chunk
		if hi > len(frontier) {
			hi = len(frontier)
		}
		part := frontier[lo:hi]
		local := make(chain.Set)
		partials = append(partials, local)
		g.Go(func() error {
			for _, p := range part {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				for q := range p.ReachableFrom() {
					local.Add(q)
				}
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make(chain.Set)
	for _, part := range partials {
		for p := range part {
			merged.Add(p)
		}
	}

	return merged, nil
}
