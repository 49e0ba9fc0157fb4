package chain

// RateTable maps each move kind to the rate a caller assigns it. Rates
// are generic: float64 for physical transition rates, MoveType itself for
// diagnostic tracking of which mechanisms can reach a configuration.
// The table is always an explicit parameter, never ambient state, so the
// same engine serves both uses.
type RateTable[R any] map[MoveType]R

// ReachableFrom returns every configuration reachable from p by a single
// elementary move. The origin is never included, even when some rule
// regenerates it.
func (p Polymer) ReachableFrom() Set {
	out := make(Set)
	p.moves(func(m move) {
		if m.to != p {
			out.Add(m.to)
		}
	})

	return out
}

// TransitionRates computes, for every configuration reachable from p in
// one move, the combined rate of getting there. Each candidate
// contributes table[kind] for the move kind that produced it; a kind
// absent from the table contributes zero, which doubles as the identity
// the fold starts from. When several (position, rule) pairs land on the
// same configuration their contributions fold together with combine,
// which must be associative and commutative so the fold order is
// immaterial: numeric addition for physical rates, bitwise union for
// move-kind tracking.
//
// The key set of the result always equals p.ReachableFrom().
func TransitionRates[R any](p Polymer, table RateTable[R], combine func(R, R) R, zero R) map[Polymer]R {
	out := make(map[Polymer]R)
	p.moves(func(m move) {
		if m.to == p {
			return
		}
		rate, ok := table[m.kind]
		if !ok {
			rate = zero
		}
		acc, seen := out[m.to]
		if !seen {
			acc = zero
		}
		out[m.to] = combine(acc, rate)
	})

	return out
}

// SumRates is the combine operator for physical float64 rates.
func SumRates(a, b float64) float64 { return a + b }

// UnionMoveTypes is the combine operator for diagnostic MoveType rates.
func UnionMoveTypes(a, b MoveType) MoveType { return a | b }
