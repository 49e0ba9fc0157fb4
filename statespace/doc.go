// Package statespace discovers the complete configuration space of a
// repton chain and assembles its transition-rate matrix.
//
// What:
//
//   - All(n): breadth-first fixed-point closure of chain.ReachableFrom
//     starting from the fully-collapsed chain; always yields all 5^n
//     configurations.
//   - Matrix[R]: the continuous-time Markov generator over that space,
//     queryable by (origin, target) pair, with States() and Size().
//   - NewRateMatrix / NewMoveTypeMatrix: the two standard
//     instantiations: physical float64 rates under addition, and
//     diagnostic move-kind unions under bitwise OR.
//
// Why:
//
//   - The generator matrix is the object of study of the Rubinstein–Duke
//     model: its spectrum governs reptation relaxation times. This
//     package produces it; rendering and export live in package render.
//
// Concurrency:
//
//   - Per-state expansion is a pure function, so both the closure and the
//     matrix assembly fan out across a bounded worker group
//     (golang.org/x/sync/errgroup) and merge partial results
//     single-threaded. WithWorkers bounds the fan-out, WithContext
//     cancels long runs.
//
// Complexity (S = 5^n states, each with O(n) moves):
//
//   - All: O(S·n) time, O(S) memory.
//   - NewMatrix: O(S·n) time, O(S·n) memory for the sparse rows.
//
// The full state set is held in memory after closure completes; the
// domain is exponential in n, so callers should bound n accordingly.
//
// Errors:
//
//   - chain.ErrEmptyChain: n < 1.
//   - ErrOptionViolation: invalid Option (e.g. negative worker count).
//   - Context errors propagate from cancellation.
package statespace
