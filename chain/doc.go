// Package chain models the Rubinstein–Duke "repton" lattice polymer: an
// immutable chain of links on a 2D lattice, the catalog of elementary
// moves it can make, and the per-move transition rates.
//
// What:
//
//   - Link: five bitmask-backed bond values (Up, Down, Left, Right, Slack)
//     with static opposite and perpendicular relations.
//   - MoveType: eight bitmask flags naming the physical mechanism of a
//     move, combinable by bitwise union.
//   - Polymer: an immutable, comparable chain of N≥1 links with
//     structural equality, safe to use as a map key.
//   - ReachableFrom: every configuration one legal elementary move away.
//   - TransitionRates: reachable configurations paired with rates folded
//     from a caller-supplied RateTable by an associative, commutative
//     combinator.
//
// Why:
//
//   - The elementary-move rules are the generator of the model's
//     continuous-time Markov chain; package statespace builds the full
//     state space and rate matrix on top of them.
//
// Move rules (evaluated independently at every virtual pair position):
//
//   - End contraction / extension / wiggle at the two chain ends.
//   - Hernia creation on interior double-slack pairs.
//   - Reptation on interior slack/taut pairs.
//   - Hernia annihilation and redirection on interior opposed pairs.
//   - Barrier crossing on interior perpendicular pairs.
//
// No rule ever yields the origin configuration: end wiggle and hernia
// redirection exclude the current value, and ReachableFrom filters any
// residual identity.
//
// Errors:
//
//   - ErrInvalidLink: a Link built from an out-of-domain value.
//   - ErrInvalidMoveType: a MoveType built from an out-of-domain value.
//   - ErrEmptyChain: a Polymer requested with zero links.
//
// All rule evaluation operates on already-valid data; beyond the three
// construction errors, every operation in this package is total.
package chain
