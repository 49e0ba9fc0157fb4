package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/repton/chain"
)

// hernias lists the four two-link hernia configurations.
var hernias = []chain.Polymer{
	chain.MustNew(chain.Up, chain.Down),
	chain.MustNew(chain.Down, chain.Up),
	chain.MustNew(chain.Left, chain.Right),
	chain.MustNew(chain.Right, chain.Left),
}

// allOfLength brute-forces every link sequence of length n. Used to cross
// check properties against the closure in package statespace without
// depending on it.
func allOfLength(n int) []chain.Polymer {
	seqs := [][]chain.Link{{}}
	for i := 0; i < n; i++ {
		next := make([][]chain.Link, 0, len(seqs)*len(chain.Links))
		for _, seq := range seqs {
			for _, l := range chain.Links {
				grown := append(append([]chain.Link{}, seq...), l)
				next = append(next, grown)
			}
		}
		seqs = next
	}
	out := make([]chain.Polymer, len(seqs))
	for i, seq := range seqs {
		out[i] = chain.MustNew(seq...)
	}

	return out
}

// assertReaches fails unless every polymer in want is reachable.
func assertReaches(t *testing.T, got chain.Set, want ...chain.Polymer) {
	t.Helper()
	for _, p := range want {
		assert.True(t, got.Has(p), "expected %v to be reachable", p)
	}
}

// TestReachableFrom_ExcludesOrigin exercises a chain in which every kind
// of legal move is possible: a slack end, a taut-slack pair, a double
// slack, a bent knee, a hernia, and a taut end.
func TestReachableFrom_ExcludesOrigin(t *testing.T) {
	p := chain.MustNew(
		chain.Slack,
		chain.Right, chain.Slack,
		chain.Slack, chain.Slack,
		chain.Right, chain.Up,
		chain.Right, chain.Left,
		chain.Up,
	)

	reachable := p.ReachableFrom()

	assert.False(t, reachable.Has(p), "origin must never be reachable from itself")
	assert.NotEmpty(t, reachable)
}

// TestReachableFrom_ExcludesOrigin_Exhaustive sweeps every length-3
// configuration.
func TestReachableFrom_ExcludesOrigin_Exhaustive(t *testing.T) {
	for _, p := range allOfLength(3) {
		if p.ReachableFrom().Has(p) {
			t.Errorf("%v reaches itself", p)
		}
	}
}

// TestHerniaCreation verifies a double-slack pair can fold into each of
// the four hernia orientations.
func TestHerniaCreation(t *testing.T) {
	p, err := chain.AllCurledUp(2)
	require.NoError(t, err)

	assertReaches(t, p.ReachableFrom(), hernias...)
}

// TestHernia_RedirectionAndAnnihilation verifies a hernia can reorient to
// any other hernia or collapse, but never stay put.
func TestHernia_RedirectionAndAnnihilation(t *testing.T) {
	p := chain.MustNew(chain.Up, chain.Down)

	reachable := p.ReachableFrom()

	assertReaches(t, reachable,
		chain.MustNew(chain.Down, chain.Up),
		chain.MustNew(chain.Left, chain.Right),
		chain.MustNew(chain.Right, chain.Left),
		chain.MustNew(chain.Slack, chain.Slack),
	)
	assert.False(t, reachable.Has(p), "redirection must exclude the current orientation")
}

// TestHernia_GeneratesSlackPair mirrors the annihilation rule through the
// ContainsSlackPair predicate.
func TestHernia_GeneratesSlackPair(t *testing.T) {
	reachable := chain.MustNew(chain.Up, chain.Down).ReachableFrom()

	found := false
	for p := range reachable {
		if p.ContainsSlackPair() {
			found = true
			break
		}
	}
	assert.True(t, found, "annihilating a hernia must yield a slack pair")
}

// TestThreeSlacks_GenerateHernias checks hernia creation inside a longer
// collapsed chain.
func TestThreeSlacks_GenerateHernias(t *testing.T) {
	p, err := chain.AllCurledUp(3)
	require.NoError(t, err)

	found := false
	for q := range p.ReachableFrom() {
		if q.ContainsHernia() {
			found = true
			break
		}
	}
	assert.True(t, found, "a collapsed chain of 3 links must reach a hernia")
}

// TestBarrierCrossing verifies a perpendicular pair flips to the mirrored
// corner.
func TestBarrierCrossing(t *testing.T) {
	reachable := chain.MustNew(chain.Up, chain.Right).ReachableFrom()

	assertReaches(t, reachable, chain.MustNew(chain.Right, chain.Up))
}

// TestReptation verifies an interior slack exchanges position with either
// taut neighbor.
func TestReptation(t *testing.T) {
	p := chain.MustNew(chain.Up, chain.Left, chain.Slack, chain.Left, chain.Down)

	assertReaches(t, p.ReachableFrom(),
		chain.MustNew(chain.Up, chain.Slack, chain.Left, chain.Left, chain.Down),
		chain.MustNew(chain.Up, chain.Left, chain.Left, chain.Slack, chain.Down),
	)
}

// TestEndExtension_FirstLink verifies a slack head stretches into all four
// directions.
func TestEndExtension_FirstLink(t *testing.T) {
	reachable := chain.MustNew(chain.Slack, chain.Right).ReachableFrom()

	assertReaches(t, reachable,
		chain.MustNew(chain.Up, chain.Right),
		chain.MustNew(chain.Down, chain.Right),
		chain.MustNew(chain.Left, chain.Right),
		chain.MustNew(chain.Right, chain.Right),
	)
}

// TestEndExtension_LastLink verifies the same at the tail.
func TestEndExtension_LastLink(t *testing.T) {
	reachable := chain.MustNew(chain.Right, chain.Slack).ReachableFrom()

	assertReaches(t, reachable,
		chain.MustNew(chain.Right, chain.Up),
		chain.MustNew(chain.Right, chain.Down),
		chain.MustNew(chain.Right, chain.Left),
		chain.MustNew(chain.Right, chain.Right),
	)
}

// TestEndContraction verifies both taut ends can relax to slack.
func TestEndContraction(t *testing.T) {
	p := chain.MustNew(chain.Up, chain.Left, chain.Up)

	assertReaches(t, p.ReachableFrom(),
		chain.MustNew(chain.Slack, chain.Left, chain.Up),
		chain.MustNew(chain.Up, chain.Left, chain.Slack),
	)
}

// TestEndLinks_ChangeToAnythingExceptSelf verifies the combined effect of
// contraction, extension, and wiggle at both ends: an end link can become
// any other link value but never revert to itself.
func TestEndLinks_ChangeToAnythingExceptSelf(t *testing.T) {
	first, last := chain.Slack, chain.Right
	p := chain.MustNew(first, chain.Up, last)

	reachable := p.ReachableFrom()

	for _, l := range chain.Links {
		if l != first {
			assertReaches(t, reachable, chain.MustNew(l, chain.Up, last))
		}
		if l != last {
			assertReaches(t, reachable, chain.MustNew(first, chain.Up, l))
		}
	}
	assert.False(t, reachable.Has(p))
}
