package chain

import (
	"fmt"
	"strings"
)

// Polymer is an immutable chain of N≥1 links: N bonds among N+1 reptons
// on a 2D lattice. It is a value type with structural equality, so it can
// be used directly as a map key; every transformation returns a fresh
// Polymer and never mutates the receiver.
//
// The zero Polymer is invalid; construct one with New or AllCurledUp.
type Polymer struct {
	// links stores one Link value per byte, head first. Backing the chain
	// with a string keeps Polymer comparable and cheap to hash.
	links string
}

// New constructs a Polymer from an ordered sequence of links, head first.
// Returns ErrEmptyChain when no links are given and ErrInvalidLink when
// any value is outside the Link domain.
func New(links ...Link) (Polymer, error) {
	if len(links) == 0 {
		return Polymer{}, ErrEmptyChain
	}
	buf := make([]byte, len(links))
	for i, l := range links {
		if _, err := NewLink(uint8(l)); err != nil {
			return Polymer{}, fmt.Errorf("link %d: %w", i, err)
		}
		buf[i] = byte(l)
	}

	return Polymer{links: string(buf)}, nil
}

// MustNew is New for statically known link sequences; it panics on error.
func MustNew(links ...Link) Polymer {
	p, err := New(links...)
	if err != nil {
		panic(err)
	}

	return p
}

// AllCurledUp returns the canonical fully-collapsed configuration of n
// slack links, all n+1 reptons in a single cell.
// Returns ErrEmptyChain when n < 1.
func AllCurledUp(n int) (Polymer, error) {
	if n < 1 {
		return Polymer{}, ErrEmptyChain
	}

	return Polymer{links: strings.Repeat(string([]byte{byte(Slack)}), n)}, nil
}

// Len returns the number of links in the chain.
func (p Polymer) Len() int { return len(p.links) }

// Links returns the chain's links head first, as a fresh slice.
func (p Polymer) Links() []Link {
	out := make([]Link, len(p.links))
	for i := 0; i < len(p.links); i++ {
		out[i] = Link(p.links[i])
	}

	return out
}

// link returns the i-th link without copying.
func (p Polymer) link(i int) Link { return Link(p.links[i]) }

// ContainsHernia reports whether any interior pair of consecutive links
// forms a hernia: two opposed taut links doubling back through the same
// lattice edge.
func (p Polymer) ContainsHernia() bool {
	for i := 1; i < p.Len(); i++ {
		if isHerniaPair(p.link(i-1), p.link(i)) {
			return true
		}
	}

	return false
}

// ContainsSlackPair reports whether two consecutive links are both slack,
// i.e. a site where a hernia could be created.
func (p Polymer) ContainsSlackPair() bool {
	for i := 1; i < p.Len(); i++ {
		if p.link(i-1) == Slack && p.link(i) == Slack {
			return true
		}
	}

	return false
}

// String implements fmt.Stringer, e.g. "[UP DOWN SLACK]".
func (p Polymer) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < p.Len(); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.link(i).String())
	}
	b.WriteByte(']')

	return b.String()
}

// Key returns a compact, deterministic identifier for the configuration:
// one byte per link. Keys of equal-length polymers sort consistently, so
// consumers may use them to impose a total order on a state set.
func (p Polymer) Key() string { return p.links }

// Set is an unordered collection of polymer configurations keyed by
// structural equality.
type Set map[Polymer]struct{}

// Add inserts p into the set.
func (s Set) Add(p Polymer) { s[p] = struct{}{} }

// Has reports whether p is in the set.
func (s Set) Has(p Polymer) bool {
	_, ok := s[p]

	return ok
}
