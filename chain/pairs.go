package chain

// linkPair is the virtual view of two consecutive links. The chain of N
// links exposes N+1 pair positions: position 0 is (boundary, link₀),
// position i for 0<i<N is (link_{i-1}, link_i), and position N is
// (link_{N-1}, boundary). The boundary sentinel stands in for the missing
// link beyond either chain end.
type linkPair struct {
	first, second Link
}

// isEdge reports whether the pair sits at a chain end.
func (lp linkPair) isEdge() bool {
	return lp.first == boundary || lp.second == boundary
}

// endLink returns the single real link of an edge pair.
func (lp linkPair) endLink() Link {
	if lp.first == boundary {
		return lp.second
	}

	return lp.first
}

// pairAt returns the virtual pair at position p, 0 ≤ p ≤ Len().
func (p Polymer) pairAt(pos int) linkPair {
	lp := linkPair{first: boundary, second: boundary}
	if pos > 0 {
		lp.first = p.link(pos - 1)
	}
	if pos < p.Len() {
		lp.second = p.link(pos)
	}

	return lp
}

// substitutePair returns a fresh Polymer with the virtual pair at
// position pos replaced by (first, second): link_{pos-1} becomes first
// and link_pos becomes second. Writes falling on a boundary slot are
// dropped, so the two edge positions rewrite exactly one real link.
// This is the sole primitive from which every elementary move builds
// a new configuration.
func (p Polymer) substitutePair(pos int, first, second Link) Polymer {
	buf := []byte(p.links)
	if pos > 0 {
		buf[pos-1] = byte(first)
	}
	if pos < p.Len() {
		buf[pos] = byte(second)
	}

	return Polymer{links: string(buf)}
}

// substituteEnd rewrites the single real link of the edge pair at pos.
func (p Polymer) substituteEnd(pos int, l Link) Polymer {
	if pos == 0 {
		return p.substitutePair(pos, boundary, l)
	}

	return p.substitutePair(pos, l, boundary)
}

// herniaPairs lists the four opposed taut pairs, i.e. every orientation
// a hernia can take.
var herniaPairs = [4]linkPair{
	{Up, Down},
	{Down, Up},
	{Left, Right},
	{Right, Left},
}

// isHerniaPair reports whether two consecutive links double back through
// the same lattice edge: an opposed taut pair.
func isHerniaPair(a, b Link) bool {
	return a.IsTaut() && b == a.Opposite()
}
