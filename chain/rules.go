package chain

// move is one candidate outcome of an elementary-move rule: the resulting
// configuration and the mechanism that produced it.
type move struct {
	to   Polymer
	kind MoveType
}

// ruleFunc examines the virtual pair at one position and returns every
// configuration a single application of the rule can produce there, or
// nil when the rule does not apply. Rules are independent: all of them
// are evaluated at every position, and one position may satisfy several
// rules at once (a hernia pair is both annihilatable and redirectable).
type ruleFunc func(p Polymer, pos int, lp linkPair) []move

// moveRules is the closed catalog of elementary-move rules. Edge rules
// fire only at the two boundary positions, interior rules only at
// positions 1..N-1; the dispatch is structural via linkPair.isEdge, so
// no rule double-fires across the edge/interior split for one link.
var moveRules = [8]ruleFunc{
	contractEnd,
	extendEnd,
	wiggleEnd,
	createHernia,
	reptate,
	annihilateHernia,
	redirectHernia,
	flipBend,
}

// contractEnd relaxes a taut end link to slack.
func contractEnd(p Polymer, pos int, lp linkPair) []move {
	if !lp.isEdge() || !lp.endLink().IsTaut() {
		return nil
	}

	return []move{{to: p.substituteEnd(pos, Slack), kind: EndContraction}}
}

// extendEnd stretches a slack end link into each of the four taut
// directions.
func extendEnd(p Polymer, pos int, lp linkPair) []move {
	if !lp.isEdge() || !lp.endLink().IsSlack() {
		return nil
	}
	out := make([]move, 0, len(TautLinks))
	for _, taut := range TautLinks {
		out = append(out, move{to: p.substituteEnd(pos, taut), kind: EndExtension})
	}

	return out
}

// wiggleEnd swings a taut end link into each other taut direction.
// The current direction is excluded: an identity move is not a move.
func wiggleEnd(p Polymer, pos int, lp linkPair) []move {
	if !lp.isEdge() || !lp.endLink().IsTaut() {
		return nil
	}
	cur := lp.endLink()
	out := make([]move, 0, len(TautLinks)-1)
	for _, taut := range TautLinks {
		if taut == cur {
			continue
		}
		out = append(out, move{to: p.substituteEnd(pos, taut), kind: EndWiggle})
	}

	return out
}

// createHernia turns an interior double-slack pair into each of the four
// opposed taut pairs.
func createHernia(p Polymer, pos int, lp linkPair) []move {
	if lp.isEdge() || lp.first != Slack || lp.second != Slack {
		return nil
	}
	out := make([]move, 0, len(herniaPairs))
	for _, h := range herniaPairs {
		out = append(out, move{to: p.substitutePair(pos, h.first, h.second), kind: HerniaCreation})
	}

	return out
}

// reptate slides a repton along the chain by swapping an interior
// slack/taut pair. Double-slack pairs produce nothing: the swap would be
// an identity move.
func reptate(p Polymer, pos int, lp linkPair) []move {
	if lp.isEdge() || lp.first == lp.second {
		return nil
	}
	if lp.first != Slack && lp.second != Slack {
		return nil
	}

	return []move{{to: p.substitutePair(pos, lp.second, lp.first), kind: Reptation}}
}

// annihilateHernia collapses an interior hernia into two slack links.
func annihilateHernia(p Polymer, pos int, lp linkPair) []move {
	if lp.isEdge() || !isHerniaPair(lp.first, lp.second) {
		return nil
	}

	return []move{{to: p.substitutePair(pos, Slack, Slack), kind: HerniaAnnihilation}}
}

// redirectHernia reorients an interior hernia into each of the other
// three opposed taut pairs. The current orientation is excluded.
func redirectHernia(p Polymer, pos int, lp linkPair) []move {
	if lp.isEdge() || !isHerniaPair(lp.first, lp.second) {
		return nil
	}
	out := make([]move, 0, len(herniaPairs)-1)
	for _, h := range herniaPairs {
		if h == lp {
			continue
		}
		out = append(out, move{to: p.substitutePair(pos, h.first, h.second), kind: HerniaRedirection})
	}

	return out
}

// flipBend mirrors an interior perpendicular pair, carrying the chain
// corner across the lattice barrier it bends around.
func flipBend(p Polymer, pos int, lp linkPair) []move {
	if lp.isEdge() || !lp.first.PerpendicularTo(lp.second) {
		return nil
	}

	return []move{{to: p.substitutePair(pos, lp.second, lp.first), kind: BarrierCrossing}}
}

// moves yields every candidate move from every rule at every pair
// position, including any that happen to regenerate the origin; callers
// filter those out.
func (p Polymer) moves(visit func(move)) {
	for pos := 0; pos <= p.Len(); pos++ {
		lp := p.pairAt(pos)
		for _, rule := range moveRules {
			for _, m := range rule(p, pos, lp) {
				visit(m)
			}
		}
	}
}
