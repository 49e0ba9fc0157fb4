package chain

import "fmt"

// Link is one bond of a polymer chain on a 2D lattice: one of the four
// taut directions, or Slack when the two reptons it joins share a cell.
// Links are backed by single bits so that sets of links can be combined
// and tested with plain bitwise operations.
type Link uint8

const (
	// Up is a taut link pointing up.
	Up Link = 1 << iota
	// Down is a taut link pointing down.
	Down
	// Left is a taut link pointing left.
	Left
	// Right is a taut link pointing right.
	Right
	// Slack is an untensioned link; its two reptons occupy the same cell.
	Slack

	// boundary marks the missing link beyond either chain end in the
	// virtual pair view. It is not a valid Link value.
	boundary Link = 0
)

// Links lists every valid Link value, taut directions first.
var Links = [5]Link{Up, Down, Left, Right, Slack}

// TautLinks lists the four taut directions.
var TautLinks = [4]Link{Up, Down, Left, Right}

// opposites is the static opposite-direction table. Slack maps to itself.
var opposites = map[Link]Link{
	Up:    Down,
	Down:  Up,
	Left:  Right,
	Right: Left,
	Slack: Slack,
}

const (
	horizontal = Left | Right
	vertical   = Up | Down
)

// NewLink validates v and returns it as a Link.
// Returns ErrInvalidLink for any value outside the five valid links.
func NewLink(v uint8) (Link, error) {
	l := Link(v)
	if _, ok := opposites[l]; !ok {
		return 0, fmt.Errorf("%w: %#x", ErrInvalidLink, v)
	}

	return l, nil
}

// IsSlack reports whether l is the Slack link.
func (l Link) IsSlack() bool { return l == Slack }

// IsTaut reports whether l is one of the four taut directions.
func (l Link) IsTaut() bool { return l&(horizontal|vertical) != 0 }

// Opposite returns the reverse direction of l (Up↔Down, Left↔Right).
// Slack is its own opposite.
func (l Link) Opposite() Link { return opposites[l] }

// PerpendicularTo reports whether l and other form a right angle:
// one horizontal and one vertical. The relation is symmetric and no
// pair involving Slack is perpendicular.
func (l Link) PerpendicularTo(other Link) bool {
	return (l&horizontal != 0 && other&vertical != 0) ||
		(l&vertical != 0 && other&horizontal != 0)
}

// String implements fmt.Stringer.
func (l Link) String() string {
	switch l {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	case Slack:
		return "SLACK"
	}

	return fmt.Sprintf("Link(%#x)", uint8(l))
}
