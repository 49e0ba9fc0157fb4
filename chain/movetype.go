package chain

import (
	"fmt"
	"strings"
)

// MoveType identifies the physical mechanism behind an elementary move.
// Each kind occupies its own bit, so when several mechanisms lead to the
// same resulting configuration their flags combine by bitwise union
// without losing which kinds occurred.
type MoveType uint16

const (
	// HerniaCreation turns a double-slack pair into an opposed taut pair.
	HerniaCreation MoveType = 1 << iota
	// Reptation slides a slack link past an adjacent taut one.
	Reptation
	// BarrierCrossing flips a perpendicular link pair to the mirrored corner.
	BarrierCrossing
	// HerniaAnnihilation collapses an opposed taut pair into two slacks.
	HerniaAnnihilation
	// HerniaRedirection reorients a hernia into another opposed pair.
	HerniaRedirection
	// EndContraction relaxes a taut end link to slack.
	EndContraction
	// EndExtension stretches a slack end link into any taut direction.
	EndExtension
	// EndWiggle swings a taut end link into another taut direction.
	EndWiggle
)

// MoveTypes lists every single-bit MoveType in declaration order.
var MoveTypes = [8]MoveType{
	HerniaCreation,
	Reptation,
	BarrierCrossing,
	HerniaAnnihilation,
	HerniaRedirection,
	EndContraction,
	EndExtension,
	EndWiggle,
}

var moveTypeNames = map[MoveType]string{
	HerniaCreation:     "HERNIA_CREATION",
	Reptation:          "REPTATION",
	BarrierCrossing:    "BARRIER_CROSSING",
	HerniaAnnihilation: "HERNIA_ANNIHILATION",
	HerniaRedirection:  "HERNIA_REDIRECTION",
	EndContraction:     "END_CONTRACTION",
	EndExtension:       "END_EXTENSION",
	EndWiggle:          "END_WIGGLE",
}

// NewMoveType validates v as a single move kind.
// Returns ErrInvalidMoveType unless exactly one known bit is set.
func NewMoveType(v uint16) (MoveType, error) {
	m := MoveType(v)
	if _, ok := moveTypeNames[m]; !ok {
		return 0, fmt.Errorf("%w: %#x", ErrInvalidMoveType, v)
	}

	return m, nil
}

// Has reports whether every bit of kind is set in m.
func (m MoveType) Has(kind MoveType) bool { return m&kind == kind }

// String implements fmt.Stringer. Unions of several kinds render as the
// individual names joined with "|".
func (m MoveType) String() string {
	if name, ok := moveTypeNames[m]; ok {
		return name
	}
	if m == 0 {
		return "MoveType(0)"
	}
	var parts []string
	rest := m
	for _, kind := range MoveTypes {
		if rest&kind != 0 {
			parts = append(parts, moveTypeNames[kind])
			rest &^= kind
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("MoveType(%#x)", uint16(rest)))
	}

	return strings.Join(parts, "|")
}
