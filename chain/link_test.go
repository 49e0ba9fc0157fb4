package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/repton/chain"
)

// TestNewLink_Invalid verifies that out-of-domain values are rejected.
func TestNewLink_Invalid(t *testing.T) {
	for _, v := range []uint8{0, 3, 5, 32, 255} {
		_, err := chain.NewLink(v)
		assert.ErrorIs(t, err, chain.ErrInvalidLink, "value %#x must be rejected", v)
	}
}

// TestNewLink_Valid verifies that the five link values round-trip.
func TestNewLink_Valid(t *testing.T) {
	for _, l := range chain.Links {
		got, err := chain.NewLink(uint8(l))
		assert.NoError(t, err)
		assert.Equal(t, l, got)
	}
}

// TestLink_Opposite covers the full opposite relation, including Slack
// being its own opposite.
func TestLink_Opposite(t *testing.T) {
	cases := map[chain.Link]chain.Link{
		chain.Up:    chain.Down,
		chain.Down:  chain.Up,
		chain.Left:  chain.Right,
		chain.Right: chain.Left,
		chain.Slack: chain.Slack,
	}
	for l, want := range cases {
		assert.Equal(t, want, l.Opposite(), "Opposite(%v)", l)
		assert.Equal(t, l, l.Opposite().Opposite(), "Opposite is an involution at %v", l)
	}
}

// TestLink_PerpendicularTo checks symmetry and the exclusion of Slack.
func TestLink_PerpendicularTo(t *testing.T) {
	horizontal := []chain.Link{chain.Left, chain.Right}
	vertical := []chain.Link{chain.Up, chain.Down}

	for _, h := range horizontal {
		for _, v := range vertical {
			assert.True(t, h.PerpendicularTo(v), "%v ⊥ %v", h, v)
			assert.True(t, v.PerpendicularTo(h), "%v ⊥ %v", v, h)
		}
	}
	for _, l := range chain.Links {
		assert.False(t, l.PerpendicularTo(l), "%v is never perpendicular to itself", l)
		assert.False(t, l.PerpendicularTo(chain.Slack), "%v ⊥ SLACK must be false", l)
		assert.False(t, chain.Slack.PerpendicularTo(l), "SLACK ⊥ %v must be false", l)
	}
	assert.False(t, chain.Left.PerpendicularTo(chain.Right))
	assert.False(t, chain.Up.PerpendicularTo(chain.Down))
}

// TestLink_TautSlack partitions the five links.
func TestLink_TautSlack(t *testing.T) {
	for _, l := range chain.TautLinks {
		assert.True(t, l.IsTaut(), "%v taut", l)
		assert.False(t, l.IsSlack())
	}
	assert.True(t, chain.Slack.IsSlack())
	assert.False(t, chain.Slack.IsTaut())
}

// TestMoveType_Validation mirrors the Link constructor contract.
func TestMoveType_Validation(t *testing.T) {
	for _, m := range chain.MoveTypes {
		got, err := chain.NewMoveType(uint16(m))
		assert.NoError(t, err)
		assert.Equal(t, m, got)
	}
	for _, v := range []uint16{0, 3, 256, 0xFFFF} {
		_, err := chain.NewMoveType(v)
		assert.ErrorIs(t, err, chain.ErrInvalidMoveType, "value %#x must be rejected", v)
	}
}

// TestMoveType_UnionString verifies that OR-combined kinds keep every name.
func TestMoveType_UnionString(t *testing.T) {
	union := chain.EndContraction | chain.EndWiggle
	assert.True(t, union.Has(chain.EndContraction))
	assert.True(t, union.Has(chain.EndWiggle))
	assert.False(t, union.Has(chain.Reptation))
	assert.Contains(t, union.String(), "END_CONTRACTION")
	assert.Contains(t, union.String(), "END_WIGGLE")
}
