package model

import (
	"testing"

	"github.com/Veraticus/gto-overlay/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCards(t *testing.T, s string) []Card {
	t.Helper()
	cards, err := ParseCards(s)
	require.NoError(t, err)
	return cards
}

func hole(t *testing.T, s string) [2]Card {
	t.Helper()
	cards := mustCards(t, s)
	require.Len(t, cards, 2)
	return [2]Card{cards[0], cards[1]}
}

func TestNewScenario(t *testing.T) {
	tests := []struct {
		wantErr    error
		name       string
		hole       string
		board      string
		wantStreet Street
		stack      int
	}{
		{name: "preflop", hole: "AsKh", stack: 100, wantStreet: StreetPreflop},
		{name: "flop", hole: "AsKh", board: "Qd7c2s", stack: 100, wantStreet: StreetFlop},
		{name: "turn", hole: "AsKh", board: "Qd7c2s3h", stack: 40, wantStreet: StreetTurn},
		{name: "river", hole: "AsKh", board: "Qd7c2s3h9h", stack: 40, wantStreet: StreetRiver},
		{name: "two board cards", hole: "AsKh", board: "Qd7c", stack: 100, wantErr: common.ErrInvalidBoard},
		{name: "duplicate card", hole: "AsKh", board: "AsQd7c", stack: 100, wantErr: common.ErrDuplicateCard},
		{name: "zero stack", hole: "AsKh", stack: 0, wantErr: common.ErrInvalidStack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewScenario(PositionBTN, hole(t, tt.hole), mustCards(t, tt.board), tt.stack)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStreet, s.Street)
			assert.Len(t, s.AllCards(), 2+len(s.Board))
		})
	}
}

func TestNewScenario_CopiesBoard(t *testing.T) {
	board := mustCards(t, "Qd7c2s")
	s, err := NewScenario(PositionCO, hole(t, "AsKh"), board, 100)
	require.NoError(t, err)

	board[0] = Card{Rank: Two, Suit: Heart}
	assert.Equal(t, "Qd", s.Board[0].String())
}

func TestParsePosition(t *testing.T) {
	p, err := ParsePosition("btn")
	require.NoError(t, err)
	assert.Equal(t, PositionBTN, p)

	p, err = ParsePosition("Default")
	require.NoError(t, err)
	assert.Equal(t, PositionDefault, p)

	_, err = ParsePosition("HJ")
	assert.ErrorIs(t, err, common.ErrUnknownPosition)
}

func TestGameState(t *testing.T) {
	g := NewGameState()
	assert.Equal(t, PositionBTN, g.Position)
	assert.Equal(t, StreetPreflop, g.Street)

	require.NoError(t, g.UpdateBoard(mustCards(t, "Kd7c2s")))
	assert.Equal(t, StreetFlop, g.Street)

	require.NoError(t, g.UpdateBoard(mustCards(t, "Kd7c2s3h")))
	assert.Equal(t, StreetTurn, g.Street)

	err := g.UpdateBoard(mustCards(t, "Kd7c"))
	assert.ErrorIs(t, err, common.ErrInvalidBoard)
	assert.Equal(t, StreetTurn, g.Street, "rejected update keeps previous state")

	err = g.UpdateHoleCards(Card{Rank: King, Suit: Diamond}, Card{Rank: Ace, Suit: Club})
	assert.ErrorIs(t, err, common.ErrDuplicateCard)

	g.UpdatePosition(PositionUTG)
	g.UpdateStack(-5)
	assert.Equal(t, DefaultStackSize, g.StackSize)
	assert.True(t, g.ToggleLock())

	s, err := g.Scenario()
	require.NoError(t, err)
	assert.Equal(t, PositionUTG, s.Position)
	assert.Equal(t, StreetTurn, s.Street)
}

func TestFrequencies(t *testing.T) {
	f := Frequencies{ActionFold: 10, ActionRaise: 68, ActionCall: 22}
	assert.Equal(t, 100, f.Sum())
	assert.True(t, f.Valid())
	assert.Equal(t, []ActionKind{ActionRaise, ActionCall, ActionFold}, f.Ordered())

	g := Frequencies{ActionBet: 85, ActionCheck: 15, ActionFold: 0}
	assert.Equal(t, []ActionKind{ActionBet, ActionCheck}, g.NonZero())
	assert.False(t, Frequencies{ActionBet: 101}.Valid())
	assert.Equal(t, "Check", ActionCheck.Label())
}
