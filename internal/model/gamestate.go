package model

import (
	"fmt"

	"github.com/Veraticus/gto-overlay/internal/common"
)

// GameState is the mutable record a presentation layer edits between
// recommendation requests. Updates validate before they apply, so a
// rejected update leaves the previous state intact.
type GameState struct {
	Position  Position
	Street    Street
	Board     []Card
	Opponents []Opponent
	HoleCards [2]Card
	StackSize int
	Locked    bool
}

// NewGameState returns the starting state: button, 100bb, A♠K♥, no board.
func NewGameState() *GameState {
	return &GameState{
		Position:  PositionBTN,
		StackSize: DefaultStackSize,
		HoleCards: [2]Card{{Rank: Ace, Suit: Spade}, {Rank: King, Suit: Heart}},
		Street:    StreetPreflop,
	}
}

// UpdateHoleCards replaces both hole cards.
func (g *GameState) UpdateHoleCards(c1, c2 Card) error {
	if _, err := NewScenario(g.Position, [2]Card{c1, c2}, g.Board, g.StackSize); err != nil {
		return err
	}
	g.HoleCards = [2]Card{c1, c2}
	return nil
}

// UpdateBoard replaces the board and recomputes the street.
func (g *GameState) UpdateBoard(board []Card) error {
	s, err := NewScenario(g.Position, g.HoleCards, board, g.StackSize)
	if err != nil {
		return err
	}
	g.Board = s.Board
	g.Street = s.Street
	return nil
}

// UpdatePosition changes the seat.
func (g *GameState) UpdatePosition(p Position) {
	g.Position = p
}

// UpdateStack changes the stack size; non-positive values fall back to the default.
func (g *GameState) UpdateStack(bb int) {
	if bb <= 0 {
		bb = DefaultStackSize
	}
	g.StackSize = bb
}

// UpdateOpponents replaces the tracked opponents. Two profiles may not
// share a seat.
func (g *GameState) UpdateOpponents(opponents []Opponent) error {
	seen := make(map[Position]bool, len(opponents))
	for _, o := range opponents {
		if err := o.Validate(); err != nil {
			return err
		}
		if seen[o.Position] {
			return fmt.Errorf("%w: two opponents at %s", common.ErrInvalidStat, o.Position)
		}
		seen[o.Position] = true
	}
	g.Opponents = append([]Opponent(nil), opponents...)
	return nil
}

// ToggleLock flips the click-through lock and returns the new value.
func (g *GameState) ToggleLock() bool {
	g.Locked = !g.Locked
	return g.Locked
}

// Scenario snapshots the state as a recommendation request.
func (g *GameState) Scenario() (Scenario, error) {
	return NewScenario(g.Position, g.HoleCards, g.Board, g.StackSize)
}
