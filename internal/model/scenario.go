package model

import (
	"fmt"

	"github.com/Veraticus/gto-overlay/internal/common"
)

// DefaultStackSize is the stack, in big blinds, assumed when none is given.
const DefaultStackSize = 100

// Scenario is a single recommendation request.
type Scenario struct {
	Position  Position
	Street    Street
	Board     []Card
	HoleCards [2]Card
	StackSize int // big blinds; reserved for stack-depth-aware ranges
}

// NewScenario validates its inputs and derives the street from the board.
func NewScenario(position Position, hole [2]Card, board []Card, stackSize int) (Scenario, error) {
	street, err := StreetForBoard(len(board))
	if err != nil {
		return Scenario{}, err
	}
	if stackSize <= 0 {
		return Scenario{}, fmt.Errorf("%w: %d", common.ErrInvalidStack, stackSize)
	}

	seen := make(map[Card]bool, len(board)+2)
	for _, c := range append(hole[:], board...) {
		if !c.Valid() {
			return Scenario{}, fmt.Errorf("%w: %v", common.ErrInvalidCard, c)
		}
		if seen[c] {
			return Scenario{}, fmt.Errorf("%w: %s", common.ErrDuplicateCard, c)
		}
		seen[c] = true
	}

	return Scenario{
		Position:  position,
		HoleCards: hole,
		Board:     append([]Card(nil), board...),
		Street:    street,
		StackSize: stackSize,
	}, nil
}

// AllCards returns hole cards followed by the board.
func (s Scenario) AllCards() []Card {
	cards := make([]Card, 0, 2+len(s.Board))
	cards = append(cards, s.HoleCards[:]...)
	return append(cards, s.Board...)
}
