package model

import (
	"fmt"
	"strings"

	"github.com/Veraticus/gto-overlay/internal/common"
)

// Position is a seat relative to the dealer button.
type Position string

// Table positions.
const (
	PositionUTG Position = "UTG"
	PositionMP  Position = "MP"
	PositionCO  Position = "CO"
	PositionBTN Position = "BTN"
	PositionSB  Position = "SB"
	PositionBB  Position = "BB"

	// PositionDefault is the catch-all range used for positions a table
	// does not list.
	PositionDefault Position = "default"
)

// Positions lists the real seats in preflop action order.
func Positions() []Position {
	return []Position{PositionUTG, PositionMP, PositionCO, PositionBTN, PositionSB, PositionBB}
}

// ParsePosition parses a position name case-insensitively. "default" is
// accepted so range files can name the catch-all range.
func ParsePosition(s string) (Position, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, string(PositionDefault)) {
		return PositionDefault, nil
	}
	for _, p := range Positions() {
		if strings.EqualFold(s, string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", common.ErrUnknownPosition, s)
}

// Street is the betting round.
type Street string

// Streets.
const (
	StreetPreflop Street = "PREFLOP"
	StreetFlop    Street = "FLOP"
	StreetTurn    Street = "TURN"
	StreetRiver   Street = "RIVER"
)

// StreetForBoard returns the street implied by the number of board cards.
func StreetForBoard(n int) (Street, error) {
	switch n {
	case 0:
		return StreetPreflop, nil
	case 3:
		return StreetFlop, nil
	case 4:
		return StreetTurn, nil
	case 5:
		return StreetRiver, nil
	default:
		return "", fmt.Errorf("%w: %d board cards", common.ErrInvalidBoard, n)
	}
}
