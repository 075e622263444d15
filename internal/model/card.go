// Package model defines the core data structures for the gto-overlay application.
package model

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Veraticus/gto-overlay/internal/common"
)

// Rank is a card rank from Two (2) to Ace (14).
type Rank byte

// Rank constants.
const (
	RankInvalid Rank = 0
	Two         Rank = 2
	Three       Rank = 3
	Four        Rank = 4
	Five        Rank = 5
	Six         Rank = 6
	Seven       Rank = 7
	Eight       Rank = 8
	Nine        Rank = 9
	Ten         Rank = 10
	Jack        Rank = 11
	Queen       Rank = 12
	King        Rank = 13
	Ace         Rank = 14
)

// RankOrder lists rank characters strongest first.
const RankOrder = "AKQJT98765432"

// Char returns the single-character rank identifier ('A', 'T', '9', ...).
func (r Rank) Char() byte {
	if r < Two || r > Ace {
		return '?'
	}
	return RankOrder[Ace-r]
}

// Valid reports whether r is a real rank.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// ParseRank converts a rank character into a Rank.
func ParseRank(c byte) (Rank, error) {
	idx := strings.IndexByte(RankOrder, byte(unicode.ToUpper(rune(c))))
	if idx < 0 {
		return RankInvalid, fmt.Errorf("%w: rank %q", common.ErrInvalidCard, c)
	}
	return Ace - Rank(idx), nil
}

// Suit is one of the four card suits. The declaration order is the
// canonical suit order used for hand keys.
type Suit byte

// Suit constants.
const (
	Spade Suit = iota
	Heart
	Diamond
	Club
	SuitInvalid
)

var (
	suitLetters = [...]byte{'s', 'h', 'd', 'c'}
	suitGlyphs  = [...]string{"♠", "♥", "♦", "♣"}
)

// Letter returns the lowercase suit letter used in hand keys.
func (s Suit) Letter() byte {
	if s >= SuitInvalid {
		return '?'
	}
	return suitLetters[s]
}

// Glyph returns the suit symbol shown to players.
func (s Suit) Glyph() string {
	if s >= SuitInvalid {
		return "?"
	}
	return suitGlyphs[s]
}

// ParseSuit accepts a suit letter (either case) or a suit glyph.
func ParseSuit(s string) (Suit, error) {
	switch s {
	case "s", "S", "♠":
		return Spade, nil
	case "h", "H", "♥":
		return Heart, nil
	case "d", "D", "♦":
		return Diamond, nil
	case "c", "C", "♣":
		return Club, nil
	}
	return SuitInvalid, fmt.Errorf("%w: suit %q", common.ErrInvalidCard, s)
}

// Card is a single playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

// String returns the rank+suit-letter identifier, e.g. "As".
func (c Card) String() string {
	return string([]byte{c.Rank.Char(), c.Suit.Letter()})
}

// Pretty returns the identifier with a suit glyph, e.g. "A♠".
func (c Card) Pretty() string {
	return string(c.Rank.Char()) + c.Suit.Glyph()
}

// Valid reports whether both rank and suit are real.
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit < SuitInvalid
}

// ParseCard parses identifiers such as "As", "as", "10s" or "A♠".
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) < 2 || len(runes) > 3 {
		return Card{}, fmt.Errorf("%w: %q", common.ErrInvalidCard, s)
	}

	suit, err := ParseSuit(string(runes[len(runes)-1]))
	if err != nil {
		return Card{}, err
	}

	rankStr := string(runes[:len(runes)-1])
	if rankStr == "10" {
		rankStr = "T"
	}
	if len(rankStr) != 1 {
		return Card{}, fmt.Errorf("%w: rank %q", common.ErrInvalidCard, rankStr)
	}
	rank, err := ParseRank(rankStr[0])
	if err != nil {
		return Card{}, err
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a run of card identifiers. Cards may be concatenated
// ("AsKh"), or separated by spaces or commas ("A♠ K♥", "As,Kh").
func ParseCards(s string) ([]Card, error) {
	var (
		cards []Card
		buf   []rune
	)
	for _, r := range s {
		switch {
		case r == ' ' || r == ',' || r == '\t':
			if len(buf) > 0 {
				return nil, fmt.Errorf("%w: dangling %q", common.ErrInvalidCard, string(buf))
			}
			continue
		case isSuitRune(r) && len(buf) > 0:
			buf = append(buf, r)
			card, err := ParseCard(string(buf))
			if err != nil {
				return nil, err
			}
			cards = append(cards, card)
			buf = buf[:0]
		default:
			buf = append(buf, r)
			if len(buf) > 2 {
				return nil, fmt.Errorf("%w: %q", common.ErrInvalidCard, string(buf))
			}
		}
	}
	if len(buf) > 0 {
		return nil, fmt.Errorf("%w: dangling %q", common.ErrInvalidCard, string(buf))
	}
	return cards, nil
}

func isSuitRune(r rune) bool {
	switch r {
	case 's', 'S', 'h', 'H', 'd', 'D', 'c', 'C', '♠', '♥', '♦', '♣':
		return true
	}
	return false
}

// FormatCardInput normalizes free-form hole card input the way the hint
// panel displays it: non-card characters are dropped, ranks upper-cased,
// suit letters turned into glyphs and at most two cards kept.
// "askh" becomes "A♠K♥".
func FormatCardInput(input string) string {
	var cleaned []byte
	for _, r := range strings.ToUpper(input) {
		if strings.ContainsRune("AKQJT23456789SHDC", r) {
			cleaned = append(cleaned, byte(r))
		}
	}

	var b strings.Builder
	cards := 0
	for i := 0; i+1 < len(cleaned) && cards < 2; i += 2 {
		b.WriteByte(cleaned[i])
		if suit, err := ParseSuit(string(cleaned[i+1])); err == nil {
			b.WriteString(suit.Glyph())
		} else {
			b.WriteByte(cleaned[i+1])
		}
		cards++
	}
	return b.String()
}
