// Package ranges holds the static preflop range table and the hand keys
// used to look entries up in it.
package ranges

import (
	"fmt"
	"strings"

	"github.com/Veraticus/gto-overlay/internal/common"
	"github.com/Veraticus/gto-overlay/internal/model"
)

// HandKey identifies a table row: an exact hand ("AsKh"), a hand
// category ("JJ", "AJs", "KQo") or the position default.
type HandKey string

// DefaultHand is the fallback row every position must carry.
const DefaultHand HandKey = "default"

// ExactKey returns the canonical exact key for two hole cards. The
// stronger rank comes first and equal ranks are ordered s, h, d, c, so
// the key does not depend on the order the cards were dealt.
func ExactKey(c1, c2 model.Card) HandKey {
	if c2.Rank > c1.Rank || (c2.Rank == c1.Rank && c2.Suit < c1.Suit) {
		c1, c2 = c2, c1
	}
	return HandKey(c1.String() + c2.String())
}

// CategoryKey groups two hole cards into a pair ("JJ") or a
// suited/offsuit combo ("AJs", "KTo").
func CategoryKey(c1, c2 model.Card) HandKey {
	if c1.Rank == c2.Rank {
		r := string(c1.Rank.Char())
		return HandKey(r + r)
	}
	hi, lo := c1.Rank, c2.Rank
	if lo > hi {
		hi, lo = lo, hi
	}
	kind := "o"
	if c1.Suit == c2.Suit {
		kind = "s"
	}
	return HandKey(string(hi.Char()) + string(lo.Char()) + kind)
}

// Kind reports whether the key is the default, a category or an exact hand.
func (k HandKey) Kind() model.MatchLevel {
	switch {
	case k == DefaultHand:
		return model.MatchDefault
	case len(k) == 4:
		return model.MatchExact
	default:
		return model.MatchCategory
	}
}

// ParseHandKey accepts "default", exact hands in any card order or
// notation, and category keys in any rank order. The result is canonical.
func ParseHandKey(s string) (HandKey, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, string(DefaultHand)) {
		return DefaultHand, nil
	}

	if cards, err := model.ParseCards(s); err == nil && len(cards) == 2 {
		if cards[0] == cards[1] {
			return "", fmt.Errorf("%w: %q repeats a card", common.ErrInvalidHandKey, s)
		}
		return ExactKey(cards[0], cards[1]), nil
	}

	return parseCategory(s)
}

func parseCategory(s string) (HandKey, error) {
	if len(s) != 2 && len(s) != 3 {
		return "", fmt.Errorf("%w: %q", common.ErrInvalidHandKey, s)
	}
	r1, err := model.ParseRank(s[0])
	if err != nil {
		return "", fmt.Errorf("%w: %q", common.ErrInvalidHandKey, s)
	}
	r2, err := model.ParseRank(s[1])
	if err != nil {
		return "", fmt.Errorf("%w: %q", common.ErrInvalidHandKey, s)
	}

	if len(s) == 2 {
		if r1 != r2 {
			return "", fmt.Errorf("%w: %q needs an s or o suffix", common.ErrInvalidHandKey, s)
		}
		return HandKey([]byte{r1.Char(), r2.Char()}), nil
	}

	kind := strings.ToLower(s[2:])
	if r1 == r2 || (kind != "s" && kind != "o") {
		return "", fmt.Errorf("%w: %q", common.ErrInvalidHandKey, s)
	}
	if r2 > r1 {
		r1, r2 = r2, r1
	}
	return HandKey(string([]byte{r1.Char(), r2.Char()}) + kind), nil
}
