package cli

import (
	"github.com/Veraticus/gto-overlay/internal/model"
	"github.com/paulhankin/poker"
)

// toPoker converts a card for the evaluator, which numbers the ace as 1.
func toPoker(c model.Card) (poker.Card, error) {
	var s poker.Suit
	switch c.Suit {
	case model.Club:
		s = poker.Club
	case model.Diamond:
		s = poker.Diamond
	case model.Heart:
		s = poker.Heart
	default:
		s = poker.Spade
	}
	r := poker.Rank(c.Rank)
	if c.Rank == model.Ace {
		r = poker.Rank(1)
	}
	return poker.MakeCard(s, r)
}

// DescribeHand names the made hand of the hole cards plus board, such as
// "pair of aces". It returns "" preflop or when the cards cannot be
// evaluated.
func DescribeHand(hole [2]model.Card, board []model.Card) string {
	if len(board) == 0 {
		return ""
	}

	cards := make([]poker.Card, 0, 2+len(board))
	for _, c := range append(hole[:], board...) {
		pc, err := toPoker(c)
		if err != nil {
			return ""
		}
		cards = append(cards, pc)
	}

	if len(cards) == 6 {
		cards = bestFive(cards)
	}

	desc, err := poker.Describe(cards)
	if err != nil {
		return ""
	}
	return desc
}

// bestFive picks the strongest five-card subset of six cards.
func bestFive(cards []poker.Card) []poker.Card {
	var best [5]poker.Card
	var bestScore int16
	for skip := range cards {
		var five [5]poker.Card
		k := 0
		for i, c := range cards {
			if i == skip {
				continue
			}
			five[k] = c
			k++
		}
		if score := poker.Eval5(&five); skip == 0 || score > bestScore {
			best, bestScore = five, score
		}
	}
	return best[:]
}
