package engine

import (
	"fmt"

	"github.com/Veraticus/gto-overlay/internal/common"
	"github.com/Veraticus/gto-overlay/internal/model"
)

// HandStrength is a placeholder heuristic in (0,1]. It only looks at
// which high ranks appear among hole and board cards; suits, made hands
// and draws are ignored.
func HandStrength(hole [2]model.Card, board []model.Card) float64 {
	var hasAce, hasKing, hasQueen bool
	check := func(c model.Card) {
		switch c.Rank {
		case model.Ace:
			hasAce = true
		case model.King:
			hasKing = true
		case model.Queen:
			hasQueen = true
		}
	}
	for _, c := range hole {
		check(c)
	}
	for _, c := range board {
		check(c)
	}

	switch {
	case hasAce && hasKing:
		return 0.9
	case hasAce || hasKing:
		return 0.7
	case hasQueen:
		return 0.5
	default:
		return 0.3
	}
}

// Bucket is a postflop recommendation chosen when strength is strictly
// greater than Above.
type Bucket struct {
	Frequencies model.Frequencies
	Action      string
	Reasoning   string
	Above       float64
}

// DefaultBuckets returns the four stock postflop buckets, strongest first.
func DefaultBuckets() []Bucket {
	return []Bucket{
		{
			Above:       0.8,
			Action:      "BET 75%",
			Frequencies: model.Frequencies{model.ActionBet: 85, model.ActionCheck: 15, model.ActionFold: 0},
			Reasoning:   "Strong hand - bet for value",
		},
		{
			Above:       0.6,
			Action:      "BET 50%",
			Frequencies: model.Frequencies{model.ActionBet: 60, model.ActionCheck: 40, model.ActionFold: 0},
			Reasoning:   "Medium strength - mixed strategy",
		},
		{
			Above:       0.3,
			Action:      "CHECK",
			Frequencies: model.Frequencies{model.ActionBet: 20, model.ActionCheck: 70, model.ActionFold: 10},
			Reasoning:   "Marginal hand - mostly check",
		},
		{
			Above:       0,
			Action:      "CHECK/FOLD",
			Frequencies: model.Frequencies{model.ActionBet: 5, model.ActionCheck: 30, model.ActionFold: 65},
			Reasoning:   "Weak hand - check/fold",
		},
	}
}

// ValidateBuckets checks that thresholds strictly descend, that the last
// bucket catches every positive strength and that frequencies are in range.
func ValidateBuckets(buckets []Bucket) error {
	if len(buckets) == 0 {
		return fmt.Errorf("%w: no postflop buckets", common.ErrInvalidConfig)
	}
	for i, b := range buckets {
		if b.Action == "" {
			return fmt.Errorf("%w: postflop bucket %d has no action", common.ErrInvalidConfig, i)
		}
		if len(b.Frequencies) == 0 || !b.Frequencies.Valid() {
			return fmt.Errorf("%w: postflop bucket %q %v", common.ErrInvalidFrequency, b.Action, b.Frequencies)
		}
		if i > 0 && b.Above >= buckets[i-1].Above {
			return fmt.Errorf("%w: postflop thresholds must descend (%v after %v)",
				common.ErrInvalidConfig, b.Above, buckets[i-1].Above)
		}
	}
	if last := buckets[len(buckets)-1]; last.Above > 0 {
		return fmt.Errorf("%w: last postflop bucket must start at 0, got %v", common.ErrInvalidConfig, last.Above)
	}
	return nil
}

// bucketFor returns the first bucket whose threshold strength exceeds.
// Buckets must have passed ValidateBuckets.
func bucketFor(buckets []Bucket, strength float64) Bucket {
	for _, b := range buckets {
		if strength > b.Above {
			return b
		}
	}
	return buckets[len(buckets)-1]
}
