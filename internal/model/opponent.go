package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Veraticus/gto-overlay/internal/common"
)

// OpponentStats are tracked tendencies, each a percentage.
type OpponentStats struct {
	VPIP       int `json:"vpip"`
	PFR        int `json:"pfr"`
	FoldToCBet int `json:"fold_to_cbet"`
}

// Opponent is a seat's tracked profile. It is shown next to a hint and
// never changes the recommendation.
type Opponent struct {
	Position     Position      `json:"position"`
	Stats        OpponentStats `json:"stats"`
	GTODeviation int           `json:"gto_deviation"`
}

// Validate checks the seat and that every stat is a percentage.
func (o Opponent) Validate() error {
	if _, err := ParsePosition(string(o.Position)); err != nil || o.Position == PositionDefault {
		return fmt.Errorf("%w: opponent seat %q", common.ErrUnknownPosition, o.Position)
	}
	for name, v := range map[string]int{"vpip": o.Stats.VPIP, "pfr": o.Stats.PFR, "fold to cbet": o.Stats.FoldToCBet} {
		if v < 0 || v > 100 {
			return fmt.Errorf("%w: opponent %s %s %d", common.ErrInvalidStat, o.Position, name, v)
		}
	}
	if o.Stats.PFR > o.Stats.VPIP {
		return fmt.Errorf("%w: opponent %s pfr %d above vpip %d", common.ErrInvalidStat, o.Position, o.Stats.PFR, o.Stats.VPIP)
	}
	return nil
}

// ParseOpponent reads "UTG:15/12/65", a seat followed by vpip, pfr and
// fold-to-cbet percentages.
func ParseOpponent(s string) (Opponent, error) {
	seat, stats, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Opponent{}, fmt.Errorf("%w: %q, want SEAT:vpip/pfr/fold", common.ErrInvalidStat, s)
	}
	pos, err := ParsePosition(seat)
	if err != nil {
		return Opponent{}, err
	}

	parts := strings.Split(stats, "/")
	if len(parts) != 3 {
		return Opponent{}, fmt.Errorf("%w: %q, want SEAT:vpip/pfr/fold", common.ErrInvalidStat, s)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Opponent{}, fmt.Errorf("%w: %q: %w", common.ErrInvalidStat, s, err)
		}
		nums[i] = n
	}

	o := Opponent{
		Position: pos,
		Stats:    OpponentStats{VPIP: nums[0], PFR: nums[1], FoldToCBet: nums[2]},
	}
	if err := o.Validate(); err != nil {
		return Opponent{}, err
	}
	return o, nil
}
