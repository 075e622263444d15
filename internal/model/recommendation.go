package model

import "strings"

// ActionKind is one of the discrete actions a frequency applies to.
type ActionKind string

// Action kinds. Preflop recommendations use raise/call/fold, postflop
// recommendations use bet/check/fold.
const (
	ActionRaise ActionKind = "raise"
	ActionBet   ActionKind = "bet"
	ActionCall  ActionKind = "call"
	ActionCheck ActionKind = "check"
	ActionFold  ActionKind = "fold"
)

var actionOrder = []ActionKind{ActionRaise, ActionBet, ActionCall, ActionCheck, ActionFold}

// ParseActionKind parses a lowercase action kind.
func ParseActionKind(s string) (ActionKind, bool) {
	for _, k := range actionOrder {
		if strings.EqualFold(s, string(k)) {
			return k, true
		}
	}
	return "", false
}

// Label returns the capitalised display name ("Raise").
func (k ActionKind) Label() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

// Frequencies maps action kinds to percentages.
type Frequencies map[ActionKind]int

// Sum returns the total of all percentages.
func (f Frequencies) Sum() int {
	total := 0
	for _, v := range f {
		total += v
	}
	return total
}

// Valid reports whether every percentage lies in [0,100].
func (f Frequencies) Valid() bool {
	for _, v := range f {
		if v < 0 || v > 100 {
			return false
		}
	}
	return true
}

// Ordered returns the kinds present in f in display order.
func (f Frequencies) Ordered() []ActionKind {
	kinds := make([]ActionKind, 0, len(f))
	for _, k := range actionOrder {
		if _, ok := f[k]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// NonZero returns the kinds with a positive percentage in display order.
func (f Frequencies) NonZero() []ActionKind {
	var kinds []ActionKind
	for _, k := range f.Ordered() {
		if f[k] > 0 {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Clone returns an independent copy.
func (f Frequencies) Clone() Frequencies {
	out := make(Frequencies, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// MatchLevel records which lookup produced a recommendation.
type MatchLevel string

// Match levels, most specific first.
const (
	MatchExact    MatchLevel = "exact"
	MatchCategory MatchLevel = "category"
	MatchDefault  MatchLevel = "default"
	MatchPostflop MatchLevel = "postflop"
)

// Recommendation is the engine's answer for a scenario.
type Recommendation struct {
	Frequencies Frequencies `json:"frequencies"`
	Action      string      `json:"action"`
	Reasoning   string      `json:"reasoning,omitempty"`
	Source      string      `json:"source"`
	Match       MatchLevel  `json:"match"`
	Confidence  float64     `json:"confidence"`
}
