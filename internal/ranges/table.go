package ranges

import (
	"fmt"
	"log/slog"
	"slices"
	"sort"

	"github.com/Veraticus/gto-overlay/internal/common"
	"github.com/Veraticus/gto-overlay/internal/model"
)

// Key addresses one row of a range table.
type Key struct {
	Position model.Position
	Hand     HandKey
}

// Entry is a tuned recommendation for one row.
type Entry struct {
	Frequencies model.Frequencies
	Action      string
	Reasoning   string
}

// Table is a validated, read-only range table. It is safe for concurrent
// use because nothing mutates it after New returns.
type Table struct {
	entries   map[Key]Entry
	positions map[model.Position]int
}

// New copies entries into a Table and validates it. Every position that
// appears must have a DefaultHand row, and the table must carry a
// PositionDefault range for positions it does not list. Hand keys must be
// canonical as returned by ParseHandKey.
func New(entries map[Key]Entry) (*Table, error) {
	t := &Table{
		entries:   make(map[Key]Entry, len(entries)),
		positions: make(map[model.Position]int),
	}
	for k, e := range entries {
		e.Frequencies = e.Frequencies.Clone()
		t.entries[k] = e
		t.positions[k.Position]++
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the table's integrity invariants.
func (t *Table) Validate() error {
	if _, ok := t.positions[model.PositionDefault]; !ok {
		return fmt.Errorf("%w: no %q position range", common.ErrMissingDefault, model.PositionDefault)
	}
	listed := t.Positions()
	for p := range t.positions {
		if !slices.Contains(listed, p) {
			return fmt.Errorf("%w: %q", common.ErrUnknownPosition, p)
		}
	}

	for _, pos := range listed {
		if _, ok := t.entries[Key{Position: pos, Hand: DefaultHand}]; !ok {
			return fmt.Errorf("%w: position %s", common.ErrMissingDefault, pos)
		}
	}

	for _, k := range t.sortedKeys() {
		canonical, err := ParseHandKey(string(k.Hand))
		if err != nil {
			return fmt.Errorf("position %s: %w", k.Position, err)
		}
		if canonical != k.Hand {
			return fmt.Errorf("%w: %s/%s is not canonical, use %s", common.ErrInvalidHandKey, k.Position, k.Hand, canonical)
		}

		e := t.entries[k]
		if e.Action == "" {
			return fmt.Errorf("%w: %s/%s has no action", common.ErrInvalidConfig, k.Position, k.Hand)
		}
		if len(e.Frequencies) == 0 || !e.Frequencies.Valid() {
			return fmt.Errorf("%w: %s/%s %v", common.ErrInvalidFrequency, k.Position, k.Hand, e.Frequencies)
		}
		if sum := e.Frequencies.Sum(); sum != 100 {
			slog.Warn("Range entry frequencies do not sum to 100",
				"position", k.Position,
				"hand", k.Hand,
				"sum", sum)
		}
	}

	return nil
}

// Lookup resolves two hole cards for a position, falling back from the
// exact hand to its category and then to the position default. Positions
// the table does not list use the PositionDefault range. Malformed cards
// simply miss and land on the default row.
func (t *Table) Lookup(position model.Position, c1, c2 model.Card) (Entry, model.MatchLevel) {
	if _, ok := t.positions[position]; !ok {
		position = model.PositionDefault
	}

	if e, ok := t.entries[Key{Position: position, Hand: ExactKey(c1, c2)}]; ok {
		return e, model.MatchExact
	}
	if e, ok := t.entries[Key{Position: position, Hand: CategoryKey(c1, c2)}]; ok {
		return e, model.MatchCategory
	}
	return t.entries[Key{Position: position, Hand: DefaultHand}], model.MatchDefault
}

// Get returns a single row.
func (t *Table) Get(position model.Position, hand HandKey) (Entry, bool) {
	e, ok := t.entries[Key{Position: position, Hand: hand}]
	return e, ok
}

// Positions returns the listed positions, seats in action order first
// and the catch-all last.
func (t *Table) Positions() []model.Position {
	out := make([]model.Position, 0, len(t.positions))
	for _, p := range model.Positions() {
		if _, ok := t.positions[p]; ok {
			out = append(out, p)
		}
	}
	if _, ok := t.positions[model.PositionDefault]; ok {
		out = append(out, model.PositionDefault)
	}
	return out
}

// Keys returns the hand keys of one position, sorted with exact hands
// first, then categories, then the default row.
func (t *Table) Keys(position model.Position) []HandKey {
	var keys []HandKey
	for k := range t.entries {
		if k.Position == position {
			keys = append(keys, k.Hand)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		ki, kj := kindRank(keys[i]), kindRank(keys[j])
		if ki != kj {
			return ki < kj
		}
		return keys[i] < keys[j]
	})
	return keys
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.entries)
}

func kindRank(k HandKey) int {
	switch k.Kind() {
	case model.MatchExact:
		return 0
	case model.MatchCategory:
		return 1
	default:
		return 2
	}
}

func (t *Table) sortedKeys() []Key {
	var keys []Key
	for _, p := range t.Positions() {
		for _, h := range t.Keys(p) {
			keys = append(keys, Key{Position: p, Hand: h})
		}
	}
	return keys
}
