package ranges

import (
	"fmt"
	"os"

	"github.com/Veraticus/gto-overlay/internal/common"
	"github.com/Veraticus/gto-overlay/internal/model"
	"gopkg.in/yaml.v3"
)

type entryDoc struct {
	Frequencies map[string]int `yaml:"frequencies"`
	Action      string         `yaml:"action"`
	Reasoning   string         `yaml:"reasoning,omitempty"`
}

// Parse decodes a YAML range file of the form
//
//	BTN:
//	  AsKh: {action: RAISE 3x, frequencies: {raise: 68, call: 22, fold: 10}}
//	  default: {action: FOLD, frequencies: {raise: 0, call: 20, fold: 80}}
//	default:
//	  default: {action: FOLD, frequencies: {raise: 0, call: 10, fold: 90}}
//
// Hand keys are canonicalised, so "KhAs" and "AsKh" name the same row.
func Parse(data []byte) (*Table, error) {
	var doc map[string]map[string]entryDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}

	entries := make(map[Key]Entry)
	for posName, hands := range doc {
		pos, err := model.ParsePosition(posName)
		if err != nil {
			return nil, err
		}
		for handName, d := range hands {
			hand, err := ParseHandKey(handName)
			if err != nil {
				return nil, fmt.Errorf("position %s: %w", pos, err)
			}
			key := Key{Position: pos, Hand: hand}
			if _, dup := entries[key]; dup {
				return nil, fmt.Errorf("%w: %s/%s listed twice", common.ErrInvalidConfig, pos, hand)
			}

			freqs := make(model.Frequencies, len(d.Frequencies))
			for name, v := range d.Frequencies {
				kind, ok := model.ParseActionKind(name)
				if !ok {
					return nil, fmt.Errorf("%w: %s/%s action kind %q", common.ErrInvalidFrequency, pos, hand, name)
				}
				freqs[kind] = v
			}
			entries[key] = Entry{Action: d.Action, Frequencies: freqs, Reasoning: d.Reasoning}
		}
	}

	return New(entries)
}

// LoadFile reads and validates a YAML range file.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read range file: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("range file %s: %w", path, err)
	}
	return t, nil
}

// Marshal encodes a table in the format Parse reads.
func Marshal(t *Table) ([]byte, error) {
	doc := make(map[string]map[string]entryDoc)
	for _, pos := range t.Positions() {
		hands := make(map[string]entryDoc)
		for _, hand := range t.Keys(pos) {
			e := t.entries[Key{Position: pos, Hand: hand}]
			freqs := make(map[string]int, len(e.Frequencies))
			for kind, v := range e.Frequencies {
				freqs[string(kind)] = v
			}
			hands[string(hand)] = entryDoc{Action: e.Action, Frequencies: freqs, Reasoning: e.Reasoning}
		}
		doc[string(pos)] = hands
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode range table: %w", err)
	}
	return data, nil
}
