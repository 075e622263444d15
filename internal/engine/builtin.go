package engine

import (
	"fmt"

	"github.com/Veraticus/gto-overlay/internal/common"
	"github.com/Veraticus/gto-overlay/internal/model"
	"github.com/Veraticus/gto-overlay/internal/ranges"
)

// DefaultReasoning is attached to table entries that carry none.
const DefaultReasoning = "GTO optimal play"

// Config holds configuration options for the builtin recommender.
type Config struct {
	Buckets    []Bucket
	Confidence float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Buckets:    DefaultBuckets(),
		Confidence: 0.85,
	}
}

// Builtin answers from the static range table preflop and from the
// strength buckets postflop.
type Builtin struct {
	table      *ranges.Table
	buckets    []Bucket
	confidence float64
}

// NewBuiltin creates the builtin recommender. Configuration problems are
// reported here so they surface at startup rather than per request.
func NewBuiltin(table *ranges.Table, cfg Config) (*Builtin, error) {
	if table == nil {
		return nil, fmt.Errorf("%w: range table", common.ErrMissingConfig)
	}
	if cfg.Confidence < 0 || cfg.Confidence > 1 {
		return nil, fmt.Errorf("%w: confidence %v outside [0,1]", common.ErrInvalidConfig, cfg.Confidence)
	}
	if err := ValidateBuckets(cfg.Buckets); err != nil {
		return nil, err
	}

	buckets := make([]Bucket, len(cfg.Buckets))
	for i, b := range cfg.Buckets {
		b.Frequencies = b.Frequencies.Clone()
		buckets[i] = b
	}

	return &Builtin{
		table:      table,
		buckets:    buckets,
		confidence: cfg.Confidence,
	}, nil
}

// Recommend implements Recommender.
func (b *Builtin) Recommend(scenario model.Scenario) model.Recommendation {
	if scenario.Street == model.StreetPreflop || (scenario.Street == "" && len(scenario.Board) == 0) {
		return b.preflop(scenario)
	}
	return b.postflop(scenario)
}

func (b *Builtin) preflop(scenario model.Scenario) model.Recommendation {
	entry, match := b.table.Lookup(scenario.Position, scenario.HoleCards[0], scenario.HoleCards[1])

	reasoning := entry.Reasoning
	if reasoning == "" {
		reasoning = DefaultReasoning
	}

	return model.Recommendation{
		Action:      entry.Action,
		Frequencies: entry.Frequencies.Clone(),
		Reasoning:   reasoning,
		Confidence:  b.confidence,
		Source:      string(SourceBuiltin),
		Match:       match,
	}
}

func (b *Builtin) postflop(scenario model.Scenario) model.Recommendation {
	bucket := bucketFor(b.buckets, HandStrength(scenario.HoleCards, scenario.Board))

	return model.Recommendation{
		Action:      bucket.Action,
		Frequencies: bucket.Frequencies.Clone(),
		Reasoning:   bucket.Reasoning,
		Confidence:  b.confidence,
		Source:      string(SourceBuiltin),
		Match:       model.MatchPostflop,
	}
}
