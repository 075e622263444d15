package solver

import (
	"context"
	"fmt"

	"github.com/Veraticus/gto-overlay/internal/engine"
	"github.com/Veraticus/gto-overlay/internal/model"
	"github.com/Veraticus/gto-overlay/internal/ranges"
)

// Engine pairs the initialization status with the selected recommender.
// Both are fixed at construction, so an Engine may be shared freely.
type Engine struct {
	recommender engine.Recommender
	status      Status
}

// NewEngine builds the builtin recommender, probes for the configured data
// source and wires the matching variant. Errors only come from invalid
// tables or engine configuration.
func NewEngine(ctx context.Context, table *ranges.Table, cfg engine.Config, opts Options) (*Engine, error) {
	builtin, err := engine.NewBuiltin(table, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create builtin recommender: %w", err)
	}

	status := Initialize(ctx, opts)

	recommender, err := engine.New(status.Kind, status.ToolPath, builtin)
	if err != nil {
		return nil, fmt.Errorf("failed to create recommender: %w", err)
	}

	return &Engine{recommender: recommender, status: status}, nil
}

// Recommend implements engine.Recommender.
func (e *Engine) Recommend(scenario model.Scenario) model.Recommendation {
	return e.recommender.Recommend(scenario)
}

// Status returns the data-source status.
func (e *Engine) Status() Status {
	return e.status
}
